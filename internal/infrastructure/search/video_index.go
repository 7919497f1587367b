package search

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/videotube/backend/internal/domain/entity"
)

// VideoIndex mirrors published video metadata into Elasticsearch so the
// listing endpoint can answer full-text queries. A nil client disables the
// index; callers then fall back to SQL matching.
type VideoIndex struct {
	ES     *elasticsearch.Client
	Index  string
	Logger *logrus.Logger
}

func NewVideoIndex(es *elasticsearch.Client, index string, logger *logrus.Logger) *VideoIndex {
	return &VideoIndex{ES: es, Index: index, Logger: logger}
}

// Enabled reports whether the index can serve queries; callers fall back to
// the datastore when it cannot.
func (x *VideoIndex) Enabled() bool {
	return x != nil && x.ES != nil && x.Index != ""
}

// IndexVideo upserts the video document. Failures are logged and swallowed;
// the relational store remains the source of truth.
func (x *VideoIndex) IndexVideo(ctx context.Context, v *entity.Video) error {
	if !x.Enabled() {
		return nil
	}
	doc := map[string]any{
		"id":           v.ID,
		"owner_id":     v.OwnerID,
		"title":        v.Title,
		"description":  v.Description,
		"views":        v.Views,
		"is_published": v.IsPublished,
		"created_at":   v.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: x.Index, DocumentID: v.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, x.ES)
	if err != nil {
		if x.Logger != nil {
			x.Logger.WithError(err).WithField("video_id", v.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && x.Logger != nil {
		x.Logger.WithField("status", res.Status()).WithField("video_id", v.ID).Warn("es index response error")
	}
	return nil
}

// DeleteVideo removes the document; missing documents are not an error.
func (x *VideoIndex) DeleteVideo(ctx context.Context, id string) error {
	if !x.Enabled() {
		return nil
	}
	req := esapi.DeleteRequest{Index: x.Index, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, x.ES)
	if err != nil {
		if x.Logger != nil {
			x.Logger.WithError(err).WithField("video_id", id).Warn("es delete failed")
		}
		return err
	}
	_ = res.Body.Close()
	return nil
}

// SearchIDs resolves a free-text query to a relevance-ordered page of video
// IDs. The caller hydrates them from the relational store.
func (x *VideoIndex) SearchIDs(ctx context.Context, q string, page, limit int) ([]string, int64, error) {
	if !x.Enabled() {
		return nil, 0, nil
	}
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":  q,
						"fields": []string{"title^2", "description"},
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"is_published": true},
				},
			},
		},
		"from":    (page - 1) * limit,
		"size":    limit,
		"_source": false,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := x.ES.Search(
		x.ES.Search.WithContext(c),
		x.ES.Search.WithIndex(x.Index),
		x.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, 0, err
	}

	ids := make([]string, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		ids = append(ids, h.ID)
	}
	return ids, parsed.Hits.Total.Value, nil
}
