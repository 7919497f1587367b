package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
	"github.com/videotube/backend/pkg/apperr"
)

func TestListClampsPaginationAndComputesPages(t *testing.T) {
	videos := new(mockVideoRepo)
	videos.On("List", mock.Anything, mock.MatchedBy(func(p repository.ListVideosParams) bool {
		return p.Page == 1 && p.Limit == 10
	})).Return([]entity.VideoWithOwner{{Video: entity.Video{ID: videoID}}}, int64(25), nil)

	svc := &VideoService{Videos: videos}
	page, err := svc.List(context.Background(), repository.ListVideosParams{Page: 0, Limit: -5})
	require.NoError(t, err)

	assert.Equal(t, int64(25), page.TotalDocs)
	assert.Equal(t, int64(3), page.TotalPages)
	assert.True(t, page.HasNextPage)
	assert.False(t, page.HasPrevPage)
	require.Len(t, page.Docs, 1)
}

func TestListLastPage(t *testing.T) {
	videos := new(mockVideoRepo)
	videos.On("List", mock.Anything, mock.Anything).
		Return([]entity.VideoWithOwner{}, int64(25), nil)

	svc := &VideoService{Videos: videos}
	page, err := svc.List(context.Background(), repository.ListVideosParams{Page: 3, Limit: 10})
	require.NoError(t, err)

	assert.False(t, page.HasNextPage)
	assert.True(t, page.HasPrevPage)
	assert.NotNil(t, page.Docs)
}

func TestListInvalidOwnerFilter(t *testing.T) {
	svc := &VideoService{Videos: new(mockVideoRepo)}
	_, err := svc.List(context.Background(), repository.ListVideosParams{OwnerID: "not-a-uuid"})
	require.Error(t, err)

	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

// Without a configured index, free-text queries go straight to the datastore.
func TestListQueryFallsBackWithoutIndex(t *testing.T) {
	videos := new(mockVideoRepo)
	videos.On("List", mock.Anything, mock.MatchedBy(func(p repository.ListVideosParams) bool {
		return p.Query == "gophers"
	})).Return([]entity.VideoWithOwner{}, int64(0), nil)

	svc := &VideoService{Videos: videos}
	_, err := svc.List(context.Background(), repository.ListVideosParams{Query: "gophers"})
	require.NoError(t, err)
	videos.AssertExpectations(t)
}

func TestPublishRequiresMedia(t *testing.T) {
	svc := &VideoService{Videos: new(mockVideoRepo), Users: new(mockUserRepo)}

	_, err := svc.Publish(context.Background(), ownerID, PublishInput{Title: "t"})
	require.Error(t, err)
	assert.EqualError(t, err, "video file is required")

	_, err = svc.Publish(context.Background(), ownerID, PublishInput{Title: "t", VideoFile: &FileUpload{}})
	require.Error(t, err)
	assert.EqualError(t, err, "thumbnail file is required")
}

func TestDetailsBumpsViewsAndRecordsHistory(t *testing.T) {
	videos := new(mockVideoRepo)
	users := new(mockUserRepo)
	videos.On("IncrementViews", mock.Anything, videoID).Return(nil)
	videos.On("Details", mock.Anything, videoID).
		Return(&entity.VideoDetails{Video: entity.Video{ID: videoID, Views: 5}}, nil)
	users.On("AddWatchHistory", mock.Anything, strangerID, videoID).Return(nil)

	svc := &VideoService{Videos: videos, Users: users}
	d, err := svc.Details(context.Background(), videoID, strangerID)
	require.NoError(t, err)

	assert.Equal(t, videoID, d.ID)
	videos.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestDetailsUnknownVideo(t *testing.T) {
	videos := new(mockVideoRepo)
	videos.On("IncrementViews", mock.Anything, videoID).Return(repository.ErrNotFound)
	videos.On("Details", mock.Anything, videoID).Return(nil, repository.ErrNotFound)

	svc := &VideoService{Videos: videos, Users: new(mockUserRepo)}
	_, err := svc.Details(context.Background(), videoID, "")
	require.Error(t, err)

	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.EqualError(t, err, "video not found")
}

func TestUpdateVideoNotOwner(t *testing.T) {
	videos := new(mockVideoRepo)
	videos.On("GetByID", mock.Anything, videoID).
		Return(&entity.Video{ID: videoID, OwnerID: ownerID}, nil)

	svc := &VideoService{Videos: videos}
	_, err := svc.Update(context.Background(), videoID, strangerID, UpdateVideoInput{Title: "hijack"})
	require.Error(t, err)

	assert.Equal(t, apperr.Forbidden, apperr.KindOf(err))
	assert.EqualError(t, err, "you are not the owner of this video")
	videos.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestTogglePublishFlips(t *testing.T) {
	videos := new(mockVideoRepo)
	videos.On("GetByID", mock.Anything, videoID).
		Return(&entity.Video{ID: videoID, OwnerID: ownerID, IsPublished: true}, nil)
	videos.On("Update", mock.Anything, mock.MatchedBy(func(v *entity.Video) bool {
		return !v.IsPublished
	})).Return(nil)

	svc := &VideoService{Videos: videos}
	v, err := svc.TogglePublish(context.Background(), videoID, ownerID)
	require.NoError(t, err)

	assert.False(t, v.IsPublished)
	videos.AssertExpectations(t)
}
