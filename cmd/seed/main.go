package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/videotube/backend/config"
	"github.com/videotube/backend/internal/domain/entity"
	pginfra "github.com/videotube/backend/internal/infrastructure/postgres"
	"github.com/videotube/backend/pkg/helpers"
)

// Local development seeding: a handful of accounts with videos, tweets and
// subscriptions so the API has something to serve.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	videos := pginfra.NewVideoRepository(pool)
	tweets := pginfra.NewTweetRepository(pool)
	subs := pginfra.NewSubscriptionRepository(pool)

	hash, err := helpers.HashPassword("password123")
	if err != nil {
		log.Fatalf("hash: %v", err)
	}

	seeded := make([]*entity.User, 0, 3)
	for i := 1; i <= 3; i++ {
		u := &entity.User{
			Username:  fmt.Sprintf("creator%d", i),
			Email:     fmt.Sprintf("creator%d@example.com", i),
			FullName:  fmt.Sprintf("Creator %d", i),
			AvatarURL: fmt.Sprintf("https://storage.googleapis.com/%s/seed/avatar%d.png", cfg.GCSBucket, i),
			Password:  hash,
		}
		if err := users.Create(ctx, u); err != nil {
			log.Printf("user %s skipped: %v", u.Username, err)
			continue
		}
		seeded = append(seeded, u)
	}
	if len(seeded) == 0 {
		log.Println("nothing seeded (database already populated?)")
		return
	}

	for i, u := range seeded {
		for j := 1; j <= 2; j++ {
			v := &entity.Video{
				OwnerID:      u.ID,
				Title:        fmt.Sprintf("Sample video %d by %s", j, u.Username),
				Description:  "Seeded content for local development.",
				VideoURL:     fmt.Sprintf("https://storage.googleapis.com/%s/seed/video%d-%d.mp4", cfg.GCSBucket, i, j),
				ThumbnailURL: fmt.Sprintf("https://storage.googleapis.com/%s/seed/thumb%d-%d.jpg", cfg.GCSBucket, i, j),
				Duration:     120.5,
				IsPublished:  true,
			}
			if err := videos.Create(ctx, v); err != nil {
				log.Printf("video skipped: %v", err)
			}
		}
		t := &entity.Tweet{OwnerID: u.ID, Content: fmt.Sprintf("Hello from %s!", u.Username)}
		if err := tweets.Create(ctx, t); err != nil {
			log.Printf("tweet skipped: %v", err)
		}
	}

	// Everyone subscribes to the first creator.
	for _, u := range seeded[1:] {
		s := &entity.Subscription{SubscriberID: u.ID, ChannelID: seeded[0].ID}
		if err := subs.Create(ctx, s); err != nil {
			log.Printf("subscription skipped: %v", err)
		}
	}

	log.Printf("seeded %d users", len(seeded))
}
