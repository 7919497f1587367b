package router

import (
	"github.com/videotube/backend/internal/application"
	"github.com/videotube/backend/internal/container"
	pginfra "github.com/videotube/backend/internal/infrastructure/postgres"
	"github.com/videotube/backend/internal/infrastructure/search"
	handlers "github.com/videotube/backend/internal/interface/http"
	"github.com/videotube/backend/internal/interface/middleware"
	"github.com/videotube/backend/internal/router/modules"
)

// InitModules builds every repository, service, and handler from the
// container singletons and registers the feature modules.
// This function should be called once during application startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	videos := pginfra.NewVideoRepository(pool)
	comments := pginfra.NewCommentRepository(pool)
	likes := pginfra.NewLikeRepository(pool)
	subs := pginfra.NewSubscriptionRepository(pool)
	playlists := pginfra.NewPlaylistRepository(pool)
	tweets := pginfra.NewTweetRepository(pool)
	stats := pginfra.NewStatsRepository(pool)

	index := search.NewVideoIndex(container.GetES(), cfg.ESVideosIndex, logger)

	userSvc := application.NewUserService(users, container.GetJWT(), container.GetGCS(), cfg.GCSBucket, logger)
	videoSvc := application.NewVideoService(videos, users, index, container.GetRabbitPub(), container.GetGCS(), cfg.GCSBucket, logger)
	commentSvc := application.NewCommentService(comments, videos)
	likeSvc := application.NewLikeService(likes, videos, comments, tweets)
	subSvc := application.NewSubscriptionService(subs, users, container.GetRabbitPub(), logger)
	playlistSvc := application.NewPlaylistService(playlists, videos)
	tweetSvc := application.NewTweetService(tweets, users)
	dashSvc := application.NewDashboardService(stats)

	auth := middleware.Auth(container.GetJWT(), users)

	r.Add(modules.NewHealthcheckModule(handlers.NewHealthcheckHandler()))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, container.GetCookies(), logger), auth))
	r.Add(modules.NewVideoModule(handlers.NewVideoHandler(videoSvc, logger), auth))
	r.Add(modules.NewCommentModule(handlers.NewCommentHandler(commentSvc), auth))
	r.Add(modules.NewLikeModule(handlers.NewLikeHandler(likeSvc), auth))
	r.Add(modules.NewSubscriptionModule(handlers.NewSubscriptionHandler(subSvc), auth))
	r.Add(modules.NewPlaylistModule(handlers.NewPlaylistHandler(playlistSvc), auth))
	r.Add(modules.NewTweetModule(handlers.NewTweetHandler(tweetSvc), auth))
	r.Add(modules.NewDashboardModule(handlers.NewDashboardHandler(dashSvc), auth))
}
