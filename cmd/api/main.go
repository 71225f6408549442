package main

import (
	"context"
	"movie_review/api"
	"movie_review/configs"
	"movie_review/db/mongodb"
	"movie_review/db/redis"
	"movie_review/internal/handler"
	"movie_review/internal/repository"
	"movie_review/internal/repository/memory"
	"movie_review/internal/service"
	"movie_review/pkg/logger"
	"movie_review/util"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type repositories struct {
	userRepo      repository.IUserRepository
	movieRepo     repository.IMovieRepository
	reviewRepo    repository.IReviewRepository
	watchlistRepo repository.IWatchlistRepository
	adminRepo     repository.IAdminRepository
	close         func()
}

// @title						Movie Review
// @version					1.0
// @description				Movie catalog, reviews and watchlists.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and JWT token.
// @Accept						json
// @Produce					json
func main() {
	configs.LoadEnvVariables()
	logger.Init(logger.Config{
		Level:  configs.GetConfigs().LogLevel,
		Format: configs.GetConfigs().LogFormat,
	})

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              configs.GetConfigs().SentryDns,
		Release:          configs.GetConfigs().SentryRelease,
		TracesSampleRate: 0.2,
		EnableTracing:    true,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("sentry.Init")
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	tokens, err := util.NewTokenManager(configs.GetConfigs().JwtSecret, configs.GetConfigs().TokenExpire())
	if err != nil {
		log.Fatal().Err(err).Msg("JWT_SECRET must be set")
	}

	repos, err := newRepositories()
	if err != nil {
		log.Fatal().Err(err).Msg("could not initialize storage")
	}
	defer repos.close()

	var redisClient *goRedis.Client
	var locker service.IMovieLocker = service.NewKeyedMutexLocker()
	if configs.GetConfigs().RedisUrl != "" {
		redisClient, err = redis.ConnectRedis()
		if err != nil {
			log.Fatal().Err(err).Msg("could not connect to redis")
		}
		defer redisClient.Close()
		locker = service.NewRedisLocker(redisClient, configs.GetConfigs().RequestTimeout())
		log.Info().Msg("using redis movie locks")
	}

	accessSvc, err := service.NewAccessService()
	if err != nil {
		log.Fatal().Err(err).Msg("could not build access policies")
	}
	cacheSvc := service.NewCacheService(redisClient)

	userSvc := service.NewUserService(repos.userRepo, tokens, accessSvc, cacheSvc, configs.GetConfigs().BcryptCost)
	movieSvc := service.NewMovieService(repos.movieRepo)
	reviewSvc := service.NewReviewService(repos.reviewRepo, repos.movieRepo, repos.userRepo, locker, cacheSvc)
	watchlistSvc := service.NewWatchlistService(repos.watchlistRepo, repos.movieRepo)
	adminSvc := service.NewAdminService(repos.adminRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err = adminSvc.FetchDbConfigs(ctx); err != nil {
		log.Warn().Err(err).Msg("db configs not found, using defaults")
	}
	cancel()

	api.InitRouter(api.Handlers{
		UserHandler:  handler.NewUserHandler(userSvc, watchlistSvc),
		MovieHandler: handler.NewMovieHandler(movieSvc, reviewSvc),
		AdminHandler: handler.NewAdminHandler(adminSvc),
		UserService:  userSvc,
	})

	go func() {
		addr := "0.0.0.0:" + configs.GetConfigs().Port
		log.Info().Str("addr", addr).Str("storage", configs.GetConfigs().Storage).Msg("server started")
		if err := api.Start(addr); err != nil {
			log.Error().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err = api.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
}

func newRepositories() (*repositories, error) {
	if configs.GetConfigs().Storage == configs.StorageMemory {
		log.Warn().Msg("using in-memory storage, data is lost on restart")
		return &repositories{
			userRepo:      memory.NewUserRepository(),
			movieRepo:     memory.NewMovieRepository(),
			reviewRepo:    memory.NewReviewRepository(),
			watchlistRepo: memory.NewWatchlistRepository(),
			adminRepo:     memory.NewAdminRepository(),
			close:         func() {},
		}, nil
	}

	mongoDB, err := mongodb.NewDatabase()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = mongoDB.EnsureIndexes(ctx); err != nil {
		_ = mongoDB.Close()
		return nil, err
	}

	db := mongoDB.GetDB()
	return &repositories{
		userRepo:      repository.NewUserRepository(db),
		movieRepo:     repository.NewMovieRepository(db),
		reviewRepo:    repository.NewReviewRepository(db),
		watchlistRepo: repository.NewWatchlistRepository(db),
		adminRepo:     repository.NewAdminRepository(db),
		close: func() {
			if err := mongoDB.Close(); err != nil {
				log.Error().Err(err).Msg("mongodb disconnect")
			}
		},
	}, nil
}
