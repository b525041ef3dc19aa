package app

import (
	"context"
	"errors"
	"fmt"

	"jobboard-api/config"
	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/openapi"
	"jobboard-api/internal/cache"
	"jobboard-api/internal/database"
	"jobboard-api/internal/notify"
	"jobboard-api/internal/services"
	mongostore "jobboard-api/internal/storage/mongo"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	Logger      *logrus.Logger
	Validator   *validator.Validate
	MongoClient *mongo.Client
	RedisClient *redis.Client // nil when caching is disabled
	OpenAPI     *openapi3.T

	JobService         services.JobService
	ApplicationService services.ApplicationService
	UserService        services.UserService
}

// New connects to the backing services and wires repositories and services.
func New(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*Application, error) {
	doc, err := openapi.Load(ctx)
	if err != nil {
		return nil, err
	}

	client, err := database.NewMongoClient(ctx, cfg.Mongo, log)
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.Mongo.Database)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ensuring indexes: %w", err)
	}

	a := &Application{
		Config:      cfg,
		Logger:      log,
		Validator:   handlers.NewValidator(),
		MongoClient: client,
		OpenAPI:     doc,
	}

	var jobCache cache.Cache = cache.Noop{}
	if cfg.Redis.Addr != "" {
		rdb, err := database.NewRedisClient(cfg.Redis, log)
		if err != nil {
			// Caching is optional.
			log.WithError(err).Warn("redis unavailable, job list caching disabled")
		} else {
			a.RedisClient = rdb
			jobCache = cache.NewRedisCache(rdb)
		}
	}

	var notifier notify.Notifier
	if cfg.SMTP.Host != "" {
		smtp, err := notify.NewSMTPNotifier(cfg.SMTP, log)
		if err != nil {
			_ = a.Close(ctx)
			return nil, fmt.Errorf("configuring smtp: %w", err)
		}
		notifier = smtp
	} else {
		log.Info("smtp not configured, notifications will be logged only")
		notifier = notify.NewLogNotifier(log)
	}

	users := mongostore.NewUserRepo(db)
	jobs := mongostore.NewJobRepo(db)
	apps := mongostore.NewApplicationRepo(db)
	tx := mongostore.NewTxRunner(client, cfg.Mongo.Transactions)

	identity := services.NewIdentityService(users, log)
	a.JobService = services.NewJobService(jobs, identity, jobCache, cfg.Jobs, log)
	a.ApplicationService = services.NewApplicationService(apps, jobs, users, tx, identity, notifier, jobCache, log)
	a.UserService = services.NewUserService(users, jobs, identity, log)

	return a, nil
}

// ReadinessChecks returns a ping per configured backing service.
func (a *Application) ReadinessChecks() map[string]handlers.PingFunc {
	checks := make(map[string]handlers.PingFunc)
	if a.MongoClient != nil {
		checks["mongo"] = func(ctx context.Context) error { return a.MongoClient.Ping(ctx, nil) }
	}
	if a.RedisClient != nil {
		checks["redis"] = func(ctx context.Context) error { return a.RedisClient.Ping(ctx).Err() }
	}
	return checks
}

// Close releases the backing service connections.
func (a *Application) Close(ctx context.Context) error {
	var errs []error
	if a.RedisClient != nil {
		errs = append(errs, a.RedisClient.Close())
	}
	if a.MongoClient != nil {
		errs = append(errs, a.MongoClient.Disconnect(ctx))
	}
	return errors.Join(errs...)
}
