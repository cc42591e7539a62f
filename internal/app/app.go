// Package app wires configuration into the concrete adapters behind the auth
// service. Transport layers embed an App; the worker and seed binaries use
// the narrower pieces directly.
package app

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	authdomain "conversia/backend/internal/auth/domain"
	authrepo "conversia/backend/internal/auth/repository"
	"conversia/backend/internal/auth/service"
	"conversia/backend/internal/config"
	"conversia/backend/internal/db"
	"conversia/backend/internal/events"
	"conversia/backend/internal/oauth2"
	"conversia/backend/internal/security"
	userrepo "conversia/backend/internal/user/repository"
)

// App holds the wired auth service and the resources behind it.
type App struct {
	Auth     *service.AuthService
	Sessions *authrepo.PostgresRepository
	Users    *userrepo.PostgresRepository
	DB       *pgxpool.Pool

	redisClient *redis.Client
	kafka       *events.KafkaPublisher
}

// New builds the full dependency graph from cfg: Postgres pool, token
// provider, bcrypt hasher, OAuth2 service with a Redis or in-memory state
// store, and a Kafka or log event publisher.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	pool, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	sessions := authrepo.NewPostgresRepository(pool)
	users := userrepo.NewPostgresRepository(pool)

	tokens := security.NewTokenProvider(
		[]byte(cfg.JWTSecret), cfg.JWTIssuer, cfg.JWTAudience,
		cfg.AccessTTL(), cfg.RefreshTTL(),
	)
	hasher := security.NewHasher(cfg.BcryptCost)

	states, redisClient := newStateStore(cfg)
	oauthService := oauth2.NewService(oauth2Providers(cfg), states, nil, cfg.StateTTL())

	publisher, kafkaPublisher := newPublisher(cfg)

	return &App{
		Auth:        service.NewAuthService(tokens, oauthService, sessions, users, hasher, publisher),
		Sessions:    sessions,
		Users:       users,
		DB:          pool,
		redisClient: redisClient,
		kafka:       kafkaPublisher,
	}, nil
}

// Close releases the pool and any broker connections.
func (a *App) Close() error {
	var firstErr error
	if a.kafka != nil {
		if err := a.kafka.Close(); err != nil {
			firstErr = err
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.DB.Close()
	return firstErr
}

// newStateStore picks Redis when configured, the in-memory store otherwise.
// The in-memory store is only safe for a single instance.
func newStateStore(cfg *config.Config) (oauth2.StateStore, *redis.Client) {
	if cfg.RedisAddr == "" {
		return oauth2.NewMemoryStateStore(), nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	return oauth2.NewRedisStateStore(client), client
}

// newPublisher picks Kafka when brokers are configured, the log publisher
// otherwise.
func newPublisher(cfg *config.Config) (service.EventPublisher, *events.KafkaPublisher) {
	if brokers := cfg.KafkaBrokersList(); len(brokers) > 0 {
		kafka := events.NewKafkaPublisher(brokers, cfg.AuthEventsTopic)
		return kafka, kafka
	}
	return events.NewLogPublisher(), nil
}

func oauth2Providers(cfg *config.Config) map[authdomain.AuthProvider]oauth2.ProviderConfig {
	return oauth2.DefaultProviders(
		oauth2.Credentials{ClientID: cfg.GoogleClientID, ClientSecret: cfg.GoogleClientSecret, RedirectURI: cfg.GoogleRedirectURI},
		oauth2.Credentials{ClientID: cfg.GithubClientID, ClientSecret: cfg.GithubClientSecret, RedirectURI: cfg.GithubRedirectURI},
		oauth2.Credentials{ClientID: cfg.FacebookClientID, ClientSecret: cfg.FacebookClientSecret, RedirectURI: cfg.FacebookRedirectURI},
	)
}
