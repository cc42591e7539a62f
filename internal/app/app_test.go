package app

import (
	"testing"

	"conversia/backend/internal/config"
	"conversia/backend/internal/events"
	"conversia/backend/internal/oauth2"
)

func TestNewStateStore(t *testing.T) {
	store, client := newStateStore(&config.Config{})
	if client != nil {
		t.Error("no redis client expected without REDIS_ADDR")
	}
	if _, ok := store.(*oauth2.MemoryStateStore); !ok {
		t.Errorf("store type = %T, want *oauth2.MemoryStateStore", store)
	}

	store, client = newStateStore(&config.Config{RedisAddr: "localhost:6379"})
	if client == nil {
		t.Fatal("redis client expected with REDIS_ADDR set")
	}
	defer client.Close()
	if _, ok := store.(*oauth2.RedisStateStore); !ok {
		t.Errorf("store type = %T, want *oauth2.RedisStateStore", store)
	}
}

func TestNewPublisher(t *testing.T) {
	publisher, kafka := newPublisher(&config.Config{})
	if kafka != nil {
		t.Error("no kafka publisher expected without KAFKA_BROKERS")
	}
	if _, ok := publisher.(*events.LogPublisher); !ok {
		t.Errorf("publisher type = %T, want *events.LogPublisher", publisher)
	}

	publisher, kafka = newPublisher(&config.Config{
		KafkaBrokers:    "localhost:9092",
		AuthEventsTopic: "conversia-auth-events",
	})
	if kafka == nil {
		t.Fatal("kafka publisher expected with KAFKA_BROKERS set")
	}
	defer kafka.Close()
	if publisher != kafka {
		t.Error("publisher should be the kafka publisher itself")
	}
}

func TestOAuth2Providers(t *testing.T) {
	cfg := &config.Config{
		GoogleClientID: "g-id", GoogleClientSecret: "g-secret", GoogleRedirectURI: "https://app/cb/google",
		GithubClientID: "gh-id", GithubClientSecret: "gh-secret", GithubRedirectURI: "https://app/cb/github",
		FacebookClientID: "fb-id", FacebookClientSecret: "fb-secret", FacebookRedirectURI: "https://app/cb/facebook",
	}

	providers := oauth2Providers(cfg)
	if len(providers) != 3 {
		t.Fatalf("provider count = %d, want 3", len(providers))
	}
	for name, p := range providers {
		if p.ClientID == "" || p.ClientSecret == "" || p.RedirectURI == "" {
			t.Errorf("%s credentials not threaded through: %+v", name, p)
		}
		if p.AuthorizationURL == "" || p.TokenURL == "" || p.UserInfoURL == "" {
			t.Errorf("%s endpoints missing: %+v", name, p)
		}
	}
}
