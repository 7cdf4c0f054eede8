package auth

import (
	"testing"
	"time"

	"github.com/polkiloo/fintrack/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordHasher(t *testing.T) {
	hasher := newPasswordHasher(hasherParams{Config: &config.Config{BcryptCost: 12}})
	bcryptHasher, ok := hasher.(*BcryptHasher)
	if !ok {
		t.Fatalf("expected *BcryptHasher, got %T", hasher)
	}
	if bcryptHasher.cost != 12 {
		t.Fatalf("unexpected cost: %d", bcryptHasher.cost)
	}

	hasher = newPasswordHasher(hasherParams{Config: &config.Config{}})
	if hasher.(*BcryptHasher).cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost fallback, got %d", hasher.(*BcryptHasher).cost)
	}
}

func TestNewTokenStrategy(t *testing.T) {
	strategy := newTokenStrategy(strategyParams{Config: &config.Config{TokenSecret: "top-secret", TokenTTL: 30 * time.Minute}})
	hmacStrategy, ok := strategy.(*HMACStrategy)
	if !ok {
		t.Fatalf("expected *HMACStrategy, got %T", strategy)
	}
	if string(hmacStrategy.secret) != "top-secret" {
		t.Fatalf("unexpected secret: %q", string(hmacStrategy.secret))
	}
	if hmacStrategy.ttl != 30*time.Minute {
		t.Fatalf("unexpected ttl: %s", hmacStrategy.ttl)
	}
}

func TestNewTokenStrategyDefaultTTL(t *testing.T) {
	strategy := newTokenStrategy(strategyParams{Config: &config.Config{TokenSecret: "s"}})
	if strategy.(*HMACStrategy).ttl != time.Hour {
		t.Fatalf("expected 1h default ttl, got %s", strategy.(*HMACStrategy).ttl)
	}
}
