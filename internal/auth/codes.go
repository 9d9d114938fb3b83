package auth

import (
	"context"
	"fmt"
	"log"
	"time"

	"job-marketplace-api/internal/cache"

	"github.com/google/uuid"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	codeKeyPrefix     = "verify:"
	attemptsKeyPrefix = "verify_attempts:"

	// MaxVerifyAttempts is the number of wrong codes after which the pending secret is discarded.
	MaxVerifyAttempts = 5
)

// CodeStore issues six digit verification codes backed by a per-user TOTP secret kept in the cache.
// A secret lives for one TTL and is removed once a code is accepted or after
// MaxVerifyAttempts wrong guesses, whichever comes first.
type CodeStore struct {
	store  cache.CounterStore
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewCodeStore(store cache.CounterStore, issuer string, ttl time.Duration) *CodeStore {
	if ttl < time.Minute {
		ttl = 5 * time.Minute
	}
	return &CodeStore{store: store, issuer: issuer, ttl: ttl, now: time.Now}
}

func (s *CodeStore) validateOpts() totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    uint(s.ttl / time.Second),
		Skew:      1,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	}
}

// Issue replaces any pending secret for the user and returns a fresh code.
func (s *CodeStore) Issue(ctx context.Context, userID uuid.UUID, account string) (string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuer,
		AccountName: account,
		Period:      uint(s.ttl / time.Second),
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate verification secret: %w", err)
	}

	code, err := totp.GenerateCodeCustom(key.Secret(), s.now(), s.validateOpts())
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}

	if err := s.store.Set(ctx, codeKeyPrefix+userID.String(), []byte(key.Secret()), s.ttl); err != nil {
		return "", fmt.Errorf("failed to store verification secret: %w", err)
	}
	if err := s.store.Delete(ctx, attemptsKeyPrefix+userID.String()); err != nil {
		return "", fmt.Errorf("failed to reset verification attempts: %w", err)
	}
	return code, nil
}

// Verify reports whether code is valid for the user's pending secret and consumes it on success.
func (s *CodeStore) Verify(ctx context.Context, userID uuid.UUID, code string) (bool, error) {
	secret, err := s.store.Get(ctx, codeKeyPrefix+userID.String())
	if err != nil {
		return false, fmt.Errorf("failed to load verification secret: %w", err)
	}
	if secret == nil {
		return false, nil
	}

	// A malformed code is just a wrong code.
	ok, _ := totp.ValidateCustom(code, string(secret), s.now(), s.validateOpts())
	if !ok {
		return false, s.recordFailure(ctx, userID)
	}

	if err := s.discard(ctx, userID); err != nil {
		return false, fmt.Errorf("failed to consume verification secret: %w", err)
	}
	return true, nil
}

func (s *CodeStore) recordFailure(ctx context.Context, userID uuid.UUID) error {
	failures, err := s.store.Incr(ctx, attemptsKeyPrefix+userID.String(), s.ttl)
	if err != nil {
		return fmt.Errorf("failed to record verification attempt: %w", err)
	}
	if failures < MaxVerifyAttempts {
		return nil
	}
	log.Printf("CodeStore: %d failed verification attempts for user %s, discarding code", failures, userID)
	if err := s.discard(ctx, userID); err != nil {
		return fmt.Errorf("failed to discard verification secret: %w", err)
	}
	return nil
}

func (s *CodeStore) discard(ctx context.Context, userID uuid.UUID) error {
	if err := s.store.Delete(ctx, codeKeyPrefix+userID.String()); err != nil {
		return err
	}
	return s.store.Delete(ctx, attemptsKeyPrefix+userID.String())
}
