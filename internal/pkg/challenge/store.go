// Package challenge holds short-lived one-time verification codes keyed by
// contact identifier. State is process-local and best effort: it is a cache in
// front of the durable user store, not a durable store itself.
package challenge

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"eatyaar/internal/pkg/clock"

	"golang.org/x/crypto/bcrypt"
)

// ErrTooManyAttempts signals that the wrong-code ceiling was reached and the
// entry was destroyed. The caller must issue a fresh code; retrying is useless.
var ErrTooManyAttempts = errors.New("too many wrong verification attempts")

const (
	DefaultTTL         = 5 * time.Minute
	DefaultMaxAttempts = 3
	codeLength         = 6
)

// entry values are immutable; every mutation swaps in a freshly allocated
// replacement so CompareAndSwap/CompareAndDelete on the pointer are the only
// write paths.
type entry struct {
	codeHash  []byte
	expiresAt time.Time
	attempts  int
}

type Store struct {
	entries     sync.Map // key -> *entry
	clock       clock.Clock
	ttl         time.Duration
	maxAttempts int
	hashCost    int
}

type Option func(*Store)

func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

func WithMaxAttempts(n int) Option {
	return func(s *Store) { s.maxAttempts = n }
}

// WithHashCost lowers the bcrypt cost in tests.
func WithHashCost(cost int) Option {
	return func(s *Store) { s.hashCost = cost }
}

func NewStore(clk clock.Clock, opts ...Option) *Store {
	s := &Store{
		clock:       clk,
		ttl:         DefaultTTL,
		maxAttempts: DefaultMaxAttempts,
		hashCost:    bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue generates a fresh fixed-length numeric code for key, replacing any live
// entry. The code is returned for the delivery path only and is stored hashed.
func (s *Store) Issue(key string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), s.hashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash code: %w", err)
	}

	s.entries.Store(key, &entry{
		codeHash:  hash,
		expiresAt: s.clock.Now().Add(s.ttl),
	})
	slog.Info("verification code issued", "key", Mask(key))
	return code, nil
}

// Verify checks candidate against the live entry for key.
//
// Unknown key, expired entry, or mismatch report (false, nil); the mismatch
// path counts one wrong attempt atomically. Once the attempt ceiling is hit
// the entry is destroyed and exactly one caller observes ErrTooManyAttempts.
// A match leaves the entry in place; callers clear it explicitly.
func (s *Store) Verify(key, candidate string) (bool, error) {
	for {
		v, ok := s.entries.Load(key)
		if !ok {
			slog.Warn("verification attempt for unknown key", "key", Mask(key))
			return false, nil
		}
		e := v.(*entry)

		if s.clock.Now().After(e.expiresAt) {
			s.entries.CompareAndDelete(key, v)
			slog.Warn("expired verification code used", "key", Mask(key))
			return false, nil
		}

		if e.attempts >= s.maxAttempts {
			// Only the caller that wins the delete reports the ceiling; losers
			// loop and observe the entry as gone.
			if s.entries.CompareAndDelete(key, v) {
				slog.Warn("verification attempt ceiling reached", "key", Mask(key))
				return false, ErrTooManyAttempts
			}
			continue
		}

		if bcrypt.CompareHashAndPassword(e.codeHash, []byte(candidate)) != nil {
			next := &entry{
				codeHash:  e.codeHash,
				expiresAt: e.expiresAt,
				attempts:  e.attempts + 1,
			}
			if !s.entries.CompareAndSwap(key, v, next) {
				continue
			}
			slog.Warn("wrong verification code",
				"key", Mask(key),
				"attempts_remaining", s.maxAttempts-next.attempts)
			return false, nil
		}

		return true, nil
	}
}

// Clear removes the entry for key. Safe to call repeatedly.
func (s *Store) Clear(key string) {
	s.entries.Delete(key)
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", codeLength, n), nil
}

// Mask truncates a contact identifier for logging.
func Mask(key string) string {
	if len(key) <= 5 {
		return key + "***"
	}
	return key[:5] + "***"
}
