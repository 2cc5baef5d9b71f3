//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"eatyaar/internal/pkg/config"
	"eatyaar/internal/pkg/jwt"
	"eatyaar/internal/usecase"
	"eatyaar/tests/common/builder"
	"eatyaar/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValidator(t *testing.T) {
	cfg := config.NewTestConfig()
	svc := jwt.NewService(cfg.JWT.Secret, time.Hour)
	uow := fake.NewUoW()
	validator := usecase.NewTokenValidator(svc, uow)

	seeded := builder.NewUserBuilder().BuildSnapshot()
	uow.SeedUser(seeded)

	t.Run("valid token for an existing user", func(t *testing.T) {
		token, err := svc.GenerateToken(seeded.ID, seeded.Phone)
		require.NoError(t, err)

		id, phone, err := validator.ValidateToken(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, id)
		assert.Equal(t, seeded.Phone, phone)
	})

	t.Run("token whose subject no longer exists", func(t *testing.T) {
		token, err := svc.GenerateToken(uuid.New(), "9876500000")
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(context.Background(), token)
		require.ErrorIs(t, err, usecase.ErrTokenValidation)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, _, err := validator.ValidateToken(context.Background(), "not-a-token")
		require.ErrorIs(t, err, usecase.ErrTokenValidation)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other := jwt.NewService("some-other-secret", time.Hour)
		token, err := other.GenerateToken(seeded.ID, seeded.Phone)
		require.NoError(t, err)

		_, _, err = validator.ValidateToken(context.Background(), token)
		require.ErrorIs(t, err, usecase.ErrTokenValidation)
	})
}
