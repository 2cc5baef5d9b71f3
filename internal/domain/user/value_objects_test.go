//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"eatyaar/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	valid := []string{
		"9876543210",
		"+919876543210",
		"  9876543210  ",
		"123456789012345",
	}
	for _, v := range valid {
		p, err := user.NewPhone(v)
		require.NoError(t, err, v)
		assert.Equal(t, strings.TrimSpace(v), p.Value())
	}

	invalid := []string{
		"",
		"123456789",
		"1234567890123456",
		"98765abcde",
		"+",
		"98765 43210",
	}
	for _, v := range invalid {
		_, err := user.NewPhone(v)
		require.ErrorIs(t, err, user.ErrInvalidPhone, v)
	}
}

func TestNewName(t *testing.T) {
	n, err := user.NewName("  Asha  ")
	require.NoError(t, err)
	assert.Equal(t, "Asha", n.Value())

	_, err = user.NewName("   ")
	require.ErrorIs(t, err, user.ErrEmptyName)

	_, err = user.NewName(strings.Repeat("a", user.MaxNameLength+1))
	require.ErrorIs(t, err, user.ErrNameTooLong)
}

func TestNewEmail(t *testing.T) {
	e, err := user.NewEmail("asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", e.Value())

	// Empty is allowed until profile completion supplies one.
	e, err = user.NewEmail("")
	require.NoError(t, err)
	assert.Equal(t, "", e.Value())

	for _, v := range []string{"@example.com", "asha@", "asha", "asha@examplecom"} {
		_, err = user.NewEmail(v)
		require.ErrorIs(t, err, user.ErrInvalidEmail, v)
	}
}

func TestNewUser(t *testing.T) {
	phone, err := user.NewPhone("9876543210")
	require.NoError(t, err)

	u := user.NewUser(phone, time.Now())
	assert.True(t, u.IsVerified())
	assert.Empty(t, u.Name())
	assert.Zero(t, u.TrustScore())

	name, err := user.NewName("Asha")
	require.NoError(t, err)
	email, err := user.NewEmail("asha@example.com")
	require.NoError(t, err)

	u.CompleteProfile(name, email, "Bengaluru", "Indiranagar")
	assert.Equal(t, "Asha", u.Name())
	assert.Equal(t, "Bengaluru", u.City())
	assert.Equal(t, "Indiranagar", u.Area())
}
