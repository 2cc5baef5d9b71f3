//go:build unit

package rating_test

import (
	"strings"
	"testing"

	"eatyaar/internal/domain/rating"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScore(t *testing.T) {
	for v := 1; v <= 5; v++ {
		s, err := rating.NewScore(v)
		require.NoError(t, err)
		assert.Equal(t, v, s.Value())
	}

	for _, v := range []int{0, 6, -1, 100} {
		_, err := rating.NewScore(v)
		require.ErrorIs(t, err, rating.ErrInvalidScore)
	}
}

func TestNewComment(t *testing.T) {
	t.Run("optional", func(t *testing.T) {
		c, err := rating.NewComment("")
		require.NoError(t, err)
		assert.Equal(t, "", c.String())
	})

	t.Run("trimmed", func(t *testing.T) {
		c, err := rating.NewComment("  great food  ")
		require.NoError(t, err)
		assert.Equal(t, "great food", c.String())
	})

	t.Run("maximum length", func(t *testing.T) {
		_, err := rating.NewComment(strings.Repeat("a", rating.MaxCommentLength))
		require.NoError(t, err)

		_, err = rating.NewComment(strings.Repeat("a", rating.MaxCommentLength+1))
		require.ErrorIs(t, err, rating.ErrCommentTooLong)
	})
}

func TestRoundTrustScore(t *testing.T) {
	cases := []struct {
		mean     float64
		expected float64
	}{
		{0, 0},
		{5, 5},
		{4.0, 4.0},
		{4.25, 4.3},
		{4.24, 4.2},
		{3.333333, 3.3},
		{3.666666, 3.7},
		{4.05, 4.1},
	}
	for _, c := range cases {
		assert.InDelta(t, c.expected, rating.RoundTrustScore(c.mean), 1e-9)
	}
}
