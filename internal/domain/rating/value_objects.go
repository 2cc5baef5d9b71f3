package rating

import (
	"math"
	"strings"
)

const MaxCommentLength = 500

type Score struct {
	value int
}

func NewScore(v int) (Score, error) {
	if v < 1 || v > 5 {
		return Score{}, ErrInvalidScore
	}
	return Score{value: v}, nil
}

func (s Score) Value() int { return s.value }

// Comment is optional; an empty comment is valid.
type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }

// RoundTrustScore rounds the mean of received scores to one decimal place.
func RoundTrustScore(mean float64) float64 {
	return math.Round(mean*10) / 10
}
