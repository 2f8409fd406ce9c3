package review

import (
	"strings"
	"unicode/utf8"
)

const (
	MaxCommentLength = 1000
	MaxTags          = 10
	MaxTagLength     = 32
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Comment struct {
	text string
}

// NewComment returns nil for an absent or blank comment.
func NewComment(s *string) (*Comment, error) {
	if s == nil {
		return nil, nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(t) > MaxCommentLength {
		return nil, ErrCommentTooLong
	}
	return &Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }

type Tags struct {
	values []string
}

// NewTags lower-cases, trims and de-duplicates, keeping first-seen order.
func NewTags(raw []string) (Tags, error) {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, t := range raw {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if utf8.RuneCountInString(t) > MaxTagLength {
			return Tags{}, ErrTagTooLong
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	if len(out) > MaxTags {
		return Tags{}, ErrTooManyTags
	}
	return Tags{values: out}, nil
}

func (t Tags) Values() []string {
	out := make([]string, len(t.values))
	copy(out, t.values)
	return out
}
