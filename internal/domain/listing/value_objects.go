package listing

import (
	"strings"
	"unicode/utf8"

	"marketplace-core/internal/pkg/errs"
)

const (
	MaxTitleLength       = 120
	MaxDescriptionLength = 5000
	MaxPriceCents        = 100_000_000
)

var (
	ErrInvalidStatus       = errs.Validation("invalid listing status")
	ErrEmptyTitle          = errs.Validation("title cannot be empty")
	ErrTitleTooLong        = errs.Validation("title exceeds maximum length")
	ErrDescriptionTooLong  = errs.Validation("description exceeds maximum length")
	ErrInvalidPrice        = errs.Validation("price must be positive and within limits")
	ErrInvalidCurrency     = errs.Validation("currency must be a 3-letter ISO code")
	ErrNotSeller           = errs.Denied("only the seller can modify this listing")
	ErrNotEditable         = errs.InvalidTransition("listing can only be edited while draft or rejected")
	ErrModerationNoteEmpty = errs.Validation("rejection requires a moderation note")
)

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Title{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(s) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: s}, nil
}

func (t Title) String() string { return t.value }

type Description struct {
	value string
}

func NewDescription(s string) (Description, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxDescriptionLength {
		return Description{}, ErrDescriptionTooLong
	}
	return Description{value: s}, nil
}

func (d Description) String() string { return d.value }

type Price struct {
	cents    int64
	currency string
}

func NewPrice(cents int64, currency string) (Price, error) {
	if cents <= 0 || cents > MaxPriceCents {
		return Price{}, ErrInvalidPrice
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 || !isUpperASCII(currency) {
		return Price{}, ErrInvalidCurrency
	}
	return Price{cents: cents, currency: currency}, nil
}

func (p Price) Cents() int64     { return p.cents }
func (p Price) Currency() string { return p.currency }
