package listing

import (
	"strings"
	"unicode/utf8"

	"marketplace-core/internal/pkg/errs"
	"marketplace-core/internal/pkg/patch"
)

const (
	MaxCityLength       = 80
	MaxPostalCodeLength = 20
	DefaultCountryCode  = "FR"
)

var (
	ErrInvalidCondition   = errs.Validation("invalid item condition")
	ErrNoFulfillment      = errs.Validation("at least one of shipping or in-person handover must be enabled")
	ErrCityTooLong        = errs.Validation("city exceeds maximum length")
	ErrPostalCodeTooLong  = errs.Validation("postal code exceeds maximum length")
	ErrInvalidCountryCode = errs.Validation("country code must be a 2-letter ISO code")
)

type Condition string

const (
	ConditionNew      Condition = "new"
	ConditionLikeNew  Condition = "like_new"
	ConditionGood     Condition = "good"
	ConditionFair     Condition = "fair"
	ConditionForParts Condition = "for_parts"
)

func (c Condition) String() string { return string(c) }

// ParseCondition defaults an empty value to ConditionGood.
func ParseCondition(s string) (Condition, error) {
	switch c := Condition(strings.TrimSpace(s)); c {
	case "":
		return ConditionGood, nil
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionFair, ConditionForParts:
		return c, nil
	default:
		return "", ErrInvalidCondition
	}
}

// Fulfillment is the set of handover modes the seller accepts.
type Fulfillment struct {
	shipping bool
	inPerson bool
}

func NewFulfillment(shipping, inPerson bool) (Fulfillment, error) {
	if !shipping && !inPerson {
		return Fulfillment{}, ErrNoFulfillment
	}
	return Fulfillment{shipping: shipping, inPerson: inPerson}, nil
}

// AllFulfillment accepts both modes.
func AllFulfillment() Fulfillment {
	return Fulfillment{shipping: true, inPerson: true}
}

func (f Fulfillment) Shipping() bool { return f.shipping }
func (f Fulfillment) InPerson() bool { return f.inPerson }

type Location struct {
	city        string
	postalCode  string
	countryCode string
}

func NewLocation(city, postalCode, countryCode string) (Location, error) {
	city = strings.TrimSpace(city)
	if utf8.RuneCountInString(city) > MaxCityLength {
		return Location{}, ErrCityTooLong
	}
	postalCode = strings.TrimSpace(postalCode)
	if utf8.RuneCountInString(postalCode) > MaxPostalCodeLength {
		return Location{}, ErrPostalCodeTooLong
	}
	countryCode = strings.ToUpper(strings.TrimSpace(countryCode))
	if countryCode == "" {
		countryCode = DefaultCountryCode
	}
	if len(countryCode) != 2 || !isUpperASCII(countryCode) {
		return Location{}, ErrInvalidCountryCode
	}
	return Location{city: city, postalCode: postalCode, countryCode: countryCode}, nil
}

func (l Location) City() string        { return l.city }
func (l Location) PostalCode() string  { return l.postalCode }
func (l Location) CountryCode() string { return l.countryCode }

// Details groups the descriptive attributes a seller sets alongside the price.
type Details struct {
	Condition   Condition
	Fulfillment Fulfillment
	Location    Location
}

// DefaultDetails is a good-condition item, both modes accepted, located in the default country.
func DefaultDetails() Details {
	return Details{
		Condition:   ConditionGood,
		Fulfillment: AllFulfillment(),
		Location:    Location{countryCode: DefaultCountryCode},
	}
}

// DetailsInput carries raw values; nil fields keep the current value on edit.
type DetailsInput struct {
	Condition       *string
	ShippingEnabled *bool
	InPersonEnabled *bool
	City            *string
	PostalCode      *string
	CountryCode     *string
}

// Apply validates in against the current details.
func (d Details) Apply(in DetailsInput) (Details, error) {
	condition := d.Condition
	if in.Condition != nil {
		c, err := ParseCondition(*in.Condition)
		if err != nil {
			return Details{}, err
		}
		condition = c
	}
	fulfillment, err := NewFulfillment(
		patch.Coalesce(in.ShippingEnabled, d.Fulfillment.shipping),
		patch.Coalesce(in.InPersonEnabled, d.Fulfillment.inPerson),
	)
	if err != nil {
		return Details{}, err
	}
	location, err := NewLocation(
		patch.Coalesce(in.City, d.Location.city),
		patch.Coalesce(in.PostalCode, d.Location.postalCode),
		patch.Coalesce(in.CountryCode, d.Location.countryCode),
	)
	if err != nil {
		return Details{}, err
	}
	return Details{Condition: condition, Fulfillment: fulfillment, Location: location}, nil
}

func isUpperASCII(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
