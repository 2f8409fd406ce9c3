//go:build unit || e2e || property

package builder

import (
	"time"

	"marketplace-core/internal/domain/listing"
	"marketplace-core/internal/handler/dto/request"
	"marketplace-core/internal/pkg/ptr"
	"marketplace-core/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingBuilder struct {
	ID          uuid.UUID
	SellerID    uuid.UUID
	Title       string
	Description string
	PriceCents  int64
	Currency    string
	Condition   string
	Shipping    bool
	InPerson    bool
	City        string
	PostalCode  string
	CountryCode string
	Status      listing.Status
	CreatedAt   time.Time
}

func NewListingBuilder() *ListingBuilder {
	return &ListingBuilder{
		ID:          uuid.New(),
		SellerID:    uuid.New(),
		Title:       "Vintage road bike",
		Description: "Steel frame, 56cm, recently serviced.",
		PriceCents:  25_000,
		Currency:    "EUR",
		Condition:   "good",
		Shipping:    true,
		InPerson:    true,
		City:        "Lyon",
		PostalCode:  "69003",
		CountryCode: "FR",
		Status:      listing.StatusDraft,
		CreatedAt:   time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (l *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(l)
	return l
}

// Build methods
func (l *ListingBuilder) BuildDomain() (*listing.Listing, error) {
	title, err := listing.NewTitle(l.Title)
	if err != nil {
		return nil, err
	}
	description, err := listing.NewDescription(l.Description)
	if err != nil {
		return nil, err
	}
	price, err := listing.NewPrice(l.PriceCents, l.Currency)
	if err != nil {
		return nil, err
	}
	details, err := listing.DefaultDetails().Apply(l.detailsInput())
	if err != nil {
		return nil, err
	}
	return listing.ReconstructListing(l.ID, l.SellerID, title, description, price, details, l.Status, nil, nil, nil, l.CreatedAt, l.CreatedAt), nil
}

func (l *ListingBuilder) detailsInput() listing.DetailsInput {
	return listing.DetailsInput{
		Condition:       &l.Condition,
		ShippingEnabled: &l.Shipping,
		InPersonEnabled: &l.InPerson,
		City:            &l.City,
		PostalCode:      &l.PostalCode,
		CountryCode:     &l.CountryCode,
	}
}

func (l *ListingBuilder) BuildView() *queries.ListingView {
	return &queries.ListingView{
		ID:              l.ID,
		SellerID:        l.SellerID,
		SellerName:      "Sam Seller",
		Title:           l.Title,
		Description:     l.Description,
		PriceCents:      l.PriceCents,
		Currency:        l.Currency,
		Condition:       l.Condition,
		ShippingEnabled: l.Shipping,
		InPersonEnabled: l.InPerson,
		City:            l.City,
		PostalCode:      l.PostalCode,
		CountryCode:     l.CountryCode,
		Status:          l.Status.String(),
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.CreatedAt,
	}
}

func (l *ListingBuilder) BuildCreateRequestDTO() request.CreateListingRequest {
	currency := l.Currency
	return request.CreateListingRequest{
		Title:           l.Title,
		Description:     l.Description,
		PriceCents:      l.PriceCents,
		Currency:        &currency,
		Condition:       l.Condition,
		ShippingEnabled: ptr.Of(l.Shipping),
		InPersonEnabled: ptr.Of(l.InPerson),
		City:            l.City,
		PostalCode:      l.PostalCode,
		CountryCode:     l.CountryCode,
	}
}

// MustBuildDomain is for fixtures whose fields are known to be valid.
func (l *ListingBuilder) MustBuildDomain() *listing.Listing {
	built, err := l.BuildDomain()
	if err != nil {
		panic(err)
	}
	return built
}

// Fluent builder methods
func (l *ListingBuilder) WithID(id uuid.UUID) *ListingBuilder {
	l.ID = id
	return l
}

func (l *ListingBuilder) WithSellerID(id uuid.UUID) *ListingBuilder {
	l.SellerID = id
	return l
}

func (l *ListingBuilder) WithTitle(title string) *ListingBuilder {
	l.Title = title
	return l
}

func (l *ListingBuilder) WithDescription(description string) *ListingBuilder {
	l.Description = description
	return l
}

func (l *ListingBuilder) WithPrice(cents int64, currency string) *ListingBuilder {
	l.PriceCents = cents
	l.Currency = currency
	return l
}

func (l *ListingBuilder) WithStatus(status listing.Status) *ListingBuilder {
	l.Status = status
	return l
}

func (l *ListingBuilder) WithFulfillment(shipping, inPerson bool) *ListingBuilder {
	l.Shipping = shipping
	l.InPerson = inPerson
	return l
}

func (l *ListingBuilder) WithLocation(city, postalCode, countryCode string) *ListingBuilder {
	l.City = city
	l.PostalCode = postalCode
	l.CountryCode = countryCode
	return l
}

func (l *ListingBuilder) AsPublished() *ListingBuilder {
	l.Status = listing.StatusPublished
	return l
}
