package models

import (
	"time"

	"github.com/google/uuid"
)

// Listing is a submitted, persisted property record. Created exactly once
// per successful wizard submission; the wizard never reopens an existing
// listing. Nullable columns use pointers.
type Listing struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	Kind      PropertyKind `json:"kind"`
	Operation Operation    `json:"operation"`
	Price     float64      `json:"price"`
	CreatedAt time.Time    `json:"createdAt"`

	Description *string `json:"description,omitempty"`

	Address    *string  `json:"address,omitempty"`
	City       *string  `json:"city,omitempty"`
	Province   *string  `json:"province,omitempty"`
	PostalCode *string  `json:"postalCode,omitempty"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`

	PriceHidden   bool     `json:"priceHidden"`
	CommunityFees *float64 `json:"communityFees,omitempty"`

	AreaM2    *float64   `json:"areaM2,omitempty"`
	Bedrooms  *int       `json:"bedrooms,omitempty"`
	Bathrooms *int       `json:"bathrooms,omitempty"`
	YearBuilt *int       `json:"yearBuilt,omitempty"`
	Condition *Condition `json:"condition,omitempty"`

	Energy EnergyCertificate `json:"energy"`
	Extras Extras            `json:"extras"`

	Cover *string `json:"cover,omitempty"`
	Media []Media `json:"media"`

	Reference    *string `json:"reference,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty"`
	ContactPhone *string `json:"contactPhone,omitempty"`
}

// Media is one hosted image attached to a listing. The URL is opaque; the
// media host owns the actual bytes.
type Media struct {
	ID       uuid.UUID `json:"id"`
	URL      string    `json:"url"`
	Position int       `json:"position"`
}

// NewListing is the canonical record produced by the submission normalizer
// and handed to the listing store. It carries no identity or timestamp;
// the store generates both on create.
type NewListing struct {
	Title     string
	Kind      PropertyKind
	Operation Operation
	Price     float64

	Description *string

	Address    *string
	City       *string
	Province   *string
	PostalCode *string
	Lat        *float64
	Lng        *float64

	PriceHidden   bool
	CommunityFees *float64

	AreaM2    *float64
	Bedrooms  *int
	Bathrooms *int
	YearBuilt *int
	Condition *Condition

	Energy EnergyCertificate
	Extras Extras

	Cover *string
	Media []string

	Reference    *string
	ContactEmail *string
	ContactPhone *string
}

// ListingSummary is the projection served on discovery result pages.
type ListingSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	City      *string   `json:"city,omitempty"`
	AreaM2    *float64  `json:"areaM2,omitempty"`
	Bedrooms  *int      `json:"bedrooms,omitempty"`
	Bathrooms *int      `json:"bathrooms,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Cover     *string   `json:"cover,omitempty"`
}
