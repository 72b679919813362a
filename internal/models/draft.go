package models

// Draft is the in-progress listing a user is composing through the intake
// wizard. It is session-scoped, mutable and persisted as a whole snapshot
// after every field change. All optional fields use pointers to distinguish
// "not filled in yet" from a zero value.
type Draft struct {
	Kind *PropertyKind `json:"kind,omitempty"`

	// Location
	Address    string   `json:"address"`
	City       string   `json:"city"`
	Province   string   `json:"province"`
	PostalCode string   `json:"postalCode"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`

	// Price
	Operation     *Operation `json:"operation,omitempty"`
	Price         *float64   `json:"price,omitempty"`
	PriceHidden   bool       `json:"priceHidden"`
	CommunityFees *float64   `json:"communityFees,omitempty"`

	// Data
	AreaM2    *float64   `json:"areaM2,omitempty"`
	Bedrooms  int        `json:"bedrooms"`
	Bathrooms int        `json:"bathrooms"`
	YearBuilt *int       `json:"yearBuilt,omitempty"`
	Condition *Condition `json:"condition,omitempty"`

	Energy EnergyCertificate `json:"energy"`

	Extras Extras `json:"extras"`

	// Description
	Title       string `json:"title"`
	Description string `json:"description"`

	// Media
	Media []string `json:"media"`
	Cover string   `json:"cover,omitempty"`

	// Contact
	Reference    string `json:"reference"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

// EnergyCertificate is a tagged record discriminated by Status. Rating,
// Consumption and Emissions are only meaningful when Status is
// EnergyStatusHas; normalization clears them for any other status.
type EnergyCertificate struct {
	Status      EnergyStatus  `json:"status,omitempty"`
	Rating      *EnergyRating `json:"rating,omitempty"`
	Consumption *float64      `json:"consumption,omitempty"`
	Emissions   *float64      `json:"emissions,omitempty"`
}

// Complete reports whether the certificate carries everything its status
// requires: a held certificate needs rating, consumption and emissions.
func (e EnergyCertificate) Complete() bool {
	if e.Status == "" {
		return false
	}
	if e.Status != EnergyStatusHas {
		return true
	}
	return e.Rating != nil && e.Consumption != nil && e.Emissions != nil
}

// Extras groups the optional feature selections of a property: seven
// independent multi-select lists, two single-select supply types and an
// optional terrace surface.
type Extras struct {
	Interior   []string `json:"interior"`
	Climate    []string `json:"climate"`
	Equipment  []string `json:"equipment"`
	Appliances []string `json:"appliances"`
	Exterior   []string `json:"exterior"`
	Community  []string `json:"community"`
	Security   []string `json:"security"`

	HotWaterType string   `json:"hotWaterType,omitempty"`
	HeatingType  string   `json:"heatingType,omitempty"`
	TerraceM2    *float64 `json:"terraceM2,omitempty"`
}

// NewDraft returns an empty draft in the state a user first sees it:
// default typology and operation preselected, zeroed counters.
func NewDraft() *Draft {
	kind := DefaultPropertyKind
	op := DefaultOperation
	return &Draft{
		Kind:      &kind,
		Operation: &op,
		Media:     []string{},
		Extras: Extras{
			Interior:   []string{},
			Climate:    []string{},
			Equipment:  []string{},
			Appliances: []string{},
			Exterior:   []string{},
			Community:  []string{},
			Security:   []string{},
		},
	}
}

// ReconcileCover restores the invariant that the cover, if set, is a member
// of the media list. When the former cover is gone it selects the first
// remaining item, or clears the cover if the list is empty.
func (d *Draft) ReconcileCover() {
	if d.Cover != "" {
		for _, m := range d.Media {
			if m == d.Cover {
				return
			}
		}
	}
	if len(d.Media) > 0 {
		d.Cover = d.Media[0]
		return
	}
	d.Cover = ""
}
