package wizard

import (
	"math"
	"strings"
	"time"

	"github.com/jcanovas/vivenda/internal/models"
)

// DefaultTitle is the placeholder applied when a draft reaches submission
// without a usable title.
const DefaultTitle = "Untitled listing"

// Normalize converts a raw draft into the canonical record handed to the
// listing store. It is total: malformed input is clamped or defaulted,
// never rejected. Strings are trimmed and empty ones become nil, enums are
// checked against their allow-lists and fall back to their defaults, the
// media list is de-duplicated and purged of empty entries, and energy
// certificate values are dropped unless the certificate is actually held.
func Normalize(d *models.Draft) models.NewListing {
	if d == nil {
		d = models.NewDraft()
	}

	out := models.NewListing{
		Title:     DefaultTitle,
		Kind:      models.DefaultPropertyKind,
		Operation: models.DefaultOperation,

		Description: optStr(d.Description),

		Address:    optStr(d.Address),
		City:       optStr(d.City),
		Province:   optStr(d.Province),
		PostalCode: optStr(d.PostalCode),
		Lat:        optNum(d.Lat),
		Lng:        optNum(d.Lng),

		PriceHidden:   d.PriceHidden,
		CommunityFees: optNum(d.CommunityFees),

		AreaM2:    optNum(d.AreaM2),
		Bedrooms:  clampCount(d.Bedrooms),
		Bathrooms: clampCount(d.Bathrooms),
		YearBuilt: clampYear(d.YearBuilt),

		Extras: normalizeExtras(d.Extras),

		Reference:    optStr(d.Reference),
		ContactEmail: optStr(d.ContactEmail),
		ContactPhone: optStr(d.ContactPhone),
	}

	if t := optStr(d.Title); t != nil {
		out.Title = *t
	}
	if d.Kind != nil && d.Kind.IsValid() {
		out.Kind = *d.Kind
	}
	if d.Operation != nil && d.Operation.IsValid() {
		out.Operation = *d.Operation
	}
	if p := optNum(d.Price); p != nil && *p >= 0 {
		out.Price = *p
	}
	if d.Condition != nil && d.Condition.IsValid() {
		c := *d.Condition
		out.Condition = &c
	}

	out.Energy = normalizeEnergy(d.Energy)
	out.Media = dedupeNonEmpty(d.Media)
	out.Cover = normalizeCover(d.Cover, out.Media)

	return out
}

// optStr trims s and returns nil for the empty result.
func optStr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// optNum drops non-finite numbers.
func optNum(f *float64) *float64 {
	if f == nil || math.IsNaN(*f) || math.IsInf(*f, 0) {
		return nil
	}
	v := *f
	return &v
}

// clampCount floors room counters at zero.
func clampCount(n int) *int {
	if n < 0 {
		n = 0
	}
	return &n
}

// clampYear keeps the build year inside [1800, current year]; anything
// outside degrades to unset.
func clampYear(y *int) *int {
	if y == nil {
		return nil
	}
	if *y < models.MinYearBuilt || *y > time.Now().Year() {
		return nil
	}
	v := *y
	return &v
}

func normalizeEnergy(e models.EnergyCertificate) models.EnergyCertificate {
	out := models.EnergyCertificate{Status: e.Status}
	if !e.Status.IsValid() {
		out.Status = ""
		return out
	}
	if e.Status != models.EnergyStatusHas {
		return out
	}
	if e.Rating != nil && e.Rating.IsValid() {
		r := *e.Rating
		out.Rating = &r
	}
	out.Consumption = optNum(e.Consumption)
	out.Emissions = optNum(e.Emissions)
	return out
}

// dedupeNonEmpty removes empty entries and duplicates while preserving the
// order of first appearance.
func dedupeNonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, s := range items {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// normalizeCover keeps the cover only when it survives media normalization,
// otherwise falls back to the first media entry.
func normalizeCover(cover string, media []string) *string {
	cover = strings.TrimSpace(cover)
	for _, m := range media {
		if m == cover {
			return &cover
		}
	}
	if len(media) > 0 {
		c := media[0]
		return &c
	}
	return nil
}

func normalizeExtras(e models.Extras) models.Extras {
	out := models.Extras{
		Interior:     dedupeNonEmpty(e.Interior),
		Climate:      dedupeNonEmpty(e.Climate),
		Equipment:    dedupeNonEmpty(e.Equipment),
		Appliances:   dedupeNonEmpty(e.Appliances),
		Exterior:     dedupeNonEmpty(e.Exterior),
		Community:    dedupeNonEmpty(e.Community),
		Security:     dedupeNonEmpty(e.Security),
		HotWaterType: strings.TrimSpace(e.HotWaterType),
		HeatingType:  strings.TrimSpace(e.HeatingType),
		TerraceM2:    optNum(e.TerraceM2),
	}
	return out
}
