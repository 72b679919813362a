package wizard

import (
	"strings"
	"unicode/utf8"

	"github.com/jcanovas/vivenda/internal/models"
)

// Minimum lengths enforced on the description step.
const (
	MinTitleLen       = 5
	MinDescriptionLen = 30
)

// Validate checks a draft against the rules of one step. It returns "" when
// the step passes and a user-facing reason otherwise. It is pure: no side
// effects, same answer for the same input. Steps without explicit rules
// always pass.
func Validate(d *models.Draft, step Step) string {
	if d == nil {
		d = models.NewDraft()
	}
	switch step {
	case StepKind:
		if d.Kind == nil || !d.Kind.IsValid() {
			return "Select a property type."
		}
	case StepLocation:
		if strings.TrimSpace(d.Address) == "" {
			return "Enter an address (you can use the map)."
		}
	case StepPrice:
		if d.Operation == nil || !d.Operation.IsValid() {
			return "Select sale, rental or share."
		}
		if d.Price == nil || *d.Price <= 0 {
			return "Enter a valid price."
		}
	case StepData:
		if d.AreaM2 == nil {
			return "Enter the built area in m²."
		}
		if d.Energy.Status == "" {
			return "Select the energy certificate status."
		}
		if !d.Energy.Complete() {
			return "Complete the energy certificate values."
		}
	case StepDescription:
		if utf8.RuneCountInString(strings.TrimSpace(d.Title)) < MinTitleLen {
			return "Add a listing title (at least 5 characters)."
		}
		if utf8.RuneCountInString(strings.TrimSpace(d.Description)) < MinDescriptionLen {
			return "Write a description (at least 30 characters)."
		}
	case StepMedia:
		if d.Cover == "" {
			return "Select at least a cover image."
		}
	case StepReview:
		if strings.TrimSpace(d.ContactEmail) == "" && strings.TrimSpace(d.ContactPhone) == "" {
			return "Add a contact email or phone number."
		}
	}
	return ""
}
