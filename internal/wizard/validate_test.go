package wizard

import (
	"strings"
	"testing"

	"github.com/jcanovas/vivenda/internal/models"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestValidate_KindStep(t *testing.T) {
	d := models.NewDraft()
	d.Kind = nil

	assert.NotEmpty(t, Validate(d, StepKind))

	kind := models.KindChalet
	d.Kind = &kind
	assert.Empty(t, Validate(d, StepKind))
}

func TestValidate_LocationStep(t *testing.T) {
	d := models.NewDraft()

	assert.NotEmpty(t, Validate(d, StepLocation))

	d.Address = "   "
	assert.NotEmpty(t, Validate(d, StepLocation))

	d.Address = "Calle Mayor 1"
	assert.Empty(t, Validate(d, StepLocation))
}

func TestValidate_PriceStep_NegativePrice(t *testing.T) {
	d := models.NewDraft()
	op := models.OperationSale
	d.Operation = &op
	d.Price = ptr(-5.0)

	reason := Validate(d, StepPrice)

	assert.NotEmpty(t, reason)
	assert.Contains(t, reason, "price")
}

func TestValidate_PriceStep(t *testing.T) {
	d := models.NewDraft()
	d.Operation = nil

	assert.NotEmpty(t, Validate(d, StepPrice))

	op := models.OperationRental
	d.Operation = &op
	assert.NotEmpty(t, Validate(d, StepPrice), "price still missing")

	d.Price = ptr(0.0)
	assert.NotEmpty(t, Validate(d, StepPrice), "price must be positive")

	d.Price = ptr(850.0)
	assert.Empty(t, Validate(d, StepPrice))
}

func TestValidate_DataStep_EnergyCertificate(t *testing.T) {
	d := models.NewDraft()
	d.AreaM2 = ptr(80.0)

	assert.NotEmpty(t, Validate(d, StepData), "status not chosen")

	d.Energy.Status = models.EnergyStatusExempt
	assert.Empty(t, Validate(d, StepData), "exempt needs no values")

	d.Energy.Status = models.EnergyStatusHas
	assert.NotEmpty(t, Validate(d, StepData), "held certificate needs all three values")

	rating := models.EnergyRating("B")
	d.Energy.Rating = &rating
	d.Energy.Consumption = ptr(120.0)
	d.Energy.Emissions = ptr(25.0)
	assert.Empty(t, Validate(d, StepData))
}

func TestValidate_DataStep_AreaRequired(t *testing.T) {
	d := models.NewDraft()
	d.Energy.Status = models.EnergyStatusPending

	assert.NotEmpty(t, Validate(d, StepData))
}

func TestValidate_DescriptionStep(t *testing.T) {
	d := models.NewDraft()
	d.Title = "Flat"
	d.Description = strings.Repeat("x", 30)

	assert.NotEmpty(t, Validate(d, StepDescription), "title too short")

	d.Title = "Sunny flat in the old town"
	d.Description = "too short"
	assert.NotEmpty(t, Validate(d, StepDescription), "description too short")

	d.Description = strings.Repeat("x", 30)
	assert.Empty(t, Validate(d, StepDescription))
}

func TestValidate_MediaStep(t *testing.T) {
	d := models.NewDraft()

	assert.NotEmpty(t, Validate(d, StepMedia))

	d.Media = []string{"https://img.example/1.jpg"}
	d.Cover = d.Media[0]
	assert.Empty(t, Validate(d, StepMedia))
}

func TestValidate_ReviewStep_EmailOrPhone(t *testing.T) {
	d := models.NewDraft()

	assert.NotEmpty(t, Validate(d, StepReview))

	d.ContactEmail = "owner@example.com"
	assert.Empty(t, Validate(d, StepReview))

	d.ContactEmail = ""
	d.ContactPhone = "+34 600 000 000"
	assert.Empty(t, Validate(d, StepReview))
}

func TestValidate_StepsWithoutRulesAlwaysPass(t *testing.T) {
	d := models.NewDraft()

	assert.Empty(t, Validate(d, StepExtras))
}

func TestValidate_NilDraft(t *testing.T) {
	// A nil draft validates like an empty one rather than panicking.
	assert.NotEmpty(t, Validate(nil, StepLocation))
	assert.Empty(t, Validate(nil, StepExtras))
}
