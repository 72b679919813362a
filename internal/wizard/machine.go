// Package wizard implements the listing intake flow: an ordered sequence of
// steps, the per-step validation rules gating forward navigation, and the
// normalizer that turns a finished draft into a canonical listing record.
package wizard

import (
	"github.com/jcanovas/vivenda/internal/models"
)

// Step is one ordered stage of the intake flow.
type Step string

const (
	StepKind        Step = "kind"
	StepLocation    Step = "location"
	StepPrice       Step = "price"
	StepData        Step = "data"
	StepExtras      Step = "extras"
	StepDescription Step = "description"
	StepMedia       Step = "media"
	StepReview      Step = "review"
)

// Steps is the flow order. The first entry is the initial state; the last
// one is where Publish becomes available.
var Steps = []Step{
	StepKind,
	StepLocation,
	StepPrice,
	StepData,
	StepExtras,
	StepDescription,
	StepMedia,
	StepReview,
}

// State is the whole wizard snapshot for one session: the draft being
// composed plus the step the user is on. It is persisted as a unit after
// every mutation.
type State struct {
	Draft *models.Draft `json:"draft"`
	Step  int           `json:"step"`
}

// NewState returns the initial wizard state: an empty draft on the first
// step.
func NewState() *State {
	return &State{Draft: models.NewDraft(), Step: 0}
}

// CurrentStep returns the step key for the state's index, clamped into the
// flow in case a stale snapshot carries an out-of-range index.
func (s *State) CurrentStep() Step {
	i := clampStep(s.Step)
	return Steps[i]
}

// Next validates the current step only and, on pass, advances one step,
// clamped at the last. On failure it returns the user-facing reason and the
// state is left unchanged. Calling Next on the last step is a no-op.
func (s *State) Next() string {
	if reason := Validate(s.Draft, s.CurrentStep()); reason != "" {
		return reason
	}
	if s.Step < len(Steps)-1 {
		s.Step++
	}
	return ""
}

// Back moves one step back unconditionally, clamped at the first step.
// It is never validated; Back from the first step is a no-op.
func (s *State) Back() {
	if s.Step > 0 {
		s.Step--
	}
}

// Jump moves directly to the target step index without validating anything.
// Step indicators in the flow behave this way on purpose: a user can skip
// ahead past steps that would not validate. Out-of-range targets are
// clamped into the flow.
func (s *State) Jump(target int) {
	s.Step = clampStep(target)
}

// ReadyToPublish validates the review step only. Earlier steps are not
// re-checked here; that mirrors how the flow has always behaved, even
// though a jump can land a user on review with earlier steps incomplete.
func (s *State) ReadyToPublish() string {
	return Validate(s.Draft, StepReview)
}

// SetDraft replaces the draft snapshot and restores the cover invariant
// after the media list may have changed.
func (s *State) SetDraft(d *models.Draft) {
	if d == nil {
		d = models.NewDraft()
	}
	d.ReconcileCover()
	s.Draft = d
}

// IndexOf returns the position of a step key in the flow order.
func IndexOf(step Step) (int, bool) {
	for i, s := range Steps {
		if s == step {
			return i, true
		}
	}
	return 0, false
}

func clampStep(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(Steps) {
		return len(Steps) - 1
	}
	return i
}
