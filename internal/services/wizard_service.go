package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jcanovas/vivenda/internal/logger"
	"github.com/jcanovas/vivenda/internal/models"
	"github.com/jcanovas/vivenda/internal/repository"
	"github.com/jcanovas/vivenda/internal/wizard"
)

// Service-level errors
var (
	ErrNoDraft     = errors.New("no draft in progress")
	ErrUnknownStep = errors.New("unknown wizard step")
)

// WizardService drives the intake flow for one session: it loads the
// session's snapshot, applies a navigation or draft mutation, and persists
// the whole snapshot back. A blocked navigation is reported through the
// returned reason string, not an error; errors are reserved for storage
// failures.
type WizardService interface {
	// GetState returns the session's wizard snapshot, creating and saving
	// the initial state on first contact.
	GetState(ctx context.Context, sessionID string) (*wizard.State, error)

	// UpdateDraft replaces the session's draft wholesale, reconciling the
	// cover, without moving the step. Saving never validates.
	UpdateDraft(ctx context.Context, sessionID string, draft *models.Draft) (*wizard.State, error)

	// Next validates the current step and advances on pass. A non-empty
	// reason means the step rejected the draft and nothing moved.
	Next(ctx context.Context, sessionID string) (*wizard.State, string, error)

	// Back moves one step back without validating.
	Back(ctx context.Context, sessionID string) (*wizard.State, error)

	// Jump moves directly to the named step without validating anything on
	// the way. Returns ErrUnknownStep for a step key outside the flow.
	Jump(ctx context.Context, sessionID string, target wizard.Step) (*wizard.State, error)

	// Publish validates the review step, normalizes the draft into a
	// canonical listing, persists it and clears the session's draft. A
	// non-empty reason means review validation blocked the publish. The
	// draft survives any failure.
	Publish(ctx context.Context, sessionID string) (uuid.UUID, string, error)
}

// wizardService is the concrete implementation of WizardService.
type wizardService struct {
	drafts   repository.DraftStore
	listings repository.ListingRepository
	log      *logger.Logger
}

// NewWizardService creates a new instance of WizardService.
func NewWizardService(drafts repository.DraftStore, listings repository.ListingRepository, log *logger.Logger) WizardService {
	return &wizardService{
		drafts:   drafts,
		listings: listings,
		log:      log,
	}
}

// loadOrStart fetches the session's snapshot, starting a fresh one when the
// session has none yet.
func (s *wizardService) loadOrStart(ctx context.Context, sessionID string) (*wizard.State, error) {
	state, err := s.drafts.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard state: %w", err)
	}
	if state == nil {
		state = wizard.NewState()
	}
	if state.Draft == nil {
		state.Draft = models.NewDraft()
	}
	return state, nil
}

func (s *wizardService) save(ctx context.Context, sessionID string, state *wizard.State) error {
	if err := s.drafts.Save(ctx, sessionID, state); err != nil {
		return fmt.Errorf("failed to save wizard state: %w", err)
	}
	return nil
}

// GetState returns the session's snapshot. First contact creates the initial
// state and persists it so the session's TTL starts counting.
func (s *wizardService) GetState(ctx context.Context, sessionID string) (*wizard.State, error) {
	state, err := s.drafts.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard state: %w", err)
	}
	if state != nil {
		return state, nil
	}

	state = wizard.NewState()
	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}

	s.log.Info("Started new draft", map[string]interface{}{
		"session": sessionID,
	})
	return state, nil
}

// UpdateDraft replaces the draft snapshot in place. The step does not move;
// validation only runs on navigation, so a partially filled draft always
// saves.
func (s *wizardService) UpdateDraft(ctx context.Context, sessionID string, draft *models.Draft) (*wizard.State, error) {
	state, err := s.loadOrStart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.SetDraft(draft)
	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Next advances the flow by one validated step.
func (s *wizardService) Next(ctx context.Context, sessionID string) (*wizard.State, string, error) {
	state, err := s.loadOrStart(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}

	if reason := state.Next(); reason != "" {
		s.log.Debug("Step rejected draft", map[string]interface{}{
			"session": sessionID,
			"step":    string(state.CurrentStep()),
		})
		return state, reason, nil
	}

	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, "", err
	}
	return state, "", nil
}

// Back moves one step back unconditionally.
func (s *wizardService) Back(ctx context.Context, sessionID string) (*wizard.State, error) {
	state, err := s.loadOrStart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.Back()
	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Jump moves straight to the target step, skipping validation of everything
// in between.
func (s *wizardService) Jump(ctx context.Context, sessionID string, target wizard.Step) (*wizard.State, error) {
	index, ok := wizard.IndexOf(target)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, target)
	}

	state, err := s.loadOrStart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.Jump(index)
	if err := s.save(ctx, sessionID, state); err != nil {
		return nil, err
	}
	return state, nil
}

// Publish turns the session's draft into a persisted listing. Only the
// review step is validated; normalization then absorbs whatever the earlier
// steps left incomplete. The draft is cleared only after the listing is
// safely stored, so any failure leaves the session able to retry.
func (s *wizardService) Publish(ctx context.Context, sessionID string) (uuid.UUID, string, error) {
	state, err := s.drafts.Load(ctx, sessionID)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("failed to load wizard state: %w", err)
	}
	if state == nil || state.Draft == nil {
		return uuid.Nil, "", ErrNoDraft
	}

	if reason := state.ReadyToPublish(); reason != "" {
		return uuid.Nil, reason, nil
	}

	record := wizard.Normalize(state.Draft)
	id, err := s.listings.Create(ctx, record)
	if err != nil {
		s.log.Error("Failed to publish listing", err, map[string]interface{}{
			"session": sessionID,
		})
		return uuid.Nil, "", fmt.Errorf("failed to publish listing: %w", err)
	}

	if err := s.drafts.Clear(ctx, sessionID); err != nil {
		// The listing exists; a stale draft is the lesser problem.
		s.log.Warn("Failed to clear draft after publish", map[string]interface{}{
			"session": sessionID,
			"listing": id.String(),
			"error":   err.Error(),
		})
	}

	s.log.Info("Listing published", map[string]interface{}{
		"session": sessionID,
		"listing": id.String(),
		"title":   record.Title,
	})
	return id, "", nil
}
