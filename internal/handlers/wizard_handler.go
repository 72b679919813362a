package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/jcanovas/vivenda/internal/errors"
	"github.com/jcanovas/vivenda/internal/middleware"
	"github.com/jcanovas/vivenda/internal/models"
	"github.com/jcanovas/vivenda/internal/services"
	"github.com/jcanovas/vivenda/internal/wizard"
)

// WizardHandler handles the intake flow HTTP requests. All routes are scoped
// to the caller's session cookie; there is no cross-session access.
type WizardHandler struct {
	service services.WizardService
}

// NewWizardHandler creates a new WizardHandler instance.
func NewWizardHandler(service services.WizardService) *WizardHandler {
	return &WizardHandler{
		service: service,
	}
}

// StateResponse is the wizard snapshot served to the client.
type StateResponse struct {
	Step      string        `json:"step"`
	StepIndex int           `json:"stepIndex"`
	Steps     []string      `json:"steps"`
	Draft     *models.Draft `json:"draft"`
}

// JumpRequest names the step to jump to.
type JumpRequest struct {
	Step string `json:"step" binding:"required"`
}

// PublishResponse carries the id of the listing a publish created.
type PublishResponse struct {
	ID string `json:"id"`
}

func stateResponse(state *wizard.State) StateResponse {
	steps := make([]string, len(wizard.Steps))
	for i, s := range wizard.Steps {
		steps[i] = string(s)
	}
	return StateResponse{
		Step:      string(state.CurrentStep()),
		StepIndex: state.Step,
		Steps:     steps,
		Draft:     state.Draft,
	}
}

// GetState handles GET /api/v1/wizard.
// First contact starts a fresh draft.
func (h *WizardHandler) GetState(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		apierrors.BadRequest(c, "Missing session", nil)
		return
	}

	state, err := h.service.GetState(c.Request.Context(), sessionID)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to load draft", err)
		return
	}

	c.JSON(http.StatusOK, stateResponse(state))
}

// UpdateDraft handles PUT /api/v1/wizard/draft.
// The body replaces the draft wholesale; saving never validates, so partial
// drafts are always accepted.
func (h *WizardHandler) UpdateDraft(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		apierrors.BadRequest(c, "Missing session", nil)
		return
	}

	var draft models.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		apierrors.BadRequest(c, "Invalid draft payload", nil)
		return
	}

	state, err := h.service.UpdateDraft(c.Request.Context(), sessionID, &draft)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to save draft", err)
		return
	}

	c.JSON(http.StatusOK, stateResponse(state))
}

// Next handles POST /api/v1/wizard/next.
// A draft that fails the current step's rules gets a 422 with the reason and
// the flow stays put.
func (h *WizardHandler) Next(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		apierrors.BadRequest(c, "Missing session", nil)
		return
	}

	state, reason, err := h.service.Next(c.Request.Context(), sessionID)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to advance", err)
		return
	}
	if reason != "" {
		apierrors.StepBlocked(c, string(state.CurrentStep()), reason)
		return
	}

	c.JSON(http.StatusOK, stateResponse(state))
}

// Back handles POST /api/v1/wizard/back. Never validates.
func (h *WizardHandler) Back(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		apierrors.BadRequest(c, "Missing session", nil)
		return
	}

	state, err := h.service.Back(c.Request.Context(), sessionID)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to go back", err)
		return
	}

	c.JSON(http.StatusOK, stateResponse(state))
}

// Jump handles POST /api/v1/wizard/jump.
// Jumps land anywhere in the flow without validating the steps in between;
// the step indicator depends on that.
func (h *WizardHandler) Jump(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		apierrors.BadRequest(c, "Missing session", nil)
		return
	}

	var req JumpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Missing target step", nil)
		return
	}

	state, err := h.service.Jump(c.Request.Context(), sessionID, wizard.Step(req.Step))
	if err != nil {
		if errors.Is(err, services.ErrUnknownStep) {
			apierrors.BadRequest(c, "Unknown wizard step", map[string]interface{}{
				"step": req.Step,
			})
			return
		}
		apierrors.InternalServerError(c, "Failed to jump", err)
		return
	}

	c.JSON(http.StatusOK, stateResponse(state))
}

// Publish handles POST /api/v1/wizard/publish.
// Only the review step gates publishing; the normalizer absorbs whatever the
// other steps left incomplete.
func (h *WizardHandler) Publish(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		apierrors.BadRequest(c, "Missing session", nil)
		return
	}

	id, reason, err := h.service.Publish(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, services.ErrNoDraft) {
			apierrors.BadRequest(c, "No draft in progress", nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to publish listing", err)
		return
	}
	if reason != "" {
		apierrors.StepBlocked(c, string(wizard.StepReview), reason)
		return
	}

	c.JSON(http.StatusCreated, PublishResponse{ID: id.String()})
}
