package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/roncastellon/BWM-walker-app-sub003/internal/httperr"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/middleware"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/session"
	usecase "github.com/roncastellon/BWM-walker-app-sub003/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

// The batch builder is one session per operator. The session lives in
// the session store between requests and is only written to postgres on
// commit.
type BatchHandler struct {
	builder  *usecase.BatchBuilder
	sessions *session.Store
}

func NewBatchHandler(
	builder *usecase.BatchBuilder,
	sessions *session.Store,
) *BatchHandler {
	return &BatchHandler{
		builder:  builder,
		sessions: sessions,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type StartBatchRequest struct {
	WalkerID uint   `json:"walker_id" binding:"required"`
	Date     string `json:"date" binding:"required"` // YYYY-MM-DD
}

type AddDraftRequest struct {
	ClientID      uint   `json:"client_id" binding:"required"`
	PetIDs        []uint `json:"pet_ids" binding:"required"`
	ServiceType   string `json:"service_type" binding:"required"`
	ScheduledTime string `json:"scheduled_time" binding:"required"`
	Notes         string `json:"notes"`
}

// ======================================================
// START
// ======================================================

func (h *BatchHandler) Start(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextUserID).(uint)

	var req StartBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	sess, err := h.builder.Start(c.Request.Context(), req.WalkerID, req.Date)
	if err != nil {
		writeUsecaseError(c, err, "failed_to_start_batch", "Could not start the daily schedule.")
		return
	}

	if err := h.sessions.Save(c.Request.Context(), operatorID, sess); err != nil {
		httperr.Internal(c, "failed_to_save_session", "Could not save the batch session.")
		return
	}

	c.JSON(http.StatusCreated, sess)
}

// ======================================================
// GET
// ======================================================

func (h *BatchHandler) Get(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextUserID).(uint)

	sess, err := h.sessions.Get(c.Request.Context(), operatorID)
	if err == session.ErrNoSession {
		httperr.NotFound(c, "no_batch_session", "No daily schedule in progress.")
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_load_session", "Could not load the batch session.")
		return
	}

	c.JSON(http.StatusOK, sess)
}

// ======================================================
// ADD DRAFT
// ======================================================

func (h *BatchHandler) AddDraft(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextUserID).(uint)

	sess, err := h.sessions.Get(c.Request.Context(), operatorID)
	if err == session.ErrNoSession {
		httperr.NotFound(c, "no_batch_session", "No daily schedule in progress.")
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_load_session", "Could not load the batch session.")
		return
	}

	var req AddDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	draft, err := h.builder.AddDraft(c.Request.Context(), sess, usecase.WalkDraft{
		ClientID:      req.ClientID,
		PetIDs:        req.PetIDs,
		ServiceType:   req.ServiceType,
		ScheduledTime: req.ScheduledTime,
		Notes:         req.Notes,
	})
	if err != nil {
		writeUsecaseError(c, err, "failed_to_add_draft", "Could not add the walk.")
		return
	}

	if err := h.sessions.Save(c.Request.Context(), operatorID, sess); err != nil {
		httperr.Internal(c, "failed_to_save_session", "Could not save the batch session.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"draft":  draft,
		"drafts": sess.Drafts,
	})
}

// ======================================================
// REMOVE DRAFT
// ======================================================

func (h *BatchHandler) RemoveDraft(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextUserID).(uint)
	draftID := c.Param("draftID")

	sess, err := h.sessions.Get(c.Request.Context(), operatorID)
	if err == session.ErrNoSession {
		httperr.NotFound(c, "no_batch_session", "No daily schedule in progress.")
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_load_session", "Could not load the batch session.")
		return
	}

	if !h.builder.RemoveDraft(sess, draftID) {
		httperr.NotFound(c, "draft_not_found", "Draft not found.")
		return
	}

	if err := h.sessions.Save(c.Request.Context(), operatorID, sess); err != nil {
		httperr.Internal(c, "failed_to_save_session", "Could not save the batch session.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"drafts": sess.Drafts})
}

// ======================================================
// COMMIT
// ======================================================

func (h *BatchHandler) Commit(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextUserID).(uint)

	sess, err := h.sessions.Get(c.Request.Context(), operatorID)
	if err == session.ErrNoSession {
		httperr.NotFound(c, "no_batch_session", "No daily schedule in progress.")
		return
	}
	if err != nil {
		httperr.Internal(c, "failed_to_load_session", "Could not load the batch session.")
		return
	}

	result, err := h.builder.Commit(c.Request.Context(), operatorID, sess)
	if err != nil {
		writeUsecaseError(c, err, "failed_to_commit_batch", "Could not save the daily schedule.")
		return
	}

	if len(sess.Drafts) == 0 {
		// Everything went through; the workflow is over.
		if err := h.sessions.Delete(c.Request.Context(), operatorID); err != nil {
			httperr.Internal(c, "failed_to_clear_session", "Could not clear the batch session.")
			return
		}
		c.JSON(http.StatusCreated, result)
		return
	}

	// Failed drafts stay in the session so the operator can retry.
	if err := h.sessions.Save(c.Request.Context(), operatorID, sess); err != nil {
		httperr.Internal(c, "failed_to_save_session", "Could not save the batch session.")
		return
	}
	c.JSON(http.StatusMultiStatus, result)
}

// ======================================================
// CANCEL
// ======================================================

func (h *BatchHandler) Cancel(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextUserID).(uint)

	if err := h.sessions.Delete(c.Request.Context(), operatorID); err != nil {
		httperr.Internal(c, "failed_to_clear_session", "Could not discard the batch session.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "discarded"})
}
