package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/roncastellon/BWM-walker-app-sub003/internal/domain/schedule"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/httperr"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/httpresp"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/middleware"
	usecase "github.com/roncastellon/BWM-walker-app-sub003/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *usecase.CreateAppointment
	updateUC     *usecase.UpdateAppointment
	transitionUC *usecase.TransitionAppointment
	repo         domain.Repository
}

func NewAppointmentHandler(
	createUC *usecase.CreateAppointment,
	updateUC *usecase.UpdateAppointment,
	transitionUC *usecase.TransitionAppointment,
	repo domain.Repository,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		updateUC:     updateUC,
		transitionUC: transitionUC,
		repo:         repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID      uint   `json:"client_id" binding:"required"`
	PetIDs        []uint `json:"pet_ids" binding:"required"`
	ServiceType   string `json:"service_type" binding:"required"`
	ScheduledDate string `json:"scheduled_date" binding:"required"` // YYYY-MM-DD
	EndDate       string `json:"end_date"`                          // YYYY-MM-DD
	ScheduledTime string `json:"scheduled_time"`                    // HH:MM
	WalkerID      *uint  `json:"walker_id"`
	SitterID      *uint  `json:"sitter_id"`
	Notes         string `json:"notes"`
	WalkCount     int    `json:"walk_count"`
}

type UpdateAppointmentRequest struct {
	WalkerID      *uint   `json:"walker_id,omitempty"` // 0 unassigns
	SitterID      *uint   `json:"sitter_id,omitempty"` // 0 unassigns
	ScheduledDate *string `json:"scheduled_date,omitempty"`
	EndDate       *string `json:"end_date,omitempty"`
	ScheduledTime *string `json:"scheduled_time,omitempty"`
	ServiceType   *string `json:"service_type,omitempty"`
	PetIDs        []uint  `json:"pet_ids,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
	// Destructive transitions keep a confirm-then-commit shape: the UI
	// asks first, then sends confirm=true.
	Confirm bool `json:"confirm"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), operatorID, usecase.CreateAppointmentInput{
		ClientID:      req.ClientID,
		PetIDs:        req.PetIDs,
		ServiceType:   req.ServiceType,
		ScheduledDate: req.ScheduledDate,
		EndDate:       req.EndDate,
		ScheduledTime: req.ScheduledTime,
		WalkerID:      req.WalkerID,
		SitterID:      req.SitterID,
		Notes:         req.Notes,
		WalkCount:     req.WalkCount,
	})
	if err != nil {
		writeUsecaseError(c, err, "failed_to_create_appointment", "Could not create the appointment.")
		return
	}

	status := http.StatusCreated
	if len(result.Failed) > 0 {
		// Partial success: report what worked, nothing is rolled back.
		status = http.StatusMultiStatus
	}
	c.JSON(status, result)
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	// Cancelled appointments stay fetchable by id even though calendar
	// views exclude them.
	ap, err := h.repo.GetAppointment(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Appointment not found.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// PARTIAL UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), operatorID, uint(id), usecase.UpdateAppointmentInput{
		WalkerID:      req.WalkerID,
		SitterID:      req.SitterID,
		ScheduledDate: req.ScheduledDate,
		EndDate:       req.EndDate,
		ScheduledTime: req.ScheduledTime,
		ServiceType:   req.ServiceType,
		PetIDs:        req.PetIDs,
		Notes:         req.Notes,
	})
	if err != nil {
		writeUsecaseError(c, err, "failed_to_update_appointment", "Could not update the appointment.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS QUICK ACTION
// ======================================================

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	to := domain.Status(req.Status)
	if to == domain.StatusCancelled && !req.Confirm {
		httperr.BadRequest(c, "confirmation_required", "Cancelling requires confirmation.")
		return
	}

	ap, err := h.transitionUC.ChangeStatus(c.Request.Context(), operatorID, uint(id), to)
	if err != nil {
		writeUsecaseError(c, err, "failed_to_change_status", "Could not change the status.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// FORCE COMPLETE
// ======================================================

func (h *AppointmentHandler) ForceComplete(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.transitionUC.ForceComplete(c.Request.Context(), operatorID, uint(id))
	if err != nil {
		writeUsecaseError(c, err, "failed_to_force_complete", "Could not force-complete the appointment.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// END STAY EARLY
// ======================================================

func (h *AppointmentHandler) EndStayEarly(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	ap, err := h.transitionUC.EndStayEarly(c.Request.Context(), operatorID, uint(id))
	if err != nil {
		writeUsecaseError(c, err, "failed_to_end_stay", "Could not end the stay.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// COMPLETION REPORT
// ======================================================

func (h *AppointmentHandler) RecordReport(c *gin.Context) {
	operatorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req usecase.CompletionReportInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.transitionUC.RecordCompletionReport(c.Request.Context(), operatorID, uint(id), req)
	if err != nil {
		writeUsecaseError(c, err, "failed_to_record_report", "Could not record the report.")
		return
	}

	httpresp.OK(c, ap)
}
