package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/roncastellon/BWM-walker-app-sub003/internal/httperr"
)

// Validation and state errors carry a business code; anything else is a
// collaborator failure, reported once with the best available message.
func writeUsecaseError(c *gin.Context, err error, fallbackCode, fallbackMessage string) {
	if code := httperr.BusinessCode(err); code != "" {
		httperr.BadRequest(c, code, businessMessage(code))
		return
	}
	httperr.Internal(c, fallbackCode, fallbackMessage)
}

var businessMessages = map[string]string{
	"missing_client":          "A client must be selected.",
	"missing_pets":            "At least one pet must be selected.",
	"missing_service_type":    "A service must be selected.",
	"invalid_date":            "The date is invalid.",
	"missing_end_date":        "An end date is required for stays.",
	"end_before_start":        "The end date cannot be before the start date.",
	"missing_time":            "A time slot is required for this service.",
	"time_not_allowed":        "Stays do not take a time of day.",
	"end_date_not_allowed":    "Walks cannot span multiple dates.",
	"sitter_not_allowed":      "This service does not take a sitter.",
	"walker_not_allowed":      "This service does not take a walker.",
	"walk_count_not_allowed":  "Only walk services can be booked in multiples.",
	"invalid_walk_count":      "Walk count must be between 1 and 5.",
	"service_not_found":       "The selected service no longer exists.",
	"pet_not_found":           "A selected pet no longer exists.",
	"pet_not_owned_by_client": "All pets must belong to the selected client.",
	"appointment_not_found":   "Appointment not found.",
	"appointment_locked":      "Finished appointments cannot be rescheduled.",
	"invalid_status":          "Unknown status.",
	"invalid_transition":      "The appointment cannot change to that status.",
	"not_a_range_appointment": "Only stays can be ended early.",
	"walker_not_found":        "Walker not found.",
	"not_a_walker":            "The selected staff member is not a walker.",
	"not_a_walk_service":      "Only walk services can be added to a daily schedule.",
	"no_drafts":               "There are no drafts to save.",
	"invalid_walker_filter":   "Unknown walker filter.",
	"invalid_category":        "Unknown service category.",
}

func businessMessage(code string) string {
	if msg, ok := businessMessages[code]; ok {
		return msg
	}
	return "The request could not be processed."
}
