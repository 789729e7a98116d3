package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/roncastellon/BWM-walker-app-sub003/internal/domain/schedule"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/httperr"
	"github.com/roncastellon/BWM-walker-app-sub003/internal/httpresp"
	usecase "github.com/roncastellon/BWM-walker-app-sub003/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type CalendarHandler struct {
	calendarUC *usecase.CalendarQuery
}

func NewCalendarHandler(calendarUC *usecase.CalendarQuery) *CalendarHandler {
	return &CalendarHandler{calendarUC: calendarUC}
}

// Filters arrive as query parameters, never as shared state: the view
// is a pure function of (collection, date, filters).
func filtersFromQuery(c *gin.Context) (domain.Filters, bool) {
	f := domain.Filters{
		Walker:   c.DefaultQuery("walker", domain.WalkerAll),
		Category: c.Query("category"),
	}

	if f.Walker != domain.WalkerAll && f.Walker != domain.WalkerUnassigned {
		if _, err := strconv.ParseUint(f.Walker, 10, 64); err != nil {
			httperr.BadRequest(c, "invalid_walker_filter", "Unknown walker filter.")
			return f, false
		}
	}
	if f.Category != "" && !domain.IsKnownCategory(f.Category) {
		httperr.BadRequest(c, "invalid_category", "Unknown service category.")
		return f, false
	}
	return f, true
}

// ======================================================
// DAY
// ======================================================

func (h *CalendarHandler) Day(c *gin.Context) {
	date := c.Query("date")
	if !domain.IsValidDate(date) {
		httperr.BadRequest(c, "invalid_date", "A valid date (YYYY-MM-DD) is required.")
		return
	}

	f, ok := filtersFromQuery(c)
	if !ok {
		return
	}

	aps, err := h.calendarUC.Day(c.Request.Context(), date, f)
	if err != nil {
		httperr.Internal(c, "failed_to_load_calendar", "Could not load the calendar.")
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// WEEK
// ======================================================

func (h *CalendarHandler) Week(c *gin.Context) {
	start := c.Query("start")
	if !domain.IsValidDate(start) {
		httperr.BadRequest(c, "invalid_date", "A valid start date (YYYY-MM-DD) is required.")
		return
	}

	f, ok := filtersFromQuery(c)
	if !ok {
		return
	}

	views, err := h.calendarUC.Week(c.Request.Context(), start, f)
	if err != nil {
		httperr.Internal(c, "failed_to_load_calendar", "Could not load the calendar.")
		return
	}

	httpresp.List(c, views)
}

// ======================================================
// MONTH
// ======================================================

func (h *CalendarHandler) Month(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "A valid year is required.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "A valid month (1-12) is required.")
		return
	}

	f, ok := filtersFromQuery(c)
	if !ok {
		return
	}

	cells, err := h.calendarUC.Month(c.Request.Context(), year, month, f)
	if err != nil {
		httperr.Internal(c, "failed_to_load_calendar", "Could not load the calendar.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": month,
		"days":  cells,
	})
}

// ======================================================
// TIME SLOTS
// ======================================================

func (h *CalendarHandler) TimeSlots(c *gin.Context) {
	httpresp.List(c, domain.TimeSlots())
}
