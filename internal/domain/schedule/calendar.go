package schedule

import (
	"sort"
	"strconv"
	"strings"

	"github.com/roncastellon/BWM-walker-app-sub003/internal/models"
)

// ===============================
// Calendar Query Engine
// ===============================

const (
	WalkerAll        = "all"
	WalkerUnassigned = "unassigned"
)

// Filters narrow a calendar view. Walker is "all" (or empty),
// "unassigned", or a decimal walker id. Category is a key of
// ServiceCategories, or empty for all.
type Filters struct {
	Walker   string
	Category string
}

// ServiceCategories maps a display category onto the keywords that
// identify member service types. Membership is bidirectional substring
// containment on normalized identifiers.
var ServiceCategories = map[string][]string{
	"walk":      {"walk"},
	"daycare":   {"daycare", "daycamp", "dayvisit"},
	"overnight": {"overnight", "petsit", "boarding", "sitting", "stay"},
	"transport": {"transport", "taxi", "shuttle"},
}

func IsKnownCategory(category string) bool {
	_, ok := ServiceCategories[category]
	return ok
}

func MatchesCategory(serviceType, category string) bool {
	if category == "" {
		return true
	}
	keywords, ok := ServiceCategories[category]
	if !ok {
		return false
	}
	s := normalizeService(serviceType)
	if s == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(s, kw) || strings.Contains(kw, s) {
			return true
		}
	}
	return false
}

// IsRange reports whether the appointment spans multiple dates.
func IsRange(ap *models.Appointment) bool {
	return ap.EndDate != ap.ScheduledDate
}

// OccursOn is the date predicate: range appointments match every date
// in [ScheduledDate, EndDate] inclusive, single-day ones require exact
// equality.
func OccursOn(ap *models.Appointment, date string) bool {
	if IsRange(ap) {
		return date >= ap.ScheduledDate && date <= ap.EndDate
	}
	return date == ap.ScheduledDate
}

func matchesWalker(ap *models.Appointment, selector string) bool {
	switch selector {
	case "", WalkerAll:
		return true
	case WalkerUnassigned:
		return ap.WalkerID == nil
	default:
		id, err := strconv.ParseUint(selector, 10, 64)
		if err != nil {
			return false
		}
		return ap.WalkerID != nil && *ap.WalkerID == uint(id)
	}
}

// Matches applies all view predicates: date, walker filter, category
// filter, and the standing exclusion of cancelled appointments.
func Matches(ap *models.Appointment, date string, f Filters) bool {
	if Status(ap.Status) == StatusCancelled {
		return false
	}
	if !OccursOn(ap, date) {
		return false
	}
	if !matchesWalker(ap, f.Walker) {
		return false
	}
	return MatchesCategory(ap.ServiceType, f.Category)
}

// VisibleAppointments resolves the day view for one date: every
// matching appointment ordered by time of day. Range appointments
// carry an empty time and therefore sort first, so check-ins appear
// before timed walks.
func VisibleAppointments(all []models.Appointment, date string, f Filters) []models.Appointment {
	out := make([]models.Appointment, 0)
	for i := range all {
		if Matches(&all[i], date, f) {
			out = append(out, all[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ScheduledTime != out[j].ScheduledTime {
			return out[i].ScheduledTime < out[j].ScheduledTime
		}
		return out[i].ID < out[j].ID
	})
	return out
}
