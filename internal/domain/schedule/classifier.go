package schedule

import "strings"

// ===============================
// Service Catalog Classifier
// ===============================

type DurationType string

const (
	DurationMinutes DurationType = "minutes"
	DurationDays    DurationType = "days"
	DurationNights  DurationType = "nights"
)

// Classification maps a service_type identifier onto its duration model
// and staffing rules. Every flow (create, edit, batch) must classify
// through this one function so field requirements never drift.
type Classification struct {
	DurationType   DurationType `json:"duration_type"`
	RequiresWalker bool         `json:"requires_walker"`
	AllowsSitter   bool         `json:"allows_sitter"`
}

var dayPatterns = []string{"daycare", "daycamp", "dayvisit"}

var nightPatterns = []string{"overnight", "petsit", "boarding", "stay", "sitting"}

// Only overnight services from this allow-list may carry a sitter:
// on-site stay, off-site stay, general overnight.
var sitterAllowList = []string{"petsityourlocation", "petsitourlocation", "overnight"}

// Classify is pure; identifiers are normalized before matching so
// "doggy_day_camp", "Doggy Day Camp" and "doggy-day-camp" agree.
func Classify(serviceType string) Classification {
	s := normalizeService(serviceType)

	c := Classification{DurationType: DurationMinutes}

	switch {
	case containsAny(s, dayPatterns) || strings.HasPrefix(s, "day"):
		c.DurationType = DurationDays
	case containsAny(s, nightPatterns):
		c.DurationType = DurationNights
	}

	c.RequiresWalker = strings.Contains(s, "walk")

	if c.DurationType == DurationNights {
		for _, allowed := range sitterAllowList {
			if strings.Contains(s, allowed) || (s != "" && strings.Contains(allowed, s)) {
				c.AllowsSitter = true
				break
			}
		}
	}

	return c
}

// IsRangeType reports whether the duration model spans calendar dates.
func (c Classification) IsRangeType() bool {
	return c.DurationType == DurationDays || c.DurationType == DurationNights
}

func normalizeService(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	replacer := strings.NewReplacer("_", "", "-", "", " ", "", ".", "")
	return replacer.Replace(s)
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
