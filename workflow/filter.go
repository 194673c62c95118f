package workflow

import (
	"sort"
	"strings"
	"time"

	"backoffice/models"

	"github.com/shopspring/decimal"
)

// Criteria is the free-form search surface of the list pages. Zero
// values mean "no constraint".
type Criteria struct {
	Status     string // status tab; empty selects all statuses
	User       string // substring over user id, mobile and name
	Handler    string // substring over handler
	DateFrom   *time.Time
	DateTo     *time.Time
	TargetType string
	Kind       string
	AmountMin  *decimal.Decimal
	AmountMax  *decimal.Decimal
}

// Result is the projected view: the filtered rows sorted newest first,
// tab badge counts, and the running amount total of the visible rows.
// StatusCounts is computed under every criterion except the status tab
// itself, so switching tabs never zeroes the other badges.
type Result struct {
	Records      []models.TransactionRecord
	StatusCounts map[string]int
	TotalAmount  decimal.Decimal
}

// Apply projects records through the criteria. It is a pure function
// of its inputs and mutates nothing; callers re-run it on every
// criteria change.
func Apply(records []models.TransactionRecord, c Criteria) Result {
	res := Result{
		StatusCounts: make(map[string]int),
		TotalAmount:  decimal.Zero,
	}

	for _, rec := range records {
		if !matchesMeta(rec, c) {
			continue
		}
		res.StatusCounts[rec.Status]++
		if c.Status != "" && rec.Status != c.Status {
			continue
		}
		res.Records = append(res.Records, rec)
		res.TotalAmount = res.TotalAmount.Add(rec.Amount)
	}

	sort.SliceStable(res.Records, func(i, j int) bool {
		return res.Records[i].EffectiveTime().After(res.Records[j].EffectiveTime())
	})
	return res
}

func matchesMeta(rec models.TransactionRecord, c Criteria) bool {
	if c.User != "" && !containsFold(rec.UserID, c.User) &&
		!containsFold(rec.Mobile, c.User) && !containsFold(rec.Name, c.User) {
		return false
	}
	if c.Handler != "" {
		if rec.Handler == nil || !containsFold(*rec.Handler, c.Handler) {
			return false
		}
	}
	if c.DateFrom != nil && rec.SubmitTime.Before(startOfDay(*c.DateFrom)) {
		return false
	}
	if c.DateTo != nil && rec.SubmitTime.After(endOfDay(*c.DateTo)) {
		return false
	}
	if c.TargetType != "" && rec.TargetType != c.TargetType {
		return false
	}
	if c.Kind != "" && rec.Kind != c.Kind {
		return false
	}
	if c.AmountMin != nil && rec.Amount.LessThan(*c.AmountMin) {
		return false
	}
	if c.AmountMax != nil && rec.Amount.GreaterThan(*c.AmountMax) {
		return false
	}
	return true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
