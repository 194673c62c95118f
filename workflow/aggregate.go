package workflow

import (
	"fmt"
	"time"

	"backoffice/models"
)

const (
	combinedMarker   = "_combined_"
	submitTimeLayout = "2006-01-02 15:04:05"
	dayLayout        = "2006-01-02"
)

// Combined is the ephemeral view the approval pages act on: one or
// more underlying records presented as a single row. It is never
// stored; transitions fan out over OriginalIDs.
type Combined struct {
	models.TransactionRecord

	SubmitTimeDisplay string   `json:"submit_time_display"`
	CombinedCount     int      `json:"combined_count"`
	OriginalIDs       []string `json:"original_ids"`
}

func singleton(rec models.TransactionRecord) Combined {
	return Combined{
		TransactionRecord: rec,
		SubmitTimeDisplay: rec.SubmitTime.Format(submitTimeLayout),
		CombinedCount:     1,
		OriginalIDs:       []string{rec.RecordID},
	}
}

// CombineByPeriod collapses PENDING records sharing (user, target type)
// whose submit time falls inside the inclusive [dateFrom, dateTo]
// window into one combined row. Aggregation only runs when both bounds
// are supplied; otherwise every record passes through as a singleton.
// Records outside the window, and records no longer PENDING, also pass
// through unmerged. Output order follows the first occurrence of each
// group in the input.
func CombineByPeriod(records []models.TransactionRecord, dateFrom, dateTo *time.Time) []Combined {
	out := make([]Combined, 0, len(records))

	if dateFrom == nil || dateTo == nil {
		for _, rec := range records {
			out = append(out, singleton(rec))
		}
		return out
	}

	from := startOfDay(*dateFrom)
	to := endOfDay(*dateTo)

	type groupKey struct {
		userID     string
		targetType string
	}

	groups := make(map[groupKey][]models.TransactionRecord)
	slots := make([]any, 0, len(records)) // groupKey at first occurrence, or a singleton record

	for _, rec := range records {
		mergeable := rec.Status == models.StatusPending &&
			!rec.SubmitTime.Before(from) && !rec.SubmitTime.After(to)
		if !mergeable {
			slots = append(slots, rec)
			continue
		}
		key := groupKey{userID: rec.UserID, targetType: rec.TargetType}
		if _, seen := groups[key]; !seen {
			slots = append(slots, key)
		}
		groups[key] = append(groups[key], rec)
	}

	for _, slot := range slots {
		switch v := slot.(type) {
		case models.TransactionRecord:
			out = append(out, singleton(v))
		case groupKey:
			out = append(out, combine(groups[v]))
		}
	}
	return out
}

// combine merges one non-empty partition. The base record is the
// chronologically earliest member; on equal timestamps the first
// occurrence in input order wins.
func combine(members []models.TransactionRecord) Combined {
	if len(members) == 1 {
		return singleton(members[0])
	}

	base := members[0]
	latest := members[0]
	for _, m := range members[1:] {
		if m.SubmitTime.Before(base.SubmitTime) {
			base = m
		}
		if m.SubmitTime.After(latest.SubmitTime) {
			latest = m
		}
	}

	merged := base
	merged.Amount = base.Amount
	for i := range members {
		if members[i].RecordID == base.RecordID {
			continue
		}
		merged.Amount = merged.Amount.Add(members[i].Amount)
		merged.DepositAmount = merged.DepositAmount.Add(members[i].DepositAmount)
		merged.WithdrawAmount = merged.WithdrawAmount.Add(members[i].WithdrawAmount)
		merged.ValidBetAmount = merged.ValidBetAmount.Add(members[i].ValidBetAmount)
		merged.CommissionAmount = merged.CommissionAmount.Add(members[i].CommissionAmount)
	}
	merged.RecordID = fmt.Sprintf("%s%s%d", base.RecordID, combinedMarker, len(members))
	merged.Remark = ""

	display := base.SubmitTime.Format(submitTimeLayout)
	if base.SubmitTime.Format(dayLayout) != latest.SubmitTime.Format(dayLayout) {
		display = fmt.Sprintf("%s - %s",
			base.SubmitTime.Format(submitTimeLayout),
			latest.SubmitTime.Format(submitTimeLayout))
	}

	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.RecordID)
	}

	return Combined{
		TransactionRecord: merged,
		SubmitTimeDisplay: display,
		CombinedCount:     len(members),
		OriginalIDs:       ids,
	}
}
