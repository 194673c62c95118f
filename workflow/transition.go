package workflow

import (
	"time"

	"backoffice/models"

	"github.com/google/uuid"
)

// Mode selects the terminal status a submit reaches: release pages pay
// the record out (COMPLETED), generation pages only confirm it
// (APPROVED).
type Mode string

const (
	ModeRelease  Mode = "release"
	ModeGenerate Mode = "generate"
)

// DefaultCancelRemark is applied when a cancel carries no remark.
const DefaultCancelRemark = "Cancelled by admin"

// forward is the transition graph. Statuses absent from the map are
// terminal.
var forward = map[string][]string{
	models.StatusPending: {
		models.StatusProcessing,
		models.StatusApproved,
		models.StatusCompleted,
		models.StatusRejected,
	},
	models.StatusProcessing: {
		models.StatusCompleted,
		models.StatusRejected,
	},
}

// CanTransition reports whether the move from one status to another
// is allowed by the graph.
func CanTransition(from, to string) bool {
	for _, next := range forward[from] {
		if next == to {
			return true
		}
	}
	return false
}

// SourcesOf returns the statuses a record may currently hold for a
// move to the given status to land. The record store uses this as its
// write guard.
func SourcesOf(to string) []string {
	var out []string
	for _, from := range []string{models.StatusPending, models.StatusProcessing} {
		if CanTransition(from, to) {
			out = append(out, from)
		}
	}
	return out
}

// Mutation describes one logical approval event: every member shares
// the same actor, timestamp and batch id, however many records it
// touches. Skipped lists ids whose current status disallowed the move;
// they are audited but never written.
type Mutation struct {
	RecordIDs []string
	Skipped   []string
	ToStatus  string
	Actor     string
	Timestamp time.Time
	BatchID   string
	Remarks   map[string]string
}

// Empty reports whether the mutation has nothing to write.
func (m Mutation) Empty() bool {
	return len(m.RecordIDs) == 0
}

// RemarkFor returns the remark to stamp on one record, if any.
func (m Mutation) RemarkFor(recordID string) string {
	return m.Remarks[recordID]
}

func newMutation(to, actor string, now time.Time) Mutation {
	return Mutation{
		ToStatus:  to,
		Actor:     actor,
		Timestamp: now,
		BatchID:   uuid.New().String(),
		Remarks:   make(map[string]string),
	}
}

// Submit approves a row from the review queue. For a combined row the
// decision fans out over every underlying id; the combined view itself
// is never stored. A row whose status has already moved on is skipped
// whole: a combined row is all-or-nothing.
func Submit(rec Combined, actor, remark string, mode Mode, now time.Time) Mutation {
	to := models.StatusCompleted
	if mode == ModeGenerate {
		to = models.StatusApproved
	}

	m := newMutation(to, actor, now)
	if !CanTransition(rec.Status, to) {
		m.Skipped = append(m.Skipped, rec.OriginalIDs...)
		return m
	}
	m.RecordIDs = append(m.RecordIDs, rec.OriginalIDs...)
	if remark != "" {
		for _, id := range rec.OriginalIDs {
			m.Remarks[id] = remark
		}
	}
	return m
}

// Cancel rejects a row, fanning out over underlying ids like Submit.
func Cancel(rec Combined, actor, remark string, now time.Time) Mutation {
	if remark == "" {
		remark = DefaultCancelRemark
	}

	m := newMutation(models.StatusRejected, actor, now)
	if !CanTransition(rec.Status, models.StatusRejected) {
		m.Skipped = append(m.Skipped, rec.OriginalIDs...)
		return m
	}
	m.RecordIDs = append(m.RecordIDs, rec.OriginalIDs...)
	for _, id := range rec.OriginalIDs {
		m.Remarks[id] = remark
	}
	return m
}

// ApplyToSnapshot returns a copy of records with the mutation applied.
// Handler, the matching completion timestamp and the batch id are set
// together on every member; members whose status disallows the move
// are left untouched. The record store applies identical semantics
// against the database.
func (m Mutation) ApplyToSnapshot(records []models.TransactionRecord) []models.TransactionRecord {
	ids := make(map[string]bool, len(m.RecordIDs))
	for _, id := range m.RecordIDs {
		ids[id] = true
	}

	out := make([]models.TransactionRecord, len(records))
	copy(out, records)

	for i := range out {
		rec := &out[i]
		if !ids[rec.RecordID] || !CanTransition(rec.Status, m.ToStatus) {
			continue
		}

		actor := m.Actor
		ts := m.Timestamp
		batch := m.BatchID

		rec.Status = m.ToStatus
		rec.Handler = &actor
		rec.BatchID = &batch
		switch m.ToStatus {
		case models.StatusProcessing:
			rec.ProcessTime = &ts
		case models.StatusApproved, models.StatusCompleted:
			rec.CompleteTime = &ts
		case models.StatusRejected:
			rec.RejectTime = &ts
		}
		if remark := m.RemarkFor(rec.RecordID); remark != "" {
			rec.Remark = remark
		}
	}
	return out
}

// SubmitAll builds one batch over the selected ids: one actor, one
// clock read, one batch id for the whole selection. Ids that are
// unknown or no longer PENDING are skipped.
func SubmitAll(records []models.TransactionRecord, selected []string, actor string, remarks map[string]string, mode Mode, now time.Time) Mutation {
	to := models.StatusCompleted
	if mode == ModeGenerate {
		to = models.StatusApproved
	}

	byID := make(map[string]models.TransactionRecord, len(records))
	for _, rec := range records {
		byID[rec.RecordID] = rec
	}

	m := newMutation(to, actor, now)
	for _, id := range selected {
		rec, ok := byID[id]
		if !ok || rec.Status != models.StatusPending {
			m.Skipped = append(m.Skipped, id)
			continue
		}
		m.RecordIDs = append(m.RecordIDs, id)
		if remark := remarks[id]; remark != "" {
			m.Remarks[id] = remark
		}
	}
	return m
}
