package services

import (
	"encoding/json"
	"time"

	"backoffice/database"
	"backoffice/models"
	"backoffice/workflow"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ListRecords reads a record snapshot for the workflow core. Only the
// cheap indexed dimensions are pushed into SQL; the fine-grained
// projection (substring search, amount range, sorting, counts) is
// workflow.Apply's job so it stays a pure function of the snapshot.
func ListRecords(c workflow.Criteria) ([]models.TransactionRecord, error) {
	q := database.DB.Model(&models.TransactionRecord{})

	if c.Kind != "" {
		q = q.Where("kind = ?", c.Kind)
	}
	if c.TargetType != "" {
		q = q.Where("target_type = ?", c.TargetType)
	}
	if c.DateFrom != nil {
		q = q.Where("submit_time >= ?", dayStart(*c.DateFrom))
	}
	if c.DateTo != nil {
		q = q.Where("submit_time <= ?", dayEnd(*c.DateTo))
	}

	var records []models.TransactionRecord
	if err := q.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindRecords loads whichever of the named records exist. Unknown ids
// are simply absent from the result; batch callers treat them as
// skipped.
func FindRecords(recordIDs []string) ([]models.TransactionRecord, error) {
	var found []models.TransactionRecord
	if err := database.DB.Where("record_id IN ?", recordIDs).Find(&found).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// GetRecords loads the named records, in the order given.
func GetRecords(recordIDs []string) ([]models.TransactionRecord, error) {
	var found []models.TransactionRecord
	if err := database.DB.Where("record_id IN ?", recordIDs).Find(&found).Error; err != nil {
		return nil, err
	}

	byID := make(map[string]models.TransactionRecord, len(found))
	for _, rec := range found {
		byID[rec.RecordID] = rec
	}

	out := make([]models.TransactionRecord, 0, len(recordIDs))
	for _, id := range recordIDs {
		rec, ok := byID[id]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		out = append(out, rec)
	}
	return out, nil
}

// ApplyMutation writes one approval event in a single transaction.
// Every member is guarded by the allowed source statuses, so a record
// another actor already transitioned is skipped and audited instead of
// overwritten. Returns how many records actually moved.
func ApplyMutation(m workflow.Mutation) (int64, error) {
	if m.Empty() && len(m.Skipped) == 0 {
		return 0, nil
	}

	guard := workflow.SourcesOf(m.ToStatus)
	meta, _ := json.Marshal(map[string]any{
		"batch_size":    len(m.RecordIDs),
		"skipped_count": len(m.Skipped),
	})

	var applied int64
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, id := range m.RecordIDs {
			var rec models.TransactionRecord
			if err := tx.Where("record_id = ?", id).First(&rec).Error; err != nil {
				return err
			}

			updates := map[string]any{
				"status":   m.ToStatus,
				"handler":  m.Actor,
				"batch_id": m.BatchID,
			}
			switch m.ToStatus {
			case models.StatusProcessing:
				updates["process_time"] = m.Timestamp
			case models.StatusApproved, models.StatusCompleted:
				updates["complete_time"] = m.Timestamp
			case models.StatusRejected:
				updates["reject_time"] = m.Timestamp
			}
			if remark := m.RemarkFor(id); remark != "" {
				updates["remark"] = remark
			}

			res := tx.Model(&models.TransactionRecord{}).
				Where("record_id = ? AND status IN ?", id, guard).
				Updates(updates)
			if res.Error != nil {
				return res.Error
			}

			if res.RowsAffected == 0 {
				log.Warn().Str("record_id", id).Str("status", rec.Status).
					Msg("Record already transitioned, skipping")
				if err := tx.Create(&models.ApprovalAudit{
					RecordID:   id,
					FromStatus: rec.Status,
					ToStatus:   m.ToStatus,
					Actor:      m.Actor,
					BatchID:    m.BatchID,
					Skipped:    true,
					Metadata:   datatypes.JSON(meta),
				}).Error; err != nil {
					return err
				}
				continue
			}
			applied += res.RowsAffected

			if err := tx.Create(&models.ApprovalAudit{
				RecordID:   id,
				FromStatus: rec.Status,
				ToStatus:   m.ToStatus,
				Actor:      m.Actor,
				BatchID:    m.BatchID,
				Remark:     m.RemarkFor(id),
				Metadata:   datatypes.JSON(meta),
			}).Error; err != nil {
				return err
			}
		}

		for _, id := range m.Skipped {
			if err := tx.Create(&models.ApprovalAudit{
				RecordID: id,
				ToStatus: m.ToStatus,
				Actor:    m.Actor,
				BatchID:  m.BatchID,
				Skipped:  true,
				Metadata: datatypes.JSON(meta),
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	InvalidateSummary()
	return applied, nil
}

// UpdateRemark edits a record's annotation. Remarks are settable on
// any status; this is not a state transition.
func UpdateRemark(recordID, remark string) error {
	res := database.DB.Model(&models.TransactionRecord{}).
		Where("record_id = ?", recordID).
		Update("remark", remark)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// LoadSchedule reads the threshold table into the workflow view.
func LoadSchedule() (workflow.Schedule, error) {
	var rows []models.ApprovalSchedule
	if err := database.DB.Find(&rows).Error; err != nil {
		return nil, err
	}

	schedule := make(workflow.Schedule, len(rows))
	for _, row := range rows {
		schedule[row.TargetType] = workflow.ScheduleEntry{
			AutoApprovedAmount:  row.AutoApprovedAmount,
			MaxWithdrawalAmount: row.MaxWithdrawalAmount,
		}
	}
	return schedule, nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
