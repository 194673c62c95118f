package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ApprovalAudit is one immutable entry in the transition trail.
// Skipped marks an attempt that was guarded out because the record
// had already left its expected status.
type ApprovalAudit struct {
	gorm.Model

	RecordID   string `gorm:"size:64;index" json:"record_id"`
	FromStatus string `gorm:"size:16" json:"from_status"`
	ToStatus   string `gorm:"size:16" json:"to_status"`
	Actor      string `gorm:"size:32;index" json:"actor"`
	BatchID    string `gorm:"size:36;index" json:"batch_id"`
	Skipped    bool   `gorm:"default:false" json:"skipped"`
	Remark     string `gorm:"size:255" json:"remark"`

	Metadata datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
}
