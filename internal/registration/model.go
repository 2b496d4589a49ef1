package registration

import (
	"time"

	"gorm.io/datatypes"
)

const (
	KindEvent           = "event"
	KindSector          = "sector"
	KindPartnerCategory = "partner_category"
)

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusConfirmed = "confirmed"
)

// Registration is one persisted form response. It is created once on
// submit and never mutated by the submitter; status transitions are an
// admin concern.
type Registration struct {
	ID          int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	TargetKind  string         `json:"target_kind" gorm:"type:varchar(50);not null;index:idx_registrations_target"`
	TargetID    int64          `json:"target_id" gorm:"not null;index:idx_registrations_target"`
	Category    string         `json:"category" gorm:"type:varchar(100);not null;default:''"`
	SubmitterID *int           `json:"submitter_id,omitempty" gorm:"index"`
	Answers     datatypes.JSON `json:"answers" gorm:"type:jsonb;not null"`
	Status      string         `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt   time.Time      `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"not null;autoUpdateTime"`
}

func (Registration) TableName() string { return "registrations" }

// SubmissionContext identifies what a form response belongs to and, when
// the visitor was logged in, who sent it.
type SubmissionContext struct {
	TargetKind  string
	TargetID    int64
	Category    string
	SubmitterID *int
}

type SubmitRegistrationRequest struct {
	TargetKind string            `json:"target_kind" binding:"required"`
	TargetID   int64             `json:"target_id" binding:"required"`
	Category   string            `json:"category"`
	Answers    map[string]string `json:"answers"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
