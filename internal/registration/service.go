package registration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"jaz-events-api/internal/logs"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RegistrationService struct {
	DB *gorm.DB
	LS *logs.LogService
}

func validKind(kind string) bool {
	switch kind {
	case KindEvent, KindSector, KindPartnerCategory:
		return true
	default:
		return false
	}
}

// Submit persists one form response as a new row. Duplicate submits create
// duplicate rows; the form runner's in-flight guard is the sole
// duplicate-prevention mechanism, there is no dedup key.
func (s *RegistrationService) Submit(ctx context.Context, sc SubmissionContext, answers map[string]string) (*Registration, error) {
	if !validKind(sc.TargetKind) {
		return nil, fmt.Errorf("unknown target_kind: %s", sc.TargetKind)
	}
	if sc.TargetID <= 0 {
		return nil, errors.New("target_id is required")
	}
	if answers == nil {
		answers = map[string]string{}
	}

	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal answers: %w", err)
	}

	reg := Registration{
		TargetKind:  sc.TargetKind,
		TargetID:    sc.TargetID,
		Category:    strings.TrimSpace(sc.Category),
		SubmitterID: sc.SubmitterID,
		Answers:     datatypes.JSON(raw),
		Status:      StatusPending,
	}

	if err := s.DB.WithContext(ctx).Create(&reg).Error; err != nil {
		s.logSubmitFailure(sc, err)
		return nil, err
	}

	return &reg, nil
}

// logSubmitFailure records the full storage error; end users only ever see
// the generic localized message.
func (s *RegistrationService) logSubmitFailure(sc SubmissionContext, err error) {
	if s.LS == nil {
		return
	}

	var uid *uint
	if sc.SubmitterID != nil {
		u := uint(*sc.SubmitterID)
		uid = &u
	}

	entry := logs.SystemLog{
		Level:   "ERROR",
		Service: "registration",
		Action:  "SUBMIT",
		Message: fmt.Sprintf("failed to persist %s/%d registration: %v", sc.TargetKind, sc.TargetID, err),
		UserID:  uid,
	}
	if logErr := s.LS.Log(entry, sc); logErr != nil {
		fmt.Printf("Failed to insert log: %v\n", logErr)
	}
}

func (s *RegistrationService) GetByID(id int64) (*Registration, error) {
	var reg Registration
	if err := s.DB.First(&reg, id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (s *RegistrationService) ListByTarget(kind string, targetID int64) ([]Registration, error) {
	if !validKind(kind) {
		return nil, fmt.Errorf("unknown target_kind: %s", kind)
	}

	q := s.DB.Where("target_kind = ?", kind)
	if targetID > 0 {
		q = q.Where("target_id = ?", targetID)
	}

	var regs []Registration
	if err := q.Order("created_at desc").Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

var statusTransitions = map[string][]string{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusConfirmed},
}

// UpdateStatus applies an admin-side status transition. Only
// pending→approved/rejected and approved→confirmed are allowed.
func (s *RegistrationService) UpdateStatus(id int64, status string) (*Registration, error) {
	var reg Registration
	if err := s.DB.First(&reg, id).Error; err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range statusTransitions[reg.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, fmt.Errorf("cannot transition registration from %s to %s", reg.Status, status)
	}

	if err := s.DB.Model(&reg).Update("status", status).Error; err != nil {
		return nil, err
	}
	reg.Status = status
	return &reg, nil
}
