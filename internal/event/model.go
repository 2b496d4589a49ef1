package event

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Event struct {
	ID            int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug          string         `json:"slug" gorm:"size:150;uniqueIndex;not null"`
	TitleAr       string         `json:"title_ar" gorm:"type:text;not null"`
	TitleEn       string         `json:"title_en" gorm:"type:text;not null;default:''"`
	DescriptionAr string         `json:"description_ar" gorm:"type:text;not null;default:''"`
	DescriptionEn string         `json:"description_en" gorm:"type:text;not null;default:''"`
	Location      string         `json:"location" gorm:"type:text;not null;default:''"`
	StartsAt      time.Time      `json:"starts_at" gorm:"not null"`
	EndsAt        *time.Time     `json:"ends_at,omitempty"`
	Tags          pq.StringArray `json:"tags" gorm:"type:text[]"`
	CoverURL      string         `json:"cover_url" gorm:"type:text;not null;default:''"`
	Published     bool           `json:"published" gorm:"not null;default:false"`
	// IsTemplate marks the event whose registration fields serve as the
	// fallback for events with no fields of their own.
	IsTemplate         bool           `json:"is_template" gorm:"not null;default:false"`
	RegistrationFields datatypes.JSON `json:"registration_fields" gorm:"type:jsonb"`
	CreatedAt          time.Time      `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt          time.Time      `json:"updated_at" gorm:"not null;autoUpdateTime"`
}

func (Event) TableName() string { return "events" }

type SaveEventRequest struct {
	Slug          string     `json:"slug" binding:"required"`
	TitleAr       string     `json:"title_ar" binding:"required"`
	TitleEn       string     `json:"title_en"`
	DescriptionAr string     `json:"description_ar"`
	DescriptionEn string     `json:"description_en"`
	Location      string     `json:"location"`
	StartsAt      time.Time  `json:"starts_at" binding:"required"`
	EndsAt        *time.Time `json:"ends_at"`
	Tags          []string   `json:"tags"`
	CoverURL      string     `json:"cover_url"`
	Published     bool       `json:"published"`
	IsTemplate    bool       `json:"is_template"`
}
