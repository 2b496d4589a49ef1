package sector

import (
	"time"

	"gorm.io/datatypes"
)

type Sector struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug          string    `json:"slug" gorm:"size:150;uniqueIndex;not null"`
	NameAr        string    `json:"name_ar" gorm:"type:text;not null"`
	NameEn        string    `json:"name_en" gorm:"type:text;not null;default:''"`
	DescriptionAr string    `json:"description_ar" gorm:"type:text;not null;default:''"`
	DescriptionEn string    `json:"description_en" gorm:"type:text;not null;default:''"`
	Published     bool      `json:"published" gorm:"not null;default:false"`
	IsTemplate    bool      `json:"is_template" gorm:"not null;default:false"`
	// PartnershipFields configures the partnership request form shown on
	// the sector page.
	PartnershipFields datatypes.JSON `json:"partnership_fields" gorm:"type:jsonb"`
	CreatedAt         time.Time      `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt         time.Time      `json:"updated_at" gorm:"not null;autoUpdateTime"`
}

func (Sector) TableName() string { return "sectors" }

type SaveSectorRequest struct {
	Slug          string `json:"slug" binding:"required"`
	NameAr        string `json:"name_ar" binding:"required"`
	NameEn        string `json:"name_en"`
	DescriptionAr string `json:"description_ar"`
	DescriptionEn string `json:"description_en"`
	Published     bool   `json:"published"`
	IsTemplate    bool   `json:"is_template"`
}
