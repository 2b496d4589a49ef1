package partner

import (
	"time"

	"gorm.io/datatypes"
)

// PartnerCategory is one partnership track (sponsor, exhibitor, supplier and
// so on). Each category carries its own application form configuration.
type PartnerCategory struct {
	ID            int64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Slug          string         `json:"slug" gorm:"size:150;uniqueIndex;not null"`
	NameAr        string         `json:"name_ar" gorm:"type:text;not null"`
	NameEn        string         `json:"name_en" gorm:"type:text;not null;default:''"`
	DescriptionAr string         `json:"description_ar" gorm:"type:text;not null;default:''"`
	DescriptionEn string         `json:"description_en" gorm:"type:text;not null;default:''"`
	LogoURL       string         `json:"logo_url" gorm:"type:text;not null;default:''"`
	Published     bool           `json:"published" gorm:"not null;default:false"`
	Fields        datatypes.JSON `json:"fields" gorm:"type:jsonb"`
	CreatedAt     time.Time      `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt     time.Time      `json:"updated_at" gorm:"not null;autoUpdateTime"`
}

func (PartnerCategory) TableName() string { return "partner_categories" }

type SavePartnerCategoryRequest struct {
	Slug          string `json:"slug" binding:"required"`
	NameAr        string `json:"name_ar" binding:"required"`
	NameEn        string `json:"name_en"`
	DescriptionAr string `json:"description_ar"`
	DescriptionEn string `json:"description_en"`
	Published     bool   `json:"published"`
}

type UploadLogoRequest struct {
	Image    string `json:"image" binding:"required"`
	Filename string `json:"filename"`
	Mime     string `json:"mime"`
}
