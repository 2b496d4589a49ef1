package partner

import (
	"errors"
	"fmt"
	"strings"

	"jaz-events-api/internal/formschema"
	"jaz-events-api/internal/util"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// uploadImage is swapped out in tests.
var uploadImage = util.UploadImageToGCS

type PartnerService struct {
	DB     *gorm.DB
	Bucket string
}

func (s *PartnerService) ListPublished() ([]PartnerCategory, error) {
	var cats []PartnerCategory
	err := s.DB.
		Where("published = ?", true).
		Order("name_ar asc").
		Find(&cats).Error
	if err != nil {
		return nil, err
	}
	return cats, nil
}

func (s *PartnerService) GetBySlug(slug string) (*PartnerCategory, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, errors.New("slug is required")
	}

	var cat PartnerCategory
	err := s.DB.
		Where("published = ?", true).
		Where("lower(slug) = lower(?)", slug).
		First(&cat).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *PartnerService) GetByID(id int64) (*PartnerCategory, error) {
	var cat PartnerCategory
	if err := s.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *PartnerService) ListAll() ([]PartnerCategory, error) {
	var cats []PartnerCategory
	if err := s.DB.Order("id asc").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

// ApplicationSchemaByID returns the category's own form; categories have no
// template tier, an unconfigured category simply gets an empty schema.
func (s *PartnerService) ApplicationSchemaByID(id int64) (formschema.Schema, error) {
	cat, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	return formschema.Parse(cat.Fields)
}

func (s *PartnerService) Create(req *SavePartnerCategoryRequest) (*PartnerCategory, error) {
	cat := PartnerCategory{
		Slug:          util.SanitizePart(req.Slug),
		NameAr:        strings.TrimSpace(req.NameAr),
		NameEn:        strings.TrimSpace(req.NameEn),
		DescriptionAr: req.DescriptionAr,
		DescriptionEn: req.DescriptionEn,
		Published:     req.Published,
	}

	if err := s.DB.Create(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *PartnerService) Update(id int64, req *SavePartnerCategoryRequest) (*PartnerCategory, error) {
	cat, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"slug":           util.SanitizePart(req.Slug),
		"name_ar":        strings.TrimSpace(req.NameAr),
		"name_en":        strings.TrimSpace(req.NameEn),
		"description_ar": req.DescriptionAr,
		"description_en": req.DescriptionEn,
		"published":      req.Published,
	}

	if err := s.DB.Model(cat).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *PartnerService) Delete(id int64) error {
	return s.DB.Delete(&PartnerCategory{}, id).Error
}

// UpdateFields stores the posted form configuration verbatim after a parse
// check, same contract as events and sectors.
func (s *PartnerService) UpdateFields(id int64, raw datatypes.JSON) (*PartnerCategory, error) {
	if _, err := formschema.Parse(raw); err != nil {
		return nil, err
	}

	cat, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(cat).Update("fields", raw).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// UploadLogo pushes a base64 logo image to GCS and records its public URL.
func (s *PartnerService) UploadLogo(id int64, req *UploadLogoRequest) (*PartnerCategory, error) {
	cat, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s.Bucket == "" {
		return nil, errors.New("media bucket is not configured")
	}

	ext := util.ExtFromFilenameOrMime(req.Filename, req.Mime)
	objectName := fmt.Sprintf("partners/%s/logo%s", util.SanitizePart(cat.Slug), ext)

	if _, _, err := uploadImage(req.Image, s.Bucket, objectName); err != nil {
		return nil, err
	}

	url := util.PublicGCSURL(s.Bucket, objectName)
	if err := s.DB.Model(cat).Update("logo_url", url).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}
