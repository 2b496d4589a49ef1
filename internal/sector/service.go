package sector

import (
	"errors"
	"strings"

	"jaz-events-api/internal/formschema"
	"jaz-events-api/internal/util"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SectorService struct {
	DB *gorm.DB
}

func (s *SectorService) ListPublished() ([]Sector, error) {
	var sectors []Sector
	err := s.DB.
		Where("published = ?", true).
		Where("is_template = ?", false).
		Order("name_ar asc").
		Find(&sectors).Error
	if err != nil {
		return nil, err
	}
	return sectors, nil
}

func (s *SectorService) GetBySlug(slug string) (*Sector, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, errors.New("slug is required")
	}

	var sec Sector
	err := s.DB.
		Where("published = ?", true).
		Where("lower(slug) = lower(?)", slug).
		First(&sec).Error
	if err != nil {
		return nil, err
	}
	return &sec, nil
}

func (s *SectorService) GetByID(id int64) (*Sector, error) {
	var sec Sector
	if err := s.DB.First(&sec, id).Error; err != nil {
		return nil, err
	}
	return &sec, nil
}

func (s *SectorService) ListAll() ([]Sector, error) {
	var sectors []Sector
	if err := s.DB.Order("id asc").Find(&sectors).Error; err != nil {
		return nil, err
	}
	return sectors, nil
}

// PartnershipSchemaByID mirrors the event package's resolution: own fields
// when configured, else the template sector's fields, never a merge.
func (s *SectorService) PartnershipSchemaByID(id int64) (formschema.Schema, error) {
	sec, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	own, err := formschema.Parse(sec.PartnershipFields)
	if err != nil {
		return nil, err
	}

	var fallback formschema.Schema
	if len(own) == 0 {
		var tmpl Sector
		err := s.DB.
			Where("is_template = ?", true).
			Where("id <> ?", sec.ID).
			Order("updated_at desc").
			First(&tmpl).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err == nil {
			if fallback, err = formschema.Parse(tmpl.PartnershipFields); err != nil {
				return nil, err
			}
		}
	}

	return formschema.Resolve(own, fallback), nil
}

func (s *SectorService) Create(req *SaveSectorRequest) (*Sector, error) {
	sec := Sector{
		Slug:          util.SanitizePart(req.Slug),
		NameAr:        strings.TrimSpace(req.NameAr),
		NameEn:        strings.TrimSpace(req.NameEn),
		DescriptionAr: req.DescriptionAr,
		DescriptionEn: req.DescriptionEn,
		Published:     req.Published,
		IsTemplate:    req.IsTemplate,
	}

	if err := s.DB.Create(&sec).Error; err != nil {
		return nil, err
	}
	return &sec, nil
}

func (s *SectorService) Update(id int64, req *SaveSectorRequest) (*Sector, error) {
	sec, err := s.GetByID(id)
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
		"is_template":    req.IsTemplate,
	}

	if err := s.DB.Model(sec).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *SectorService) Delete(id int64) error {
	return s.DB.Delete(&Sector{}, id).Error
}

// UpdatePartnershipFields stores the posted configuration verbatim after a
// parse check; see the event package for the round-trip contract.
func (s *SectorService) UpdatePartnershipFields(id int64, raw datatypes.JSON) (*Sector, error) {
	if _, err := formschema.Parse(raw); err != nil {
		return nil, err
	}

	sec, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(sec).Update("partnership_fields", raw).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}
