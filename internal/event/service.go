package event

import (
	"errors"
	"strings"
	"time"

	"jaz-events-api/internal/formschema"
	"jaz-events-api/internal/util"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EventService struct {
	DB *gorm.DB
}

func (s *EventService) ListPublished() ([]Event, error) {
	var events []Event
	err := s.DB.
		Where("published = ?", true).
		Where("is_template = ?", false).
		Order("starts_at asc").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventService) GetBySlug(slug string) (*Event, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, errors.New("slug is required")
	}

	var ev Event
	err := s.DB.
		Where("published = ?", true).
		Where("lower(slug) = lower(?)", slug).
		First(&ev).Error
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *EventService) GetByID(id int64) (*Event, error) {
	var ev Event
	if err := s.DB.First(&ev, id).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *EventService) ListAll() ([]Event, error) {
	var events []Event
	if err := s.DB.Order("starts_at desc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// RegistrationSchemaByID resolves the form schema shown for an event: the
// event's own configured fields when it has any, otherwise the designated
// template event's fields. The two are never merged. No template and no
// fields is a valid state and yields an empty schema.
func (s *EventService) RegistrationSchemaByID(id int64) (formschema.Schema, error) {
	ev, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	own, err := formschema.Parse(ev.RegistrationFields)
	if err != nil {
		return nil, err
	}

	var fallback formschema.Schema
	if len(own) == 0 {
		var tmpl Event
		err := s.DB.
			Where("is_template = ?", true).
			Where("id <> ?", ev.ID).
			Order("updated_at desc").
			First(&tmpl).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if err == nil {
			if fallback, err = formschema.Parse(tmpl.RegistrationFields); err != nil {
				return nil, err
			}
		}
	}

	return formschema.Resolve(own, fallback), nil
}

func (s *EventService) Create(req *SaveEventRequest) (*Event, error) {
	ev := Event{
		Slug:          util.SanitizePart(req.Slug),
		TitleAr:       strings.TrimSpace(req.TitleAr),
		TitleEn:       strings.TrimSpace(req.TitleEn),
		DescriptionAr: req.DescriptionAr,
		DescriptionEn: req.DescriptionEn,
		Location:      strings.TrimSpace(req.Location),
		StartsAt:      req.StartsAt,
		EndsAt:        req.EndsAt,
		CoverURL:      strings.TrimSpace(req.CoverURL),
		Published:     req.Published,
		IsTemplate:    req.IsTemplate,
	}
	if len(req.Tags) > 0 {
		ev.Tags = pq.StringArray(req.Tags)
	}

	if err := s.DB.Create(&ev).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *EventService) Update(id int64, req *SaveEventRequest) (*Event, error) {
	ev, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"slug":           util.SanitizePart(req.Slug),
		"title_ar":       strings.TrimSpace(req.TitleAr),
		"title_en":       strings.TrimSpace(req.TitleEn),
		"description_ar": req.DescriptionAr,
		"description_en": req.DescriptionEn,
		"location":       strings.TrimSpace(req.Location),
		"starts_at":      req.StartsAt,
		"ends_at":        req.EndsAt,
		"cover_url":      strings.TrimSpace(req.CoverURL),
		"published":      req.Published,
		"is_template":    req.IsTemplate,
	}
	if req.Tags != nil {
		updates["tags"] = pq.StringArray(req.Tags)
	}

	if err := s.DB.Model(ev).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *EventService) Delete(id int64) error {
	return s.DB.Delete(&Event{}, id).Error
}

// UpdateRegistrationFields stores the posted field configuration verbatim.
// It is parsed once to reject malformed JSON, but the stored bytes are the
// bytes received: the config shape is the wire contract between the admin
// builder and the public form and must round-trip unchanged.
func (s *EventService) UpdateRegistrationFields(id int64, raw datatypes.JSON) (*Event, error) {
	if _, err := formschema.Parse(raw); err != nil {
		return nil, err
	}

	ev, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(ev).Update("registration_fields", raw).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Countdown reports seconds until the event starts, floored at zero once
// the event has begun.
func Countdown(ev *Event, now time.Time) int64 {
	d := ev.StartsAt.Sub(now)
	if d < 0 {
		return 0
	}
	return int64(d.Seconds())
}
