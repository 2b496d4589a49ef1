package event

import (
	"jaz-events-api/internal/formschema"

	"gorm.io/datatypes"
)

type EventServiceAPI interface {
	ListPublished() ([]Event, error)
	GetBySlug(slug string) (*Event, error)
	GetByID(id int64) (*Event, error)
	ListAll() ([]Event, error)
	RegistrationSchemaByID(id int64) (formschema.Schema, error)
	Create(req *SaveEventRequest) (*Event, error)
	Update(id int64, req *SaveEventRequest) (*Event, error)
	Delete(id int64) error
	UpdateRegistrationFields(id int64, raw datatypes.JSON) (*Event, error)
}

var _ EventServiceAPI = (*EventService)(nil)
