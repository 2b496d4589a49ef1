package partner

import (
	"jaz-events-api/internal/formschema"

	"gorm.io/datatypes"
)

type PartnerServiceAPI interface {
	ListPublished() ([]PartnerCategory, error)
	GetBySlug(slug string) (*PartnerCategory, error)
	GetByID(id int64) (*PartnerCategory, error)
	ListAll() ([]PartnerCategory, error)
	ApplicationSchemaByID(id int64) (formschema.Schema, error)
	Create(req *SavePartnerCategoryRequest) (*PartnerCategory, error)
	Update(id int64, req *SavePartnerCategoryRequest) (*PartnerCategory, error)
	Delete(id int64) error
	UpdateFields(id int64, raw datatypes.JSON) (*PartnerCategory, error)
	UploadLogo(id int64, req *UploadLogoRequest) (*PartnerCategory, error)
}

var _ PartnerServiceAPI = (*PartnerService)(nil)
