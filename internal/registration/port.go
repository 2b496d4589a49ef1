package registration

import (
	"context"

	"jaz-events-api/internal/formschema"
)

type RegistrationServiceAPI interface {
	Submit(ctx context.Context, sc SubmissionContext, answers map[string]string) (*Registration, error)
	GetByID(id int64) (*Registration, error)
	ListByTarget(kind string, targetID int64) ([]Registration, error)
	UpdateStatus(id int64, status string) (*Registration, error)
	ExportXLSX(kind string, targetID int64, schema formschema.Schema, locale string) ([]byte, error)
}

// SchemaResolverFunc resolves the form schema configured for one target
// entity. Each parent package (event, sector, partner) contributes one.
type SchemaResolverFunc func(targetID int64) (formschema.Schema, error)

var _ RegistrationServiceAPI = (*RegistrationService)(nil)
