package registration

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"jaz-events-api/internal/formrunner"
	"jaz-events-api/internal/formschema"
	"jaz-events-api/internal/middlewares"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegistrationController struct {
	RegistrationService RegistrationServiceAPI
	// Schemas maps a target kind to its schema lookup, wired in main.
	Schemas map[string]SchemaResolverFunc
}

func (rc *RegistrationController) schemaFor(kind string, targetID int64) (formschema.Schema, error) {
	resolve, ok := rc.Schemas[kind]
	if !ok {
		return nil, fmt.Errorf("unknown target_kind: %s", kind)
	}
	return resolve(targetID)
}

// POST /api/registrations
//
// Runs the answer map through the form runner so required-field gating
// holds even when a client bypasses the browser form, then persists via the
// pipeline. Storage failures answer with the generic localized message; the
// real error is logged inside the service.
func (rc *RegistrationController) SubmitRegistration(c *gin.Context) {
	var req SubmitRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schema, err := rc.schemaFor(req.TargetKind, req.TargetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "target not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	locale := middlewares.Locale(c)
	runner := formrunner.New(schema, locale)
	for id, value := range req.Answers {
		if err := runner.SetAnswer(id, value); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	sc := SubmissionContext{
		TargetKind:  req.TargetKind,
		TargetID:    req.TargetID,
		Category:    req.Category,
		SubmitterID: middlewares.UserIDPtr(c),
	}

	var reg *Registration
	err = runner.Submit(c.Request.Context(), func(ctx context.Context, answers map[string]string) error {
		created, submitErr := rc.RegistrationService.Submit(ctx, sc, answers)
		if submitErr != nil {
			return submitErr
		}
		reg = created
		return nil
	})

	if err != nil {
		if errors.Is(err, formrunner.ErrRequiredMissing) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": runner.Notice()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Registration received",
		"registration": reg,
	})
}

// GET /api/registrations/form?target_kind=...&target_id=...
//
// Resolves the target's schema (with template fallback) and answers the
// ordered render model for a fresh form. An empty control list means no
// fields are configured; clients render an empty state, not an error.
func (rc *RegistrationController) GetForm(c *gin.Context) {
	kind := strings.TrimSpace(c.Query("target_kind"))
	targetID, err := strconv.ParseInt(strings.TrimSpace(c.Query("target_id")), 10, 64)
	if kind == "" || err != nil || targetID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_kind and valid target_id are required"})
		return
	}

	schema, err := rc.schemaFor(kind, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "target not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	runner := formrunner.New(schema, middlewares.Locale(c))
	c.JSON(http.StatusOK, gin.H{
		"fields":   schema,
		"controls": runner.Controls(),
	})
}

// GET /api/admin/registrations?target_kind=...&target_id=...
func (rc *RegistrationController) ListRegistrations(c *gin.Context) {
	kind := strings.TrimSpace(c.Query("target_kind"))
	if kind == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_kind is required"})
		return
	}

	targetID, _ := strconv.ParseInt(strings.TrimSpace(c.Query("target_id")), 10, 64)

	regs, err := rc.RegistrationService.ListByTarget(kind, targetID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"registrations": regs})
}

// GET /api/admin/registrations/:id
//
// Answers the raw registration plus the relabeled answer map in schema
// order for review.
func (rc *RegistrationController) GetRegistration(c *gin.Context) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	reg, err := rc.RegistrationService.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "registration not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Schema lookup failure only degrades labeling; raw answers still show.
	schema, schemaErr := rc.schemaFor(reg.TargetKind, reg.TargetID)
	if schemaErr != nil {
		schema = formschema.Schema{}
	}

	review, err := Review(reg, schema, middlewares.Locale(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"registration": reg,
		"review":       review,
	})
}

// PATCH /api/admin/registrations/:id/status
func (rc *RegistrationController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reg, err := rc.RegistrationService.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "registration not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"registration": reg})
}

// GET /api/admin/registrations/export?target_kind=...&target_id=...
func (rc *RegistrationController) ExportRegistrations(c *gin.Context) {
	kind := strings.TrimSpace(c.Query("target_kind"))
	targetID, err := strconv.ParseInt(strings.TrimSpace(c.Query("target_id")), 10, 64)
	if kind == "" || err != nil || targetID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_kind and valid target_id are required"})
		return
	}

	schema, err := rc.schemaFor(kind, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "target not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	data, err := rc.RegistrationService.ExportXLSX(kind, targetID, schema, middlewares.Locale(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	filename := fmt.Sprintf("%s_%d_registrations.xlsx", kind, targetID)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
