package registration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"jaz-events-api/internal/formrunner"
	"jaz-events-api/internal/formschema"

	"github.com/gin-gonic/gin"
)

type mockRegistrationService struct {
	submitFn       func(ctx context.Context, sc SubmissionContext, answers map[string]string) (*Registration, error)
	getByIDFn      func(id int64) (*Registration, error)
	listFn         func(kind string, targetID int64) ([]Registration, error)
	updateStatusFn func(id int64, status string) (*Registration, error)
}

func (m *mockRegistrationService) Submit(ctx context.Context, sc SubmissionContext, answers map[string]string) (*Registration, error) {
	if m.submitFn == nil {
		return &Registration{ID: 1}, nil
	}
	return m.submitFn(ctx, sc, answers)
}

func (m *mockRegistrationService) GetByID(id int64) (*Registration, error) {
	if m.getByIDFn == nil {
		return nil, errors.New("not implemented")
	}
	return m.getByIDFn(id)
}

func (m *mockRegistrationService) ListByTarget(kind string, targetID int64) ([]Registration, error) {
	if m.listFn == nil {
		return nil, nil
	}
	return m.listFn(kind, targetID)
}

func (m *mockRegistrationService) UpdateStatus(id int64, status string) (*Registration, error) {
	if m.updateStatusFn == nil {
		return nil, errors.New("not implemented")
	}
	return m.updateStatusFn(id, status)
}

func (m *mockRegistrationService) ExportXLSX(kind string, targetID int64, schema formschema.Schema, locale string) ([]byte, error) {
	return nil, errors.New("not implemented")
}

func requiredNameSchema() formschema.Schema {
	return formschema.Schema{
		{ID: "f1", LabelAr: "الاسم", Type: formschema.FieldText, Required: true},
	}
}

func setupControllerRouter(svc RegistrationServiceAPI, schema formschema.Schema) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rc := &RegistrationController{
		RegistrationService: svc,
		Schemas: map[string]SchemaResolverFunc{
			KindEvent: func(targetID int64) (formschema.Schema, error) { return schema, nil },
		},
	}
	r.POST("/api/registrations", rc.SubmitRegistration)
	r.GET("/api/registrations/form", rc.GetForm)
	r.GET("/api/admin/registrations/:id", rc.GetRegistration)
	r.PATCH("/api/admin/registrations/:id/status", rc.UpdateStatus)
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitRegistration_RequiredMissingSkipsPersistence(t *testing.T) {
	calls := 0
	svc := &mockRegistrationService{
		submitFn: func(ctx context.Context, sc SubmissionContext, answers map[string]string) (*Registration, error) {
			calls++
			return &Registration{ID: 1}, nil
		},
	}
	r := setupControllerRouter(svc, requiredNameSchema())

	w := postJSON(r, "/api/registrations", SubmitRegistrationRequest{
		TargetKind: KindEvent,
		TargetID:   7,
		Answers:    map[string]string{},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want 400 body=%s", w.Code, w.Body.String())
	}
	if calls != 0 {
		t.Fatalf("persistence called %d times, want 0", calls)
	}
}

func TestSubmitRegistration_Success(t *testing.T) {
	calls := 0
	var gotSC SubmissionContext
	var gotAnswers map[string]string
	svc := &mockRegistrationService{
		submitFn: func(ctx context.Context, sc SubmissionContext, answers map[string]string) (*Registration, error) {
			calls++
			gotSC = sc
			gotAnswers = answers
			return &Registration{ID: 9, TargetKind: sc.TargetKind, TargetID: sc.TargetID, Status: StatusPending}, nil
		},
	}
	r := setupControllerRouter(svc, requiredNameSchema())

	w := postJSON(r, "/api/registrations", SubmitRegistrationRequest{
		TargetKind: KindEvent,
		TargetID:   7,
		Category:   "vip",
		Answers:    map[string]string{"f1": "أحمد"},
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d want 201 body=%s", w.Code, w.Body.String())
	}
	if calls != 1 {
		t.Fatalf("persistence called %d times, want 1", calls)
	}
	if gotSC.TargetKind != KindEvent || gotSC.TargetID != 7 || gotSC.Category != "vip" {
		t.Fatalf("context=%+v", gotSC)
	}
	if gotAnswers["f1"] != "أحمد" {
		t.Fatalf("answers=%v", gotAnswers)
	}
}

func TestSubmitRegistration_StorageFailureAnswersGenericMessage(t *testing.T) {
	svc := &mockRegistrationService{
		submitFn: func(ctx context.Context, sc SubmissionContext, answers map[string]string) (*Registration, error) {
			return nil, errors.New("pq: connection reset by peer")
		},
	}
	r := setupControllerRouter(svc, requiredNameSchema())

	w := postJSON(r, "/api/registrations", SubmitRegistrationRequest{
		TargetKind: KindEvent,
		TargetID:   7,
		Answers:    map[string]string{"f1": "أحمد"},
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d want 500", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body not json: %v", err)
	}
	if resp["error"] != formrunner.SubmitFailedMessage("ar") {
		t.Fatalf("error=%q want generic localized message", resp["error"])
	}
}

func TestSubmitRegistration_UnknownKind(t *testing.T) {
	r := setupControllerRouter(&mockRegistrationService{}, requiredNameSchema())

	w := postJSON(r, "/api/registrations", SubmitRegistrationRequest{
		TargetKind: "banner",
		TargetID:   7,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d want 400", w.Code)
	}
}

func TestGetForm_AnswersControls(t *testing.T) {
	r := setupControllerRouter(&mockRegistrationService{}, formschema.Schema{
		{ID: "f1", LabelAr: "الاسم", Type: formschema.FieldText, Required: true},
		{ID: "f2", LabelAr: "المنطقة", Type: formschema.FieldSelect, Options: []string{"A"}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/registrations/form?target_kind=event&target_id=7", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Controls []formrunner.Control `json:"controls"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body not json: %v", err)
	}
	if len(resp.Controls) != 2 {
		t.Fatalf("controls=%+v", resp.Controls)
	}
	if resp.Controls[0].Label != "الاسم" || resp.Controls[1].Kind != formrunner.ControlSelect {
		t.Fatalf("controls=%+v", resp.Controls)
	}
}

func TestGetForm_EmptySchemaIsNotAnError(t *testing.T) {
	r := setupControllerRouter(&mockRegistrationService{}, formschema.Schema{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/registrations/form?target_kind=event&target_id=7", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d want 200", w.Code)
	}
}

func TestUpdateStatus_Passthrough(t *testing.T) {
	svc := &mockRegistrationService{
		updateStatusFn: func(id int64, status string) (*Registration, error) {
			if id != 5 || status != StatusApproved {
				t.Fatalf("id=%d status=%s", id, status)
			}
			return &Registration{ID: 5, Status: status}, nil
		},
	}
	r := setupControllerRouter(svc, requiredNameSchema())

	b, _ := json.Marshal(UpdateStatusRequest{Status: StatusApproved})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/registrations/5/status", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
}
