package v1_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/crastudio/crastudio"
	"github.com/crastudio/crastudio/domain/compliance"
	"github.com/crastudio/crastudio/infrastructure/api"
)

func newTestHandler(t *testing.T, apiKeys ...string) http.Handler {
	t.Helper()

	client, err := crastudio.New(
		crastudio.WithDatabaseURL("sqlite:///:memory:"),
		crastudio.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return api.NewAPIServer(client, apiKeys).Handler()
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func TestOrganizationsEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	w := doJSON(t, handler, http.MethodPost, "/api/v1/program/organizations",
		`{"name":"Example Motors","org_type":"OEM","markets":"EU"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	created := decode[compliance.Organization](t, w)
	if created.ID == 0 {
		t.Fatal("expected assigned id")
	}

	w = doJSON(t, handler, http.MethodGet, "/api/v1/program/organizations", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	orgs := decode[[]compliance.Organization](t, w)
	if len(orgs) != 1 || orgs[0].Name != "Example Motors" {
		t.Errorf("orgs = %+v", orgs)
	}

	// Missing required field is a 400.
	w = doJSON(t, handler, http.MethodPost, "/api/v1/program/organizations", `{"org_type":"OEM"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing name: status = %d, want 400", w.Code)
	}

	// Malformed body is a 400.
	w = doJSON(t, handler, http.MethodPost, "/api/v1/program/organizations", `{"name":`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d, want 400", w.Code)
	}
}

func TestProductsEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	w := doJSON(t, handler, http.MethodPost, "/api/v1/program/organizations",
		`{"name":"Example Motors","org_type":"OEM"}`)
	org := decode[compliance.Organization](t, w)

	w = doJSON(t, handler, http.MethodPost, "/api/v1/inventory/products",
		`{"organization_id":1,"name":"Gateway ECU","product_type":"ECU","market":"EU"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	product := decode[compliance.Product](t, w)
	if product.OrganizationID != org.ID {
		t.Errorf("OrganizationID = %d, want %d", product.OrganizationID, org.ID)
	}

	// Unknown organization is a 404.
	w = doJSON(t, handler, http.MethodPost, "/api/v1/inventory/products",
		`{"organization_id":99,"name":"Orphan"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown org: status = %d, want 404", w.Code)
	}
}

func TestRequirementsEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	// The baseline catalog is seeded on startup.
	w := doJSON(t, handler, http.MethodGet, "/api/v1/requirements", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	reqs := decode[[]compliance.Requirement](t, w)
	if len(reqs) != len(compliance.BaselineRequirements) {
		t.Fatalf("len(reqs) = %d, want %d", len(reqs), len(compliance.BaselineRequirements))
	}

	// Duplicating a seeded req_id is a 409.
	w = doJSON(t, handler, http.MethodPost, "/api/v1/requirements",
		`{"req_id":"CRA-AI1-001","title":"duplicate"}`)
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate req_id: status = %d, want 409", w.Code)
	}

	// Deactivation drops the entry from the default (active-only) listing.
	w = doJSON(t, handler, http.MethodPatch, "/api/v1/requirements/CRA-AI1-001/deactivate", "")
	if w.Code != http.StatusOK {
		t.Fatalf("deactivate status = %d", w.Code)
	}
	w = doJSON(t, handler, http.MethodGet, "/api/v1/requirements", "")
	active := decode[[]compliance.Requirement](t, w)
	if len(active) != len(compliance.BaselineRequirements)-1 {
		t.Errorf("len(active) = %d, want %d", len(active), len(compliance.BaselineRequirements)-1)
	}
	for _, req := range active {
		if req.ReqID == "CRA-AI1-001" {
			t.Error("deactivated requirement still listed as active")
		}
	}

	// The full catalog stays queryable.
	w = doJSON(t, handler, http.MethodGet, "/api/v1/requirements?active_only=false", "")
	all := decode[[]compliance.Requirement](t, w)
	if len(all) != len(compliance.BaselineRequirements) {
		t.Errorf("len(all) = %d, want %d", len(all), len(compliance.BaselineRequirements))
	}
}

func TestAssessmentValidation(t *testing.T) {
	handler := newTestHandler(t)

	doJSON(t, handler, http.MethodPost, "/api/v1/program/organizations",
		`{"name":"Example Motors","org_type":"OEM"}`)
	doJSON(t, handler, http.MethodPost, "/api/v1/inventory/products",
		`{"organization_id":1,"name":"Gateway ECU"}`)

	// Risk score outside 1..10 is a 400.
	w := doJSON(t, handler, http.MethodPost, "/api/v1/assessments",
		`{"product_id":1,"requirement_id":1,"maturity_score":3,"risk_score":11}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("risk out of range: status = %d, want 400", w.Code)
	}

	w = doJSON(t, handler, http.MethodPost, "/api/v1/assessments",
		`{"product_id":1,"requirement_id":1,"maturity_score":3,"risk_score":9,"gap_summary":"hardening gaps"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body = %s", w.Code, w.Body.String())
	}
	assessment := decode[compliance.Assessment](t, w)
	if assessment.Status != compliance.StatusOpen {
		t.Errorf("Status = %q, want default Open", assessment.Status)
	}
}

func TestDashboardEndpoint(t *testing.T) {
	handler := newTestHandler(t)

	doJSON(t, handler, http.MethodPost, "/api/v1/program/organizations",
		`{"name":"Example Motors","org_type":"OEM"}`)
	doJSON(t, handler, http.MethodPost, "/api/v1/inventory/products",
		`{"organization_id":1,"name":"Gateway ECU"}`)
	doJSON(t, handler, http.MethodPost, "/api/v1/assessments",
		`{"product_id":1,"requirement_id":1,"maturity_score":1,"risk_score":9}`)

	w := doJSON(t, handler, http.MethodGet, "/api/v1/reporting/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("dashboard status = %d", w.Code)
	}

	var metrics map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &metrics); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	for _, key := range []string{"products", "products_assessed", "open_gaps", "high_risk_findings", "due_90_days", "evidence_breakdown", "role_breakdown"} {
		if _, ok := metrics[key]; !ok {
			t.Errorf("dashboard missing %q", key)
		}
	}
}

func TestExportEndpoints(t *testing.T) {
	handler := newTestHandler(t)

	w := doJSON(t, handler, http.MethodGet, "/api/v1/reporting/export/pdf?report_type=gap", "")
	if w.Code != http.StatusOK {
		t.Fatalf("pdf status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("pdf content type = %q", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("pdf body missing %PDF header")
	}

	// Unknown report types fall back to the gap report rather than failing.
	w = doJSON(t, handler, http.MethodGet, "/api/v1/reporting/export/pdf?report_type=bogus", "")
	if w.Code != http.StatusOK {
		t.Errorf("unknown report type: status = %d, want 200", w.Code)
	}

	w = doJSON(t, handler, http.MethodGet, "/api/v1/reporting/export/excel", "")
	if w.Code != http.StatusOK {
		t.Fatalf("excel status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("excel content type = %q", ct)
	}

	w = doJSON(t, handler, http.MethodGet, "/api/v1/reporting/technical-file", "")
	if w.Code != http.StatusOK {
		t.Fatalf("technical file status = %d", w.Code)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("technical file body missing %PDF header")
	}
}

func TestWriteProtectionOnMutatingRoutes(t *testing.T) {
	handler := newTestHandler(t, "secret")

	// Reads stay open.
	w := doJSON(t, handler, http.MethodGet, "/api/v1/program/organizations", "")
	if w.Code != http.StatusOK {
		t.Errorf("read without key: status = %d, want 200", w.Code)
	}

	// Writes need the key.
	w = doJSON(t, handler, http.MethodPost, "/api/v1/program/organizations",
		`{"name":"Example Motors","org_type":"OEM"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("write without key: status = %d, want 401", w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/program/organizations",
		strings.NewReader(`{"name":"Example Motors","org_type":"OEM"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", "secret")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Errorf("write with key: status = %d, want 201", rec.Code)
	}
}
