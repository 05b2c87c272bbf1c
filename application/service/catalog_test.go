package service

import (
	"context"
	"errors"
	"testing"

	"github.com/crastudio/crastudio/domain/compliance"
	"github.com/crastudio/crastudio/infrastructure/persistence"
	"github.com/crastudio/crastudio/internal/testdb"
)

func newCatalog(t *testing.T) *Catalog {
	t.Helper()
	db := testdb.New(t)
	return NewCatalog(persistence.NewRequirementStore(db), testLogger())
}

func TestCatalog_AddRequirement(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog(t)

	req, err := catalog.AddRequirement(ctx, RequirementCreateParams{
		ReqID:    "CRA-AI1-010",
		Title:    "Software update mechanism",
		Source:   "Annex I.1",
		Severity: compliance.SeverityHigh,
		Weight:   8,
	})
	if err != nil {
		t.Fatalf("AddRequirement: %v", err)
	}
	if !req.IsActive() {
		t.Error("new requirement should be active")
	}

	_, err = catalog.AddRequirement(ctx, RequirementCreateParams{Title: "no id"})
	if !errors.Is(err, compliance.ErrValidation) {
		t.Errorf("missing req_id: err = %v, want ErrValidation", err)
	}
}

func TestCatalog_AddRequirementWeight(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog(t)

	// Unset weight takes the default.
	req, err := catalog.AddRequirement(ctx, RequirementCreateParams{ReqID: "CRA-W1", Title: "weighted"})
	if err != nil {
		t.Fatalf("AddRequirement: %v", err)
	}
	if req.Weight != 5 {
		t.Errorf("Weight = %d, want default 5", req.Weight)
	}

	_, err = catalog.AddRequirement(ctx, RequirementCreateParams{ReqID: "CRA-W2", Title: "too heavy", Weight: 11})
	if !errors.Is(err, compliance.ErrValidation) {
		t.Errorf("weight 11: err = %v, want ErrValidation", err)
	}
}

func TestCatalog_AddRequirementConflict(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog(t)

	params := RequirementCreateParams{ReqID: "CRA-AI1-010", Title: "first"}
	if _, err := catalog.AddRequirement(ctx, params); err != nil {
		t.Fatalf("AddRequirement: %v", err)
	}

	params.Title = "second"
	_, err := catalog.AddRequirement(ctx, params)
	if !errors.Is(err, compliance.ErrConflict) {
		t.Errorf("duplicate req_id: err = %v, want ErrConflict", err)
	}
}

func TestCatalog_ConflictIncludesDeactivated(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog(t)

	params := RequirementCreateParams{ReqID: "CRA-AI1-010", Title: "first"}
	if _, err := catalog.AddRequirement(ctx, params); err != nil {
		t.Fatalf("AddRequirement: %v", err)
	}
	if err := catalog.Deactivate(ctx, "CRA-AI1-010"); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	// req_id stays reserved even after deactivation.
	_, err := catalog.AddRequirement(ctx, params)
	if !errors.Is(err, compliance.ErrConflict) {
		t.Errorf("reuse of deactivated req_id: err = %v, want ErrConflict", err)
	}
}

func TestCatalog_DeactivateUnknownIsNoOp(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog(t)

	if err := catalog.Deactivate(ctx, "CRA-MISSING"); err != nil {
		t.Errorf("Deactivate unknown: err = %v, want nil", err)
	}
}

func TestCatalog_RequirementsActiveFilter(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog(t)

	for _, reqID := range []string{"CRA-B", "CRA-A"} {
		if _, err := catalog.AddRequirement(ctx, RequirementCreateParams{ReqID: reqID, Title: reqID}); err != nil {
			t.Fatalf("AddRequirement(%s): %v", reqID, err)
		}
	}
	if err := catalog.Deactivate(ctx, "CRA-B"); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	active, err := catalog.Requirements(ctx, true)
	if err != nil {
		t.Fatalf("Requirements(active): %v", err)
	}
	if len(active) != 1 || active[0].ReqID != "CRA-A" {
		t.Errorf("active = %+v, want only CRA-A", active)
	}

	all, err := catalog.Requirements(ctx, false)
	if err != nil {
		t.Fatalf("Requirements(all): %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len(all) = %d, want 2", len(all))
	}
	// Catalog listings are ordered by req_id.
	if all[0].ReqID != "CRA-A" || all[1].ReqID != "CRA-B" {
		t.Errorf("order = [%s %s], want [CRA-A CRA-B]", all[0].ReqID, all[1].ReqID)
	}
}

func TestCatalog_SeedDefaults(t *testing.T) {
	ctx := context.Background()
	catalog := newCatalog(t)

	if err := catalog.SeedDefaults(ctx); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}
	// Idempotent on a populated catalog.
	if err := catalog.SeedDefaults(ctx); err != nil {
		t.Fatalf("SeedDefaults (second): %v", err)
	}

	reqs, err := catalog.Requirements(ctx, true)
	if err != nil {
		t.Fatalf("Requirements: %v", err)
	}
	if len(reqs) != len(compliance.BaselineRequirements) {
		t.Fatalf("len(reqs) = %d, want %d", len(reqs), len(compliance.BaselineRequirements))
	}
	if reqs[0].ReqID != "CRA-AI1-001" {
		t.Errorf("reqs[0].ReqID = %q, want CRA-AI1-001", reqs[0].ReqID)
	}
}
