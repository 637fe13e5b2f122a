package audit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tanzeelsam-code/Alshifa-AI-sub002/pkg/pagination"
)

func seededRepo(t *testing.T, n int, cid uuid.UUID) Repository {
	t.Helper()
	repo := NewRepoMem()
	for i := 0; i < n; i++ {
		err := repo.Append(context.Background(), &Entry{
			ID:            uuid.New(),
			Seq:           uint64(i + 1),
			CorrelationID: cid,
			Action:        ActionTriageClassified,
			Reason:        "classified",
		})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return repo
}

func TestHandlerList(t *testing.T) {
	repo := seededRepo(t, 3, uuid.New())
	h := NewHandler(repo)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/audit-entries?limit=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp pagination.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 3 || resp.Limit != 2 {
		t.Fatalf("total=%d limit=%d", resp.Total, resp.Limit)
	}
}

func TestHandlerListByCorrelation(t *testing.T) {
	cid := uuid.New()
	repo := seededRepo(t, 2, cid)
	_ = repo.Append(context.Background(), &Entry{ID: uuid.New(), CorrelationID: uuid.New(), Action: ActionProvidersRanked})
	h := NewHandler(repo)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(cid.String())

	if err := h.ListByCorrelation(c); err != nil {
		t.Fatalf("list by correlation: %v", err)
	}
	var resp pagination.Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 2 {
		t.Fatalf("total = %d, want 2", resp.Total)
	}
}

func TestHandlerListByCorrelationRejectsBadID(t *testing.T) {
	h := NewHandler(NewRepoMem())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.ListByCorrelation(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
