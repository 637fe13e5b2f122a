package bodyzone

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tanzeelsam-code/Alshifa-AI-sub002/pkg/clinicalerr"
)

func newZoneContext(t *testing.T, target string, paramID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if paramID != "" {
		c.SetParamNames("id")
		c.SetParamValues(paramID)
	}
	return c, rec
}

func testHandler(t *testing.T) *Handler {
	t.Helper()
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return NewHandler(reg)
}

func TestHandlerListAll(t *testing.T) {
	h := testHandler(t)
	c, rec := newZoneContext(t, "/body-zones", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	var zones []*Definition
	if err := json.Unmarshal(rec.Body.Bytes(), &zones); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(zones) == 0 {
		t.Fatal("expected zones")
	}
}

func TestHandlerListByCategory(t *testing.T) {
	h := testHandler(t)
	c, rec := newZoneContext(t, "/body-zones?category=chest", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	var zones []*Definition
	if err := json.Unmarshal(rec.Body.Bytes(), &zones); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, z := range zones {
		if z.Category != CategoryChest {
			t.Errorf("zone %s has category %s", z.ID, z.Category)
		}
	}
	if len(zones) == 0 {
		t.Fatal("expected chest zones")
	}
}

func TestHandlerListTerminalOnly(t *testing.T) {
	h := testHandler(t)
	c, rec := newZoneContext(t, "/body-zones?terminal=true", "")
	if err := h.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	var zones []*Definition
	if err := json.Unmarshal(rec.Body.Bytes(), &zones); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, z := range zones {
		if !z.Terminal {
			t.Errorf("zone %s is not terminal", z.ID)
		}
	}
}

func TestHandlerGetZone(t *testing.T) {
	h := testHandler(t)
	c, rec := newZoneContext(t, "/", "chest.left_parasternal")
	if err := h.Get(c); err != nil {
		t.Fatalf("get: %v", err)
	}
	var zone Definition
	if err := json.Unmarshal(rec.Body.Bytes(), &zone); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if zone.ID != "chest.left_parasternal" || zone.Label.AR == "" {
		t.Fatalf("unexpected zone payload: %+v", zone)
	}
}

func TestHandlerGetUnknownZoneIs404WithCodedError(t *testing.T) {
	h := testHandler(t)
	c, rec := newZoneContext(t, "/", "no.such.zone")
	if err := h.Get(c); err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var coded clinicalerr.Error
	if err := json.Unmarshal(rec.Body.Bytes(), &coded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if coded.Code != clinicalerr.CodeUnknownZone {
		t.Errorf("code = %q", coded.Code)
	}
	if coded.MessageAR == "" {
		t.Error("expected Arabic message")
	}
}

func TestHandlerZonePath(t *testing.T) {
	h := testHandler(t)
	c, rec := newZoneContext(t, "/", "abdomen.upper.epigastric")
	if err := h.Path(c); err != nil {
		t.Fatalf("path: %v", err)
	}
	var path []Label
	if err := json.Unmarshal(rec.Body.Bytes(), &path); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(path) != 3 {
		t.Fatalf("path depth = %d, want 3", len(path))
	}
}

func TestHandlerChildren(t *testing.T) {
	h := testHandler(t)
	c, rec := newZoneContext(t, "/", "abdomen.upper")
	if err := h.Children(c); err != nil {
		t.Fatalf("children: %v", err)
	}
	var children []*Definition
	if err := json.Unmarshal(rec.Body.Bytes(), &children); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(children) == 0 {
		t.Fatal("expected children for abdomen.upper")
	}
}
