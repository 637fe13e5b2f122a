package intake

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/tanzeelsam-code/Alshifa-AI-sub002/pkg/clinicalerr"
)

func postEvaluation(t *testing.T, svc *Service, req *EvaluationRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	e := echo.New()
	httpReq := httptest.NewRequest(http.MethodPost, "/triage-evaluations", bytes.NewReader(body))
	httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(httpReq, rec)

	h := NewHandler(svc)
	if err := h.Evaluate(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestHandlerEvaluateOK(t *testing.T) {
	svc, _ := newTestService(t, testRoster())
	rec := postEvaluation(t, svc, kneeRoutineRequest())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var res EvaluationResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Triage == nil || res.Match == nil {
		t.Fatal("response missing triage or match payload")
	}
}

func TestHandlerEvaluateValidationErrorIs422(t *testing.T) {
	svc, _ := newTestService(t, testRoster())
	req := kneeRoutineRequest()
	req.SelectionSet.PrimaryComplaint = ""

	rec := postEvaluation(t, svc, req)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var coded clinicalerr.Error
	if err := json.Unmarshal(rec.Body.Bytes(), &coded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if coded.Code != clinicalerr.CodeComplaintRequired {
		t.Errorf("code = %q", coded.Code)
	}
	if coded.MessageEN == "" || coded.MessageAR == "" {
		t.Error("error must carry both languages")
	}
}

func TestHandlerEvaluateRosterOutageIs503(t *testing.T) {
	svc := serviceWithDownDirectory(t)
	rec := postEvaluation(t, svc, kneeRoutineRequest())
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestHandlerEvaluateMalformedBodyIs400(t *testing.T) {
	svc, _ := newTestService(t, testRoster())
	e := echo.New()
	httpReq := httptest.NewRequest(http.MethodPost, "/triage-evaluations", bytes.NewReader([]byte("{not json")))
	httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(httpReq, rec)

	h := NewHandler(svc)
	err := h.Evaluate(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
