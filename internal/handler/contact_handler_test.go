package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/octobees/cladding-site/internal/dto"
	"github.com/octobees/cladding-site/internal/entity"
	"github.com/octobees/cladding-site/internal/service"
	"github.com/octobees/cladding-site/internal/view"
)

func newContactHandler(repo *stubContactsRepo, expose bool) *ContactHandler {
	return NewContactHandler(service.NewContactService(repo), NewErrorReporter(nil, expose))
}

func formRequest(path string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func jsonRequest(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestContactHandler_Page(t *testing.T) {
	h := newContactHandler(&stubContactsRepo{}, false)

	e, renderer := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/contact?projectType=commercial", nil), rec)

	if err := h.Page(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK || renderer.name != view.PageContact {
		t.Fatalf("expected contact page, got %d %q", rec.Code, renderer.name)
	}
	page := renderer.data.(view.ContactPage)
	if page.Form.ProjectType != "commercial" || page.Submitted || len(page.Errors) != 0 {
		t.Fatalf("unexpected page data: %+v", page)
	}
	if len(page.ProjectTypes) != 6 {
		t.Fatalf("expected project type options, got %v", page.ProjectTypes)
	}
}

func TestContactHandler_Submit_RejectsShortMessage(t *testing.T) {
	repo := &stubContactsRepo{}
	h := newContactHandler(repo, false)

	e, renderer := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest("/contact", url.Values{
		"name":        {"Jo"},
		"email":       {"a@b.com"},
		"projectType": {"residential"},
		"message":     {"short"},
	}), rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	page := renderer.data.(view.ContactPage)
	if page.Submitted {
		t.Fatalf("expected rejected submission")
	}
	if page.Form.Name != "Jo" || page.Form.Message != "short" {
		t.Fatalf("expected original input echoed, got %+v", page.Form)
	}
	if len(page.Errors) != 1 || page.Errors[0].Message != "Message must be between 10 and 1000 characters" {
		t.Fatalf("unexpected violations: %+v", page.Errors)
	}
	if len(repo.created) != 0 {
		t.Fatalf("expected nothing persisted")
	}
}

func TestContactHandler_Submit_RejectsSingleCharacterName(t *testing.T) {
	h := newContactHandler(&stubContactsRepo{}, false)

	e, renderer := newTestEcho()
	c := e.NewContext(formRequest("/contact", url.Values{
		"name":        {"J"},
		"email":       {"a@b.com"},
		"projectType": {"residential"},
		"message":     {"short"},
	}), httptest.NewRecorder())

	if err := h.Submit(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fields := map[string]bool{}
	for _, v := range renderer.data.(view.ContactPage).Errors {
		fields[v.Field] = true
	}
	if !fields["name"] || !fields["message"] {
		t.Fatalf("expected name and message violations, got %v", fields)
	}
}

func TestContactHandler_Submit_Accepts(t *testing.T) {
	repo := &stubContactsRepo{}
	h := newContactHandler(repo, false)

	e, renderer := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest("/contact", url.Values{
		"name":        {"Jane Doe"},
		"email":       {"JANE@X.COM"},
		"projectType": {"commercial"},
		"message":     {"We need cladding for our new office building."},
	}), rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected one persisted inquiry, got %d", len(repo.created))
	}
	stored := repo.created[0]
	if stored.Email != "jane@x.com" || stored.Status != entity.StatusNew {
		t.Fatalf("unexpected stored inquiry: %+v", stored)
	}
	page := renderer.data.(view.ContactPage)
	if !page.Submitted || page.Form.Name != "Jane Doe" {
		t.Fatalf("expected submitted page echoing data, got %+v", page)
	}
}

func TestContactHandler_Submit_StoreFailure(t *testing.T) {
	h := newContactHandler(&stubContactsRepo{err: errors.New("insert failed")}, true)

	e, renderer := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest("/contact", url.Values{
		"name":        {"Jane Doe"},
		"email":       {"jane@x.com"},
		"projectType": {"commercial"},
		"message":     {"We need cladding for our new office building."},
	}), rec)

	if err := h.Submit(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError || renderer.name != view.PageError {
		t.Fatalf("expected 500 error page, got %d %q", rec.Code, renderer.name)
	}
	page := renderer.data.(view.ErrorPage)
	if strings.Contains(page.Message, "insert failed") {
		t.Fatalf("HTML error page must not expose store detail")
	}
}

func TestContactHandler_QuickQuote_Success(t *testing.T) {
	repo := &stubContactsRepo{}
	h := newContactHandler(repo, false)

	e, _ := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest("/contact/api/quick-quote",
		`{"name":"Sam Lee","email":"sam@example.org","projectType":"residential","message":"Quote for cladding a two-storey house."}`), rec)

	if err := h.QuickQuote(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload dto.QuickQuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !payload.Success || payload.Message != quickQuoteSuccessMessage {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	stored := repo.created[0]
	if stored.Budget == nil || *stored.Budget != entity.BudgetNotSpecified {
		t.Fatalf("expected default budget, got %v", stored.Budget)
	}
	if stored.Timeline == nil || *stored.Timeline != entity.TimelineFlexible {
		t.Fatalf("expected default timeline, got %v", stored.Timeline)
	}
}

func TestContactHandler_QuickQuote_ValidationFailure(t *testing.T) {
	repo := &stubContactsRepo{}
	h := newContactHandler(repo, false)

	e, _ := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest("/contact/api/quick-quote", `{"name":"","email":"nope","message":"hi"}`), rec)

	if err := h.QuickQuote(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var payload dto.QuickQuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Success || len(payload.Errors) == 0 {
		t.Fatalf("expected failure with violations, got %+v", payload)
	}
	if len(repo.created) != 0 {
		t.Fatalf("expected nothing persisted")
	}
}

func TestContactHandler_QuickQuote_StoreFailure(t *testing.T) {
	h := newContactHandler(&stubContactsRepo{err: errors.New("insert failed")}, true)

	e, _ := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest("/contact/api/quick-quote",
		`{"name":"Sam Lee","email":"sam@example.org","projectType":"residential","message":"Quote for cladding a two-storey house."}`), rec)

	if err := h.QuickQuote(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var payload APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if payload.Message != "Error submitting quote request" || !strings.Contains(payload.Error, "insert failed") {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestContactHandler_QuickQuote_MalformedBody(t *testing.T) {
	h := newContactHandler(&stubContactsRepo{}, false)

	e, _ := newTestEcho()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest("/contact/api/quick-quote", `{"name":`), rec)

	if err := h.QuickQuote(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
