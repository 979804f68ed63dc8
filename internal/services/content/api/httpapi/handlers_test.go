package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/lorekeeper/internal/services/content/app"
	"github.com/louisbranch/lorekeeper/internal/services/content/registry"
	"github.com/louisbranch/lorekeeper/internal/services/content/storage/sqlite"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	mux := http.NewServeMux()
	RegisterRoutes(mux, NewHandler(app.NewService(store, registry.Default())))
	return mux
}

func doRequest(t *testing.T, mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return payload.Error.Code
}

func TestCreateAndGetEntity(t *testing.T) {
	mux := newTestMux(t)

	rec := doRequest(t, mux, http.MethodPost, "/api/content/R", `{"name": "Fear Economy"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		ObjID struct {
			Prefix  string `json:"prefix"`
			Numeric int64  `json:"numeric"`
		} `json:"obj_id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ObjID.Prefix != "R" || created.ObjID.Numeric != 1 {
		t.Fatalf("expected R-1, got %+v", created.ObjID)
	}
	if created.Description == "" {
		t.Fatalf("expected defaulted description")
	}

	rec = doRequest(t, mux, http.MethodGet, "/api/content/R/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var loaded struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &loaded); err != nil {
		t.Fatalf("decode loaded: %v", err)
	}
	if loaded.Name != "Fear Economy" {
		t.Fatalf("expected name to survive, got %q", loaded.Name)
	}
}

func TestCreateRejectsSuppliedIdentifier(t *testing.T) {
	mux := newTestMux(t)
	rec := doRequest(t, mux, http.MethodPost, "/api/content/R",
		`{"obj_id": {"prefix": "R", "numeric": 5}, "name": "Rest"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != "IMMUTABLE_IDENTITY" {
		t.Fatalf("expected IMMUTABLE_IDENTITY, got %q", code)
	}
}

func TestCreateRejectsValidationFailure(t *testing.T) {
	mux := newTestMux(t)
	rec := doRequest(t, mux, http.MethodPost, "/api/content/It",
		`{"name": "Torch", "value": -2}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != "ITEM_NEGATIVE_VALUE" {
		t.Fatalf("expected ITEM_NEGATIVE_VALUE, got %q", code)
	}
}

func TestGetUnknownPrefix(t *testing.T) {
	mux := newTestMux(t)
	rec := doRequest(t, mux, http.MethodGet, "/api/content/Nope/1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != "UNKNOWN_PREFIX" {
		t.Fatalf("expected UNKNOWN_PREFIX, got %q", code)
	}
}

func TestGetMissingEntity(t *testing.T) {
	mux := newTestMux(t)
	rec := doRequest(t, mux, http.MethodGet, "/api/content/R/9", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %q", code)
	}
}

func TestListScopesRows(t *testing.T) {
	mux := newTestMux(t)
	if rec := doRequest(t, mux, http.MethodPost, "/api/content/R", `{"name": "Global"}`); rec.Code != http.StatusCreated {
		t.Fatalf("seed global: %d", rec.Code)
	}
	if rec := doRequest(t, mux, http.MethodPost, "/api/content/R?scope=4", `{"name": "Scoped"}`); rec.Code != http.StatusCreated {
		t.Fatalf("seed scoped: %d", rec.Code)
	}

	rec := doRequest(t, mux, http.MethodGet, "/api/content/R?scope=4", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var listed []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(listed) != 1 || listed[0].Name != "Scoped" {
		t.Fatalf("expected only the scoped rule, got %+v", listed)
	}
}

func TestListEmptyScopeReturnsEmptyArray(t *testing.T) {
	mux := newTestMux(t)
	rec := doRequest(t, mux, http.MethodGet, "/api/content/R", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %q", rec.Body.String())
	}
}

func TestInvalidScopeParam(t *testing.T) {
	mux := newTestMux(t)
	rec := doRequest(t, mux, http.MethodGet, "/api/content/R?scope=-3", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != "INVALID_SCOPE" {
		t.Fatalf("expected INVALID_SCOPE, got %q", code)
	}
}

func TestUpdateAndDeleteEntity(t *testing.T) {
	mux := newTestMux(t)
	if rec := doRequest(t, mux, http.MethodPost, "/api/content/Loc", `{"name": "Hollow Keep"}`); rec.Code != http.StatusCreated {
		t.Fatalf("seed location: %d", rec.Code)
	}

	rec := doRequest(t, mux, http.MethodPut, "/api/content/Loc/1", `{"name": "Hollow Keep", "region": "The Reach"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var updated struct {
		Region string `json:"region"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if updated.Region != "The Reach" {
		t.Fatalf("expected updated region, got %q", updated.Region)
	}

	rec = doRequest(t, mux, http.MethodDelete, "/api/content/Loc/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec = doRequest(t, mux, http.MethodGet, "/api/content/Loc/1", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestTransactionBatchCommitsTogether(t *testing.T) {
	mux := newTestMux(t)
	rec := doRequest(t, mux, http.MethodPost, "/api/transactions", `{
		"operations": [
			{"op": "create", "prefix": "Obj", "candidate": {"name": "Recover the sigil"}},
			{"op": "create", "prefix": "Pt", "candidate": {"title": "Ambush", "objective": {"prefix": "Obj", "numeric": 1}}}
		]
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode batch: %v", err)
	}
	if len(payload.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(payload.Results))
	}

	rec = doRequest(t, mux, http.MethodGet, "/api/content/Pt/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected committed point, got %d", rec.Code)
	}
}

func TestTransactionBatchRollsBackOnFailure(t *testing.T) {
	mux := newTestMux(t)
	rec := doRequest(t, mux, http.MethodPost, "/api/transactions", `{
		"operations": [
			{"op": "create", "prefix": "R", "candidate": {"name": "First"}},
			{"op": "create", "prefix": "R", "candidate": {"name": "Second"}},
			{"op": "create", "prefix": "R", "candidate": {"name": "   "}}
		]
	}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	list := doRequest(t, mux, http.MethodGet, "/api/content/R", "")
	if strings.TrimSpace(list.Body.String()) != "[]" {
		t.Fatalf("expected no rules after failed batch, got %q", list.Body.String())
	}
}

func TestTransactionBatchRejectsUnknownOp(t *testing.T) {
	mux := newTestMux(t)
	rec := doRequest(t, mux, http.MethodPost, "/api/transactions",
		`{"operations": [{"op": "merge", "prefix": "R"}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if code := decodeErrorCode(t, rec); code != "CANDIDATE_MALFORMED" {
		t.Fatalf("expected CANDIDATE_MALFORMED, got %q", code)
	}
}

func TestErrorMessagesAreLocalized(t *testing.T) {
	mux := newTestMux(t)
	rec := doRequest(t, mux, http.MethodGet, "/api/content/R?scope=-3", "")
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !strings.Contains(payload.Error.Message, "-3") {
		t.Fatalf("expected scope value in message, got %q", payload.Error.Message)
	}
}
