package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	apperrors "github.com/louisbranch/lorekeeper/internal/platform/errors"
	"github.com/louisbranch/lorekeeper/internal/platform/errors/i18n"
	"github.com/louisbranch/lorekeeper/internal/services/content/app"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain"
	"github.com/louisbranch/lorekeeper/internal/services/content/domain/ident"
	"github.com/louisbranch/lorekeeper/internal/services/content/storage/sqlite"
)

// maxBodyBytes bounds candidate payloads; campaign content rows are small.
const maxBodyBytes = 1 << 20

// Handler serves the content JSON API.
type Handler struct {
	service *app.Service
}

// NewHandler wires the content HTTP handlers over a service.
func NewHandler(service *app.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires content routes into the provided mux.
func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	if mux == nil || handler == nil {
		return
	}
	mux.HandleFunc("GET /api/content/{prefix}", handler.HandleList)
	mux.HandleFunc("POST /api/content/{prefix}", handler.HandleCreate)
	mux.HandleFunc("GET /api/content/{prefix}/{numeric}", handler.HandleGet)
	mux.HandleFunc("PUT /api/content/{prefix}/{numeric}", handler.HandleUpdate)
	mux.HandleFunc("DELETE /api/content/{prefix}/{numeric}", handler.HandleDelete)
	mux.HandleFunc("POST /api/transactions", handler.HandleTransaction)
}

// HandleCreate validates a candidate payload and persists it under a fresh
// identifier.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeParam(w, r)
	if !ok {
		return
	}
	candidate, ok := readBody(w, r)
	if !ok {
		return
	}

	entity, err := h.service.Create(r.Context(), nil, r.PathValue("prefix"), scope, candidate)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entity)
}

// HandleGet loads one entity by identifier.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeParam(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	entity, err := h.service.Get(r.Context(), scope, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entity)
}

// HandleList loads every entity of one type under a scope.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeParam(w, r)
	if !ok {
		return
	}

	entities, err := h.service.List(r.Context(), scope, r.PathValue("prefix"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if entities == nil {
		entities = []domain.Entity{}
	}
	writeJSON(w, http.StatusOK, entities)
}

// HandleUpdate replaces the entity behind an identifier with a validated
// candidate.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeParam(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	candidate, ok := readBody(w, r)
	if !ok {
		return
	}

	entity, err := h.service.Update(r.Context(), nil, scope, id, candidate)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entity)
}

// HandleDelete removes the entity behind an identifier.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeParam(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), nil, scope, id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// batchOperation is one step of a transactional batch.
type batchOperation struct {
	Op        string          `json:"op"`
	Prefix    string          `json:"prefix"`
	ID        ident.ID        `json:"id"`
	Candidate json.RawMessage `json:"candidate"`
}

type batchRequest struct {
	Operations []batchOperation `json:"operations"`
}

type batchResponse struct {
	Results []any `json:"results"`
}

// HandleTransaction runs a batch of operations in one unit of work. Every
// step commits together, and the first failing step discards them all.
func (h *Handler) HandleTransaction(w http.ResponseWriter, r *http.Request) {
	scope, ok := scopeParam(w, r)
	if !ok {
		return
	}
	body, ok := readBody(w, r)
	if !ok {
		return
	}
	var req batchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, r, apperrors.Wrap(apperrors.CodeCandidateMalformed, "malformed batch payload", err))
		return
	}

	results := make([]any, 0, len(req.Operations))
	err := h.service.Transaction(r.Context(), func(sess *sqlite.Session) error {
		for _, op := range req.Operations {
			switch op.Op {
			case "create":
				entity, err := h.service.Create(r.Context(), sess, op.Prefix, scope, op.Candidate)
				if err != nil {
					return err
				}
				results = append(results, entity)
			case "update":
				entity, err := h.service.Update(r.Context(), sess, scope, op.ID, op.Candidate)
				if err != nil {
					return err
				}
				results = append(results, entity)
			case "delete":
				if err := h.service.Delete(r.Context(), sess, scope, op.ID); err != nil {
					return err
				}
				results = append(results, map[string]any{"deleted": op.ID})
			default:
				return apperrors.WithMetadata(apperrors.CodeCandidateMalformed,
					"unsupported batch operation: "+op.Op,
					map[string]string{"Op": op.Op})
			}
		}
		return nil
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, batchResponse{Results: results})
}

// scopeParam parses the scope query parameter, defaulting to the global scope.
func scopeParam(w http.ResponseWriter, r *http.Request) (ident.Scope, bool) {
	raw := r.URL.Query().Get("scope")
	if raw == "" {
		return ident.Global, true
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || !ident.Scope(value).Valid() {
		writeError(w, r, apperrors.WithMetadata(apperrors.CodeInvalidScope,
			"owner scope cannot be resolved",
			map[string]string{"Scope": raw}))
		return 0, false
	}
	return ident.Scope(value), true
}

// idParam builds the entity identifier from the route path values.
func idParam(w http.ResponseWriter, r *http.Request) (ident.ID, bool) {
	numeric, err := strconv.ParseInt(r.PathValue("numeric"), 10, 64)
	if err != nil || numeric <= 0 {
		writeError(w, r, apperrors.New(apperrors.CodeNotFound, "record not found"))
		return ident.ID{}, false
	}
	return ident.ID{Prefix: r.PathValue("prefix"), Numeric: numeric}, true
}

func readBody(w http.ResponseWriter, r *http.Request) (json.RawMessage, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, r, apperrors.Wrap(apperrors.CodeCandidateMalformed, "unreadable request body", err))
		return nil, false
	}
	return body, true
}

type errorBody struct {
	Code     apperrors.Code    `json:"code"`
	Message  string            `json:"message"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.CodeOf(err)
	var metadata map[string]string
	var domainErr *apperrors.Error
	if errors.As(err, &domainErr) {
		metadata = domainErr.Metadata
	}

	catalog := i18n.GetCatalog(r.Header.Get("Accept-Language"))
	writeJSON(w, code.HTTPStatus(), errorResponse{Error: errorBody{
		Code:     code,
		Message:  catalog.Format(string(code), metadata),
		Metadata: metadata,
	}})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	_ = encoder.Encode(payload)
}
