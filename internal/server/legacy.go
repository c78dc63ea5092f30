package server

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/thenoetrevino/crewdesk/internal/models"
)

// legacyStore is the untyped row access behind one legacy endpoint group
type legacyStore[T any] interface {
	Name() string
	List(ctx context.Context) ([]*T, error)
	Create(ctx context.Context, fields map[string]any) (*T, error)
	Update(ctx context.Context, id int64, fields map[string]any) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// legacyNames holds the wording of one endpoint group's replies
type legacyNames struct {
	plural   string // "tasks", used by "Failed to fetch ..."
	singular string // "task", used by create/update/delete failures
	kind     string // "Task", used by "... deleted successfully"
}

// legacyRoutes serves the /api endpoints kept for the older frontend. Every
// failure is a 500 with the backend message in details.
type legacyRoutes[T any] struct {
	store    legacyStore[T]
	names    legacyNames
	defaults map[string]any
}

func mountLegacy[T any](r *mux.Router, path string, store legacyStore[T], names legacyNames, defaults map[string]any) {
	h := &legacyRoutes[T]{store: store, names: names, defaults: defaults}
	r.HandleFunc(path, h.list).Methods(http.MethodGet)
	r.HandleFunc(path, h.create).Methods(http.MethodPost)
	r.HandleFunc(path+"/{id}", h.update).Methods(http.MethodPut)
	r.HandleFunc(path+"/{id}", h.remove).Methods(http.MethodDelete)
}

func (h *legacyRoutes[T]) fail(w http.ResponseWriter, action string, err error) {
	slog.Error("legacy request failed", "table", h.store.Name(), "action", action, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorBody{
		Error:   "Failed to " + action,
		Details: models.BackendMessage(err),
	})
}

func (h *legacyRoutes[T]) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		h.fail(w, "fetch "+h.names.plural, err)
		return
	}
	slog.Debug("legacy rows fetched", "table", h.store.Name(), "count", len(items))
	writeJSON(w, http.StatusOK, items)
}

func (h *legacyRoutes[T]) create(w http.ResponseWriter, r *http.Request) {
	fields := map[string]any{}
	if err := decodeJSON(w, r, &fields); err != nil {
		h.fail(w, "create "+h.names.singular, err)
		return
	}
	for k, v := range h.defaults {
		if cur, ok := fields[k]; !ok || cur == nil || cur == "" {
			fields[k] = v
		}
	}

	item, err := h.store.Create(r.Context(), fields)
	if err != nil {
		h.fail(w, "create "+h.names.singular, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *legacyRoutes[T]) update(w http.ResponseWriter, r *http.Request) {
	action := "update " + h.names.singular
	id, err := legacyID(r)
	if err != nil {
		h.fail(w, action, err)
		return
	}
	fields := map[string]any{}
	if err := decodeJSON(w, r, &fields); err != nil {
		h.fail(w, action, err)
		return
	}

	item, err := h.store.Update(r.Context(), id, fields)
	if err != nil {
		h.fail(w, action, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *legacyRoutes[T]) remove(w http.ResponseWriter, r *http.Request) {
	action := "delete " + h.names.singular
	id, err := legacyID(r)
	if err != nil {
		h.fail(w, action, err)
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		h.fail(w, action, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": h.names.kind + " deleted successfully"})
}

func legacyID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, models.NewValidationError("id", "%q is not an integer id", raw)
	}
	return id, nil
}
