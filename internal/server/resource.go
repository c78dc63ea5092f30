package server

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
)

// crud is the service surface shared by every primary collection
type crud[T, N, P any] interface {
	GetAll(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, input N) (*T, error)
	Update(ctx context.Context, id string, patch P) (*T, error)
	Delete(ctx context.Context, id string) error
}

// mountCRUD registers list, create, get, update and delete under path
func mountCRUD[T, N, P any](r *mux.Router, path string, svc crud[T, N, P]) {
	r.HandleFunc(path, listHandler(svc.GetAll)).Methods(http.MethodGet)
	mountWrites(r, path, svc)
}

// mountWrites is mountCRUD without the collection list
func mountWrites[T, N, P any](r *mux.Router, path string, svc crud[T, N, P]) {
	r.HandleFunc(path, createHandler(svc.Create)).Methods(http.MethodPost)
	r.HandleFunc(path+"/{id}", getHandler(svc.GetByID)).Methods(http.MethodGet)
	r.HandleFunc(path+"/{id}", updateHandler(svc.Update)).Methods(http.MethodPatch, http.MethodPut)
	r.HandleFunc(path+"/{id}", deleteHandler(svc.Delete)).Methods(http.MethodDelete)
}

func listHandler[T any](fetch func(context.Context) ([]*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := fetch(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func getHandler[T any](fetch func(context.Context, string) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := fetch(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func createHandler[T, N any](create func(context.Context, N) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input N
		if err := decodeJSON(w, r, &input); err != nil {
			writeError(w, r, err)
			return
		}
		item, err := create(r.Context(), input)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, item)
	}
}

func updateHandler[T, P any](update func(context.Context, string, P) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch P
		if err := decodeJSON(w, r, &patch); err != nil {
			writeError(w, r, err)
			return
		}
		item, err := update(r.Context(), mux.Vars(r)["id"], patch)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func deleteHandler(remove func(context.Context, string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := remove(r.Context(), mux.Vars(r)["id"]); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
