package v1handler

import (
	"net/http"

	"storefront/internal/catalog"
	"storefront/pkg/domain"

	"github.com/go-chi/chi/v5"
)

// contentHandler serves one content variant. R is the request body of T.
type contentHandler[T domain.Content, R any] struct {
	service catalog.ContentService[T]
	build   func(req *R) (T, error)
}

func newGameHandler(service catalog.ContentService[*domain.Game]) *contentHandler[*domain.Game, GameRequest] {
	return &contentHandler[*domain.Game, GameRequest]{service: service, build: (*GameRequest).toDomain}
}

func newMovieHandler(service catalog.ContentService[*domain.Movie]) *contentHandler[*domain.Movie, MovieRequest] {
	return &contentHandler[*domain.Movie, MovieRequest]{service: service, build: (*MovieRequest).toDomain}
}

func newAlbumHandler(
	service catalog.ContentService[*domain.MusicAlbum],
) *contentHandler[*domain.MusicAlbum, AlbumRequest] {
	return &contentHandler[*domain.MusicAlbum, AlbumRequest]{service: service, build: (*AlbumRequest).toDomain}
}

func contentRoutes[T domain.Content, R any](h *contentHandler[T, R]) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)

	return r
}

func toV1[T domain.Content](item T) ContentResponse {
	return DomainContentToV1(item)
}

func (h *contentHandler[T, R]) decode(r *http.Request) (T, error) {
	var req R
	if err := decodeJSON(r, &req); err != nil {
		var zero T

		return zero, err
	}

	return h.build(&req)
}

func (h *contentHandler[T, R]) create(w http.ResponseWriter, r *http.Request) {
	content, err := h.decode(r)
	if err != nil {
		renderError(w, r, err)

		return
	}

	created, err := h.service.Create(r.Context(), content)
	if err != nil {
		renderError(w, r, err)

		return
	}

	renderJSON(w, r, http.StatusCreated, DomainContentToV1(created))
}

// list serves ?q=<keyword> searches and ?available=true listings. Without
// either parameter every item is returned.
func (h *contentHandler[T, R]) list(w http.ResponseWriter, r *http.Request) {
	availableOnly, err := queryBool(r, "available")
	if err != nil {
		renderError(w, r, err)

		return
	}

	var items []T
	switch keyword, searching := r.URL.Query()["q"]; {
	case searching:
		items, err = h.service.Search(r.Context(), keyword[0])
		if err == nil && availableOnly {
			items = onlyAvailable(items)
		}
	case availableOnly:
		items, err = h.service.Available(r.Context())
	default:
		items, err = h.service.All(r.Context())
	}
	if err != nil {
		renderError(w, r, err)

		return
	}

	renderJSON(w, r, http.StatusOK, mapSlice(items, toV1[T]))
}

func onlyAvailable[T domain.Content](items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.Base().Available {
			out = append(out, item)
		}
	}

	return out
}

func (h *contentHandler[T, R]) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam[domain.ContentID](r)
	if err != nil {
		renderError(w, r, err)

		return
	}

	content, err := h.service.ByID(r.Context(), id)
	if err != nil {
		renderError(w, r, err)

		return
	}

	renderJSON(w, r, http.StatusOK, DomainContentToV1(content))
}

func (h *contentHandler[T, R]) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam[domain.ContentID](r)
	if err != nil {
		renderError(w, r, err)

		return
	}

	content, err := h.decode(r)
	if err != nil {
		renderError(w, r, err)

		return
	}

	updated, err := h.service.Update(r.Context(), id, content)
	if err != nil {
		renderError(w, r, err)

		return
	}

	renderJSON(w, r, http.StatusOK, DomainContentToV1(updated))
}

func (h *contentHandler[T, R]) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam[domain.ContentID](r)
	if err != nil {
		renderError(w, r, err)

		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		renderError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
