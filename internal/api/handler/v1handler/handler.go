// Package v1handler implements the /v1 REST endpoints on top of the catalog
// services. Handlers only decode, shape-check and encode: every business rule
// lives in the services.
package v1handler

import (
	"context"
	"errors"
	"net/http"

	"storefront/internal/catalog"
	"storefront/pkg/domain"
	"storefront/pkg/logger"
	"storefront/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// Deps are the services exposed over HTTP.
type Deps struct {
	Creators  catalog.CreatorService
	Games     catalog.ContentService[*domain.Game]
	Movies    catalog.ContentService[*domain.Movie]
	Albums    catalog.ContentService[*domain.MusicAlbum]
	Users     catalog.UserService
	Purchases catalog.PurchaseService
}

// DepsFromCatalog exposes every service of c.
func DepsFromCatalog(c *catalog.Catalog) Deps {
	return Deps{
		Creators:  c.Creators,
		Games:     c.Games,
		Movies:    c.Movies,
		Albums:    c.Albums,
		Users:     c.Users,
		Purchases: c.Purchases,
	}
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes mounts every v1 endpoint on a fresh router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/creators", func(r chi.Router) {
		r.Post("/", h.CreateCreator)
		r.Get("/", h.ListCreators)
		r.Get("/top", h.TopCreator)
		r.Get("/{id}", h.GetCreator)
		r.Put("/{id}", h.UpdateCreator)
		r.Delete("/{id}", h.DeleteCreator)
	})

	r.Mount("/games", contentRoutes(newGameHandler(h.deps.Games)))
	r.Mount("/movies", contentRoutes(newMovieHandler(h.deps.Movies)))
	r.Mount("/albums", contentRoutes(newAlbumHandler(h.deps.Albums)))

	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.CreateUser)
		r.Get("/", h.ListUsers)
		r.Get("/{id}", h.GetUser)
		r.Put("/{id}", h.UpdateUser)
		r.Delete("/{id}", h.DeleteUser)
		r.Get("/{id}/purchases", h.ListUserPurchases)
	})

	r.Route("/purchases", func(r chi.Router) {
		r.Post("/", h.CreatePurchase)
		r.Get("/", h.ListPurchases)
		r.Get("/{id}", h.GetPurchase)
	})

	return r
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewError maps err onto a status code and response body. Messages of
// storage and internal failures are not exposed to clients.
func NewError(ctx context.Context, err error) (int, ErrorResponse) {
	kind := serrors.KindOf(err)

	var status int
	var message string
	switch kind {
	case serrors.ErrInvalidInput:
		status, message = http.StatusBadRequest, "invalid input"
	case serrors.ErrNotFound:
		status, message = http.StatusNotFound, "resource not found"
	case serrors.ErrDuplicate:
		status, message = http.StatusConflict, "resource already exists"
	case serrors.ErrBusy:
		status, message = http.StatusConflict, "resource busy, retry later"
	default:
		logger.Error(ctx, "request failed", zap.Error(err))

		if kind == nil {
			kind = serrors.ErrInternal
		}

		return http.StatusInternalServerError, ErrorResponse{Code: kind.Error(), Message: "internal error"}
	}

	var sErr *serrors.Error
	if errors.As(err, &sErr) && sErr.Message() != "" {
		message = sErr.Message()
	}

	return status, ErrorResponse{Code: kind.Error(), Message: message}
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := NewError(r.Context(), err)
	if body.Code == serrors.ErrBusy.Error() {
		w.Header().Set("Retry-After", "1")
	}

	render.Status(r, status)
	render.JSON(w, r, body)
}

func renderJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}
