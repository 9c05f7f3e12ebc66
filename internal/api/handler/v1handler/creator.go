package v1handler

import (
	"net/http"

	"storefront/pkg/domain"
)

// CreateCreator registers a new creator.
func (h *Handler) CreateCreator(w http.ResponseWriter, r *http.Request) {
	var req CreatorRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err)

		return
	}

	creator, err := h.deps.Creators.Create(r.Context(), req.toDomain())
	if err != nil {
		renderError(w, r, err)

		return
	}

	renderJSON(w, r, http.StatusCreated, DomainCreatorToV1(creator))
}

// ListCreators returns every creator.
func (h *Handler) ListCreators(w http.ResponseWriter, r *http.Request) {
	creators, err := h.deps.Creators.All(r.Context())
	if err != nil {
		renderError(w, r, err)

		return
	}

	renderJSON(w, r, http.StatusOK, mapSlice(creators, DomainCreatorToV1))
}

// GetCreator returns a creator by id.
func (h *Handler) GetCreator(w http.ResponseWriter, r *http.Request) {
	id, err := idParam[domain.CreatorID](r)
	if err != nil {
		renderError(w, r, err)

		return
	}

	creator, err := h.deps.Creators.ByID(r.Context(), id)
	if err != nil {
		renderError(w, r, err)

		return
	}

	renderJSON(w, r, http.StatusOK, DomainCreatorToV1(creator))
}

// UpdateCreator replaces the attributes of a creator.
func (h *Handler) UpdateCreator(w http.ResponseWriter, r *http.Request) {
	id, err := idParam[domain.CreatorID](r)
	if err != nil {
		renderError(w, r, err)

		return
	}

	var req CreatorRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err)

		return
	}

	creator, err := h.deps.Creators.Update(r.Context(), id, req.toDomain())
	if err != nil {
		renderError(w, r, err)

		return
	}

	renderJSON(w, r, http.StatusOK, DomainCreatorToV1(creator))
}

// DeleteCreator removes a creator without content.
func (h *Handler) DeleteCreator(w http.ResponseWriter, r *http.Request) {
	id, err := idParam[domain.CreatorID](r)
	if err != nil {
		renderError(w, r, err)

		return
	}

	if err := h.deps.Creators.Delete(r.Context(), id); err != nil {
		renderError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// TopCreator returns the creator with the highest revenue.
func (h *Handler) TopCreator(w http.ResponseWriter, r *http.Request) {
	creator, revenue, err := h.deps.Creators.TopEarner(r.Context())
	if err != nil {
		renderError(w, r, err)

		return
	}

	renderJSON(w, r, http.StatusOK, TopCreatorResponse{
		Creator: DomainCreatorToV1(creator),
		Revenue: revenue.StringFixed(2),
	})
}
