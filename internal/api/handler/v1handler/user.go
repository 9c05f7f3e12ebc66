package v1handler

import (
	"net/http"

	"storefront/pkg/domain"
)

// CreateUser registers a customer.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err)

		return
	}

	user, err := h.deps.Users.Create(r.Context(), req.toDomain())
	if err != nil {
		renderError(w, r, err)

		return
	}

	renderJSON(w, r, http.StatusCreated, DomainUserToV1(user))
}

// ListUsers returns every user.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.deps.Users.All(r.Context())
	if err != nil {
		renderError(w, r, err)

		return
	}

	renderJSON(w, r, http.StatusOK, mapSlice(users, DomainUserToV1))
}

// GetUser returns a user by id.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam[domain.UserID](r)
	if err != nil {
		renderError(w, r, err)

		return
	}

	user, err := h.deps.Users.ByID(r.Context(), id)
	if err != nil {
		renderError(w, r, err)

		return
	}

	renderJSON(w, r, http.StatusOK, DomainUserToV1(user))
}

// UpdateUser replaces the name and email of a user.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam[domain.UserID](r)
	if err != nil {
		renderError(w, r, err)

		return
	}

	var req UserRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err)

		return
	}

	user, err := h.deps.Users.Update(r.Context(), id, req.toDomain())
	if err != nil {
		renderError(w, r, err)

		return
	}

	renderJSON(w, r, http.StatusOK, DomainUserToV1(user))
}

// DeleteUser removes a user together with their purchases.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := idParam[domain.UserID](r)
	if err != nil {
		renderError(w, r, err)

		return
	}

	if err := h.deps.Users.Delete(r.Context(), id); err != nil {
		renderError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListUserPurchases returns the purchases of one user.
func (h *Handler) ListUserPurchases(w http.ResponseWriter, r *http.Request) {
	id, err := idParam[domain.UserID](r)
	if err != nil {
		renderError(w, r, err)

		return
	}

	purchases, err := h.deps.Purchases.ByUser(r.Context(), id)
	if err != nil {
		renderError(w, r, err)

		return
	}

	renderJSON(w, r, http.StatusOK, mapSlice(purchases, DomainPurchaseToV1))
}
