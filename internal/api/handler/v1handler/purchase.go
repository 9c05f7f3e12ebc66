package v1handler

import (
	"net/http"

	"storefront/pkg/domain"
)

// CreatePurchase runs the purchase workflow.
func (h *Handler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var req PurchaseRequest
	if err := decodeJSON(r, &req); err != nil {
		renderError(w, r, err)

		return
	}

	purchase, err := req.toDomain()
	if err != nil {
		renderError(w, r, err)

		return
	}

	purchase, err = h.deps.Purchases.Purchase(r.Context(), purchase)
	if err != nil {
		renderError(w, r, err)

		return
	}

	renderJSON(w, r, http.StatusCreated, DomainPurchaseToV1(purchase))
}

// ListPurchases returns every purchase.
func (h *Handler) ListPurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := h.deps.Purchases.All(r.Context())
	if err != nil {
		renderError(w, r, err)

		return
	}

	renderJSON(w, r, http.StatusOK, mapSlice(purchases, DomainPurchaseToV1))
}

// GetPurchase returns a purchase by id.
func (h *Handler) GetPurchase(w http.ResponseWriter, r *http.Request) {
	id, err := idParam[domain.PurchaseID](r)
	if err != nil {
		renderError(w, r, err)

		return
	}

	purchase, err := h.deps.Purchases.ByID(r.Context(), id)
	if err != nil {
		renderError(w, r, err)

		return
	}

	renderJSON(w, r, http.StatusOK, DomainPurchaseToV1(purchase))
}
