package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/services"
	"github.com/projectsdatadna/test-series-api-sub001/domain"
	"github.com/projectsdatadna/test-series-api-sub001/pkg/common"
	"github.com/projectsdatadna/test-series-api-sub001/pkg/utils"
)

// BundleHandler handles bundle HTTP requests.
type BundleHandler struct {
	service *services.BundleService
	logger  *zap.Logger
}

// NewBundleHandler creates a new bundle handler.
func NewBundleHandler(service *services.BundleService, logger *zap.Logger) *BundleHandler {
	return &BundleHandler{service: service, logger: logger}
}

// CreateBundleRequest is the request body for creating a bundle.
type CreateBundleRequest struct {
	Name            string   `json:"name" validate:"required,min=1,max=200"`
	CourseIDs       []string `json:"courseIds" validate:"required,min=1"`
	Price           float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	DiscountPercent float64  `json:"discountPercent,omitempty" validate:"omitempty,gte=0,lte=100"`
	ValidityDays    int      `json:"validityDays,omitempty" validate:"omitempty,gte=1"`
}

// CreateBundle handles POST /bundles
func (h *BundleHandler) CreateBundle(w http.ResponseWriter, r *http.Request) {
	var req CreateBundleRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	bundle, err := h.service.Create(r.Context(), domain.Bundle{
		Name:            req.Name,
		CourseIDs:       req.CourseIDs,
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		ValidityDays:    req.ValidityDays,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, "Bundle created", bundle)
}

// GetBundle handles GET /bundles/{bundleID}
func (h *BundleHandler) GetBundle(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.service.Get(r.Context(), chi.URLParam(r, "bundleID"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Bundle retrieved", bundle)
}

// ListBundles handles GET /bundles
func (h *BundleHandler) ListBundles(w http.ResponseWriter, r *http.Request) {
	bundles, next, err := h.service.List(r.Context(), pageFrom(r))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondList(w, "Bundles retrieved", bundles, len(bundles), next)
}

// UpdateBundle handles PUT /bundles/{bundleID}
func (h *BundleHandler) UpdateBundle(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := common.ParseJSONBody(r, &body, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}

	set, err := updateFields(body, "name", "courseIds", "price", "discountPercent", "validityDays", "status")
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	bundle, err := h.service.Update(r.Context(), chi.URLParam(r, "bundleID"), set)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Bundle updated", bundle)
}

// DeleteBundle handles DELETE /bundles/{bundleID}
func (h *BundleHandler) DeleteBundle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Archive(r.Context(), chi.URLParam(r, "bundleID")); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Bundle archived", nil)
}
