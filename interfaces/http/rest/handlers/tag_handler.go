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

// TagHandler handles tag HTTP requests.
type TagHandler struct {
	service *services.TagService
	logger  *zap.Logger
}

// NewTagHandler creates a new tag handler.
func NewTagHandler(service *services.TagService, logger *zap.Logger) *TagHandler {
	return &TagHandler{service: service, logger: logger}
}

// CreateTagRequest is the request body for creating a tag.
type CreateTagRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

// CreateTag handles POST /tags
func (h *TagHandler) CreateTag(w http.ResponseWriter, r *http.Request) {
	var req CreateTagRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tag, err := h.service.Create(r.Context(), domain.Tag{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, "Tag created", tag)
}

// GetTag handles GET /tags/{tagID}
func (h *TagHandler) GetTag(w http.ResponseWriter, r *http.Request) {
	tag, err := h.service.Get(r.Context(), chi.URLParam(r, "tagID"))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Tag retrieved", tag)
}

// ListTags handles GET /tags
func (h *TagHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, next, err := h.service.List(r.Context(), pageFrom(r))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondList(w, "Tags retrieved", tags, len(tags), next)
}

// UpdateTag handles PUT /tags/{tagID}
func (h *TagHandler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := common.ParseJSONBody(r, &body, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body: "+err.Error())
		return
	}

	set, err := updateFields(body, "name", "description", "status")
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	// Renames re-derive the slug.
	if name, ok := set["name"].(string); ok {
		set["slug"] = domain.Slugify(name)
	}

	tag, err := h.service.Update(r.Context(), chi.URLParam(r, "tagID"), set)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Tag updated", tag)
}

// DeleteTag handles DELETE /tags/{tagID}
func (h *TagHandler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Archive(r.Context(), chi.URLParam(r, "tagID")); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, "Tag archived", nil)
}
