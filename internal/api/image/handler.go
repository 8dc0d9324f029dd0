package image

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gorecipes/internal/domain"
	"gorecipes/internal/pkg/logger"
	"gorecipes/internal/pkg/middleware"
	"gorecipes/internal/pkg/respond"
)

type ImageService interface {
	AttachImage(ctx context.Context, recipeID, callerID string, up domain.ImageUpload) (domain.ImageUploadResponse, error)
	ListImages(ctx context.Context, recipeID, callerID string) ([]domain.ImageView, error)
	RemoveImage(ctx context.Context, recipeID, imageID, callerID string) error
}

// Handler serves /api/recipes/{id}/images.
type Handler struct {
	Service ImageService
	Users   middleware.UserLookup
	Logger  logger.Logger
}

func NewHandler(svc ImageService, users middleware.UserLookup, log logger.Logger) *Handler {
	return &Handler{Service: svc, Users: users, Logger: log}
}

// List godoc
// @Summary List the images of a recipe
// @Description Each image carries a short-lived download URL. PRIVATE images are listed for the recipe owner only.
// @Tags images
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe id"
// @Success 200 {array} domain.ImageView
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /recipes/{id}/images [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CurrentUser(r.Context(), h.Users)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	views, err := h.Service.ListImages(r.Context(), chi.URLParam(r, "id"), caller.ID)
	respond.Result(w, r, h.Logger, views, err, http.StatusOK)
}

// Attach godoc
// @Summary Attach an image to one of the caller's recipes
// @Description Returns the image record and a presigned URL to PUT the bytes to.
// @Tags images
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recipe id"
// @Param image body domain.ImageUpload true "Image metadata"
// @Success 201 {object} domain.ImageUploadResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 403 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /recipes/{id}/images [post]
func (h *Handler) Attach(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CurrentUser(r.Context(), h.Users)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	var up domain.ImageUpload
	if err := respond.Decode(r, &up); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	res, err := h.Service.AttachImage(r.Context(), chi.URLParam(r, "id"), caller.ID, up)
	respond.Result(w, r, h.Logger, res, err, http.StatusCreated)
}

// Remove godoc
// @Summary Remove an image from one of the caller's recipes
// @Tags images
// @Security BearerAuth
// @Param id path string true "Recipe id"
// @Param imageId path string true "Image id"
// @Success 204
// @Failure 403 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /recipes/{id}/images/{imageId} [delete]
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CurrentUser(r.Context(), h.Users)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	err = h.Service.RemoveImage(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "imageId"), caller.ID)
	respond.Result(w, r, h.Logger, nil, err, http.StatusNoContent)
}
