package transport

import (
	"errors"
	"net/http"

	"artisan-bazaar/internal/middleware"
	"artisan-bazaar/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateImageRequest starts a simulated image generation job.
type GenerateImageRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// PromptsResponse lists the suggested prompts for the generator.
type PromptsResponse struct {
	Prompts []string `json:"prompts"`
}

// ImageHandler handles HTTP requests for the simulated image generator
type ImageHandler struct {
	imageService service.ImageService
	logger       *zap.Logger
}

// NewImageHandler creates a new ImageHandler
func NewImageHandler(imageService service.ImageService, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		logger:       logger,
	}
}

// RegisterRoutes registers all image generation routes
func (h *ImageHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/images", func(r chi.Router) {
		r.Post("/generate", h.Generate)
		r.Get("/prompts", h.Prompts)
		r.Get("/{id}", h.Get)
		r.Delete("/{id}", h.Cancel)
	})
}

// Generate starts a new image generation job
func (h *ImageHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateImageRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Generate image validation failed", zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}

		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	job, err := h.imageService.Start(r.Context(), req.Prompt)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPrompt) {
			middleware.RespondWithFieldError(w, "prompt", "prompt must not be empty")
			return
		}

		h.logger.Error("Generate image failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to start image generation")
		return
	}

	h.logger.Info("Image job started", zap.String("job_id", job.ID.String()))
	middleware.RespondWithJSON(w, http.StatusAccepted, job)
}

// Get returns the current state of an image generation job
func (h *ImageHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid job ID")
		return
	}

	job, err := h.imageService.Get(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, service.ErrImageJobNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "image job not found")
			return
		}

		h.logger.Error("Get image job failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to get image job")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, job)
}

// Cancel discards a pending image generation job
func (h *ImageHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid job ID")
		return
	}

	if err := h.imageService.Cancel(r.Context(), jobID); err != nil {
		if errors.Is(err, service.ErrImageJobNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "image job not found")
			return
		}

		h.logger.Error("Cancel image job failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to cancel image job")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Prompts returns the suggested prompt list
func (h *ImageHandler) Prompts(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, PromptsResponse{
		Prompts: h.imageService.SuggestedPrompts(),
	})
}
