package handler

import (
	"log/slog"
	"net/http"

	"avo/internal/delivery/http/response"
	"avo/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MediaHandler holds dependencies for upload handlers.
type MediaHandler struct {
	uc     usecase.MediaUsecase
	logger *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(uc usecase.MediaUsecase, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		uc:     uc,
		logger: logger,
	}
}

// UploadImage accepts a multipart image under the "image" field and returns
// its public URL.
func (h *MediaHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing image file field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable image file")
	}
	defer file.Close()

	output, err := h.uc.UploadImage(c.Request().Context(), &usecase.UploadImageInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": output.URL}, "Image uploaded")
}
