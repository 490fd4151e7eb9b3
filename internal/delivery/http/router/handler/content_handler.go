package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "learnhub/internal/delivery/context"
	"learnhub/internal/delivery/http/response"
	"learnhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContentHandler holds dependencies for content-related handlers.
// Every route using it sits behind the authentication guard, so a session
// is always present by the time these run.
type ContentHandler struct {
	uc     usecase.ContentUsecase
	logger *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		uc:     uc,
		logger: logger,
	}
}

// UploadDocument accepts a multipart document upload.
func (h *ContentHandler) UploadDocument(c echo.Context) error {
	claims := deliverycontext.GetSession(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A file is required")
	}

	title := c.FormValue("title")
	if title == "" {
		return response.BadRequest(c, "INVALID_INPUT", "A title is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	doc, err := h.uc.UploadDocument(c.Request().Context(), &usecase.UploadDocumentInput{
		Title:       title,
		Description: c.FormValue("description"),
		Filename:    fileHeader.Filename,
		File:        file,
		Uploader:    claims.FullName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, doc, "Document uploaded successfully")
}

// UploadVideo accepts a multipart video upload.
func (h *ContentHandler) UploadVideo(c echo.Context) error {
	claims := deliverycontext.GetSession(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A file is required")
	}

	title := c.FormValue("title")
	if title == "" {
		return response.BadRequest(c, "INVALID_INPUT", "A title is required")
	}

	duration, err := strconv.ParseFloat(c.FormValue("duration"), 64)
	if err != nil || duration < 0 {
		duration = 0
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	video, err := h.uc.UploadVideo(c.Request().Context(), &usecase.UploadVideoInput{
		Title:       title,
		Description: c.FormValue("description"),
		Filename:    fileHeader.Filename,
		File:        file,
		Duration:    duration,
		Uploader:    claims.FullName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, video, "Video uploaded successfully")
}

// ListDocuments returns all document records, newest first.
func (h *ContentHandler) ListDocuments(c echo.Context) error {
	docs, err := h.uc.ListDocuments(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, docs, "Documents retrieved successfully")
}

// ListVideos returns all video records, newest first.
func (h *ContentHandler) ListVideos(c echo.Context) error {
	videos, err := h.uc.ListVideos(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, videos, "Videos retrieved successfully")
}

// getByURLInput carries the watch-page lookup request.
type getByURLInput struct {
	URL string `json:"url" validate:"required"`
}

// GetVideoByURL resolves a single video record for the watch page.
func (h *ContentHandler) GetVideoByURL(c echo.Context) error {
	var input getByURLInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid lookup input")
	}
	if input.URL == "" {
		return response.BadRequest(c, "INVALID_INPUT", "A url is required")
	}

	video, err := h.uc.GetVideoByURL(c.Request().Context(), input.URL)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, video, "Video retrieved successfully")
}

// ShareQR renders a QR code PNG for a content share link.
func (h *ContentHandler) ShareQR(c echo.Context) error {
	url := c.QueryParam("url")
	if url == "" {
		return response.BadRequest(c, "INVALID_INPUT", "A url is required")
	}

	png, err := h.uc.ShareQR(url)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
