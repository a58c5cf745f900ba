package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "leagueportal/internal/errors"
	"leagueportal/internal/service"
)

// UploadHandler accepts player photos.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// UploadResponse carries the stored image URL.
type UploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}

// UploadTicketResponse carries a direct upload URL.
type UploadTicketResponse struct {
	Success bool                  `json:"success"`
	Upload  *service.UploadTicket `json:"upload"`
}

// UploadImage godoc
// @Summary Upload a player photo
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image up to 5MB"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /uploads/image [post]
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fh, err := c.FormFile("image")
	if err != nil {
		return respondError(apperrors.ErrImageRequired)
	}
	if fh.Size > service.MaxImageSize {
		return respondError(apperrors.ErrImageTooLarge)
	}

	f, err := fh.Open()
	if err != nil {
		return respondError(apperrors.ErrImageRequired)
	}
	defer f.Close()

	url, err := h.uploadService.UploadImage(c.Request().Context(), &service.ImageUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, UploadResponse{Success: true, URL: url})
}

// UploadAuth godoc
// @Summary Presigned URL for a direct photo upload
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Param filename query string false "Original file name, used for the extension"
// @Success 200 {object} UploadTicketResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /uploads/auth [get]
func (h *UploadHandler) UploadAuth(c echo.Context) error {
	ticket, err := h.uploadService.PresignImage(c.Request().Context(), c.QueryParam("filename"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, UploadTicketResponse{Success: true, Upload: ticket})
}
