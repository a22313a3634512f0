package report

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lostfound/internal/domain/upload"
	"lostfound/internal/pkg/response"
)

// Handler exposes the board API: list reports, submit a report.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/items.
func (h *Handler) List(c *gin.Context) {
	reports, err := h.service.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		response.Error(c, http.StatusInternalServerError, "Failed to load items.")
		return
	}
	response.JSON(c, http.StatusOK, RenderList(reports, baseURL(c)))
}

// Create handles POST /api/items (multipart form, optional "image" file).
func (h *Handler) Create(c *gin.Context) {
	var req SubmitReportRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrMissingFields.Error())
		return
	}

	file, _ := c.FormFile("image") // absent file is a valid submission

	rep, err := h.service.Create(c.Request.Context(), &req, file)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			response.Error(c, http.StatusBadRequest, ErrMissingFields.Error())
		case errors.Is(err, upload.ErrEmptyFile), errors.Is(err, upload.ErrFileTooLarge):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			c.Error(err)
			response.Error(c, http.StatusInternalServerError, "Failed to save item.")
		}
		return
	}

	response.JSON(c, http.StatusOK, Render(rep, baseURL(c)))
}

// baseURL reconstructs "scheme://host" from the incoming request so stored
// relative image paths can be rewritten to absolute URLs.
func baseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}
