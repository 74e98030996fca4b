package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kindoblue/jakarta10-tutoring/internal/service"
	"github.com/kindoblue/jakarta10-tutoring/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler streams the seating roster workbook.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportSeating handles GET /api/v1/export/seating.
func (h *ExportHandler) ExportSeating(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportSeating(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrExportNoFloors) {
			response.NotFound(c, 15001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
