package handlers

import (
	"bytes"
	"errors"
	"net/http"

	response "outorga_monitor/internal/adapter/http/dto/response"
	"outorga_monitor/internal/infrastructure/report"
	"outorga_monitor/internal/usecase"
	"outorga_monitor/pkg"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HistoryHandler serves the reconstructed 12-month monitoring history of a license.
type HistoryHandler struct {
	usecase usecase.IHistoryUseCase
}

func NewHistoryHandler(uc usecase.IHistoryUseCase) *HistoryHandler {
	return &HistoryHandler{usecase: uc}
}

// GetHistory godoc
// @Summary      Monitoring history
// @Description  12 consecutive months anchored at the first finalized reading. monitoring_started=false when none exists.
// @Tags         history
// @Produce      json
// @Param        license_id  path      string  true  "License ID"
// @Success      200  {object}  response.HistoryResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /licenses/{license_id}/history [get]
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	hist, err := h.usecase.ReconstructHistory(c.Request.Context(), c.Param("license_id"))
	if err != nil {
		appErr := mapHistoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromHistory(hist))
}

// ExportHistory godoc
// @Summary      Export monitoring history
// @Description  Same window as GetHistory rendered as an .xlsx workbook.
// @Tags         history
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        license_id  path  string  true  "License ID"
// @Success      200  {file}    file
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /licenses/{license_id}/history/export [get]
func (h *HistoryHandler) ExportHistory(c *gin.Context) {
	hist, err := h.usecase.ReconstructHistory(c.Request.Context(), c.Param("license_id"))
	if err != nil {
		appErr := mapHistoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var buf bytes.Buffer
	if err := report.WriteHistoryXLSX(&buf, hist); err != nil {
		appErr := pkg.NewDomainError("EXPORT_FAILED", "Could not build workbook", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+report.HistoryFileName(hist.LicenseID)+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func mapHistoryError(err error) *pkg.AppError {
	var serr *usecase.StorageError
	switch {
	case errors.Is(err, usecase.ErrInvalidLicenseID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid license_id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLicenseNotFound):
		return pkg.NewDomainErrorSimple("LICENSE_NOT_FOUND", "License not found", http.StatusNotFound)
	case errors.As(err, &serr):
		return pkg.NewDomainError("STORAGE_ERROR", serr.Error(), err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
