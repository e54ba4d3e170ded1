package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "outorga_monitor/internal/adapter/http/dto/request"
	response "outorga_monitor/internal/adapter/http/dto/response"
	"outorga_monitor/internal/adapter/lock"
	"outorga_monitor/internal/infrastructure/metrics"
	"outorga_monitor/internal/usecase"
	"outorga_monitor/pkg"

	"github.com/gin-gonic/gin"
)

// HeaderUserID identifies the caller recorded as created_by / edited_by.
const HeaderUserID = "X-User-ID"

var (
	errInvalidNDNEPayload = pkg.NewDomainErrorSimple("INVALID_NDNE_INPUT", "Invalid ND/NE payload", http.StatusBadRequest)
	errMissingCaller      = pkg.NewDomainErrorSimple("MISSING_CALLER", "X-User-ID header is required", http.StatusUnauthorized)
)

// NDNEHandler exposes the ND/NE reconciler over HTTP.
type NDNEHandler struct {
	usecase usecase.INDNEUseCase
	metrics *metrics.Metrics
}

func NewNDNEHandler(uc usecase.INDNEUseCase, m *metrics.Metrics) *NDNEHandler {
	return &NDNEHandler{usecase: uc, metrics: m}
}

// ListRecords godoc
// @Summary      List ND/NE records of a contract
// @Tags         ndne
// @Produce      json
// @Param        contract_id  path   string  true   "Contract ID"
// @Param        period       query  string  false  "wet | dry"
// @Param        origin       query  string  false  "automated | manual"
// @Param        year         query  int     false  "Year of measured_on"
// @Success      200  {object}  response.NDNEListResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /contracts/{contract_id}/ndne [get]
func (h *NDNEHandler) ListRecords(c *gin.Context) {
	filter, err := request.ParseNDNEFilter(c.Query("period"), c.Query("origin"), c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_FILTER", err.Error(), http.StatusBadRequest).ToHTTPError())
		return
	}

	records, err := h.usecase.List(c.Request.Context(), c.Param("contract_id"), filter)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNDNERecords(records))
}

// CreateRecord godoc
// @Summary      Create a manual ND/NE record
// @Description  Rejected with 409 when an automated record already exists for the contract and period.
// @Tags         ndne
// @Accept       json
// @Produce      json
// @Param        contract_id  path    string                true  "Contract ID"
// @Param        X-User-ID    header  string                true  "Caller"
// @Param        body         body    request.NDNERequest   true  "ND/NE fields"
// @Success      201  {object}  response.NDNERecordResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /contracts/{contract_id}/ndne [post]
func (h *NDNEHandler) CreateRecord(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	var payload request.NDNERequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNDNEPayload.HTTPStatus, errInvalidNDNEPayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.Create(c.Request.Context(), c.Param("contract_id"), payload.ToFields(), actor)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromNDNERecord(rec))
}

// GetRecord godoc
// @Summary      Get one ND/NE record
// @Tags         ndne
// @Produce      json
// @Param        id   path      string  true  "Record ID"
// @Success      200  {object}  response.NDNERecordResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /ndne/{id} [get]
func (h *NDNEHandler) GetRecord(c *gin.Context) {
	rec, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNDNERecord(rec))
}

// UpdateRecord godoc
// @Summary      Edit an ND/NE record
// @Description  Only the supplied fields change. The record becomes manual and keeps its original origin.
// @Description  Moving it into a period that has an automated record is rejected with 409.
// @Tags         ndne
// @Accept       json
// @Produce      json
// @Param        id         path    string               true  "Record ID"
// @Param        X-User-ID  header  string               true  "Caller"
// @Param        body       body    request.NDNERequest  true  "Fields to change"
// @Success      200  {object}  response.NDNERecordResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      401  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /ndne/{id} [patch]
func (h *NDNEHandler) UpdateRecord(c *gin.Context) {
	actor, ok := caller(c)
	if !ok {
		return
	}
	var payload request.NDNERequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNDNEPayload.HTTPStatus, errInvalidNDNEPayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToFields(), actor)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNDNERecord(rec))
}

// ValidateRecord godoc
// @Summary      Validate ND/NE fields without storing
// @Tags         ndne
// @Accept       json
// @Produce      json
// @Param        body  body      request.NDNERequest  true  "ND/NE fields"
// @Success      200   {object}  response.NDNEValidationResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /ndne/validate [post]
func (h *NDNEHandler) ValidateRecord(c *gin.Context) {
	var payload request.NDNERequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidNDNEPayload.HTTPStatus, errInvalidNDNEPayload.ToHTTPError())
		return
	}

	if verr := h.usecase.Validate(payload.ToFields()); !verr.Empty() {
		h.metrics.ObserveValidation(verr.Fields)
		c.JSON(http.StatusOK, response.NDNEValidationResponse{Valid: false, Fields: verr.Fields})
		return
	}
	c.JSON(http.StatusOK, response.NDNEValidationResponse{Valid: true})
}

func (h *NDNEHandler) writeError(c *gin.Context, err error) {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		h.metrics.ObserveValidation(verr.Fields)
	}
	appErr := mapNDNEError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func caller(c *gin.Context) (string, bool) {
	actor := strings.TrimSpace(c.GetHeader(HeaderUserID))
	if actor == "" {
		c.JSON(errMissingCaller.HTTPStatus, errMissingCaller.ToHTTPError())
		return "", false
	}
	return actor, true
}

func mapNDNEError(err error) *pkg.AppError {
	var (
		verr *usecase.ValidationError
		serr *usecase.StorageError
	)
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_FAILED", "Validation failed", err, http.StatusUnprocessableEntity).WithFields(verr.Fields)
	case errors.Is(err, usecase.ErrInvalidContractID), errors.Is(err, usecase.ErrInvalidNDNERecordID), errors.Is(err, usecase.ErrInvalidNDNEFilter):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidActor):
		return errMissingCaller
	case errors.Is(err, usecase.ErrNDNERecordNotFound):
		return pkg.NewDomainErrorSimple("NDNE_RECORD_NOT_FOUND", "ND/NE record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAutomatedRecordExists):
		return pkg.NewDomainErrorSimple("AUTOMATED_RECORD_EXISTS", usecase.ErrAutomatedRecordExists.Error(), http.StatusConflict).
			WithFields(map[string]string{"period": usecase.ErrAutomatedRecordExists.Error()})
	case errors.Is(err, lock.ErrLockNotObtained):
		return pkg.NewDomainError("PERIOD_BUSY", "Another submission for this period is in progress, retry", err, http.StatusServiceUnavailable)
	case errors.As(err, &serr):
		return pkg.NewDomainError("STORAGE_ERROR", serr.Error(), err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
