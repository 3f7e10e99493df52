package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "urb_denuncias/internal/adapter/http/dto/request"
	response "urb_denuncias/internal/adapter/http/dto/response"
	"urb_denuncias/internal/usecase"
	"urb_denuncias/pkg"
)

var (
	errInvalidComplaintPayload = pkg.NewDomainErrorSimple("INVALID_COMPLAINT_INPUT", "Invalid complaint payload", http.StatusBadRequest)
	errInvalidComplaintID      = pkg.NewDomainErrorSimple("INVALID_COMPLAINT_ID", "Complaint id must be a positive integer", http.StatusBadRequest)
)

// ComplaintHandler handles HTTP requests for the complaint record store and
// case lifecycle.

type ComplaintHandler struct {
	usecase usecase.IComplaintUseCase
}

func NewComplaintHandler(uc usecase.IComplaintUseCase) *ComplaintHandler {
	return &ComplaintHandler{usecase: uc}
}

// CreateComplaint registers a new complaint from the intake form payload.
func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	var payload request.ComplaintCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidComplaintPayload.HTTPStatus, errInvalidComplaintPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Register(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapComplaintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromComplaint(created))
}

// ListComplaints returns every complaint, newest first.
func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	complaints, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		appErr := mapComplaintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromComplaints(complaints))
}

func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	id, ok := complaintIDParam(c)
	if !ok {
		return
	}

	complaint, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapComplaintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromComplaint(complaint))
}

// UpdateComplaint merges the supplied fields into the stored record.
func (h *ComplaintHandler) UpdateComplaint(c *gin.Context) {
	id, ok := complaintIDParam(c)
	if !ok {
		return
	}

	var payload request.ComplaintUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidComplaintPayload.HTTPStatus, errInvalidComplaintPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateDetails(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		appErr := mapComplaintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromComplaint(updated))
}

func (h *ComplaintHandler) DeleteComplaint(c *gin.Context) {
	id, ok := complaintIDParam(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapComplaintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ChangeStatus applies an explicit operator status transition.
func (h *ComplaintHandler) ChangeStatus(c *gin.Context) {
	id, ok := complaintIDParam(c)
	if !ok {
		return
	}

	var payload request.StatusChangeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidComplaintPayload.HTTPStatus, errInvalidComplaintPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.ChangeStatus(c.Request.Context(), id, payload.ToStatus())
	if err != nil {
		appErr := mapComplaintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromComplaint(updated))
}

// AddReincidence appends a follow-up entry and reopens the case.
func (h *ComplaintHandler) AddReincidence(c *gin.Context) {
	id, ok := complaintIDParam(c)
	if !ok {
		return
	}

	var payload request.ReincidenceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidComplaintPayload.HTTPStatus, errInvalidComplaintPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.AppendReincidence(c.Request.Context(), id, payload.Origin, payload.Description)
	if err != nil {
		appErr := mapComplaintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromComplaint(updated))
}

// UploadPhoto stores the multipart "photo" file and appends its reference to
// the complaint.
func (h *ComplaintHandler) UploadPhoto(c *gin.Context) {
	id, ok := complaintIDParam(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PHOTO_UPLOAD", "Multipart field 'photo' is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		zap.S().Errorf("[complaint][handler] photo open failed id=%d err=%v", id, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	updated, err := h.usecase.AttachPhoto(
		c.Request.Context(),
		id,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
	)
	if err != nil {
		appErr := mapComplaintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromComplaint(updated))
}

// ListOptions returns the canonical intake option lists.
func (h *ComplaintHandler) ListOptions(c *gin.Context) {
	c.JSON(http.StatusOK, response.NewOptionsResponse())
}

func complaintIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(errInvalidComplaintID.HTTPStatus, errInvalidComplaintID.ToHTTPError())
		return 0, false
	}
	return id, true
}

func mapComplaintError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidComplaintID):
		return pkg.NewDomainErrorSimple("INVALID_COMPLAINT_ID", "Complaint id must be a positive integer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingFields), errors.Is(err, usecase.ErrInvalidReincidence):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Origin and description are required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status is not one of the known values", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrComplaintNotFound):
		return pkg.NewDomainErrorSimple("COMPLAINT_NOT_FOUND", "Complaint not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
