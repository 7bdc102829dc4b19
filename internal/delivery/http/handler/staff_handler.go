package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/delivery/http/middleware"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/validator"

	"github.com/gorilla/mux"
)

// StaffHandler exposes the admin-side provisioning endpoints.
type StaffHandler struct {
	staffUsecase usecase.StaffUsecase
	validator    *validator.CustomValidator
}

func NewStaffHandler(staffUsecase usecase.StaffUsecase, validator *validator.CustomValidator) *StaffHandler {
	return &StaffHandler{
		staffUsecase: staffUsecase,
		validator:    validator,
	}
}

// CreateDoctor provisions a doctor account with its profile
// @Summary Create doctor
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDoctorRequest true "Create Doctor Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/doctors [post]
func (h *StaffHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, response.CodeValidationFailed, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.staffUsecase.CreateDoctor(r.Context(), user.ID, &req)
	if err != nil {
		writeStaffError(w, err, "Failed to create doctor")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", result)
}

// GetAllDoctors lists doctors with their account columns
// @Summary List doctors
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/doctors [get]
func (h *StaffHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.staffUsecase.ListDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// UpdateDoctor updates a doctor's mutable fields
// @Summary Update doctor
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Doctor ID"
// @Param request body dto.UpdateDoctorRequest true "Update Doctor Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id} [put]
func (h *StaffHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, response.CodeValidationFailed, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.staffUsecase.UpdateDoctor(r.Context(), user.ID, id, &req)
	if err != nil {
		writeStaffError(w, err, "Failed to update doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", result)
}

// DeleteDoctor removes a doctor account and its profile
// @Summary Delete doctor
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/doctors/{id} [delete]
func (h *StaffHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.staffUsecase.DeleteDoctor(r.Context(), user.ID, id); err != nil {
		writeStaffError(w, err, "Failed to delete doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor deleted successfully", nil)
}

// CreateReceptionist provisions a receptionist account with its profile
// @Summary Create receptionist
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateReceptionistRequest true "Create Receptionist Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/receptionists [post]
func (h *StaffHandler) CreateReceptionist(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	var req dto.CreateReceptionistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, response.CodeValidationFailed, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.staffUsecase.CreateReceptionist(r.Context(), user.ID, &req)
	if err != nil {
		writeStaffError(w, err, "Failed to create receptionist")
		return
	}

	response.Success(w, http.StatusCreated, "Receptionist created successfully", result)
}

// GetAllReceptionists lists receptionists with their account columns
// @Summary List receptionists
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/receptionists [get]
func (h *StaffHandler) GetAllReceptionists(w http.ResponseWriter, r *http.Request) {
	receptionists, err := h.staffUsecase.ListReceptionists(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list receptionists")
		return
	}

	response.Success(w, http.StatusOK, "Receptionists retrieved successfully", receptionists)
}

// UpdateReceptionist updates a receptionist's mutable fields
// @Summary Update receptionist
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Receptionist ID"
// @Param request body dto.UpdateReceptionistRequest true "Update Receptionist Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/receptionists/{id} [put]
func (h *StaffHandler) UpdateReceptionist(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateReceptionistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, response.CodeValidationFailed, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.staffUsecase.UpdateReceptionist(r.Context(), user.ID, id, &req)
	if err != nil {
		writeStaffError(w, err, "Failed to update receptionist")
		return
	}

	response.Success(w, http.StatusOK, "Receptionist updated successfully", result)
}

// DeleteReceptionist removes a receptionist account and its profile
// @Summary Delete receptionist
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Receptionist ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/receptionists/{id} [delete]
func (h *StaffHandler) DeleteReceptionist(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.staffUsecase.DeleteReceptionist(r.Context(), user.ID, id); err != nil {
		writeStaffError(w, err, "Failed to delete receptionist")
		return
	}

	response.Success(w, http.StatusOK, "Receptionist deleted successfully", nil)
}

// GetTokens lists the persisted token ledger
// @Summary List issued tokens
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/tokens [get]
func (h *StaffHandler) GetTokens(w http.ResponseWriter, r *http.Request) {
	tokens, err := h.staffUsecase.ListTokens(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list tokens")
		return
	}

	response.Success(w, http.StatusOK, "Tokens retrieved successfully", tokens)
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, response.CodeValidationFailed, "Invalid id parameter", nil)
		return 0, false
	}
	return uint(id), true
}

func writeStaffError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrUsernameTaken),
		errors.Is(err, usecase.ErrEmailTaken),
		errors.Is(err, usecase.ErrNICTaken),
		errors.Is(err, usecase.ErrLicenseTaken),
		errors.Is(err, usecase.ErrConflict):
		response.Conflict(w, err.Error())
	case errors.Is(err, usecase.ErrDoctorNotFound),
		errors.Is(err, usecase.ErrReceptionistNotFound),
		errors.Is(err, usecase.ErrUserNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, usecase.ErrAdminRecordNotFound):
		response.Forbidden(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}
