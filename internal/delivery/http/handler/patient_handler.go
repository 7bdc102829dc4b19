package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-management-api/internal/delivery/dto"
	"clinic-management-api/internal/delivery/http/middleware"
	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
	"clinic-management-api/pkg/validator"
)

// PatientHandler exposes the receptionist front-desk endpoints.
type PatientHandler struct {
	authUsecase    usecase.AuthUsecase
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(authUsecase usecase.AuthUsecase, patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		authUsecase:    authUsecase,
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// SearchPatient looks up a patient by nic, phone or name
// @Summary Search patient
// @Tags Receptionist
// @Security BearerAuth
// @Produce json
// @Param query query string true "Search query"
// @Param type query string false "Search type (nic, phone, name)"
// @Success 200 {object} response.Response
// @Router /receptionist/patients/search [get]
func (h *PatientHandler) SearchPatient(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	searchType := r.URL.Query().Get("type")

	result, err := h.patientUsecase.SearchPatient(r.Context(), query, searchType)
	if err != nil {
		if errors.Is(err, usecase.ErrSearchQueryRequired) {
			response.Error(w, http.StatusBadRequest, response.CodeValidationFailed, err.Error(), nil)
			return
		}
		response.InternalServerError(w, "Failed to search patient")
		return
	}

	response.Success(w, http.StatusOK, "Search completed", result)
}

// RegisterPatient registers a walk-in patient on their behalf
// @Summary Register patient at the desk
// @Tags Receptionist
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RegisterPatientRequest true "Register Patient Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /receptionist/patients [post]
func (h *PatientHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Not authenticated")
		return
	}

	var req dto.RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, response.CodeValidationFailed, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.RegisterPatient(r.Context(), &req, &user.ID)
	if err != nil {
		writeRegistrationError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Patient registered successfully", result)
}
