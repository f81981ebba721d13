package plans

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/hescoapp/hesco/internal/domain"
	"github.com/hescoapp/hesco/internal/dto"
	planservice "github.com/hescoapp/hesco/internal/service/planservice"
	"github.com/hescoapp/hesco/pkg/auth"
	"github.com/hescoapp/hesco/pkg/utils"
)

type Service interface {
	GetPlans(ctx context.Context) ([]domain.Plan, error)
	ApplyForPlan(ctx context.Context, userID, planID int) (*domain.Application, error)
	GetUserApplications(ctx context.Context, userID int) ([]domain.Application, error)
	SubmitPayment(ctx context.Context, userID, applicationID int, mpesaNumber, mpesaMessage string) (*domain.PaymentSubmission, error)
}

type PlanHandler struct {
	planService Service
}

func New(planService Service) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

// GetPlans godoc
//
//	@Summary		List subscription plans
//	@Description	List all active subscription plans.
//	@Tags			Plans
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PlanResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/plans [get]
func (h *PlanHandler) GetPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planService.GetPlans(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch plans")
		return
	}

	response := make([]dto.PlanResponseDTO, len(plans))
	for i, plan := range plans {
		response[i] = dto.PlanResponseDTO{
			ID:             plan.ID,
			Name:           plan.Name,
			Price:          plan.Price,
			Currency:       plan.Currency,
			DurationMonths: plan.DurationMonths,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Apply godoc
//
//	@Summary		Apply for a subscription plan
//	@Description	Submit an application for a subscription plan. The application stays pending until an administrator approves it.
//	@Tags			Plans
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ApplyForPlanRequestDTO	true	"Plan application payload"
//	@Success		200		{object}	dto.ApplicationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Plan not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/applications [post]
func (h *PlanHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ApplyForPlanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	application, err := h.planService.ApplyForPlan(r.Context(), userID, req.PlanID)
	if err != nil {
		switch {
		case errors.Is(err, planservice.ErrPlanNotFound), errors.Is(err, domain.ErrUnknownPlanTier):
			utils.RespondWithError(w, http.StatusNotFound, "Plan not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toApplicationDTO(*application))
}

// GetApplications godoc
//
//	@Summary		Get own plan applications
//	@Description	List the authenticated user's subscription applications, newest first.
//	@Tags			Plans
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ApplicationResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/applications [get]
func (h *PlanHandler) GetApplications(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	applications, err := h.planService.GetUserApplications(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch applications")
		return
	}

	response := make([]dto.ApplicationResponseDTO, len(applications))
	for i, application := range applications {
		response[i] = toApplicationDTO(application)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// SubmitPayment godoc
//
//	@Summary		Submit an M-Pesa payment confirmation
//	@Description	Attach the pasted M-Pesa confirmation message to a pending application for admin review.
//	@Tags			Plans
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Application ID"
//	@Param			request	body		dto.SubmitPaymentRequestDTO	true	"Payment confirmation payload"
//	@Success		200		{object}	dto.PaymentSubmissionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Application not found"
//	@Failure		409		{object}	utils.Response	"Application already processed"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/applications/{id}/payment [post]
func (h *PlanHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	applicationID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	var req dto.SubmitPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.MpesaMessage) == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "M-Pesa confirmation message is required")
		return
	}

	submission, err := h.planService.SubmitPayment(r.Context(), userID, applicationID, req.MpesaNumber, req.MpesaMessage)
	if err != nil {
		switch {
		case errors.Is(err, planservice.ErrApplicationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, planservice.ErrAlreadyProcessed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSubmissionDTO(*submission))
}

func toSubmissionDTO(submission domain.PaymentSubmission) dto.PaymentSubmissionResponseDTO {
	return dto.PaymentSubmissionResponseDTO{
		ID:            submission.ID,
		UserID:        submission.UserID,
		ApplicationID: submission.ApplicationID,
		MpesaNumber:   submission.MpesaNumber,
		MpesaMessage:  submission.MpesaMessage,
		Amount:        submission.Amount,
		Status:        string(submission.Status),
		CreatedAt:     submission.CreatedAt,
	}
}

func toApplicationDTO(application domain.Application) dto.ApplicationResponseDTO {
	return dto.ApplicationResponseDTO{
		ID:        application.ID,
		UserID:    application.UserID,
		PlanID:    application.PlanID,
		Status:    string(application.Status),
		CreatedAt: application.CreatedAt,
	}
}
