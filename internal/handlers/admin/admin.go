package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hescoapp/hesco/internal/domain"
	"github.com/hescoapp/hesco/internal/dto"
	planservice "github.com/hescoapp/hesco/internal/service/planservice"
	withdrawalservice "github.com/hescoapp/hesco/internal/service/withdrawalservice"
	"github.com/hescoapp/hesco/pkg/auth"
	"github.com/hescoapp/hesco/pkg/utils"
)

type PlanService interface {
	GetApplicationsByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error)
	Approve(ctx context.Context, applicationID, actorID int) error
	Reject(ctx context.Context, applicationID, actorID int) error
	GetApplicationSubmissions(ctx context.Context, applicationID int) ([]domain.PaymentSubmission, error)
}

type WithdrawalService interface {
	GetAllWithdrawals(ctx context.Context) ([]domain.WithdrawalRequest, error)
	UpdateStatus(ctx context.Context, requestID int, newStatus domain.WithdrawalStatus, actorID int, notes string) (*domain.WithdrawalRequest, error)
}

type LedgerService interface {
	GetAllBalances(ctx context.Context) ([]domain.Balance, error)
	VerifyLedger(ctx context.Context, userID int) (bool, error)
}

type AdminHandler struct {
	planService       PlanService
	withdrawalService WithdrawalService
	ledgerService     LedgerService
}

func New(planService PlanService, withdrawalService WithdrawalService, ledgerService LedgerService) *AdminHandler {
	return &AdminHandler{
		planService:       planService,
		withdrawalService: withdrawalService,
		ledgerService:     ledgerService,
	}
}

// GetApplications godoc
//
//	@Summary		List plan applications
//	@Description	List subscription applications filtered by status (pending by default).
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Application status"	Enums(pending, approved, rejected)
//	@Success		200		{array}		dto.ApplicationResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/applications [get]
func (h *AdminHandler) GetApplications(w http.ResponseWriter, r *http.Request) {
	status := domain.ApplicationStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.ApplicationStatusPending
	}

	applications, err := h.planService.GetApplicationsByStatus(r.Context(), status)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch applications")
		return
	}

	response := make([]dto.ApplicationResponseDTO, len(applications))
	for i, application := range applications {
		response[i] = dto.ApplicationResponseDTO{
			ID:        application.ID,
			UserID:    application.UserID,
			PlanID:    application.PlanID,
			Status:    string(application.Status),
			CreatedAt: application.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ApproveApplication godoc
//
//	@Summary		Approve a plan application
//	@Description	Approve a pending subscription application: credits the plan balance and pays the referral upline. Safe to retry.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Application ID"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid application id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/applications/{id}/approve [post]
func (h *AdminHandler) ApproveApplication(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.UserIDKey).(int)

	applicationID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	if err := h.planService.Approve(r.Context(), applicationID, actorID); err != nil {
		switch {
		case errors.Is(err, planservice.ErrApplicationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Application approved"})
}

// RejectApplication godoc
//
//	@Summary		Reject a plan application
//	@Description	Reject a pending subscription application.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Application ID"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid application id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		409	{object}	utils.Response	"Application already processed"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/applications/{id}/reject [post]
func (h *AdminHandler) RejectApplication(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.UserIDKey).(int)

	applicationID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	if err := h.planService.Reject(r.Context(), applicationID, actorID); err != nil {
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
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Application rejected"})
}

// GetPaymentSubmissions godoc
//
//	@Summary		List payment submissions for an application
//	@Description	List the pasted M-Pesa confirmation messages attached to an application, newest first.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Application ID"
//	@Success		200	{array}		dto.PaymentSubmissionResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid application id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		404	{object}	utils.Response	"Application not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/applications/{id}/payments [get]
func (h *AdminHandler) GetPaymentSubmissions(w http.ResponseWriter, r *http.Request) {
	applicationID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	submissions, err := h.planService.GetApplicationSubmissions(r.Context(), applicationID)
	if err != nil {
		switch {
		case errors.Is(err, planservice.ErrApplicationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := make([]dto.PaymentSubmissionResponseDTO, len(submissions))
	for i, submission := range submissions {
		response[i] = dto.PaymentSubmissionResponseDTO{
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
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetWithdrawals godoc
//
//	@Summary		List all withdrawal requests
//	@Description	List withdrawal requests across all users, newest first.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals [get]
func (h *AdminHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	requests, err := h.withdrawalService.GetAllWithdrawals(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(requests))
	for i, request := range requests {
		response[i] = dto.WithdrawalResponseDTO{
			ID:          request.ID,
			UserID:      request.UserID,
			Amount:      request.Amount,
			TaxAmount:   request.TaxAmount,
			NetAmount:   request.NetAmount,
			MpesaNumber: request.MpesaNumber,
			Status:      string(request.Status),
			Notes:       request.Notes,
			CreatedAt:   request.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateWithdrawalStatus godoc
//
//	@Summary		Update a withdrawal request status
//	@Description	Move a withdrawal request through its lifecycle. Rejecting a request refunds the debited amount.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int									true	"Withdrawal request ID"
//	@Param			request	body		dto.UpdateWithdrawalStatusRequestDTO	true	"New status"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Admin access required"
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Failure		409		{object}	utils.Response	"Invalid status transition"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/withdrawals/{id}/status [post]
func (h *AdminHandler) UpdateWithdrawalStatus(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.UserIDKey).(int)

	requestID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request id")
		return
	}

	var req dto.UpdateWithdrawalStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.withdrawalService.UpdateStatus(r.Context(), requestID, domain.WithdrawalStatus(req.Status), actorID, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, withdrawalservice.ErrRequestNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrInvalidTransition):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WithdrawalResponseDTO{
		ID:          updated.ID,
		UserID:      updated.UserID,
		Amount:      updated.Amount,
		TaxAmount:   updated.TaxAmount,
		NetAmount:   updated.NetAmount,
		MpesaNumber: updated.MpesaNumber,
		Status:      string(updated.Status),
		Notes:       updated.Notes,
		CreatedAt:   updated.CreatedAt,
	})
}

// GetBalances godoc
//
//	@Summary		List all user balances
//	@Description	List current balances for every user.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AdminBalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/balances [get]
func (h *AdminHandler) GetBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := h.ledgerService.GetAllBalances(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch balances")
		return
	}

	response := make([]dto.AdminBalanceResponseDTO, len(balances))
	for i, balance := range balances {
		response[i] = dto.AdminBalanceResponseDTO{
			UserID:           balance.UserID,
			PlanBalance:      balance.PlanBalance,
			AvailableBalance: balance.AvailableBalance,
			TotalEarned:      balance.TotalEarned,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// VerifyLedger godoc
//
//	@Summary		Verify a user's ledger
//	@Description	Replay a user's transaction log from zero and check that it reproduces the stored balance.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"User ID"
//	@Success		200	{object}	dto.LedgerVerifyResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid user id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		403	{object}	utils.Response	"Admin access required"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/ledger/{id}/verify [get]
func (h *AdminHandler) VerifyLedger(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	consistent, err := h.ledgerService.VerifyLedger(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to verify ledger")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.LedgerVerifyResponseDTO{
		UserID:     userID,
		Consistent: consistent,
	})
}
