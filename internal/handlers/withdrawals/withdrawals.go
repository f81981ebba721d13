package withdrawals

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hescoapp/hesco/internal/domain"
	"github.com/hescoapp/hesco/internal/dto"
	"github.com/hescoapp/hesco/pkg/auth"
	"github.com/hescoapp/hesco/pkg/utils"
)

type Service interface {
	RequestWithdrawal(ctx context.Context, userID int, amount float64, mpesaNumber string) (*domain.WithdrawalRequest, error)
	GetWithdrawals(ctx context.Context, userID int) ([]domain.WithdrawalRequest, error)
}

type WithdrawalHandler struct {
	withdrawalService Service
}

func New(withdrawalService Service) *WithdrawalHandler {
	return &WithdrawalHandler{
		withdrawalService: withdrawalService,
	}
}

// Withdraw godoc
//
//	@Summary		Request funds withdrawal
//	@Description	Request a withdrawal of available balance to an M-Pesa number. Only accepted on the weekly withdrawal day; the amount is debited immediately and refunded if the request is later rejected.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal request payload"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Failure		403		{object}	utils.Response	"Outside withdrawal window"
//	@Failure		422		{object}	utils.Response	"Amount exceeds withdrawal limit"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/withdrawals [post]
func (h *WithdrawalHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Amount <= 0 || req.MpesaNumber == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Amount and mpesa_number are required")
		return
	}

	request, err := h.withdrawalService.RequestWithdrawal(r.Context(), userID, req.Amount, req.MpesaNumber)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOutsideWithdrawalWindow):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, domain.ErrExceedsMaxWithdrawal):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, domain.ErrNoActivePlan):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWithdrawalDTO(*request))
}

// GetWithdrawals godoc
//
//	@Summary		Get withdrawals history
//	@Description	List withdrawal requests made by the authenticated user, newest first.
//	@Tags			Withdrawals
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WithdrawalResponseDTO
//	@Success		204	{object}	utils.Response	"No withdrawals"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/withdrawals [get]
func (h *WithdrawalHandler) GetWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	requests, err := h.withdrawalService.GetWithdrawals(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch withdrawals")
		return
	}
	if len(requests) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Withdrawals not found")
		return
	}

	response := make([]dto.WithdrawalResponseDTO, len(requests))
	for i, request := range requests {
		response[i] = toWithdrawalDTO(request)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toWithdrawalDTO(request domain.WithdrawalRequest) dto.WithdrawalResponseDTO {
	return dto.WithdrawalResponseDTO{
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
