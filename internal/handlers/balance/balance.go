package balance

import (
	"context"
	"net/http"

	"github.com/hescoapp/hesco/internal/domain"
	"github.com/hescoapp/hesco/internal/dto"
	"github.com/hescoapp/hesco/pkg/auth"
	"github.com/hescoapp/hesco/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	GetTransactions(ctx context.Context, userID int) ([]domain.Transaction, error)
}

type BalanceHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *BalanceHandler {
	return &BalanceHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance godoc
//
//	@Summary		Get current user balance
//	@Description	Retrieve the plan balance, available balance and total earned for the authenticated user.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO	"Current balances"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if balance == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Balance not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		PlanBalance:      balance.PlanBalance,
		AvailableBalance: balance.AvailableBalance,
		TotalEarned:      balance.TotalEarned,
	})
}

// GetTransactions godoc
//
//	@Summary		Get balance transaction history
//	@Description	Get the append-only transaction log for the authenticated user, newest first.
//	@Tags			Balance
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TransactionResponseDTO	"Transaction history"
//	@Success		204	{object}	utils.Response				"No transactions"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/user/balance/transactions [get]
func (h *BalanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.ledgerService.GetTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Transactions not found")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, tr := range transactions {
		response[i] = dto.TransactionResponseDTO{
			Type:          string(tr.Type),
			Amount:        tr.Amount,
			BalanceBefore: tr.BalanceBefore,
			BalanceAfter:  tr.BalanceAfter,
			ReferenceKey:  tr.ReferenceKey,
			Description:   tr.Description,
			CreatedAt:     tr.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
