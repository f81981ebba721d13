package ledgerrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/hescoapp/hesco/internal/domain"
	"github.com/hescoapp/hesco/internal/pg"
)

const uniqueViolationCode = "23505"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) GetUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        SELECT id, user_id, plan_balance, available_balance, total_earned
        FROM balances
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.PlanBalance, &balance.AvailableBalance, &balance.TotalEarned)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

func (r *Repository) CreateUserBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	query := `
        INSERT INTO balances (user_id, plan_balance, available_balance, total_earned)
        VALUES ($1, 0, 0, 0)
        RETURNING id, user_id, plan_balance, available_balance, total_earned
    `
	row := r.db.QueryRow(ctx, query, userID)
	var balance domain.Balance
	err := row.Scan(&balance.ID, &balance.UserID, &balance.PlanBalance, &balance.AvailableBalance, &balance.TotalEarned)
	if err != nil {
		zap.L().Error("failed to create user balance", zap.Error(err))
		return nil, err
	}
	return &balance, nil
}

// Apply credits or debits one user's balance and appends the ledger entry, as
// a single transaction. The balance row is locked for the duration, so
// concurrent Apply calls for the same user serialize and never read the same
// balance_before. A reference key seen before fails with ErrDuplicateReference;
// a debit that would drive available_balance negative fails with
// ErrInsufficientBalance. Either everything commits or nothing does.
func (r *Repository) Apply(ctx context.Context, userID int, delta float64, txType domain.TransactionType, referenceKey, description string) (*domain.Transaction, error) {
	var transaction domain.Transaction

	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		lockQuery := `
            SELECT plan_balance, available_balance, total_earned
            FROM balances
            WHERE user_id = $1
            FOR UPDATE
        `
		var balance domain.Balance
		err := r.db.QueryRow(ctx, lockQuery, userID).Scan(&balance.PlanBalance, &balance.AvailableBalance, &balance.TotalEarned)
		if err != nil {
			zap.L().Error("failed to lock balance row", zap.Int("userID", userID), zap.Error(err))
			return err
		}

		before := balance.AvailableBalance

		switch txType {
		case domain.TransactionSubscriptionPayment:
			balance.PlanBalance += delta
			balance.TotalEarned += delta
		case domain.TransactionTaskReward, domain.TransactionReferralReward:
			balance.AvailableBalance += delta
			balance.TotalEarned += delta
		case domain.TransactionWithdrawal, domain.TransactionWithdrawalRefund:
			balance.AvailableBalance += delta
		default:
			return fmt.Errorf("unknown transaction type: %s", txType)
		}

		if balance.AvailableBalance < 0 {
			return domain.ErrInsufficientBalance
		}

		updateQuery := `
            UPDATE balances
            SET plan_balance = $1, available_balance = $2, total_earned = $3, updated_at = now()
            WHERE user_id = $4
        `
		if _, err := r.db.Exec(ctx, updateQuery, balance.PlanBalance, balance.AvailableBalance, balance.TotalEarned, userID); err != nil {
			zap.L().Error("failed to update balance", zap.Int("userID", userID), zap.Error(err))
			return err
		}

		insertQuery := `
            INSERT INTO balance_transactions (user_id, transaction_type, amount, balance_before, balance_after, reference_key, description)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
            RETURNING id, created_at
        `
		row := r.db.QueryRow(ctx, insertQuery, userID, txType, delta, before, balance.AvailableBalance, referenceKey, description)
		if err := row.Scan(&transaction.ID, &transaction.CreatedAt); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
				return domain.ErrDuplicateReference
			}
			zap.L().Error("failed to append ledger entry", zap.Int("userID", userID), zap.Error(err))
			return err
		}

		transaction.UserID = userID
		transaction.Type = txType
		transaction.Amount = delta
		transaction.BalanceBefore = before
		transaction.BalanceAfter = balance.AvailableBalance
		transaction.ReferenceKey = referenceKey
		transaction.Description = description
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *Repository) GetTransactionsByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, transaction_type, amount, balance_before, balance_after, reference_key, description, created_at
        FROM balance_transactions
        WHERE user_id = $1
        ORDER BY created_at ASC, id ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var tr domain.Transaction
		err := rows.Scan(&tr.ID, &tr.UserID, &tr.Type, &tr.Amount, &tr.BalanceBefore, &tr.BalanceAfter, &tr.ReferenceKey, &tr.Description, &tr.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, tr)
	}
	return transactions, nil
}

func (r *Repository) GetAllBalances(ctx context.Context) ([]domain.Balance, error) {
	query := `
        SELECT id, user_id, plan_balance, available_balance, total_earned
        FROM balances
        ORDER BY total_earned DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("failed to fetch balances", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var balances []domain.Balance
	for rows.Next() {
		var balance domain.Balance
		err := rows.Scan(&balance.ID, &balance.UserID, &balance.PlanBalance, &balance.AvailableBalance, &balance.TotalEarned)
		if err != nil {
			zap.L().Error("failed to scan balance row", zap.Error(err))
			return nil, err
		}
		balances = append(balances, balance)
	}
	return balances, nil
}
