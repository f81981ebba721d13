package userrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/hescoapp/hesco/internal/domain"
	"github.com/hescoapp/hesco/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (repo *Repository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `
        SELECT id, login, password_hash, phone, role, referral_code
        FROM users
        WHERE login = $1
    `
	return repo.scanUser(repo.db.QueryRow(ctx, query, login))
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	query := `
        SELECT id, login, password_hash, phone, role, referral_code
        FROM users
        WHERE id = $1
    `
	return repo.scanUser(repo.db.QueryRow(ctx, query, id))
}

func (repo *Repository) FindByReferralCode(ctx context.Context, code string) (*domain.User, error) {
	query := `
        SELECT id, login, password_hash, phone, role, referral_code
        FROM users
        WHERE referral_code = $1
    `
	return repo.scanUser(repo.db.QueryRow(ctx, query, code))
}

func (repo *Repository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Login, &user.PasswordHash, &user.Phone, &user.Role, &user.ReferralCode)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (login, password_hash, phone, role, referral_code)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := repo.db.QueryRow(ctx, query, user.Login, user.PasswordHash, user.Phone, user.Role, user.ReferralCode).Scan(&user.ID)
	if err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}
