package repo

import (
	"github.com/hescoapp/hesco/internal/pg"
	ledgerrepo "github.com/hescoapp/hesco/internal/repo/ledger-repo"
	planrepo "github.com/hescoapp/hesco/internal/repo/plan-repo"
	referralrepo "github.com/hescoapp/hesco/internal/repo/referral-repo"
	taskrepo "github.com/hescoapp/hesco/internal/repo/task-repo"
	userrepo "github.com/hescoapp/hesco/internal/repo/user-repo"
	withdrawalrepo "github.com/hescoapp/hesco/internal/repo/withdrawal-repo"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	LedgerRepo     *ledgerrepo.Repository
	TaskRepo       *taskrepo.Repository
	ReferralRepo   *referralrepo.Repository
	WithdrawalRepo *withdrawalrepo.Repository
	PlanRepo       *planrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		LedgerRepo:     ledgerrepo.New(conn, txManager),
		TaskRepo:       taskrepo.New(conn),
		ReferralRepo:   referralrepo.New(conn),
		WithdrawalRepo: withdrawalrepo.New(conn),
		PlanRepo:       planrepo.New(conn),
	}
}
