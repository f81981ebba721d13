package service

import (
	"strings"
	"time"

	"github.com/hescoapp/hesco/internal/config"
	"github.com/hescoapp/hesco/internal/pg"
	"github.com/hescoapp/hesco/internal/repo"
	authservice "github.com/hescoapp/hesco/internal/service/authservice"
	ledgerservice "github.com/hescoapp/hesco/internal/service/ledgerservice"
	planservice "github.com/hescoapp/hesco/internal/service/planservice"
	referralservice "github.com/hescoapp/hesco/internal/service/referralservice"
	taskservice "github.com/hescoapp/hesco/internal/service/taskservice"
	withdrawalservice "github.com/hescoapp/hesco/internal/service/withdrawalservice"

	pkgauth "github.com/hescoapp/hesco/pkg/auth"
)

type Services struct {
	AuthService       *authservice.Service
	LedgerService     *ledgerservice.Service
	TaskService       *taskservice.Service
	ReferralService   *referralservice.Service
	WithdrawalService *withdrawalservice.Service
	PlanService       *planservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo)
	taskService := taskservice.New(repo.TaskRepo, repo.PlanRepo, repo.LedgerRepo, txManager)
	referralService := referralservice.New(repo.ReferralRepo, repo.UserRepo, repo.LedgerRepo, txManager)
	withdrawalService := withdrawalservice.New(repo.WithdrawalRepo, repo.LedgerRepo, repo.PlanRepo, txManager, parseWeekday(cfg.WithdrawalDay), cfg.TaxRate)
	planService := planservice.New(repo.PlanRepo, repo.LedgerRepo, referralService, txManager)
	authService := authservice.New(repo.UserRepo, ledgerService, referralService, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:       authService,
		LedgerService:     ledgerService,
		TaskService:       taskService,
		ReferralService:   referralService,
		WithdrawalService: withdrawalService,
		PlanService:       planService,
	}
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekday(name string) time.Weekday {
	if day, ok := weekdays[strings.ToLower(name)]; ok {
		return day
	}
	return time.Saturday
}
