package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/hescoapp/hesco/docs"
	adminhandlers "github.com/hescoapp/hesco/internal/handlers/admin"
	authhandlers "github.com/hescoapp/hesco/internal/handlers/auth"
	balancehandlers "github.com/hescoapp/hesco/internal/handlers/balance"
	planshandlers "github.com/hescoapp/hesco/internal/handlers/plans"
	referralshandlers "github.com/hescoapp/hesco/internal/handlers/referrals"
	taskshandlers "github.com/hescoapp/hesco/internal/handlers/tasks"
	withdrawalshandlers "github.com/hescoapp/hesco/internal/handlers/withdrawals"
	"github.com/hescoapp/hesco/internal/service"
	"github.com/hescoapp/hesco/pkg/auth"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type TaskHandler interface {
	CompleteTask(w http.ResponseWriter, r *http.Request)
	GetTodayCompletions(w http.ResponseWriter, r *http.Request)
	GetCompletions(w http.ResponseWriter, r *http.Request)
}

type ReferralHandler interface {
	GetReferrals(w http.ResponseWriter, r *http.Request)
	GetRewards(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type PlanHandler interface {
	GetPlans(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	GetApplications(w http.ResponseWriter, r *http.Request)
	SubmitPayment(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetApplications(w http.ResponseWriter, r *http.Request)
	ApproveApplication(w http.ResponseWriter, r *http.Request)
	RejectApplication(w http.ResponseWriter, r *http.Request)
	GetPaymentSubmissions(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	UpdateWithdrawalStatus(w http.ResponseWriter, r *http.Request)
	GetBalances(w http.ResponseWriter, r *http.Request)
	VerifyLedger(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	BalanceHandler    BalanceHandler
	TaskHandler       TaskHandler
	ReferralHandler   ReferralHandler
	WithdrawalHandler WithdrawalHandler
	PlanHandler       PlanHandler
	AdminHandler      AdminHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		BalanceHandler:    balancehandlers.New(s.LedgerService),
		TaskHandler:       taskshandlers.New(s.TaskService),
		ReferralHandler:   referralshandlers.New(s.ReferralService),
		WithdrawalHandler: withdrawalshandlers.New(s.WithdrawalService),
		PlanHandler:       planshandlers.New(s.PlanService),
		AdminHandler:      adminhandlers.New(s.PlanService, s.WithdrawalService, s.LedgerService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalance)
				r.Get("/transactions", h.BalanceHandler.GetTransactions)
			})
			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.TaskHandler.GetCompletions)
				r.Post("/complete", h.TaskHandler.CompleteTask)
				r.Get("/today", h.TaskHandler.GetTodayCompletions)
			})
			r.Route("/referrals", func(r chi.Router) {
				r.Get("/", h.ReferralHandler.GetReferrals)
				r.Get("/rewards", h.ReferralHandler.GetRewards)
			})
			r.Route("/withdrawals", func(r chi.Router) {
				r.Post("/", h.WithdrawalHandler.Withdraw)
				r.Get("/", h.WithdrawalHandler.GetWithdrawals)
			})
			r.Get("/plans", h.PlanHandler.GetPlans)
			r.Route("/applications", func(r chi.Router) {
				r.Post("/", h.PlanHandler.Apply)
				r.Get("/", h.PlanHandler.GetApplications)
				r.Post("/{id}/payment", h.PlanHandler.SubmitPayment)
			})
		})
	})
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(auth.AuthMiddleware, auth.AdminMiddleware)
		r.Route("/applications", func(r chi.Router) {
			r.Get("/", h.AdminHandler.GetApplications)
			r.Post("/{id}/approve", h.AdminHandler.ApproveApplication)
			r.Post("/{id}/reject", h.AdminHandler.RejectApplication)
			r.Get("/{id}/payments", h.AdminHandler.GetPaymentSubmissions)
		})
		r.Route("/withdrawals", func(r chi.Router) {
			r.Get("/", h.AdminHandler.GetWithdrawals)
			r.Post("/{id}/status", h.AdminHandler.UpdateWithdrawalStatus)
		})
		r.Get("/balances", h.AdminHandler.GetBalances)
		r.Get("/ledger/{id}/verify", h.AdminHandler.VerifyLedger)
	})

	return r
}
