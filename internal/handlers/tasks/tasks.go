package tasks

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
	CompleteTask(ctx context.Context, userID int, taskType domain.TaskType) (*domain.TaskCompletion, error)
	GetTodayCompletions(ctx context.Context, userID int) ([]domain.TaskCompletion, error)
	GetCompletions(ctx context.Context, userID int) ([]domain.TaskCompletion, error)
}

type TaskHandler struct {
	taskService Service
}

func New(taskService Service) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

const taskDateLayout = "2006-01-02"

// CompleteTask godoc
//
//	@Summary		Complete a daily task
//	@Description	Record completion of today's video or survey task and credit the plan-tier reward. Repeating a task on the same UTC day returns the already recorded completion.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CompleteTaskRequestDTO	true	"Task completion payload"
//	@Success		200		{object}	dto.TaskCompletionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"No active subscription plan"
//	@Failure		422		{object}	utils.Response	"Unknown task type"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/tasks/complete [post]
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CompleteTaskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	completion, err := h.taskService.CompleteTask(r.Context(), userID, domain.TaskType(req.TaskType))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownTaskType):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, "Unknown task type")
		case errors.Is(err, domain.ErrNoActivePlan):
			utils.RespondWithError(w, http.StatusPaymentRequired, "No active subscription plan")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCompletionDTO(*completion))
}

// GetTodayCompletions godoc
//
//	@Summary		Get today's task completions
//	@Description	List tasks the authenticated user has already completed today (UTC).
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TaskCompletionResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/tasks/today [get]
func (h *TaskHandler) GetTodayCompletions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	completions, err := h.taskService.GetTodayCompletions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch completions")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCompletionDTOs(completions))
}

// GetCompletions godoc
//
//	@Summary		Get task completion history
//	@Description	List all task completions for the authenticated user, newest first.
//	@Tags			Tasks
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.TaskCompletionResponseDTO
//	@Success		204	{object}	utils.Response	"No completions"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/tasks [get]
func (h *TaskHandler) GetCompletions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	completions, err := h.taskService.GetCompletions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch completions")
		return
	}
	if len(completions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Completions not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toCompletionDTOs(completions))
}

func toCompletionDTO(c domain.TaskCompletion) dto.TaskCompletionResponseDTO {
	return dto.TaskCompletionResponseDTO{
		TaskType:     string(c.TaskType),
		TaskDate:     c.TaskDate.Format(taskDateLayout),
		RewardAmount: c.RewardAmount,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
	}
}

func toCompletionDTOs(completions []domain.TaskCompletion) []dto.TaskCompletionResponseDTO {
	response := make([]dto.TaskCompletionResponseDTO, len(completions))
	for i, c := range completions {
		response[i] = toCompletionDTO(c)
	}
	return response
}
