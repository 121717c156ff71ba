package tasks

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type Service interface {
	CreateTask(input CreateTaskInput) (MonthlyTask, error)
	ListTasks() ([]MonthlyTask, error)
	SaveCompletion(userID, taskID string, completed bool, note string) (Completion, error)
	ProgressFor(userID, month string) (Progress, error)
}

type service struct {
	repo Repository
}

func NewService(r Repository) Service {
	return &service{repo: r}
}

type CreateTaskInput struct {
	Title          string         `json:"title" binding:"required"`
	Description    string         `json:"description"`
	TargetMonth    string         `json:"targetMonth" binding:"required"`
	IsRequired     bool           `json:"isRequired"`
	TargetAudience TargetAudience `json:"targetAudience"`
}

func (s *service) CreateTask(in CreateTaskInput) (MonthlyTask, error) {
	audience := in.TargetAudience
	if audience == "" {
		audience = AudienceAll
	}

	task := MonthlyTask{
		ID:             uuid.NewString(),
		Title:          in.Title,
		Description:    in.Description,
		TargetMonth:    in.TargetMonth,
		IsRequired:     in.IsRequired,
		TargetAudience: audience,
	}

	if err := s.repo.CreateTask(&task); err != nil {
		return MonthlyTask{}, err
	}
	return task, nil
}

func (s *service) ListTasks() ([]MonthlyTask, error) {
	return s.repo.ListTasks()
}

// SaveCompletion replaces the user's state on a task wholesale, so
// toggling back to incomplete also clears nothing implicitly; the
// caller sends the full new state.
func (s *service) SaveCompletion(userID, taskID string, completed bool, note string) (Completion, error) {
	completion := Completion{
		UserID:    userID,
		TaskID:    taskID,
		Completed: completed,
		Note:      note,
		UpdatedAt: time.Now().UnixMilli(),
	}

	if err := s.repo.UpsertCompletion(&completion); err != nil {
		return Completion{}, err
	}
	return completion, nil
}

// ProgressFor computes the user's completion percentage over the
// month's tasks. No tasks means zero percent, never a division error.
func (s *service) ProgressFor(userID, month string) (Progress, error) {
	tasks, err := s.repo.ListTasksByMonth(month)
	if err != nil {
		return Progress{}, err
	}

	completions, err := s.repo.ListCompletions(userID)
	if err != nil {
		return Progress{}, err
	}

	byTask := make(map[string]Completion, len(completions))
	for _, c := range completions {
		byTask[c.TaskID] = c
	}

	completion := make(map[string]Completion, len(tasks))
	done := 0
	for _, task := range tasks {
		if c, ok := byTask[task.ID]; ok {
			completion[task.ID] = c
			if c.Completed {
				done++
			}
		}
	}

	return Progress{
		Month:      month,
		Tasks:      tasks,
		Completion: completion,
		Percent:    PercentDone(done, len(tasks)),
	}, nil
}

// PercentDone rounds the completion ratio to a whole percentage.
func PercentDone(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}
