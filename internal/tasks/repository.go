package tasks

import "gorm.io/gorm"

type Repository interface {
	CreateTask(task *MonthlyTask) error
	ListTasks() ([]MonthlyTask, error)
	ListTasksByMonth(month string) ([]MonthlyTask, error)
	UpsertCompletion(completion *Completion) error
	ListCompletions(userID string) ([]Completion, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateTask(task *MonthlyTask) error {
	return r.db.Create(task).Error
}

func (r *repository) ListTasks() ([]MonthlyTask, error) {
	var tasks []MonthlyTask
	err := r.db.Find(&tasks).Error
	return tasks, err
}

// ListTasksByMonth matches the month label exactly.
func (r *repository) ListTasksByMonth(month string) ([]MonthlyTask, error) {
	var tasks []MonthlyTask
	err := r.db.Where("target_month = ?", month).Find(&tasks).Error
	return tasks, err
}

func (r *repository) UpsertCompletion(completion *Completion) error {
	return r.db.Save(completion).Error
}

func (r *repository) ListCompletions(userID string) ([]Completion, error) {
	var completions []Completion
	err := r.db.Where("user_id = ?", userID).Find(&completions).Error
	return completions, err
}
