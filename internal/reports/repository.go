package reports

import "gorm.io/gorm"

type Repository interface {
	Create(report *WeeklyReport) error
	Update(report *WeeklyReport) error
	FindByID(id string) (WeeklyReport, error)
	ListAll() ([]WeeklyReport, error)
	ListByUser(userID string) ([]WeeklyReport, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(report *WeeklyReport) error {
	return r.db.Create(report).Error
}

func (r *repository) Update(report *WeeklyReport) error {
	return r.db.Save(report).Error
}

func (r *repository) FindByID(id string) (WeeklyReport, error) {
	var report WeeklyReport
	err := r.db.Where("id = ?", id).First(&report).Error
	return report, err
}

// ListAll returns every report newest first, the order the
// aggregation and list screens expect.
func (r *repository) ListAll() ([]WeeklyReport, error) {
	var reports []WeeklyReport
	err := r.db.Order("timestamp desc").Find(&reports).Error
	return reports, err
}

func (r *repository) ListByUser(userID string) ([]WeeklyReport, error) {
	var reports []WeeklyReport
	err := r.db.Where("user_id = ?", userID).Order("timestamp desc").Find(&reports).Error
	return reports, err
}
