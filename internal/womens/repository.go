package womens

import "gorm.io/gorm"

type Repository interface {
	Create(report *Report) error
	Update(report *Report) error
	FindByID(id string) (Report, error)
	ListAll() ([]Report, error)
	ListByUser(userID string) ([]Report, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(report *Report) error {
	return r.db.Create(report).Error
}

func (r *repository) Update(report *Report) error {
	return r.db.Save(report).Error
}

func (r *repository) FindByID(id string) (Report, error) {
	var report Report
	err := r.db.Where("id = ?", id).First(&report).Error
	return report, err
}

func (r *repository) ListAll() ([]Report, error) {
	var reports []Report
	err := r.db.Order("timestamp desc").Find(&reports).Error
	return reports, err
}

func (r *repository) ListByUser(userID string) ([]Report, error) {
	var reports []Report
	err := r.db.Where("user_id = ?", userID).Order("timestamp desc").Find(&reports).Error
	return reports, err
}
