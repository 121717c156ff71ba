package school

import "gorm.io/gorm"

type Repository interface {
	CreateSchool(s *School) error
	UpdateSchool(s *School) error
	ListSchools() ([]School, error)
	FindSchoolByID(id string) (School, error)
	CreateSchoolLog(l *SchoolLog) error
	ListSchoolLogs(schoolID string) ([]SchoolLog, error)

	CreatePresident(p *President) error
	UpdatePresident(p *President) error
	ListPresidents() ([]President, error)
	FindPresidentByID(id string) (President, error)
	CreatePresidentLog(l *PresidentWeeklyLog) error
	ListPresidentLogs(presidentID string) ([]PresidentWeeklyLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateSchool(s *School) error {
	return r.db.Create(s).Error
}

func (r *repository) UpdateSchool(s *School) error {
	return r.db.Save(s).Error
}

func (r *repository) ListSchools() ([]School, error) {
	var schools []School
	err := r.db.Order("school_name asc").Find(&schools).Error
	return schools, err
}

func (r *repository) FindSchoolByID(id string) (School, error) {
	var s School
	err := r.db.Where("id = ?", id).First(&s).Error
	return s, err
}

func (r *repository) CreateSchoolLog(l *SchoolLog) error {
	return r.db.Create(l).Error
}

func (r *repository) ListSchoolLogs(schoolID string) ([]SchoolLog, error) {
	var logs []SchoolLog
	err := r.db.Where("school_id = ?", schoolID).Order("timestamp desc").Find(&logs).Error
	return logs, err
}

func (r *repository) CreatePresident(p *President) error {
	return r.db.Create(p).Error
}

func (r *repository) UpdatePresident(p *President) error {
	return r.db.Save(p).Error
}

func (r *repository) ListPresidents() ([]President, error) {
	var presidents []President
	err := r.db.Order("full_name asc").Find(&presidents).Error
	return presidents, err
}

func (r *repository) FindPresidentByID(id string) (President, error) {
	var p President
	err := r.db.Where("id = ?", id).First(&p).Error
	return p, err
}

func (r *repository) CreatePresidentLog(l *PresidentWeeklyLog) error {
	return r.db.Create(l).Error
}

// ListPresidentLogs returns logs newest first, the order the
// performance window expects.
func (r *repository) ListPresidentLogs(presidentID string) ([]PresidentWeeklyLog, error) {
	var logs []PresidentWeeklyLog
	err := r.db.Where("president_id = ?", presidentID).Order("timestamp desc").Find(&logs).Error
	return logs, err
}
