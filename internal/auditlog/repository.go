package auditlog

import "gorm.io/gorm"

type Repository interface {
	Create(entry *Entry) error
	ListRecent(limit int) ([]Entry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(entry *Entry) error {
	return r.db.Create(entry).Error
}

func (r *repository) ListRecent(limit int) ([]Entry, error) {
	var entries []Entry
	err := r.db.Order("timestamp desc").Limit(limit).Find(&entries).Error
	return entries, err
}
