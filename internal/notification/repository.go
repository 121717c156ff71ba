package notification

import "gorm.io/gorm"

type Repository interface {
	Create(n *Notification) error
	ListNewestFirst() ([]Notification, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(n *Notification) error {
	return r.db.Create(n).Error
}

func (r *repository) ListNewestFirst() ([]Notification, error) {
	var notifications []Notification
	err := r.db.Order("timestamp desc").Find(&notifications).Error
	return notifications, err
}
