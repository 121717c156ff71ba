package profile

import "gorm.io/gorm"

type Repository interface {
	FindByUserID(userID string) (NeighborhoodProfile, error)
	Upsert(p *NeighborhoodProfile) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByUserID(userID string) (NeighborhoodProfile, error) {
	var p NeighborhoodProfile
	err := r.db.Where("user_id = ?", userID).First(&p).Error
	return p, err
}

func (r *repository) Upsert(p *NeighborhoodProfile) error {
	return r.db.Save(p).Error
}
