package auth

import "gorm.io/gorm"

type Repository interface {
	FindByEmail(email string) (AppUser, error)
	FindByID(uid string) (AppUser, error)
	Create(user *AppUser) error
	Update(user *AppUser) error
	ListByRole(role Role) ([]AppUser, error)
	ListAll() ([]AppUser, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByEmail(email string) (AppUser, error) {
	var user AppUser
	err := r.db.Where("email = ?", email).First(&user).Error
	return user, err
}

func (r *repository) FindByID(uid string) (AppUser, error) {
	var user AppUser
	err := r.db.Where("uid = ?", uid).First(&user).Error
	return user, err
}

func (r *repository) Create(user *AppUser) error {
	return r.db.Create(user).Error
}

func (r *repository) Update(user *AppUser) error {
	return r.db.Save(user).Error
}

func (r *repository) ListByRole(role Role) ([]AppUser, error) {
	var users []AppUser
	err := r.db.Where("role = ?", role).Order("name asc").Find(&users).Error
	return users, err
}

func (r *repository) ListAll() ([]AppUser, error) {
	var users []AppUser
	err := r.db.Order("name asc").Find(&users).Error
	return users, err
}
