package kasif

import "gorm.io/gorm"

type Repository interface {
	CreateGroup(g *Group) error
	UpdateGroup(g *Group) error
	FindGroupByID(id string) (Group, error)
	ListGroups() ([]Group, error)
	ListGroupsByNeighborhood(neighborhoodID string) ([]Group, error)
	CreateLog(l *GroupLog) error
	ListLogs(groupID string) ([]GroupLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateGroup(g *Group) error {
	return r.db.Create(g).Error
}

func (r *repository) UpdateGroup(g *Group) error {
	return r.db.Save(g).Error
}

func (r *repository) FindGroupByID(id string) (Group, error) {
	var g Group
	err := r.db.Where("id = ?", id).First(&g).Error
	return g, err
}

func (r *repository) ListGroups() ([]Group, error) {
	var groups []Group
	err := r.db.Order("neighborhood_name asc, group_name asc").Find(&groups).Error
	return groups, err
}

func (r *repository) ListGroupsByNeighborhood(neighborhoodID string) ([]Group, error) {
	var groups []Group
	err := r.db.Where("neighborhood_id = ?", neighborhoodID).Order("group_name asc").Find(&groups).Error
	return groups, err
}

func (r *repository) CreateLog(l *GroupLog) error {
	return r.db.Create(l).Error
}

func (r *repository) ListLogs(groupID string) ([]GroupLog, error) {
	var logs []GroupLog
	err := r.db.Where("group_id = ?", groupID).Order("timestamp desc").Find(&logs).Error
	return logs, err
}
