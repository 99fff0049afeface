package repository

import (
	"todolists/model"

	"gorm.io/gorm"
)

// RoleRepository serves the static role reference data. Roles are only
// written by the startup seed.
type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) FindByID(id int) (model.Role, error) {
	var role model.Role
	err := r.db.Where("role_id = ?", id).First(&role).Error
	return role, notFound(err)
}

func (r *RoleRepository) FindAll() ([]model.Role, error) {
	var roles []model.Role
	err := r.db.Order("role_id").Find(&roles).Error
	return roles, err
}

func (r *RoleRepository) ByName(name string) (model.Role, error) {
	var role model.Role
	err := r.db.Where("name = ?", name).First(&role).Error
	return role, notFound(err)
}
