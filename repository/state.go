package repository

import (
	"todolists/model"

	"gorm.io/gorm"
)

// StateRepository serves the workflow state reference data.
type StateRepository struct {
	db *gorm.DB
}

func NewStateRepository(db *gorm.DB) *StateRepository {
	return &StateRepository{db: db}
}

func (r *StateRepository) FindByID(id int) (model.State, error) {
	var state model.State
	err := r.db.Where("state_id = ?", id).First(&state).Error
	return state, notFound(err)
}

func (r *StateRepository) FindAll() ([]model.State, error) {
	var states []model.State
	err := r.db.Order("state_id").Find(&states).Error
	return states, err
}

// ByName matches the exact state name and reports ErrNotFound when absent.
func (r *StateRepository) ByName(name string) (model.State, error) {
	var state model.State
	err := r.db.Where("name = ?", name).First(&state).Error
	return state, notFound(err)
}
