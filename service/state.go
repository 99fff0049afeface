package service

import (
	"fmt"

	"todolists/model"
	"todolists/repository"
)

type StateService struct {
	states *repository.StateRepository
}

func NewStateService(states *repository.StateRepository) *StateService {
	return &StateService{states: states}
}

func (s *StateService) ReadByID(id int) (model.State, error) {
	state, err := s.states.FindByID(id)
	return state, wrapNotFound(err, "state", id)
}

func (s *StateService) GetAll() ([]model.State, error) {
	return s.states.FindAll()
}

// GetByName fails with the domain not-found error when no state carries the
// exact name, so a missing "New" state surfaces predictably at task creation.
func (s *StateService) GetByName(name string) (model.State, error) {
	state, err := s.states.ByName(name)
	if err != nil {
		if NotFound(err) {
			return model.State{}, fmt.Errorf("state named %q: %w", name, repository.ErrNotFound)
		}
		return model.State{}, err
	}
	return state, nil
}
