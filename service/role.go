package service

import (
	"todolists/model"
	"todolists/repository"
)

type RoleService struct {
	roles *repository.RoleRepository
}

func NewRoleService(roles *repository.RoleRepository) *RoleService {
	return &RoleService{roles: roles}
}

func (s *RoleService) ReadByID(id int) (model.Role, error) {
	role, err := s.roles.FindByID(id)
	return role, wrapNotFound(err, "role", id)
}

func (s *RoleService) GetAll() ([]model.Role, error) {
	return s.roles.FindAll()
}

func (s *RoleService) GetByName(name string) (model.Role, error) {
	return s.roles.ByName(name)
}
