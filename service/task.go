package service

import (
	"todolists/model"
	"todolists/repository"
)

type TaskService struct {
	tasks *repository.TaskRepository
}

func NewTaskService(tasks *repository.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) Create(task model.Task) (model.Task, error) {
	return s.tasks.Create(task)
}

func (s *TaskService) ReadByID(id int) (model.Task, error) {
	task, err := s.tasks.FindByID(id)
	return task, wrapNotFound(err, "task", id)
}

func (s *TaskService) Update(task model.Task) (model.Task, error) {
	return s.tasks.Update(task)
}

func (s *TaskService) Delete(id int) error {
	return wrapNotFound(s.tasks.Delete(id), "task", id)
}

func (s *TaskService) GetAll() ([]model.Task, error) {
	return s.tasks.FindAll()
}

func (s *TaskService) GetByTodoID(todoID int) ([]model.Task, error) {
	return s.tasks.ByTodoID(todoID)
}
