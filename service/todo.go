package service

import (
	"todolists/model"
	"todolists/repository"
)

type ToDoService struct {
	todos *repository.ToDoRepository
}

func NewToDoService(todos *repository.ToDoRepository) *ToDoService {
	return &ToDoService{todos: todos}
}

func (s *ToDoService) Create(todo model.ToDo) (model.ToDo, error) {
	return s.todos.Create(todo)
}

func (s *ToDoService) ReadByID(id int) (model.ToDo, error) {
	todo, err := s.todos.FindByID(id)
	return todo, wrapNotFound(err, "todo", id)
}

func (s *ToDoService) Update(todo model.ToDo) (model.ToDo, error) {
	return s.todos.Update(todo)
}

func (s *ToDoService) Delete(id int) error {
	return wrapNotFound(s.todos.Delete(id), "todo", id)
}

func (s *ToDoService) GetAll() ([]model.ToDo, error) {
	return s.todos.FindAll()
}

func (s *ToDoService) GetByUserID(userID int) ([]model.ToDo, error) {
	return s.todos.ByUserID(userID)
}

// AddCollaborator links the user to the todo as a single join-row insert.
// The owner is never added: the invariant that the owner stays out of the
// collaborator set is enforced here.
func (s *ToDoService) AddCollaborator(todoID, userID int) error {
	todo, err := s.ReadByID(todoID)
	if err != nil {
		return err
	}
	if todo.OwnerID == userID {
		return nil
	}
	return s.todos.AddCollaborator(todoID, userID)
}

// RemoveCollaborator unlinks the user; removing a user that is not in the
// set is a no-op.
func (s *ToDoService) RemoveCollaborator(todoID, userID int) error {
	if _, err := s.ReadByID(todoID); err != nil {
		return err
	}
	return s.todos.RemoveCollaborator(todoID, userID)
}
