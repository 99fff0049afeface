package dto

import (
	"todolists/model"
)

// TaskToEntity builds the persisted task from its form shape. The todo and
// state must already be resolved by id through the services; the form's bare
// ids are never trusted as an object graph.
func TaskToEntity(req TaskRequest, todo model.ToDo, state model.State) (model.Task, error) {
	priority, err := model.ParsePriority(req.Priority)
	if err != nil {
		return model.Task{}, err
	}
	return model.Task{
		TaskID:   req.ID,
		Name:     req.Name,
		Priority: priority,
		TodoID:   todo.TodoID,
		Todo:     todo,
		StateID:  state.StateID,
		State:    state,
	}, nil
}

// TaskToRequest converts a persisted task back to its form shape.
func TaskToRequest(task model.Task) TaskRequest {
	return TaskRequest{
		ID:       task.TaskID,
		Name:     task.Name,
		Priority: string(task.Priority),
		TodoID:   task.TodoID,
		StateID:  task.StateID,
	}
}

func TodoToRequest(todo model.ToDo) TodoRequest {
	return TodoRequest{ID: todo.TodoID, Title: todo.Title}
}

// UserToRequest leaves Password empty: the stored hash never travels back to
// a form.
func UserToRequest(user model.User) UserRequest {
	return UserRequest{
		ID:        user.UserID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		RoleID:    user.RoleID,
	}
}
