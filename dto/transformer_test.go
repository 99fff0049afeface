package dto_test

import (
	"testing"

	"todolists/dto"
	"todolists/model"
)

func TestTaskRoundTrip(t *testing.T) {
	todo := model.ToDo{TodoID: 13, Title: "list"}
	state := model.State{StateID: 2, Name: "In Progress"}
	req := dto.TaskRequest{
		ID:       7,
		Name:     "TestTaskName",
		Priority: "LOW",
		TodoID:   13,
		StateID:  2,
	}

	entity, err := dto.TaskToEntity(req, todo, state)
	if err != nil {
		t.Fatalf("TaskToEntity: %v", err)
	}
	if entity.TaskID != 7 || entity.Name != "TestTaskName" {
		t.Errorf("id/name not carried through: %+v", entity)
	}
	if entity.Priority != model.PriorityLow {
		t.Errorf("expected priority LOW, got %q", entity.Priority)
	}
	if entity.TodoID != 13 || entity.Todo.TodoID != 13 {
		t.Errorf("todo reference not resolved: %+v", entity)
	}
	if entity.StateID != 2 || entity.State.Name != "In Progress" {
		t.Errorf("state reference not resolved: %+v", entity)
	}

	back := dto.TaskToRequest(entity)
	if back != req {
		t.Errorf("round trip mismatch: got %+v, want %+v", back, req)
	}
}

func TestTaskToEntityRejectsUnknownPriority(t *testing.T) {
	req := dto.TaskRequest{Name: "x", Priority: "URGENT", TodoID: 1, StateID: 1}
	if _, err := dto.TaskToEntity(req, model.ToDo{TodoID: 1}, model.State{StateID: 1}); err == nil {
		t.Error("expected error for unknown priority")
	}
}

func TestUserToRequestOmitsPassword(t *testing.T) {
	user := model.User{
		UserID:    4,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "$2a$10$hash",
		RoleID:    2,
	}
	req := dto.UserToRequest(user)
	if req.Password != "" {
		t.Error("stored hash leaked into the form shape")
	}
	if req.ID != 4 || req.Email != "ada@example.com" || req.RoleID != 2 {
		t.Errorf("fields not carried through: %+v", req)
	}
}

func TestParsePriority(t *testing.T) {
	for _, name := range []string{"LOW", "MEDIUM", "HIGH"} {
		if _, err := model.ParsePriority(name); err != nil {
			t.Errorf("ParsePriority(%s): %v", name, err)
		}
	}
	if _, err := model.ParsePriority("low"); err == nil {
		t.Error("priority names are case sensitive; expected error")
	}
}
