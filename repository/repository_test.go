package repository_test

import (
	"fmt"
	"testing"
	"time"

	"todolists/connection"
	"todolists/model"
	"todolists/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := connection.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := connection.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) model.User {
	t.Helper()
	role, err := repository.NewRoleRepository(db).ByName(model.RoleUser)
	if err != nil {
		t.Fatalf("seeded role missing: %v", err)
	}
	user, err := repository.NewUserRepository(db).Create(model.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "hash",
		RoleID:    role.RoleID,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTodo(t *testing.T, db *gorm.DB, title string, ownerID int) model.ToDo {
	t.Helper()
	todo, err := repository.NewToDoRepository(db).Create(model.ToDo{
		Title:     title,
		CreatedAt: time.Now(),
		OwnerID:   ownerID,
	})
	if err != nil {
		t.Fatalf("create todo: %v", err)
	}
	return todo
}

func TestStateByName(t *testing.T) {
	db := setupDB(t)
	states := repository.NewStateRepository(db)

	state, err := states.ByName("New")
	if err != nil {
		t.Fatalf("ByName(New): %v", err)
	}
	if state.Name != "New" {
		t.Errorf("expected state New, got %q", state.Name)
	}

	if _, err := states.ByName("Nope"); err != repository.ErrNotFound {
		t.Errorf("expected ErrNotFound for absent state, got %v", err)
	}
}

func TestUserByEmail(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUserRepository(db)
	created := createUser(t, db, "byemail@example.com")

	found, ok, err := users.ByEmail("byemail@example.com")
	if err != nil {
		t.Fatalf("ByEmail: %v", err)
	}
	if !ok || found.UserID != created.UserID {
		t.Errorf("expected user %d, got %+v ok=%v", created.UserID, found, ok)
	}

	_, ok, err = users.ByEmail("absent@example.com")
	if err != nil {
		t.Fatalf("ByEmail absent returned error: %v", err)
	}
	if ok {
		t.Error("expected absent email to report found=false")
	}
}

func TestToDoByUserID(t *testing.T) {
	db := setupDB(t)
	todos := repository.NewToDoRepository(db)

	owner := createUser(t, db, "owner@example.com")
	collab := createUser(t, db, "collab@example.com")
	other := createUser(t, db, "other@example.com")

	owned := createTodo(t, db, "owned", owner.UserID)
	shared := createTodo(t, db, "shared", other.UserID)
	createTodo(t, db, "unrelated", other.UserID)

	if err := todos.AddCollaborator(shared.TodoID, collab.UserID); err != nil {
		t.Fatalf("add collaborator: %v", err)
	}

	ownerTodos, err := todos.ByUserID(owner.UserID)
	if err != nil {
		t.Fatalf("ByUserID(owner): %v", err)
	}
	if len(ownerTodos) != 1 || ownerTodos[0].TodoID != owned.TodoID {
		t.Errorf("expected only the owned todo, got %+v", ownerTodos)
	}

	collabTodos, err := todos.ByUserID(collab.UserID)
	if err != nil {
		t.Fatalf("ByUserID(collab): %v", err)
	}
	if len(collabTodos) != 1 || collabTodos[0].TodoID != shared.TodoID {
		t.Errorf("expected only the shared todo, got %+v", collabTodos)
	}
}

func TestCollaboratorLinks(t *testing.T) {
	db := setupDB(t)
	todos := repository.NewToDoRepository(db)

	owner := createUser(t, db, "owner2@example.com")
	collab := createUser(t, db, "collab2@example.com")
	todo := createTodo(t, db, "list", owner.UserID)

	if err := todos.AddCollaborator(todo.TodoID, collab.UserID); err != nil {
		t.Fatalf("add collaborator: %v", err)
	}
	got, err := todos.FindByID(todo.TodoID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if len(got.Collaborators) != 1 || got.Collaborators[0].UserID != collab.UserID {
		t.Fatalf("expected collaborator %d, got %+v", collab.UserID, got.Collaborators)
	}

	// adding twice must not duplicate the link
	if err := todos.AddCollaborator(todo.TodoID, collab.UserID); err != nil {
		t.Fatalf("re-add collaborator: %v", err)
	}
	got, _ = todos.FindByID(todo.TodoID)
	if len(got.Collaborators) != 1 {
		t.Errorf("expected 1 collaborator after duplicate add, got %d", len(got.Collaborators))
	}

	if err := todos.RemoveCollaborator(todo.TodoID, collab.UserID); err != nil {
		t.Fatalf("remove collaborator: %v", err)
	}
	got, _ = todos.FindByID(todo.TodoID)
	if len(got.Collaborators) != 0 {
		t.Errorf("expected no collaborators after remove, got %+v", got.Collaborators)
	}

	// removing an absent collaborator is a no-op
	if err := todos.RemoveCollaborator(todo.TodoID, collab.UserID); err != nil {
		t.Errorf("remove of absent collaborator returned error: %v", err)
	}
}

func TestTaskByTodoID(t *testing.T) {
	db := setupDB(t)
	tasks := repository.NewTaskRepository(db)
	states := repository.NewStateRepository(db)

	owner := createUser(t, db, "taskowner@example.com")
	todo := createTodo(t, db, "with tasks", owner.UserID)
	other := createTodo(t, db, "without", owner.UserID)

	state, _ := states.ByName("New")
	for _, name := range []string{"first", "second"} {
		if _, err := tasks.Create(model.Task{
			Name:     name,
			Priority: model.PriorityLow,
			TodoID:   todo.TodoID,
			StateID:  state.StateID,
		}); err != nil {
			t.Fatalf("create task %q: %v", name, err)
		}
	}

	got, err := tasks.ByTodoID(todo.TodoID)
	if err != nil {
		t.Fatalf("ByTodoID: %v", err)
	}
	if len(got) != 2 || got[0].Name != "first" || got[1].Name != "second" {
		t.Errorf("expected tasks in insertion order, got %+v", got)
	}

	empty, err := tasks.ByTodoID(other.TodoID)
	if err != nil {
		t.Fatalf("ByTodoID(empty): %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("expected no tasks, got %+v", empty)
	}
}

func TestToDoDeleteCascades(t *testing.T) {
	db := setupDB(t)
	todos := repository.NewToDoRepository(db)
	tasks := repository.NewTaskRepository(db)

	owner := createUser(t, db, "cascade@example.com")
	collab := createUser(t, db, "cascadecollab@example.com")
	todo := createTodo(t, db, "doomed", owner.UserID)

	state, _ := repository.NewStateRepository(db).ByName("New")
	task, err := tasks.Create(model.Task{Name: "inside", Priority: model.PriorityHigh, TodoID: todo.TodoID, StateID: state.StateID})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if err := todos.AddCollaborator(todo.TodoID, collab.UserID); err != nil {
		t.Fatalf("add collaborator: %v", err)
	}

	if err := todos.Delete(todo.TodoID); err != nil {
		t.Fatalf("delete todo: %v", err)
	}
	if _, err := todos.FindByID(todo.TodoID); err != repository.ErrNotFound {
		t.Errorf("expected todo gone, got %v", err)
	}
	if _, err := tasks.FindByID(task.TaskID); err != repository.ErrNotFound {
		t.Errorf("expected contained task gone, got %v", err)
	}
}

func TestUserDeleteCascades(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUserRepository(db)
	todos := repository.NewToDoRepository(db)

	owner := createUser(t, db, "deleteme@example.com")
	todo := createTodo(t, db, "owned by deleted", owner.UserID)

	if err := users.Delete(owner.UserID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if _, err := users.FindByID(owner.UserID); err != repository.ErrNotFound {
		t.Errorf("expected user gone, got %v", err)
	}
	if _, err := todos.FindByID(todo.TodoID); err != repository.ErrNotFound {
		t.Errorf("expected owned todo gone, got %v", err)
	}
}

func TestFindAllOrder(t *testing.T) {
	db := setupDB(t)
	users := repository.NewUserRepository(db)

	first := createUser(t, db, "a@example.com")
	second := createUser(t, db, "b@example.com")

	all, err := users.FindAll()
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 2 || all[0].UserID != first.UserID || all[1].UserID != second.UserID {
		t.Errorf("expected users in insertion order, got %+v", all)
	}
}
