package user_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"todolists/config"
	"todolists/connection"
	"todolists/model"
	"todolists/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setup(t *testing.T) (*gorm.DB, *gin.Engine) {
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
	cfg := &config.Config{TemplatesGlob: "../../templates/*.html"}
	return db, connection.NewRouter(db, cfg)
}

func seedUser(t *testing.T, db *gorm.DB, email, roleName string) model.User {
	t.Helper()
	role, err := repository.NewRoleRepository(db).ByName(roleName)
	if err != nil {
		t.Fatalf("seeded role %q missing: %v", roleName, err)
	}
	user, err := repository.NewUserRepository(db).Create(model.User{
		FirstName: "User",
		LastName:  "Tester",
		Email:     email,
		Password:  "hash",
		RoleID:    role.RoleID,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateUser(t *testing.T) {
	db, router := setup(t)

	w := postForm(router, "/users/create", url.Values{
		"firstName": {"New"},
		"lastName":  {"Signup"},
		"email":     {"signup@example.com"},
		"password":  {"secret"},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d: %s", w.Code, w.Body.String())
	}

	created, ok, err := repository.NewUserRepository(db).ByEmail("signup@example.com")
	if err != nil || !ok {
		t.Fatalf("signed-up user not found: ok=%v err=%v", ok, err)
	}
	if created.Role.Name != model.RoleUser {
		t.Errorf("new users must get the %q role, got %q", model.RoleUser, created.Role.Name)
	}
	if created.Password == "secret" {
		t.Error("password stored as plaintext")
	}
	want := fmt.Sprintf("/todos/all/users/%d", created.UserID)
	if got := w.Header().Get("Location"); got != want {
		t.Errorf("expected Location %q, got %q", want, got)
	}
}

func TestCreateUserInvalidEmail(t *testing.T) {
	db, router := setup(t)

	w := postForm(router, "/users/create", url.Values{
		"firstName": {"Bad"},
		"lastName":  {"Email"},
		"email":     {"not-an-email"},
		"password":  {"secret"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected form re-render with 200, got %d", w.Code)
	}
	_, ok, err := repository.NewUserRepository(db).ByEmail("not-an-email")
	if err != nil {
		t.Fatalf("ByEmail: %v", err)
	}
	if ok {
		t.Error("invalid email must not create a user")
	}
}

func TestUpdateKeepsRoleForPlainUsers(t *testing.T) {
	db, router := setup(t)
	user := seedUser(t, db, "plain@example.com", model.RoleUser)
	admin, err := repository.NewRoleRepository(db).ByName(model.RoleAdmin)
	if err != nil {
		t.Fatalf("admin role: %v", err)
	}

	w := postForm(router, fmt.Sprintf("/users/%d/update", user.UserID), url.Values{
		"firstName": {"Still"},
		"lastName":  {"Plain"},
		"email":     {"plain@example.com"},
		"roleId":    {strconv.Itoa(admin.RoleID)},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d: %s", w.Code, w.Body.String())
	}

	got, err := repository.NewUserRepository(db).FindByID(user.UserID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Role.Name != model.RoleUser {
		t.Errorf("role of a %q user must not change, got %q", model.RoleUser, got.Role.Name)
	}
	if got.FirstName != "Still" {
		t.Errorf("profile fields must still update: %+v", got)
	}
}

func TestUpdateAppliesRoleForAdmins(t *testing.T) {
	db, router := setup(t)
	user := seedUser(t, db, "admin@example.com", model.RoleAdmin)
	plain, err := repository.NewRoleRepository(db).ByName(model.RoleUser)
	if err != nil {
		t.Fatalf("user role: %v", err)
	}

	w := postForm(router, fmt.Sprintf("/users/%d/update", user.UserID), url.Values{
		"firstName": {"Demoted"},
		"lastName":  {"Admin"},
		"email":     {"admin@example.com"},
		"roleId":    {strconv.Itoa(plain.RoleID)},
	})
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d: %s", w.Code, w.Body.String())
	}

	got, err := repository.NewUserRepository(db).FindByID(user.UserID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Role.Name != model.RoleUser {
		t.Errorf("submitted role must apply for non-USER users, got %q", got.Role.Name)
	}
}

func TestDeleteUser(t *testing.T) {
	db, router := setup(t)
	user := seedUser(t, db, "delete@example.com", model.RoleUser)

	w := postForm(router, fmt.Sprintf("/users/%d/delete", user.UserID), url.Values{})
	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	if got := w.Header().Get("Location"); got != "/users/all" {
		t.Errorf("expected Location /users/all, got %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/users/%d/read", user.UserID), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 reading a deleted user, got %d", rec.Code)
	}
}

func TestHomeListsUsers(t *testing.T) {
	db, router := setup(t)
	seedUser(t, db, "listed@example.com", model.RoleUser)

	for _, path := range []string{"/", "/home"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), "listed@example.com") {
			t.Errorf("GET %s: user listing missing seeded user", path)
		}
	}
}
