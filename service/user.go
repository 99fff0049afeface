package service

import (
	"fmt"

	"todolists/model"
	"todolists/repository"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Create persists a new user. The plaintext password is bcrypt-hashed before
// it reaches the database.
func (s *UserService) Create(user model.User) (model.User, error) {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return model.User{}, err
	}
	user.Password = hashed
	return s.users.Create(user)
}

func (s *UserService) ReadByID(id int) (model.User, error) {
	user, err := s.users.FindByID(id)
	return user, wrapNotFound(err, "user", id)
}

// Update persists the user. A non-empty Password is treated as a new
// plaintext password and re-hashed; an empty one keeps the stored hash.
func (s *UserService) Update(user model.User) (model.User, error) {
	if user.Password == "" {
		existing, err := s.ReadByID(user.UserID)
		if err != nil {
			return model.User{}, err
		}
		user.Password = existing.Password
	} else {
		hashed, err := hashPassword(user.Password)
		if err != nil {
			return model.User{}, err
		}
		user.Password = hashed
	}
	return s.users.Update(user)
}

func (s *UserService) Delete(id int) error {
	return wrapNotFound(s.users.Delete(id), "user", id)
}

func (s *UserService) GetAll() ([]model.User, error) {
	return s.users.FindAll()
}

func (s *UserService) FindByEmail(email string) (model.User, bool, error) {
	return s.users.ByEmail(email)
}

func hashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}
