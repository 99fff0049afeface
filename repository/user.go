package repository

import (
	"errors"

	"todolists/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(id int) (model.User, error) {
	var user model.User
	err := r.db.Preload("Role").Where("user_id = ?", id).First(&user).Error
	return user, notFound(err)
}

func (r *UserRepository) FindAll() ([]model.User, error) {
	var users []model.User
	err := r.db.Preload("Role").Order("user_id").Find(&users).Error
	return users, err
}

// ByEmail is a lookup, not a primary accessor: an absent email is reported
// through found=false rather than an error.
func (r *UserRepository) ByEmail(email string) (model.User, bool, error) {
	var user model.User
	err := r.db.Preload("Role").Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.User{}, false, nil
		}
		return model.User{}, false, err
	}
	return user, true, nil
}

func (r *UserRepository) Create(user model.User) (model.User, error) {
	if err := r.db.Omit("Role").Create(&user).Error; err != nil {
		return model.User{}, err
	}
	return r.FindByID(user.UserID)
}

func (r *UserRepository) Update(user model.User) (model.User, error) {
	err := r.db.Model(&model.User{}).Where("user_id = ?", user.UserID).
		Updates(map[string]interface{}{
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"email":      user.Email,
			"password":   user.Password,
			"role_id":    user.RoleID,
		}).Error
	if err != nil {
		return model.User{}, err
	}
	return r.FindByID(user.UserID)
}

// Delete removes the user together with owned todos, their tasks and all
// collaborator links. The cascade is spelled out rather than left to the
// database so the behavior is identical on every backend.
func (r *UserRepository) Delete(id int) error {
	var user model.User
	if err := r.db.Where("user_id = ?", id).First(&user).Error; err != nil {
		return notFound(err)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		var ownedIDs []int
		if err := tx.Model(&model.ToDo{}).Where("owner_id = ?", id).Pluck("todo_id", &ownedIDs).Error; err != nil {
			return err
		}
		if len(ownedIDs) > 0 {
			if err := tx.Where("todo_id IN ?", ownedIDs).Delete(&model.Task{}).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM todo_collaborators WHERE todo_id IN ?", ownedIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("owner_id = ?", id).Delete(&model.ToDo{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Exec("DELETE FROM todo_collaborators WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
