package repository

import (
	"todolists/model"

	"gorm.io/gorm"
)

type ToDoRepository struct {
	db *gorm.DB
}

func NewToDoRepository(db *gorm.DB) *ToDoRepository {
	return &ToDoRepository{db: db}
}

func (r *ToDoRepository) FindByID(id int) (model.ToDo, error) {
	var todo model.ToDo
	err := r.db.Preload("Owner").Preload("Collaborators").Where("todo_id = ?", id).First(&todo).Error
	return todo, notFound(err)
}

func (r *ToDoRepository) FindAll() ([]model.ToDo, error) {
	var todos []model.ToDo
	err := r.db.Preload("Owner").Preload("Collaborators").Order("todo_id").Find(&todos).Error
	return todos, err
}

// ByUserID returns every todo the user owns or collaborates on.
func (r *ToDoRepository) ByUserID(userID int) ([]model.ToDo, error) {
	var todos []model.ToDo
	err := r.db.Preload("Owner").Preload("Collaborators").
		Where("owner_id = ? OR todo_id IN (?)", userID,
			r.db.Table("todo_collaborators").Select("todo_id").Where("user_id = ?", userID)).
		Order("todo_id").
		Find(&todos).Error
	return todos, err
}

func (r *ToDoRepository) Create(todo model.ToDo) (model.ToDo, error) {
	if err := r.db.Omit("Collaborators", "Owner").Create(&todo).Error; err != nil {
		return model.ToDo{}, err
	}
	return r.FindByID(todo.TodoID)
}

// Update writes the todo's own columns. Owner and collaborator links are
// never touched here; collaborators change only through AddCollaborator and
// RemoveCollaborator.
func (r *ToDoRepository) Update(todo model.ToDo) (model.ToDo, error) {
	err := r.db.Model(&model.ToDo{}).Where("todo_id = ?", todo.TodoID).
		Updates(map[string]interface{}{"title": todo.Title}).Error
	if err != nil {
		return model.ToDo{}, err
	}
	return r.FindByID(todo.TodoID)
}

func (r *ToDoRepository) Delete(id int) error {
	var todo model.ToDo
	if err := r.db.Where("todo_id = ?", id).First(&todo).Error; err != nil {
		return notFound(err)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("todo_id = ?", id).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM todo_collaborators WHERE todo_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&todo).Error
	})
}

// AddCollaborator inserts a single link row. Appending a user that is
// already linked is a no-op in gorm's association handling.
func (r *ToDoRepository) AddCollaborator(todoID, userID int) error {
	todo := model.ToDo{TodoID: todoID}
	return r.db.Model(&todo).Association("Collaborators").Append(&model.User{UserID: userID})
}

// RemoveCollaborator deletes the link row; removing an absent collaborator
// leaves the set unchanged.
func (r *ToDoRepository) RemoveCollaborator(todoID, userID int) error {
	todo := model.ToDo{TodoID: todoID}
	return r.db.Model(&todo).Association("Collaborators").Delete(&model.User{UserID: userID})
}
