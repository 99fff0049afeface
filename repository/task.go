package repository

import (
	"todolists/model"

	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) FindByID(id int) (model.Task, error) {
	var task model.Task
	err := r.db.Preload("Todo").Preload("State").Where("task_id = ?", id).First(&task).Error
	return task, notFound(err)
}

func (r *TaskRepository) FindAll() ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.Preload("Todo").Preload("State").Order("task_id").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ByTodoID(todoID int) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.Preload("State").Where("todo_id = ?", todoID).Order("task_id").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) Create(task model.Task) (model.Task, error) {
	if err := r.db.Omit("Todo", "State").Create(&task).Error; err != nil {
		return model.Task{}, err
	}
	return r.FindByID(task.TaskID)
}

func (r *TaskRepository) Update(task model.Task) (model.Task, error) {
	err := r.db.Model(&model.Task{}).Where("task_id = ?", task.TaskID).
		Updates(map[string]interface{}{
			"name":     task.Name,
			"priority": task.Priority,
			"todo_id":  task.TodoID,
			"state_id": task.StateID,
		}).Error
	if err != nil {
		return model.Task{}, err
	}
	return r.FindByID(task.TaskID)
}

func (r *TaskRepository) Delete(id int) error {
	var task model.Task
	if err := r.db.Where("task_id = ?", id).First(&task).Error; err != nil {
		return notFound(err)
	}
	return r.db.Delete(&task).Error
}
