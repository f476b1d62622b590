package services

import (
	"errors"
	"strings"
	"time"

	"taskify/backend/internal/models"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// TaskPatch carries the fields explicitly present in an update request.
// A nil field was absent and leaves the stored value unchanged; a
// non-nil field overwrites, including explicit zero values for
// Description and Completed. Title is never cleared: an empty title is
// ignored even when present.
type TaskPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

type TaskService interface {
	ListTasks(db *gorm.DB, ownerID uuid.UUID, search string) ([]models.Task, error)
	GetTask(db *gorm.DB, ownerID, id uuid.UUID) (models.Task, error)
	CreateTask(db *gorm.DB, ownerID uuid.UUID, title, description string) (models.Task, error)
	UpdateTask(db *gorm.DB, ownerID, id uuid.UUID, patch TaskPatch) (models.Task, error)
	DeleteTask(db *gorm.DB, ownerID, id uuid.UUID) error
}

type TaskServiceImpl struct{}

func NewTaskService() *TaskServiceImpl {
	return &TaskServiceImpl{}
}

func (s *TaskServiceImpl) ListTasks(db *gorm.DB, ownerID uuid.UUID, search string) ([]models.Task, error) {
	tasks := make([]models.Task, 0)

	query := db.Where("user_id = ?", ownerID)
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	if err := query.Order("created_at DESC").Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// fetchOwned looks the task up by id first, then compares the owner.
// The two steps keep NotFound and NotTaskOwner distinguishable.
func fetchOwned(db *gorm.DB, ownerID, id uuid.UUID) (models.Task, error) {
	var task models.Task
	if err := db.Where("id = ?", id).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, ErrTaskNotFound
		}
		return models.Task{}, err
	}

	if task.UserID != ownerID {
		return models.Task{}, ErrNotTaskOwner
	}

	return task, nil
}

func (s *TaskServiceImpl) GetTask(db *gorm.DB, ownerID, id uuid.UUID) (models.Task, error) {
	return fetchOwned(db, ownerID, id)
}

func (s *TaskServiceImpl) CreateTask(db *gorm.DB, ownerID uuid.UUID, title, description string) (models.Task, error) {
	if title == "" {
		return models.Task{}, ErrTitleRequired
	}

	id, err := uuid.NewV4()
	if err != nil {
		return models.Task{}, err
	}

	now := time.Now().UTC()
	task := models.Task{
		ID:          id,
		UserID:      ownerID,
		Title:       title,
		Description: description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := db.Create(&task).Error; err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (s *TaskServiceImpl) UpdateTask(db *gorm.DB, ownerID, id uuid.UUID, patch TaskPatch) (models.Task, error) {
	task, err := fetchOwned(db, ownerID, id)
	if err != nil {
		return models.Task{}, err
	}

	if patch.Title != nil && *patch.Title != "" {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}
	task.UpdatedAt = time.Now().UTC()

	// Column list is explicit so clearing the description to "" survives
	// gorm's zero-value handling.
	updates := map[string]interface{}{
		"title":       task.Title,
		"description": task.Description,
		"completed":   task.Completed,
		"updated_at":  task.UpdatedAt,
	}
	if err := db.Model(&models.Task{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(db *gorm.DB, ownerID, id uuid.UUID) error {
	if _, err := fetchOwned(db, ownerID, id); err != nil {
		return err
	}

	return db.Where("id = ?", id).Delete(&models.Task{}).Error
}
