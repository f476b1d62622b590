package services

import (
	"fmt"
	"time"

	"taskify/backend/internal/cache"
	"taskify/backend/internal/models"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

const (
	taskCacheTTL = 30 * time.Minute
	listCacheTTL = 5 * time.Minute
)

// CachedTaskService is a read-through cache over a TaskService. Cache
// failures are treated as misses; a request never fails because redis
// is down.
type CachedTaskService struct {
	taskService TaskService
	cache       *cache.RedisCache
}

func NewCachedTaskService(taskService TaskService, cacheInstance *cache.RedisCache) *CachedTaskService {
	return &CachedTaskService{
		taskService: taskService,
		cache:       cacheInstance,
	}
}

func taskKey(id uuid.UUID) string {
	return fmt.Sprintf("task:%s", id.String())
}

func listKey(ownerID uuid.UUID, search string) string {
	return fmt.Sprintf("user_tasks:%s:%s", ownerID.String(), search)
}

func (s *CachedTaskService) ListTasks(db *gorm.DB, ownerID uuid.UUID, search string) ([]models.Task, error) {
	key := listKey(ownerID, search)

	cached := make([]models.Task, 0)
	if err := s.cache.Get(key, &cached); err == nil {
		return cached, nil
	}

	tasks, err := s.taskService.ListTasks(db, ownerID, search)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, tasks, listCacheTTL)

	return tasks, nil
}

func (s *CachedTaskService) GetTask(db *gorm.DB, ownerID, id uuid.UUID) (models.Task, error) {
	key := taskKey(id)

	var cached models.Task
	if err := s.cache.Get(key, &cached); err == nil {
		// The ownership check still applies on a cache hit.
		if cached.UserID != ownerID {
			return models.Task{}, ErrNotTaskOwner
		}
		return cached, nil
	}

	task, err := s.taskService.GetTask(db, ownerID, id)
	if err != nil {
		return models.Task{}, err
	}

	s.cache.Set(key, task, taskCacheTTL)

	return task, nil
}

func (s *CachedTaskService) CreateTask(db *gorm.DB, ownerID uuid.UUID, title, description string) (models.Task, error) {
	task, err := s.taskService.CreateTask(db, ownerID, title, description)
	if err != nil {
		return models.Task{}, err
	}

	s.cache.Set(taskKey(task.ID), task, taskCacheTTL)
	s.invalidateLists(ownerID)

	return task, nil
}

func (s *CachedTaskService) UpdateTask(db *gorm.DB, ownerID, id uuid.UUID, patch TaskPatch) (models.Task, error) {
	task, err := s.taskService.UpdateTask(db, ownerID, id, patch)
	if err != nil {
		return models.Task{}, err
	}

	s.cache.Set(taskKey(id), task, taskCacheTTL)
	s.invalidateLists(ownerID)

	return task, nil
}

func (s *CachedTaskService) DeleteTask(db *gorm.DB, ownerID, id uuid.UUID) error {
	if err := s.taskService.DeleteTask(db, ownerID, id); err != nil {
		return err
	}

	s.cache.Delete(taskKey(id))
	s.invalidateLists(ownerID)

	return nil
}

func (s *CachedTaskService) invalidateLists(ownerID uuid.UUID) {
	s.cache.DeletePattern(fmt.Sprintf("user_tasks:%s:*", ownerID.String()))
}
