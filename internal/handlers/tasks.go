package handlers

import (
	"errors"
	"net/http"

	"taskify/backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

type TaskHandler struct {
	db          *gorm.DB
	taskService services.TaskService
}

func NewTaskHandler(db *gorm.DB, taskService services.TaskService) *TaskHandler {
	return &TaskHandler{db: db, taskService: taskService}
}

func (h *TaskHandler) GetTasks(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}

	search := c.Query("search")

	tasks, err := h.taskService.ListTasks(h.db, callerID, search)
	if err != nil {
		handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"tasks":   tasks,
	})
}

func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}

	id := uuid.FromStringOrNil(c.Param("id"))

	task, err := h.taskService.GetTask(h.db, callerID, id)
	if err != nil {
		handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"task":    task,
	})
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var taskInput struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&taskInput); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(h.db, callerID, taskInput.Title, taskInput.Description)
	if err != nil {
		handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"task":    task,
	})
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}

	id := uuid.FromStringOrNil(c.Param("id"))

	var patch services.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(h.db, callerID, id, patch)
	if err != nil {
		handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"task":    task,
	})
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	callerID, ok := currentUserID(c)
	if !ok {
		return
	}

	id := uuid.FromStringOrNil(c.Param("id"))

	if err := h.taskService.DeleteTask(h.db, callerID, id); err != nil {
		handleTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task deleted",
	})
}

// handleTaskError maps the service error taxonomy onto status codes.
// Anything unrecognized is a store failure; its message is surfaced in
// the envelope.
func handleTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTitleRequired):
		respondError(c, http.StatusBadRequest, "Please provide a task title")
	case errors.Is(err, services.ErrNotTaskOwner):
		respondError(c, http.StatusForbidden, "Not authorized to access this task")
	case errors.Is(err, services.ErrTaskNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		respondError(c, http.StatusNotFound, "Task not found")
	default:
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}
