package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Markosdlpz02/Practica4/internal/models"
	"github.com/Markosdlpz02/Practica4/internal/storage"
)

type taskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ProjectID   string     `json:"project_id"`
}

func newTaskResponse(task *models.Task) taskResponse {
	return taskResponse{
		ID:          task.ID.Hex(),
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
		DueDate:     task.DueDate,
		ProjectID:   task.ProjectID.Hex(),
	}
}

// taskOfProjectResponse is the projection returned by /tasks/by-project.
// The project is given by the query itself, so it carries no project_id.
type taskOfProjectResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

func (h *handlerImpl) HandleListTasks(c *gin.Context) {
	tasks, err := h.tasks.ListTasks(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list tasks")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	response := make([]taskResponse, len(tasks))
	for i := range tasks {
		task := &tasks[i]

		_, err = h.projects.ProjectByID(c, task.ProjectID.Hex())
		if err != nil {
			if errors.Is(err, storage.ErrProjectNotFound) {
				h.logger.Error().
					Str("task_id", task.ID.Hex()).
					Str("project_id", task.ProjectID.Hex()).
					Msg("task references a missing project")
			} else {
				h.logger.Error().
					Err(err).
					Str("task_id", task.ID.Hex()).
					Msg("failed to resolve task project")
			}
			abort(c, newStatusTextError(http.StatusInternalServerError))
			return
		}

		response[i] = newTaskResponse(task)
	}

	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleTasksByProject(c *gin.Context) {
	projectID := c.Query("project_id")
	if projectID == "" {
		abort(c, newBadRequestError(errMissingProjectID.Error()))
		return
	}

	_, err := h.projects.ProjectByID(c, projectID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidID):
			abort(c, newBadRequestError(storage.ErrInvalidID.Error()))
		case errors.Is(err, storage.ErrProjectNotFound):
			abort(c, newNotFoundError(msgProjectNotFound))
		default:
			h.logger.Error().
				Err(err).
				Str("project_id", projectID).
				Msg("failed to find project")
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	tasks, err := h.tasks.TasksByProjectID(c, projectID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("project_id", projectID).
			Msg("failed to list tasks by project")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	response := make([]taskOfProjectResponse, len(tasks))
	for i := range tasks {
		response[i] = taskOfProjectResponse{
			ID:          tasks[i].ID.Hex(),
			Title:       tasks[i].Title,
			Description: tasks[i].Description,
			Status:      tasks[i].Status,
			CreatedAt:   tasks[i].CreatedAt,
			DueDate:     tasks[i].DueDate,
		}
	}

	c.JSON(http.StatusOK, response)
}

type createTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"required"`
	DueDate     string `json:"due_date"`
	ProjectID   string `json:"project_id" binding:"required"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req createTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := parseDate(req.DueDate)
		if err != nil {
			abort(c, newBadRequestError(errInvalidDueDate.Error()))
			return
		}
		dueDate = &parsed
	}

	project, err := h.projects.ProjectByID(c, req.ProjectID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidID):
			abort(c, newBadRequestError(storage.ErrInvalidID.Error()))
		case errors.Is(err, storage.ErrProjectNotFound):
			abort(c, newNotFoundError(msgNoProjectWithID))
		default:
			h.logger.Error().
				Err(err).
				Str("project_id", req.ProjectID).
				Msg("failed to find project")
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		DueDate:     dueDate,
		ProjectID:   project.ID,
	}
	err = h.tasks.CreateTask(c, &task)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create task")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	h.logger.Info().
		Str("task_id", task.ID.Hex()).
		Msg("created task")
	c.JSON(http.StatusCreated, newTaskResponse(&task))
}

type moveTaskRequest struct {
	TaskID               string `json:"task_id" binding:"required"`
	DestinationProjectID string `json:"destination_project_id" binding:"required"`
}

// movedTaskResponse is the partial view returned after a move. It
// deliberately carries only the fields the move touched or identified.
type movedTaskResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ProjectID string `json:"project_id"`
}

func (h *handlerImpl) HandleMoveTask(c *gin.Context) {
	var req moveTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task, err := h.tasks.TaskByID(c, req.TaskID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidID):
			abort(c, newBadRequestError(storage.ErrInvalidID.Error()))
		case errors.Is(err, storage.ErrTaskNotFound):
			abort(c, newNotFoundError(msgTaskNotFound))
		default:
			h.logger.Error().
				Err(err).
				Str("task_id", req.TaskID).
				Msg("failed to find task")
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	destination, err := h.projects.ProjectByID(c, req.DestinationProjectID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidID):
			abort(c, newBadRequestError(storage.ErrInvalidID.Error()))
		case errors.Is(err, storage.ErrProjectNotFound):
			abort(c, newNotFoundError(msgUnknownDestination))
		default:
			h.logger.Error().
				Err(err).
				Str("project_id", req.DestinationProjectID).
				Msg("failed to find destination project")
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	err = h.tasks.MoveTask(c, req.TaskID, req.DestinationProjectID)
	if err != nil {
		if errors.Is(err, storage.ErrTaskNotMoved) {
			abort(c, newAPIError(http.StatusInternalServerError, msgMoveFailed))
			return
		}
		h.logger.Error().
			Err(err).
			Str("task_id", req.TaskID).
			Msg("failed to move task")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	h.logger.Info().
		Str("task_id", task.ID.Hex()).
		Str("project_id", destination.ID.Hex()).
		Msg("moved task")
	c.JSON(http.StatusOK, gin.H{
		"message": "Task moved successfully.",
		"task": movedTaskResponse{
			ID:        task.ID.Hex(),
			Title:     task.Title,
			ProjectID: destination.ID.Hex(),
		},
	})
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		abort(c, newBadRequestError(errMissingID.Error()))
		return
	}

	err := h.tasks.DeleteTask(c, id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidID):
			abort(c, newBadRequestError(storage.ErrInvalidID.Error()))
		case errors.Is(err, storage.ErrTaskNotFound):
			abort(c, newNotFoundError(msgTaskNotFound))
		default:
			h.logger.Error().
				Err(err).
				Msg("failed to delete task")
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	h.logger.Info().
		Str("task_id", id).
		Msg("deleted task")
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully."})
}
