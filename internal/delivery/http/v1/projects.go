package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Markosdlpz02/Practica4/internal/models"
	"github.com/Markosdlpz02/Practica4/internal/storage"
)

type projectResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	UserID      string     `json:"user_id"`
}

func newProjectResponse(project *models.Project) projectResponse {
	return projectResponse{
		ID:          project.ID.Hex(),
		Name:        project.Name,
		Description: project.Description,
		StartDate:   project.StartDate,
		EndDate:     project.EndDate,
		UserID:      project.UserID.Hex(),
	}
}

// projectOfUserResponse is the projection returned by /projects/by-user.
// The owner is given by the query itself, so it carries no user_id.
type projectOfUserResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

func (h *handlerImpl) HandleListProjects(c *gin.Context) {
	projects, err := h.projects.ListProjects(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list projects")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	response := make([]projectResponse, len(projects))
	for i := range projects {
		project := &projects[i]

		_, err = h.users.UserByID(c, project.UserID.Hex())
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				h.logger.Error().
					Str("project_id", project.ID.Hex()).
					Str("user_id", project.UserID.Hex()).
					Msg("project references a missing user")
			} else {
				h.logger.Error().
					Err(err).
					Str("project_id", project.ID.Hex()).
					Msg("failed to resolve project owner")
			}
			abort(c, newStatusTextError(http.StatusInternalServerError))
			return
		}

		response[i] = newProjectResponse(project)
	}

	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleProjectsByUser(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		abort(c, newBadRequestError(errMissingUserID.Error()))
		return
	}

	_, err := h.users.UserByID(c, userID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidID):
			abort(c, newBadRequestError(storage.ErrInvalidID.Error()))
		case errors.Is(err, storage.ErrUserNotFound):
			abort(c, newNotFoundError(msgUserNotFound))
		default:
			h.logger.Error().
				Err(err).
				Str("user_id", userID).
				Msg("failed to find user")
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	projects, err := h.projects.ProjectsByUserID(c, userID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to list projects by user")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	response := make([]projectOfUserResponse, len(projects))
	for i := range projects {
		response[i] = projectOfUserResponse{
			ID:          projects[i].ID.Hex(),
			Name:        projects[i].Name,
			Description: projects[i].Description,
			StartDate:   projects[i].StartDate,
			EndDate:     projects[i].EndDate,
		}
	}

	c.JSON(http.StatusOK, response)
}

type createProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"start_date" binding:"required"`
	UserID      string `json:"user_id" binding:"required"`
}

func (h *handlerImpl) HandleCreateProject(c *gin.Context) {
	var req createProjectRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		abort(c, newBadRequestError(errInvalidStartDate.Error()))
		return
	}

	user, err := h.users.UserByID(c, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidID):
			abort(c, newBadRequestError(storage.ErrInvalidID.Error()))
		case errors.Is(err, storage.ErrUserNotFound):
			abort(c, newNotFoundError(msgNoUserWithID))
		default:
			h.logger.Error().
				Err(err).
				Str("user_id", req.UserID).
				Msg("failed to find user")
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		UserID:      user.ID,
	}
	err = h.projects.CreateProject(c, &project)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to create project")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	h.logger.Info().
		Str("project_id", project.ID.Hex()).
		Msg("created project")
	c.JSON(http.StatusCreated, newProjectResponse(&project))
}

func (h *handlerImpl) HandleDeleteProject(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		abort(c, newBadRequestError(errMissingID.Error()))
		return
	}

	err := h.projects.DeleteProject(c, id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidID):
			abort(c, newBadRequestError(storage.ErrInvalidID.Error()))
		case errors.Is(err, storage.ErrProjectNotFound):
			abort(c, newNotFoundError(msgProjectNotFound))
		default:
			h.logger.Error().
				Err(err).
				Msg("failed to delete project")
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	h.logger.Info().
		Str("project_id", id).
		Msg("deleted project")
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully."})
}
