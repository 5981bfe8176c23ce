package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Markosdlpz02/Practica4/internal/storage"
)

type Handler interface {
	HandleRequestLogger(c *gin.Context)
	HandleEndpointNotFound(c *gin.Context)

	HandleListUsers(c *gin.Context)
	HandleCreateUser(c *gin.Context)
	HandleDeleteUser(c *gin.Context)

	HandleListProjects(c *gin.Context)
	HandleProjectsByUser(c *gin.Context)
	HandleCreateProject(c *gin.Context)
	HandleDeleteProject(c *gin.Context)

	HandleListTasks(c *gin.Context)
	HandleTasksByProject(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleMoveTask(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
}

type handlerImpl struct {
	logger   zerolog.Logger
	users    storage.UserStore
	projects storage.ProjectStore
	tasks    storage.TaskStore
}

func New(
	logger zerolog.Logger,
	userStore storage.UserStore,
	projectStore storage.ProjectStore,
	taskStore storage.TaskStore,
) Handler {
	return &handlerImpl{
		logger:   logger,
		users:    userStore,
		projects: projectStore,
		tasks:    taskStore,
	}
}
