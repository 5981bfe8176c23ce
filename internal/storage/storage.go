package storage

import (
	"context"
	"errors"

	"github.com/Markosdlpz02/Practica4/internal/models"
)

var (
	ErrInvalidID         = errors.New("invalid object id")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrProjectNotFound   = errors.New("project not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskNotMoved      = errors.New("task not moved")
)

type UserStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)

	// UserByID returns ErrInvalidID if the given id is not a valid
	// object id hex string, or ErrUserNotFound if no user matches.
	UserByID(ctx context.Context, id string) (*models.User, error)

	// UserByEmail returns ErrUserNotFound if no user has the given email.
	UserByEmail(ctx context.Context, email string) (*models.User, error)

	// CreateUser assigns a fresh id and creation time to the given user
	// and inserts it. It returns ErrUserAlreadyExists if another user
	// already holds the same email.
	CreateUser(ctx context.Context, user *models.User) error

	// DeleteUser returns ErrUserNotFound if no document was removed.
	DeleteUser(ctx context.Context, id string) error
}

type ProjectStore interface {
	ListProjects(ctx context.Context) ([]models.Project, error)

	// ProjectByID returns ErrInvalidID if the given id is not a valid
	// object id hex string, or ErrProjectNotFound if no project matches.
	ProjectByID(ctx context.Context, id string) (*models.Project, error)

	ProjectsByUserID(ctx context.Context, userID string) ([]models.Project, error)

	// CreateProject assigns a fresh id to the given project and inserts it.
	CreateProject(ctx context.Context, project *models.Project) error

	// DeleteProject returns ErrProjectNotFound if no document was removed.
	DeleteProject(ctx context.Context, id string) error
}

type TaskStore interface {
	ListTasks(ctx context.Context) ([]models.Task, error)

	// TaskByID returns ErrInvalidID if the given id is not a valid
	// object id hex string, or ErrTaskNotFound if no task matches.
	TaskByID(ctx context.Context, id string) (*models.Task, error)

	TasksByProjectID(ctx context.Context, projectID string) ([]models.Task, error)

	// CreateTask assigns a fresh id and creation time to the given task
	// and inserts it.
	CreateTask(ctx context.Context, task *models.Task) error

	// MoveTask reassigns the task's project reference to the destination
	// project. It returns ErrTaskNotMoved if the update modified nothing,
	// which covers both a vanished task and a move to the current project.
	MoveTask(ctx context.Context, taskID, destinationProjectID string) error

	// DeleteTask returns ErrTaskNotFound if no document was removed.
	DeleteTask(ctx context.Context, id string) error
}
