package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Markosdlpz02/Practica4/internal/models"
	"github.com/Markosdlpz02/Practica4/internal/storage"
)

type mockUserStore struct {
	listUsersFn   func(ctx context.Context) ([]models.User, error)
	userByIDFn    func(ctx context.Context, id string) (*models.User, error)
	userByEmailFn func(ctx context.Context, email string) (*models.User, error)
	createUserFn  func(ctx context.Context, user *models.User) error
	deleteUserFn  func(ctx context.Context, id string) error
}

func (m *mockUserStore) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockUserStore) UserByID(ctx context.Context, id string) (*models.User, error) {
	return m.userByIDFn(ctx, id)
}

func (m *mockUserStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.userByEmailFn(ctx, email)
}

func (m *mockUserStore) CreateUser(ctx context.Context, user *models.User) error {
	return m.createUserFn(ctx, user)
}

func (m *mockUserStore) DeleteUser(ctx context.Context, id string) error {
	return m.deleteUserFn(ctx, id)
}

type mockProjectStore struct {
	listProjectsFn     func(ctx context.Context) ([]models.Project, error)
	projectByIDFn      func(ctx context.Context, id string) (*models.Project, error)
	projectsByUserIDFn func(ctx context.Context, userID string) ([]models.Project, error)
	createProjectFn    func(ctx context.Context, project *models.Project) error
	deleteProjectFn    func(ctx context.Context, id string) error
}

func (m *mockProjectStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	return m.listProjectsFn(ctx)
}

func (m *mockProjectStore) ProjectByID(ctx context.Context, id string) (*models.Project, error) {
	return m.projectByIDFn(ctx, id)
}

func (m *mockProjectStore) ProjectsByUserID(ctx context.Context, userID string) ([]models.Project, error) {
	return m.projectsByUserIDFn(ctx, userID)
}

func (m *mockProjectStore) CreateProject(ctx context.Context, project *models.Project) error {
	return m.createProjectFn(ctx, project)
}

func (m *mockProjectStore) DeleteProject(ctx context.Context, id string) error {
	return m.deleteProjectFn(ctx, id)
}

type mockTaskStore struct {
	listTasksFn        func(ctx context.Context) ([]models.Task, error)
	taskByIDFn         func(ctx context.Context, id string) (*models.Task, error)
	tasksByProjectIDFn func(ctx context.Context, projectID string) ([]models.Task, error)
	createTaskFn       func(ctx context.Context, task *models.Task) error
	moveTaskFn         func(ctx context.Context, taskID, destinationProjectID string) error
	deleteTaskFn       func(ctx context.Context, id string) error
}

func (m *mockTaskStore) ListTasks(ctx context.Context) ([]models.Task, error) {
	return m.listTasksFn(ctx)
}

func (m *mockTaskStore) TaskByID(ctx context.Context, id string) (*models.Task, error) {
	return m.taskByIDFn(ctx, id)
}

func (m *mockTaskStore) TasksByProjectID(ctx context.Context, projectID string) ([]models.Task, error) {
	return m.tasksByProjectIDFn(ctx, projectID)
}

func (m *mockTaskStore) CreateTask(ctx context.Context, task *models.Task) error {
	return m.createTaskFn(ctx, task)
}

func (m *mockTaskStore) MoveTask(ctx context.Context, taskID, destinationProjectID string) error {
	return m.moveTaskFn(ctx, taskID, destinationProjectID)
}

func (m *mockTaskStore) DeleteTask(ctx context.Context, id string) error {
	return m.deleteTaskFn(ctx, id)
}

func newTestRouter(users storage.UserStore, projects storage.ProjectStore, tasks storage.TaskStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := New(zerolog.Nop(), users, projects, tasks)

	router := gin.New()
	router.NoRoute(h.HandleEndpointNotFound)

	router.GET("/users", h.HandleListUsers)
	router.POST("/users", h.HandleCreateUser)
	router.DELETE("/users", h.HandleDeleteUser)

	router.GET("/projects", h.HandleListProjects)
	router.GET("/projects/by-user", h.HandleProjectsByUser)
	router.POST("/projects", h.HandleCreateProject)
	router.DELETE("/projects", h.HandleDeleteProject)

	router.GET("/tasks", h.HandleListTasks)
	router.GET("/tasks/by-project", h.HandleTasksByProject)
	router.POST("/tasks", h.HandleCreateTask)
	router.POST("/tasks/move", h.HandleMoveTask)
	router.DELETE("/tasks", h.HandleDeleteTask)

	return router
}

func performRequest(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &body)
	return body.Error
}

func TestHandleEndpointNotFound(t *testing.T) {
	router := newTestRouter(&mockUserStore{}, &mockProjectStore{}, &mockTaskStore{})

	for _, target := range []string{"/", "/unknown", "/users/123"} {
		w := performRequest(t, router, http.MethodGet, target, nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, "Endpoint not found", errorMessage(t, w))
	}

	// Method mismatches on known paths fall through to the same handler.
	w := performRequest(t, router, http.MethodPut, "/users", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Endpoint not found", errorMessage(t, w))
}
