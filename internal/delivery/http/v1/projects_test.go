package v1

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Markosdlpz02/Practica4/internal/models"
	"github.com/Markosdlpz02/Practica4/internal/storage"
)

func TestHandleListProjects(t *testing.T) {
	owner := models.User{
		ID:    primitive.NewObjectID(),
		Name:  "Ana",
		Email: "ana@x.com",
	}
	project := models.Project{
		ID:        primitive.NewObjectID(),
		Name:      "Website",
		StartDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		UserID:    owner.ID,
	}

	t.Run("Success", func(t *testing.T) {
		users := &mockUserStore{
			userByIDFn: func(ctx context.Context, id string) (*models.User, error) {
				require.Equal(t, owner.ID.Hex(), id)
				return &owner, nil
			},
		}
		projects := &mockProjectStore{
			listProjectsFn: func(ctx context.Context) ([]models.Project, error) {
				return []models.Project{project}, nil
			},
		}
		router := newTestRouter(users, projects, &mockTaskStore{})

		w := performRequest(t, router, http.MethodGet, "/projects", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var response []projectResponse
		decodeBody(t, w, &response)
		require.Len(t, response, 1)
		assert.Equal(t, project.ID.Hex(), response[0].ID)
		assert.Equal(t, owner.ID.Hex(), response[0].UserID)
		assert.Nil(t, response[0].EndDate)
	})

	t.Run("InconsistentOwnerReference", func(t *testing.T) {
		users := &mockUserStore{
			userByIDFn: func(ctx context.Context, id string) (*models.User, error) {
				return nil, storage.ErrUserNotFound
			},
		}
		projects := &mockProjectStore{
			listProjectsFn: func(ctx context.Context) ([]models.Project, error) {
				return []models.Project{project}, nil
			},
		}
		router := newTestRouter(users, projects, &mockTaskStore{})

		w := performRequest(t, router, http.MethodGet, "/projects", nil)
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandleProjectsByUser(t *testing.T) {
	owner := models.User{
		ID:    primitive.NewObjectID(),
		Name:  "Ana",
		Email: "ana@x.com",
	}
	projects := []models.Project{
		{
			ID:        primitive.NewObjectID(),
			Name:      "Website",
			StartDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			UserID:    owner.ID,
		},
		{
			ID:        primitive.NewObjectID(),
			Name:      "Backend",
			StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			UserID:    owner.ID,
		},
	}

	t.Run("Success", func(t *testing.T) {
		users := &mockUserStore{
			userByIDFn: func(ctx context.Context, id string) (*models.User, error) {
				return &owner, nil
			},
		}
		projectStore := &mockProjectStore{
			projectsByUserIDFn: func(ctx context.Context, userID string) ([]models.Project, error) {
				require.Equal(t, owner.ID.Hex(), userID)
				return projects, nil
			},
		}
		router := newTestRouter(users, projectStore, &mockTaskStore{})

		w := performRequest(t, router, http.MethodGet, "/projects/by-user?user_id="+owner.ID.Hex(), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var response []projectOfUserResponse
		decodeBody(t, w, &response)
		require.Len(t, response, 2)
		assert.Equal(t, "Website", response[0].Name)

		// The projection never re-includes the owner reference.
		assert.NotContains(t, w.Body.String(), "user_id")
	})

	t.Run("MissingParam", func(t *testing.T) {
		router := newTestRouter(&mockUserStore{}, &mockProjectStore{}, &mockTaskStore{})

		w := performRequest(t, router, http.MethodGet, "/projects/by-user", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("InvalidUserID", func(t *testing.T) {
		users := &mockUserStore{
			userByIDFn: func(ctx context.Context, id string) (*models.User, error) {
				return nil, storage.ErrInvalidID
			},
		}
		router := newTestRouter(users, &mockProjectStore{}, &mockTaskStore{})

		w := performRequest(t, router, http.MethodGet, "/projects/by-user?user_id=zzz", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		users := &mockUserStore{
			userByIDFn: func(ctx context.Context, id string) (*models.User, error) {
				return nil, storage.ErrUserNotFound
			},
		}
		router := newTestRouter(users, &mockProjectStore{}, &mockTaskStore{})

		w := performRequest(t, router, http.MethodGet, "/projects/by-user?user_id="+primitive.NewObjectID().Hex(), nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Usuario no encontrado", errorMessage(t, w))
	})
}

func TestHandleCreateProject(t *testing.T) {
	owner := models.User{
		ID:    primitive.NewObjectID(),
		Name:  "Ana",
		Email: "ana@x.com",
	}

	t.Run("Success", func(t *testing.T) {
		users := &mockUserStore{
			userByIDFn: func(ctx context.Context, id string) (*models.User, error) {
				require.Equal(t, owner.ID.Hex(), id)
				return &owner, nil
			},
		}
		projects := &mockProjectStore{
			createProjectFn: func(ctx context.Context, project *models.Project) error {
				project.ID = primitive.NewObjectID()
				return nil
			},
		}
		router := newTestRouter(users, projects, &mockTaskStore{})

		w := performRequest(t, router, http.MethodPost, "/projects", map[string]string{
			"name":        "Website",
			"description": "Company website revamp",
			"start_date":  "2024-01-15",
			"user_id":     owner.ID.Hex(),
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var response projectResponse
		decodeBody(t, w, &response)
		assert.NotEmpty(t, response.ID)
		assert.Equal(t, "Website", response.Name)
		assert.Equal(t, owner.ID.Hex(), response.UserID)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), response.StartDate)
		assert.Nil(t, response.EndDate, "end_date must be absent at creation")
	})

	t.Run("MissingFields", func(t *testing.T) {
		created := false
		projects := &mockProjectStore{
			createProjectFn: func(ctx context.Context, project *models.Project) error {
				created = true
				return nil
			},
		}
		router := newTestRouter(&mockUserStore{}, projects, &mockTaskStore{})

		bodies := []map[string]string{
			{},
			{"name": "Website"},
			{"name": "Website", "start_date": "2024-01-15"},
			{"start_date": "2024-01-15", "user_id": owner.ID.Hex()},
		}
		for _, body := range bodies {
			w := performRequest(t, router, http.MethodPost, "/projects", body)
			require.Equal(t, http.StatusBadRequest, w.Code)
		}
		assert.False(t, created)
	})

	t.Run("InvalidStartDate", func(t *testing.T) {
		router := newTestRouter(&mockUserStore{}, &mockProjectStore{}, &mockTaskStore{})

		w := performRequest(t, router, http.MethodPost, "/projects", map[string]string{
			"name":       "Website",
			"start_date": "not-a-date",
			"user_id":    owner.ID.Hex(),
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		created := false
		users := &mockUserStore{
			userByIDFn: func(ctx context.Context, id string) (*models.User, error) {
				return nil, storage.ErrUserNotFound
			},
		}
		projects := &mockProjectStore{
			createProjectFn: func(ctx context.Context, project *models.Project) error {
				created = true
				return nil
			},
		}
		router := newTestRouter(users, projects, &mockTaskStore{})

		w := performRequest(t, router, http.MethodPost, "/projects", map[string]string{
			"name":       "Website",
			"start_date": "2024-01-15",
			"user_id":    primitive.NewObjectID().Hex(),
		})
		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "No existe un usuario con ese ID", errorMessage(t, w))
		assert.False(t, created, "no document may be inserted when the owner is missing")
	})
}

func TestHandleDeleteProject(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		deleteErr      error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Success",
			target:         "/projects?id=" + primitive.NewObjectID().Hex(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "MissingID",
			target:         "/projects",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "NotFound",
			target:         "/projects?id=" + primitive.NewObjectID().Hex(),
			deleteErr:      storage.ErrProjectNotFound,
			expectedStatus: http.StatusNotFound,
			expectedError:  "Proyecto no encontrado",
		},
		{
			name:           "StoreFailure",
			target:         "/projects?id=" + primitive.NewObjectID().Hex(),
			deleteErr:      errors.New("connection reset"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			projects := &mockProjectStore{
				deleteProjectFn: func(ctx context.Context, id string) error {
					return tc.deleteErr
				},
			}
			router := newTestRouter(&mockUserStore{}, projects, &mockTaskStore{})

			w := performRequest(t, router, http.MethodDelete, tc.target, nil)
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedError != "" {
				assert.Equal(t, tc.expectedError, errorMessage(t, w))
			}
			if tc.expectedStatus == http.StatusOK {
				var body struct {
					Message string `json:"message"`
				}
				decodeBody(t, w, &body)
				assert.Equal(t, "Project deleted successfully.", body.Message)
			}
		})
	}
}
