package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Markosdlpz02/Practica4/internal/models"
	"github.com/Markosdlpz02/Practica4/internal/storage"
)

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResponse(user *models.User) userResponse {
	return userResponse{
		ID:        user.ID.Hex(),
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func (h *handlerImpl) HandleListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list users")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	response := make([]userResponse, len(users))
	for i := range users {
		response[i] = newUserResponse(&users[i])
	}

	c.JSON(http.StatusOK, response)
}

type createUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

func (h *handlerImpl) HandleCreateUser(c *gin.Context) {
	var req createUserRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	_, err = h.users.UserByEmail(c, req.Email)
	if err == nil {
		abort(c, newConflictError(msgUserAlreadyExists))
		return
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		h.logger.Error().
			Err(err).
			Msg("failed to check email uniqueness")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	user := models.User{
		Name:  req.Name,
		Email: req.Email,
	}
	err = h.users.CreateUser(c, &user)
	if err != nil {
		// The unique email index can still reject the insert if a
		// concurrent request won the race after the pre-check.
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			abort(c, newConflictError(msgUserAlreadyExists))
			return
		}
		h.logger.Error().
			Err(err).
			Msg("failed to create user")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	h.logger.Info().
		Str("user_id", user.ID.Hex()).
		Msg("created user")
	c.JSON(http.StatusCreated, newUserResponse(&user))
}

func (h *handlerImpl) HandleDeleteUser(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		abort(c, newBadRequestError(errMissingID.Error()))
		return
	}

	err := h.users.DeleteUser(c, id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidID):
			abort(c, newBadRequestError(storage.ErrInvalidID.Error()))
		case errors.Is(err, storage.ErrUserNotFound):
			abort(c, newNotFoundError(msgUserNotFound))
		default:
			h.logger.Error().
				Err(err).
				Msg("failed to delete user")
			abort(c, newStatusTextError(http.StatusInternalServerError))
		}
		return
	}

	h.logger.Info().
		Str("user_id", id).
		Msg("deleted user")
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully."})
}
