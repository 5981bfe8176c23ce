package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequestBody = errors.New("invalid request body")
	errMissingID          = errors.New("id query parameter required")
	errMissingUserID      = errors.New("user_id query parameter required")
	errMissingProjectID   = errors.New("project_id query parameter required")
	errInvalidStartDate   = errors.New("invalid start_date")
	errInvalidDueDate     = errors.New("invalid due_date")
)

// Message literals kept from the original API contract.
const (
	msgUserNotFound       = "Usuario no encontrado"
	msgProjectNotFound    = "Proyecto no encontrado"
	msgTaskNotFound       = "Tarea no encontrada"
	msgUserAlreadyExists  = "El usuario ya existe"
	msgNoUserWithID       = "No existe un usuario con ese ID"
	msgNoProjectWithID    = "No existe un proyecto con ese ID"
	msgUnknownDestination = "La tarea se quiere mover a un proyecto desconocido"
	msgMoveFailed         = "Error al mover tarea"
	msgEndpointNotFound   = "Endpoint not found"
)

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

func newConflictError(message string) apiError {
	return newAPIError(http.StatusConflict, message)
}
