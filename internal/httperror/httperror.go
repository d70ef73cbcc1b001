package httperror

import (
	"errors"
	"net/http"

	"github.com/fintrack/backend/internal/models"
)

type Error struct {
	Message string `json:"error" example:"there is no transaction matching your query"`
}

func New(e error) Error {
	return Error{
		Message: e.Error(),
	}
}

func NewFromString(s string) Error {
	return Error{
		Message: s,
	}
}

// Status returns the appropriate HTTP status for a storage error.
func Status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if models.IsConflict(err) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}
