package presenter

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/petshop/pkg/auth"
	"github.com/artem13815/petshop/pkg/pet"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// FromError maps domain errors onto transport status codes. Anything
// unrecognized is treated as a storage/internal failure.
func FromError(c *fiber.Ctx, err error) error {
	var validation pet.ErrValidation
	switch {
	case errors.Is(err, pet.ErrNotFound):
		return Error(c, http.StatusNotFound, "pet not found")
	case errors.Is(err, auth.ErrNotFound):
		return Error(c, http.StatusNotFound, "user not found")
	case errors.Is(err, auth.ErrUserAlreadyExists):
		return Error(c, http.StatusConflict, "user already exists")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return Error(c, http.StatusBadRequest, "invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		c.Set("WWW-Authenticate", "Bearer")
		return Error(c, http.StatusUnauthorized, "invalid or expired token")
	case errors.Is(err, auth.ErrPermissionDenied):
		return Error(c, http.StatusForbidden, "insufficient privileges")
	case errors.Is(err, pet.ErrInvalidFilter):
		return Error(c, http.StatusBadRequest, "invalid search filter")
	case errors.As(err, &validation):
		return Error(c, http.StatusBadRequest, validation.Error())
	default:
		return Error(c, http.StatusInternalServerError, "internal error")
	}
}
