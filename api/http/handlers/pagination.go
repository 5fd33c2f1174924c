package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/petshop/pkg/pet"
)

// parseSkipLimit reads skip/limit query parameters with the catalog's
// bounds: skip >= 0 (default 0), limit 1..1000 (default 100). Out-of-range
// values are an error rather than silently clamped.
func parseSkipLimit(c *fiber.Ctx) (skip, limit int, err error) {
	skip = 0
	limit = pet.DefaultLimit
	if v := strings.TrimSpace(c.Query("skip")); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil || n < 0 {
			return 0, 0, pet.ErrInvalidFilter
		}
		skip = n
	}
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil || n < 1 || n > pet.MaxLimit {
			return 0, 0, pet.ErrInvalidFilter
		}
		limit = n
	}
	return skip, limit, nil
}

// parsePetFilter reads the search filter query parameters shared by the
// public and admin listing endpoints.
func parsePetFilter(c *fiber.Ctx) (pet.Filter, error) {
	f := pet.Filter{
		Name:  strings.TrimSpace(c.Query("name")),
		Type:  strings.TrimSpace(c.Query("type")),
		Breed: strings.TrimSpace(c.Query("breed")),
		Color: strings.TrimSpace(c.Query("color")),
	}
	if v := strings.TrimSpace(c.Query("min_age")); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return pet.Filter{}, pet.ErrInvalidFilter
		}
		f.MinAge = &n
	}
	if v := strings.TrimSpace(c.Query("max_age")); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return pet.Filter{}, pet.ErrInvalidFilter
		}
		f.MaxAge = &n
	}
	if v := strings.TrimSpace(c.Query("is_available")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return pet.Filter{}, pet.ErrInvalidFilter
		}
		f.IsAvailable = &b
	}
	return f, nil
}
