package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/petshop/api/http/presenter"
	"github.com/artem13815/petshop/pkg/access"
	"github.com/artem13815/petshop/pkg/pet"
)

// PetHandler serves the public, unauthenticated catalog endpoints. All
// responses use the public projection.
type PetHandler struct {
	uc pet.UseCase
}

func NewPetHandler(uc pet.UseCase) *PetHandler { return &PetHandler{uc: uc} }

// Find searches the catalog with optional filters.
// @Summary Search pets
// @Tags    pets
// @Produce json
// @Param   name         query string  false "substring match, case-insensitive"
// @Param   type         query string  false "substring match, case-insensitive"
// @Param   breed        query string  false "substring match, case-insensitive"
// @Param   color        query string  false "substring match, case-insensitive"
// @Param   min_age      query number  false "inclusive lower age bound"
// @Param   max_age      query number  false "inclusive upper age bound"
// @Param   is_available query boolean false "exact availability match"
// @Param   skip         query integer false "records to skip" default(0)
// @Param   limit        query integer false "page size, 1..1000" default(100)
// @Success 200 {array}  access.PetView
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /pets/find [get]
func (h *PetHandler) Find(c *fiber.Ctx) error {
	filter, err := parsePetFilter(c)
	if err != nil {
		return presenter.FromError(c, err)
	}
	skip, limit, err := parseSkipLimit(c)
	if err != nil {
		return presenter.FromError(c, err)
	}
	pets, err := h.uc.Search(c.Context(), filter, skip, limit)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, access.ProjectPets(pets, access.RolePublic))
}

// Details returns one pet by id.
// @Summary Pet details
// @Tags    pets
// @Produce json
// @Param   id path integer true "pet id"
// @Success 200 {object} access.PetView
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /pets/details/{id} [get]
func (h *PetHandler) Details(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid pet id")
	}
	p, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, access.ProjectPet(p, access.RolePublic))
}
