package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/petshop/api/http/presenter"
	"github.com/artem13815/petshop/pkg/access"
	"github.com/artem13815/petshop/pkg/pet"
)

// AdminPetHandler serves the superuser CRUD endpoints. The router guards
// the whole group with the auth and superuser middlewares, so every
// response here uses the admin projection.
type AdminPetHandler struct {
	uc pet.UseCase
}

func NewAdminPetHandler(uc pet.UseCase) *AdminPetHandler { return &AdminPetHandler{uc: uc} }

type createPetRequest struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Breed       string   `json:"breed"`
	Color       string   `json:"color"`
	Age         float64  `json:"age"`
	IsAvailable *bool    `json:"is_available"`
	Price       *float64 `json:"price"`
	SecretNotes *string  `json:"secret_notes"`
}

// Create adds a pet to the catalog.
// @Summary Create pet
// @Tags    admin
// @Accept  json
// @Produce json
// @Param   input body createPetRequest true "pet payload"
// @Security BearerAuth
// @Success 201 {object} access.AdminPetView
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /admin/pets [post]
func (h *AdminPetHandler) Create(c *fiber.Ctx) error {
	var req createPetRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p := pet.Pet{
		Name:        req.Name,
		Type:        req.Type,
		Breed:       req.Breed,
		Color:       req.Color,
		Age:         req.Age,
		IsAvailable: true,
		Price:       req.Price,
		SecretNotes: req.SecretNotes,
	}
	if req.IsAvailable != nil {
		p.IsAvailable = *req.IsAvailable
	}
	created, err := h.uc.Create(c.Context(), p)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusCreated, access.ProjectPet(created, access.RoleAdmin))
}

type updatePetRequest struct {
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	Breed       *string  `json:"breed"`
	Color       *string  `json:"color"`
	Age         *float64 `json:"age"`
	IsAvailable *bool    `json:"is_available"`
	Price       *float64 `json:"price"`
	SecretNotes *string  `json:"secret_notes"`
}

// Update applies a sparse update.
// @Summary Update pet
// @Tags    admin
// @Accept  json
// @Produce json
// @Param   id    path integer          true "pet id"
// @Param   input body updatePetRequest true "fields to change; explicit null clears price/secret_notes"
// @Security BearerAuth
// @Success 200 {object} access.AdminPetView
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/pets/{id} [put]
func (h *AdminPetHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid pet id")
	}
	var req updatePetRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	// Pointer fields cannot tell an absent key from an explicit null, and
	// null clears the nullable columns. Re-read the raw object for presence.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &raw); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	_, priceSet := raw["price"]
	_, notesSet := raw["secret_notes"]

	upd := pet.Update{
		Name:           req.Name,
		Type:           req.Type,
		Breed:          req.Breed,
		Color:          req.Color,
		Age:            req.Age,
		IsAvailable:    req.IsAvailable,
		Price:          req.Price,
		PriceSet:       priceSet,
		SecretNotes:    req.SecretNotes,
		SecretNotesSet: notesSet,
	}
	updated, err := h.uc.Update(c.Context(), id, upd)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, access.ProjectPet(updated, access.RoleAdmin))
}

// Delete removes a pet and returns the removed record.
// @Summary Delete pet
// @Tags    admin
// @Produce json
// @Param   id path integer true "pet id"
// @Security BearerAuth
// @Success 200 {object} access.AdminPetView
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/pets/{id} [delete]
func (h *AdminPetHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid pet id")
	}
	deleted, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, access.ProjectPet(deleted, access.RoleAdmin))
}

// List searches the catalog with the same filters as the public endpoint
// but returns the admin projection.
// @Summary List pets (admin)
// @Tags    admin
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
// @Security BearerAuth
// @Success 200 {array}  access.AdminPetView
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /admin/pets [get]
func (h *AdminPetHandler) List(c *fiber.Ctx) error {
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
	return presenter.JSON(c, http.StatusOK, access.ProjectPets(pets, access.RoleAdmin))
}

// GetByID returns one pet including the privileged fields.
// @Summary Pet details (admin)
// @Tags    admin
// @Produce json
// @Param   id path integer true "pet id"
// @Security BearerAuth
// @Success 200 {object} access.AdminPetView
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /admin/pets/{id} [get]
func (h *AdminPetHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid pet id")
	}
	p, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return presenter.FromError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, access.ProjectPet(p, access.RoleAdmin))
}
