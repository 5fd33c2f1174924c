package access

import (
	"time"

	"github.com/artem13815/petshop/pkg/auth"
	"github.com/artem13815/petshop/pkg/pet"
)

// Role is the caller's effective privilege level for catalog operations.
type Role int

const (
	// RolePublic may read the public projection only.
	RolePublic Role = iota
	// RoleAdmin has full CRUD and sees the admin projection.
	RoleAdmin
)

// RoleFor maps an authenticated user (or nil for anonymous callers) to a
// role. Inactive and ordinary accounts carry no pet privileges beyond
// public.
func RoleFor(u *auth.User) Role {
	if u == nil || !u.IsActive || !u.IsSuperuser {
		return RolePublic
	}
	return RoleAdmin
}

// CanWrite reports whether the role may create, update or delete pets.
func (r Role) CanWrite() bool { return r == RoleAdmin }

// PetView is the public projection of a pet record.
type PetView struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Breed       string    `json:"breed"`
	Color       string    `json:"color"`
	Age         float64   `json:"age"`
	IsAvailable bool      `json:"is_available"`
	Price       *float64  `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AdminPetView extends the public projection with the privileged fields.
// SecretNotes is always present, possibly null.
type AdminPetView struct {
	PetView
	SecretNotes *string `json:"secret_notes"`
}

// ProjectPet returns the role-appropriate view of a single record.
func ProjectPet(p pet.Pet, role Role) any {
	view := PetView{
		ID:          p.ID,
		Name:        p.Name,
		Type:        p.Type,
		Breed:       p.Breed,
		Color:       p.Color,
		Age:         p.Age,
		IsAvailable: p.IsAvailable,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if role == RoleAdmin {
		return AdminPetView{PetView: view, SecretNotes: p.SecretNotes}
	}
	return view
}

// ProjectPets projects a result set, preserving order.
func ProjectPets(pets []pet.Pet, role Role) []any {
	out := make([]any, 0, len(pets))
	for _, p := range pets {
		out = append(out, ProjectPet(p, role))
	}
	return out
}
