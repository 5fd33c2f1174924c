package seed

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/petshop/pkg/auth"
	"github.com/artem13815/petshop/pkg/pet"
)

type memUsers struct {
	byEmail map[string]auth.User
}

func (r *memUsers) Create(_ context.Context, u auth.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return auth.ErrUserAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUsers) GetByEmail(_ context.Context, email string) (auth.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return u, nil
}

func (r *memUsers) GetByID(_ context.Context, id uuid.UUID) (auth.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return auth.User{}, auth.ErrNotFound
}

func (r *memUsers) Update(_ context.Context, u auth.User) error {
	r.byEmail[u.Email] = u
	return nil
}

type memPets struct {
	nextID int64
	pets   []pet.Pet
}

func (r *memPets) Create(_ context.Context, p pet.Pet) (pet.Pet, error) {
	r.nextID++
	p.ID = r.nextID
	r.pets = append(r.pets, p)
	return p, nil
}

func (r *memPets) GetByID(_ context.Context, id int64) (pet.Pet, error) {
	for _, p := range r.pets {
		if p.ID == id {
			return p, nil
		}
	}
	return pet.Pet{}, pet.ErrNotFound
}

func (r *memPets) Update(_ context.Context, _ int64, _ pet.Update) (pet.Pet, error) {
	return pet.Pet{}, pet.ErrNotFound
}

func (r *memPets) Delete(_ context.Context, _ int64) (pet.Pet, error) {
	return pet.Pet{}, pet.ErrNotFound
}

func (r *memPets) Search(_ context.Context, _ pet.Filter, _, _ int) ([]pet.Pet, error) {
	return r.pets, nil
}

func (r *memPets) GetByUniqueAttributes(_ context.Context, name, petType, breed string) (pet.Pet, error) {
	for _, p := range r.pets {
		if p.Name == name && p.Type == petType && p.Breed == breed {
			return p, nil
		}
	}
	return pet.Pet{}, pet.ErrNotFound
}

type noopTokens struct{}

func (noopTokens) Generate(_ context.Context, _ auth.User) (string, error) { return "tok", nil }

func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	users := &memUsers{byEmail: make(map[string]auth.User)}
	pets := &memPets{}
	directory := auth.NewService(users, noopTokens{})

	require.NoError(t, Run(ctx, directory, users, pets, "root@example.com", "rootpass"))

	firstUsers := len(users.byEmail)
	firstPets := len(pets.pets)
	assert.Equal(t, 1, firstUsers)
	assert.Equal(t, len(initialPets), firstPets)

	super, err := users.GetByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	assert.True(t, super.IsSuperuser)
	assert.True(t, super.IsActive)

	// Second run creates nothing new.
	require.NoError(t, Run(ctx, directory, users, pets, "root@example.com", "rootpass"))
	assert.Equal(t, firstUsers, len(users.byEmail))
	assert.Equal(t, firstPets, len(pets.pets))
}
