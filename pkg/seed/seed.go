package seed

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/artem13815/petshop/pkg/auth"
	"github.com/artem13815/petshop/pkg/pet"
)

// initialPets is the starter catalog. A pet is identified by its
// (name, type, breed) triple, so re-running the seeder inserts nothing new.
var initialPets = []pet.Pet{
	{
		Name: "Rex", Type: "dog", Breed: "German Shepherd", Color: "black and tan",
		Age: 3.0, IsAvailable: false, Price: floatp(30000),
		SecretNotes: strp("Working dog, completed an obedience course"),
	},
	{
		Name: "Mukhtar", Type: "dog", Breed: "Alabai", Color: "grey",
		Age: 2.5, IsAvailable: true, Price: floatp(25000),
		SecretNotes: strp("Excellent pedigree, show champion"),
	},
	{
		Name: "Whiskers", Type: "cat", Breed: "Scottish Fold", Color: "grey",
		Age: 1.2, IsAvailable: true, Price: floatp(15000),
		SecretNotes: strp("Cattery-born, vaccination passport on file"),
	},
	{
		Name: "Fluffy", Type: "cat", Breed: "Persian", Color: "white",
		Age: 2.0, IsAvailable: true, Price: floatp(18000),
		SecretNotes: strp("Coat needs daily grooming"),
	},
	{
		Name: "Kiwi", Type: "parrot", Breed: "Budgerigar", Color: "green",
		Age: 0.7, IsAvailable: true, Price: floatp(5000),
		SecretNotes: strp("Hand-tamed, repeats simple phrases"),
	},
}

// Run bootstraps the database: the first superuser and the starter catalog.
// Safe to call on every startup.
func Run(ctx context.Context, directory auth.UseCase, users auth.UserRepository, pets pet.Repository, superEmail, superPassword string) error {
	if _, err := users.GetByEmail(ctx, superEmail); err != nil {
		if !errors.Is(err, auth.ErrNotFound) {
			return fmt.Errorf("look up first superuser: %w", err)
		}
		if _, err := directory.CreateUser(ctx, superEmail, superPassword, true); err != nil {
			// Lost the race against a concurrent bootstrap; the account exists.
			if !errors.Is(err, auth.ErrUserAlreadyExists) {
				return fmt.Errorf("create first superuser: %w", err)
			}
		} else {
			log.Printf("seed: created first superuser %s", superEmail)
		}
	}

	for _, p := range initialPets {
		_, err := pets.GetByUniqueAttributes(ctx, p.Name, p.Type, p.Breed)
		if err == nil {
			continue
		}
		if !errors.Is(err, pet.ErrNotFound) {
			return fmt.Errorf("look up pet %q: %w", p.Name, err)
		}
		if _, err := pets.Create(ctx, p); err != nil {
			return fmt.Errorf("create pet %q: %w", p.Name, err)
		}
		log.Printf("seed: created pet %s", p.Name)
	}
	return nil
}

func floatp(v float64) *float64 { return &v }
func strp(v string) *string     { return &v }
