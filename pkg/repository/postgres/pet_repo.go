package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/petshop/pkg/pet"
)

const petColumns = "id, name, type, breed, color, age, secret_notes, is_available, price, created_at, updated_at"

// PetRepository implements pet.Repository backed by PostgreSQL (pgx).
type PetRepository struct {
	pool *pgxpool.Pool
}

func NewPetRepository(pool *pgxpool.Pool) (*PetRepository, error) {
	repo := &PetRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *PetRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS pets (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	type VARCHAR(100) NOT NULL,
	breed VARCHAR(255) NOT NULL,
	color VARCHAR(100) NOT NULL,
	age DOUBLE PRECISION NOT NULL CHECK (age >= 0),
	secret_notes TEXT,
	is_available BOOLEAN NOT NULL DEFAULT TRUE,
	price DOUBLE PRECISION CHECK (price IS NULL OR price >= 0),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_pets_name ON pets(name);
CREATE INDEX IF NOT EXISTS idx_pets_type ON pets(type);
CREATE INDEX IF NOT EXISTS idx_pets_breed ON pets(breed);
CREATE INDEX IF NOT EXISTS idx_pets_color ON pets(color);
CREATE INDEX IF NOT EXISTS idx_pets_age ON pets(age);
CREATE INDEX IF NOT EXISTS idx_pets_is_available ON pets(is_available);
`)
	return err
}

func (r *PetRepository) Create(ctx context.Context, p pet.Pet) (pet.Pet, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO pets (name, type, breed, color, age, secret_notes, is_available, price)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING `+petColumns,
		p.Name, p.Type, p.Breed, p.Color, p.Age, p.SecretNotes, p.IsAvailable, p.Price)
	return scanPet(row)
}

func (r *PetRepository) GetByID(ctx context.Context, id int64) (pet.Pet, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	return scanPet(row)
}

// Update applies only the fields present in upd and bumps updated_at.
func (r *PetRepository) Update(ctx context.Context, id int64, upd pet.Update) (pet.Pet, error) {
	var set []string
	var args []any
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Type != nil {
		add("type", *upd.Type)
	}
	if upd.Breed != nil {
		add("breed", *upd.Breed)
	}
	if upd.Color != nil {
		add("color", *upd.Color)
	}
	if upd.Age != nil {
		add("age", *upd.Age)
	}
	if upd.IsAvailable != nil {
		add("is_available", *upd.IsAvailable)
	}
	if upd.PriceSet {
		add("price", upd.Price) // nil clears the column
	}
	if upd.SecretNotesSet {
		add("secret_notes", upd.SecretNotes)
	}
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}
	set = append(set, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE pets SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), petColumns)
	return scanPet(r.pool.QueryRow(ctx, query, args...))
}

func (r *PetRepository) Delete(ctx context.Context, id int64) (pet.Pet, error) {
	row := r.pool.QueryRow(ctx, `DELETE FROM pets WHERE id = $1 RETURNING `+petColumns, id)
	return scanPet(row)
}

// Search builds an AND-composed WHERE clause from the present filter
// conditions. Results are id-ordered so pagination stays stable across
// repeated calls.
func (r *PetRepository) Search(ctx context.Context, f pet.Filter, skip, limit int) ([]pet.Pet, error) {
	var where []string
	var args []any
	like := func(col, needle string) {
		args = append(args, needle)
		where = append(where, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", col, len(args)))
	}
	if f.Name != "" {
		like("name", f.Name)
	}
	if f.Type != "" {
		like("type", f.Type)
	}
	if f.Breed != "" {
		like("breed", f.Breed)
	}
	if f.Color != "" {
		like("color", f.Color)
	}
	if f.MinAge != nil {
		args = append(args, *f.MinAge)
		where = append(where, fmt.Sprintf("age >= $%d", len(args)))
	}
	if f.MaxAge != nil {
		args = append(args, *f.MaxAge)
		where = append(where, fmt.Sprintf("age <= $%d", len(args)))
	}
	if f.IsAvailable != nil {
		args = append(args, *f.IsAvailable)
		where = append(where, fmt.Sprintf("is_available = $%d", len(args)))
	}

	query := `SELECT ` + petColumns + ` FROM pets`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit, skip)
	query += fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []pet.Pet
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

func (r *PetRepository) GetByUniqueAttributes(ctx context.Context, name, petType, breed string) (pet.Pet, error) {
	row := r.pool.QueryRow(ctx, `
SELECT `+petColumns+` FROM pets WHERE name = $1 AND type = $2 AND breed = $3 LIMIT 1
`, name, petType, breed)
	return scanPet(row)
}

func scanPet(row pgx.Row) (pet.Pet, error) {
	var p pet.Pet
	var createdAt, updatedAt time.Time
	err := row.Scan(&p.ID, &p.Name, &p.Type, &p.Breed, &p.Color, &p.Age,
		&p.SecretNotes, &p.IsAvailable, &p.Price, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return pet.Pet{}, pet.ErrNotFound
		}
		return pet.Pet{}, err
	}
	p.CreatedAt = createdAt.UTC()
	p.UpdatedAt = updatedAt.UTC()
	return p, nil
}
