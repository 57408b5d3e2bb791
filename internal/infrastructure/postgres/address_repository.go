package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/storelab/ecommerce-api/internal/domain/entity"
	"github.com/storelab/ecommerce-api/internal/domain/repository"
)

type AddressRepository struct {
	db DB
}

func NewAddressRepository(db DB) *AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) Create(ctx context.Context, a *entity.Address) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO addresses (street, number, city, state, zip_code, country, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, a.Street, a.Number, a.City, a.State, a.ZipCode, a.Country, a.UserID)

	return row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AddressRepository) GetByID(ctx context.Context, id string) (*entity.Address, error) {
	a := &entity.Address{}
	row := r.db.QueryRow(ctx, `
		SELECT id, street, number, city, state, zip_code, country, user_id, created_at, updated_at
		FROM addresses
		WHERE id = $1
	`, id)

	if err := row.Scan(&a.ID, &a.Street, &a.Number, &a.City, &a.State, &a.ZipCode, &a.Country, &a.UserID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AddressRepository) List(ctx context.Context) ([]entity.Address, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, street, number, city, state, zip_code, country, user_id, created_at, updated_at
		FROM addresses
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := make([]entity.Address, 0)
	for rows.Next() {
		var a entity.Address
		if err := rows.Scan(&a.ID, &a.Street, &a.Number, &a.City, &a.State, &a.ZipCode, &a.Country, &a.UserID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

func (r *AddressRepository) Update(ctx context.Context, a *entity.Address) error {
	a.UpdatedAt = time.Now()
	res, err := r.db.Exec(ctx, `
		UPDATE addresses
		SET street = $1, number = $2, city = $3, state = $4, zip_code = $5, country = $6, user_id = $7, updated_at = $8
		WHERE id = $9
	`, a.Street, a.Number, a.City, a.State, a.ZipCode, a.Country, a.UserID, a.UpdatedAt, a.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *AddressRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.AddressRepository = (*AddressRepository)(nil)
