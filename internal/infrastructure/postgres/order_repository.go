package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/storelab/ecommerce-api/internal/domain/entity"
	"github.com/storelab/ecommerce-api/internal/domain/repository"
)

type OrderRepository struct {
	db DB
}

func NewOrderRepository(db DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO orders (status, total_amount, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, o.Status, o.TotalAmount, o.UserID)

	return row.Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	o := &entity.Order{}
	row := r.db.QueryRow(ctx, `
		SELECT id, status, total_amount, user_id, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, id)

	if err := row.Scan(&o.ID, &o.Status, &o.TotalAmount, &o.UserID, &o.CreatedAt, &o.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]entity.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, status, total_amount, user_id, created_at, updated_at
		FROM orders
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]entity.Order, 0)
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.Status, &o.TotalAmount, &o.UserID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *OrderRepository) Update(ctx context.Context, o *entity.Order) error {
	o.UpdatedAt = time.Now()
	res, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $1, total_amount = $2, user_id = $3, updated_at = $4
		WHERE id = $5
	`, o.Status, o.TotalAmount, o.UserID, o.UpdatedAt, o.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.OrderRepository = (*OrderRepository)(nil)
