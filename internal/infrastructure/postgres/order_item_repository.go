package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/storelab/ecommerce-api/internal/domain/entity"
	"github.com/storelab/ecommerce-api/internal/domain/repository"
)

type OrderItemRepository struct {
	db DB
}

func NewOrderItemRepository(db DB) *OrderItemRepository {
	return &OrderItemRepository{db: db}
}

func (r *OrderItemRepository) Create(ctx context.Context, it *entity.OrderItem) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO order_items (quantity, price, order_id, product_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, it.Quantity, it.Price, it.OrderID, it.ProductID)

	return row.Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt)
}

func (r *OrderItemRepository) GetByID(ctx context.Context, id string) (*entity.OrderItem, error) {
	it := &entity.OrderItem{}
	row := r.db.QueryRow(ctx, `
		SELECT id, quantity, price, order_id, product_id, created_at, updated_at
		FROM order_items
		WHERE id = $1
	`, id)

	if err := row.Scan(&it.ID, &it.Quantity, &it.Price, &it.OrderID, &it.ProductID, &it.CreatedAt, &it.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return it, nil
}

func (r *OrderItemRepository) List(ctx context.Context) ([]entity.OrderItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, quantity, price, order_id, product_id, created_at, updated_at
		FROM order_items
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entity.OrderItem, 0)
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.Quantity, &it.Price, &it.OrderID, &it.ProductID, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *OrderItemRepository) Update(ctx context.Context, it *entity.OrderItem) error {
	it.UpdatedAt = time.Now()
	res, err := r.db.Exec(ctx, `
		UPDATE order_items
		SET quantity = $1, price = $2, order_id = $3, product_id = $4, updated_at = $5
		WHERE id = $6
	`, it.Quantity, it.Price, it.OrderID, it.ProductID, it.UpdatedAt, it.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *OrderItemRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM order_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.OrderItemRepository = (*OrderItemRepository)(nil)
