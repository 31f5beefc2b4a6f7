package warehouse

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/shauritanga/rtexpress-sub000/internal/entities"
	"github.com/shauritanga/rtexpress-sub000/internal/service/route"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Warehouse, error) {
	query := `
		SELECT id, name, latitude, longitude, created_at, updated_at
		FROM warehouses
		WHERE id = $1`

	var warehouseModel WarehouseDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&warehouseModel.ID,
			&warehouseModel.Name,
			&warehouseModel.Latitude,
			&warehouseModel.Longitude,
			&warehouseModel.CreatedAt,
			&warehouseModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrWarehouseNotFound
		}
		return nil, fmt.Errorf("unexpected warehouse repository getbyid error: %w", err)
	}

	return ToDomain(&warehouseModel), nil
}
