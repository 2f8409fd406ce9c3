package repository

import (
	"context"

	"marketplace-core/internal/domain/order"
	"marketplace-core/internal/infra"
	"marketplace-core/internal/infra/repository/converter"
	sqlc "marketplace-core/internal/infra/sqlc/generated"
	"marketplace-core/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	GetOrderByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	GetInFlightOrderByListing(ctx context.Context, db sqlc.DBTX, listingID uuid.UUID) (sqlc.Orders, error)
	UpdateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderParams) error
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

// Create relies on ux_orders_inflight_listing; a second in-flight order surfaces as DUPLICATE_KEY.
func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	if err := r.queries.CreateOrder(ctx, tx, converter.OrderToCreateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	return converter.OrderFromRow(row)
}

func (r *OrderRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByIDForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}
	return converter.OrderFromRow(row)
}

func (r *OrderRepository) FindInFlightByListing(ctx context.Context, tx sqlc.DBTX, listingID uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetInFlightOrderByListing(ctx, tx, listingID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find in-flight order", err)
	}
	return converter.OrderFromRow(row)
}

func (r *OrderRepository) Save(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	if err := r.queries.UpdateOrder(ctx, tx, converter.OrderToUpdateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to update order", err)
	}
	return nil
}
