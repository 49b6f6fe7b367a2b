package repository

import (
	"context"
	"fmt"
	"time"

	"textile-store/internal/data/entity"
	"textile-store/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// txTimeout bounds the begin-insert-insert-commit sequence so a stalled
// storage call cannot hold a pooled connection indefinitely.
const txTimeout = 5 * time.Second

type OrderRepository interface {
	// CreateWithLine persists the order header and its single line as one
	// atomic unit, or neither. On success order.ID carries the generated id.
	CreateWithLine(ctx context.Context, order *entity.Order, line *entity.OrderLine) error

	FindByID(ctx context.Context, id int64) (*entity.Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.OrderSummary, error)
	FindAll(ctx context.Context) ([]*entity.OrderSummary, error)
	UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) CreateWithLine(ctx context.Context, order *entity.Order, line *entity.OrderLine) error {
	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	// Begin pins one pooled connection until commit or rollback.
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin order transaction", zap.Error(err))
		return fmt.Errorf("begin order transaction: %w", err)
	}
	// No-op once committed; releases the connection on every failure path.
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO order_tbl (user_id, order_status, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING order_id`,
		order.UserID, order.Status, order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		r.log.Error("Failed to insert order header",
			zap.Error(err),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("insert order header: %w", err)
	}

	line.OrderID = order.ID

	_, err = tx.Exec(ctx,
		`INSERT INTO order_details_tbl
		 (order_id, product_id, quantity, no_of_ends, creel_type, creel_pitch, bobin_length)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		line.OrderID, line.ProductID, line.Quantity,
		line.NoOfEnds, line.CreelType, line.CreelPitch, line.BobinLength,
	)
	if err != nil {
		r.log.Error("Failed to insert order line",
			zap.Error(err),
			zap.Int64("order_id", order.ID),
			zap.Int64("product_id", line.ProductID),
		)
		return fmt.Errorf("insert order line: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit order transaction",
			zap.Error(err),
			zap.Int64("order_id", order.ID),
		)
		return fmt.Errorf("commit order transaction: %w", err)
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	query := `SELECT order_id, user_id, order_status, created_at FROM order_tbl WHERE order_id = $1`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.Status,
		&order.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return nil, fmt.Errorf("find order by ID %d: %w", id, err)
	}

	return &order, nil
}

const orderSummaryQuery = `
	SELECT o.order_id, o.order_status, o.created_at,
	       od.product_id, COALESCE(p.product_name, ''), od.quantity,
	       od.no_of_ends, od.creel_type, od.creel_pitch, od.bobin_length
	FROM order_tbl o
	JOIN order_details_tbl od ON o.order_id = od.order_id
	LEFT JOIN product_tbl p ON od.product_id = p.product_id
`

func (r *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.OrderSummary, error) {
	query := orderSummaryQuery + ` WHERE o.user_id = $1 ORDER BY o.created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find orders by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find orders by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return r.collectSummaries(rows)
}

func (r *orderRepository) FindAll(ctx context.Context) ([]*entity.OrderSummary, error) {
	query := orderSummaryQuery + ` ORDER BY o.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list orders", zap.Error(err))
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	return r.collectSummaries(rows)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status entity.OrderStatus) error {
	query := `UPDATE order_tbl SET order_status = $2 WHERE order_id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.Int64("order_id", id),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update order %d status to %s: %w", id, string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %d not found", id)
	}

	return nil
}

// Delete removes the header and its lines together, mirroring the
// exclusive ownership of lines by their order.
func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin delete transaction", zap.Error(err))
		return fmt.Errorf("begin delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM order_details_tbl WHERE order_id = $1`, id); err != nil {
		r.log.Error("Failed to delete order lines",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return fmt.Errorf("delete order lines %d: %w", id, err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM order_tbl WHERE order_id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete order",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return fmt.Errorf("delete order %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %d not found", id)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit delete transaction: %w", err)
	}

	r.log.Info("Order deleted", zap.Int64("order_id", id))
	return nil
}

func (r *orderRepository) CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error) {
	query := `SELECT order_status, COUNT(*) FROM order_tbl GROUP BY order_status`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to count orders by status", zap.Error(err))
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[entity.OrderStatus]int64)
	for rows.Next() {
		var status entity.OrderStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			r.log.Error("Failed to scan status count row", zap.Error(err))
			return nil, fmt.Errorf("scan status count row: %w", err)
		}
		counts[status] = count
	}

	return counts, nil
}

func (r *orderRepository) collectSummaries(rows pgx.Rows) ([]*entity.OrderSummary, error) {
	var summaries []*entity.OrderSummary
	for rows.Next() {
		var s entity.OrderSummary
		err := rows.Scan(
			&s.OrderID,
			&s.Status,
			&s.CreatedAt,
			&s.ProductID,
			&s.ProductName,
			&s.Quantity,
			&s.NoOfEnds,
			&s.CreelType,
			&s.CreelPitch,
			&s.BobinLength,
		)
		if err != nil {
			r.log.Error("Failed to scan order summary row", zap.Error(err))
			return nil, fmt.Errorf("scan order summary row: %w", err)
		}
		summaries = append(summaries, &s)
	}

	return summaries, nil
}
