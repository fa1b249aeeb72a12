package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/partsbaypro/baypro-api/internal/vendors/dto"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CountProducts(ctx context.Context, vendorID int64) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count,
		`SELECT count(*) FROM products WHERE vendor_id = $1`, vendorID)
	return count, errors.Wrap(err, "count vendor products")
}

func (r *PGRepository) SalesTotals(ctx context.Context, vendorID int64) (int, float64, error) {
	var totals struct {
		TotalSales   int     `db:"total_sales"`
		TotalRevenue float64 `db:"total_revenue"`
	}
	query := `
        SELECT COUNT(DISTINCT oi.order_id) AS total_sales,
               COALESCE(SUM(oi.total), 0) AS total_revenue
        FROM order_items oi
        WHERE oi.vendor_id = $1
    `
	if err := r.DB.GetContext(ctx, &totals, query, vendorID); err != nil {
		return 0, 0, errors.Wrap(err, "vendor sales totals")
	}
	return totals.TotalSales, totals.TotalRevenue, nil
}

func (r *PGRepository) CountPendingOrders(ctx context.Context, vendorID int64) (int, error) {
	var count int
	query := `
        SELECT COUNT(DISTINCT oi.order_id)
        FROM order_items oi
        JOIN orders o ON oi.order_id = o.id
        WHERE oi.vendor_id = $1 AND o.status = 'pending'
    `
	err := r.DB.GetContext(ctx, &count, query, vendorID)
	return count, errors.Wrap(err, "count pending orders")
}

func (r *PGRepository) MonthlySales(ctx context.Context, vendorID int64, months int) ([]dto.MonthlySales, error) {
	sales := []dto.MonthlySales{}
	query := `
        SELECT to_char(date_trunc('month', o.created_at), 'Mon') AS month,
               COUNT(DISTINCT o.id) AS sales,
               COALESCE(SUM(oi.total), 0) AS revenue
        FROM order_items oi
        JOIN orders o ON oi.order_id = o.id
        WHERE oi.vendor_id = $1 AND o.created_at >= NOW() - make_interval(months => $2)
        GROUP BY date_trunc('month', o.created_at)
        ORDER BY date_trunc('month', o.created_at) ASC
    `
	if err := r.DB.SelectContext(ctx, &sales, query, vendorID, months); err != nil {
		return nil, errors.Wrap(err, "monthly sales")
	}
	return sales, nil
}

func (r *PGRepository) ListSales(ctx context.Context, vendorID int64) ([]dto.SaleRow, error) {
	sales := []dto.SaleRow{}
	query := `
        SELECT oi.id, oi.order_id, o.order_number, oi.product_id, oi.product_name,
               oi.product_image, oi.quantity, oi.price, oi.total,
               o.status, u.name AS customer_name, oi.created_at
        FROM order_items oi
        JOIN orders o ON oi.order_id = o.id
        JOIN users u ON o.customer_id = u.id
        WHERE oi.vendor_id = $1
        ORDER BY o.created_at DESC
    `
	if err := r.DB.SelectContext(ctx, &sales, query, vendorID); err != nil {
		return nil, errors.Wrap(err, "list vendor sales")
	}
	return sales, nil
}
