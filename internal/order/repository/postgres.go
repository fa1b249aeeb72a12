package repository

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/partsbaypro/baypro-api/internal/model"
	"github.com/partsbaypro/baypro-api/internal/order"
)

const pgUniqueViolation = "23505"

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) CreateOrder(ctx context.Context, o *model.Order) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin checkout")
	}
	defer tx.Rollback()

	insertOrder := `
        INSERT INTO orders (
            order_number, customer_id, subtotal, shipping, tax, total,
            status, payment_status, payment_method, shipping_address, notes,
            created_at, updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING id
    `
	err = tx.QueryRowxContext(ctx, insertOrder,
		o.OrderNumber, o.CustomerID, o.Subtotal, o.Shipping, o.Tax, o.Total,
		o.Status, o.PaymentStatus, o.PaymentMethod, o.ShippingAddress, o.Notes,
		o.CreatedAt, o.UpdatedAt,
	).Scan(&o.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return order.ErrOrderNumberTaken
		}
		return errors.Wrap(err, "insert order")
	}

	insertItem := `
        INSERT INTO order_items (
            order_id, product_id, vendor_id, product_name, product_image,
            quantity, price, total, created_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	// Conditional decrement: the WHERE guard keeps stock from ever going
	// negative, even when two checkouts race on the same product.
	decrementStock := `
        UPDATE products
        SET stock_quantity = stock_quantity - $1, updated_at = NOW()
        WHERE id = $2 AND stock_quantity >= $1
    `

	for i := range o.Items {
		item := &o.Items[i]
		item.OrderID = o.ID

		err = tx.QueryRowxContext(ctx, insertItem,
			item.OrderID, item.ProductID, item.VendorID, item.ProductName,
			item.ProductImage, item.Quantity, item.Price, item.Total, item.CreatedAt,
		).Scan(&item.ID)
		if err != nil {
			return errors.Wrap(err, "insert order item")
		}

		res, err := tx.ExecContext(ctx, decrementStock, item.Quantity, item.ProductID)
		if err != nil {
			return errors.Wrap(err, "decrement stock")
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return errors.Wrap(err, "decrement stock rows")
		}
		if rows == 0 {
			return &order.InsufficientStockError{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
			}
		}
	}

	return errors.Wrap(tx.Commit(), "commit checkout")
}

func (r *PGRepository) FindByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	orders := []model.Order{}
	query := `SELECT * FROM orders WHERE customer_id = $1 ORDER BY created_at DESC`
	if err := r.DB.SelectContext(ctx, &orders, query, customerID); err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	return orders, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id, customerID int64) (*model.Order, error) {
	var o model.Order
	query := `SELECT * FROM orders WHERE id = $1 AND customer_id = $2`
	err := r.DB.GetContext(ctx, &o, query, id, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find order")
	}
	return &o, nil
}

func (r *PGRepository) ItemsFor(ctx context.Context, orderIDs []int64) (map[int64][]model.OrderItem, error) {
	result := map[int64][]model.OrderItem{}
	if len(orderIDs) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM order_items WHERE order_id IN (?) ORDER BY id ASC`, orderIDs)
	if err != nil {
		return nil, errors.Wrap(err, "build order item query")
	}
	query = r.DB.Rebind(query)

	var items []model.OrderItem
	if err := r.DB.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, errors.Wrap(err, "select order items")
	}

	for _, item := range items {
		result[item.OrderID] = append(result[item.OrderID], item)
	}
	return result, nil
}

func (r *PGRepository) ActiveProductsByIDs(ctx context.Context, ids []int64) (map[int64]model.Product, error) {
	result := map[int64]model.Product{}
	if len(ids) == 0 {
		return result, nil
	}

	query, args, err := sqlx.In(`SELECT * FROM products WHERE id IN (?) AND is_active = TRUE`, ids)
	if err != nil {
		return nil, errors.Wrap(err, "build product query")
	}
	query = r.DB.Rebind(query)

	var products []model.Product
	if err := r.DB.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, errors.Wrap(err, "select checkout products")
	}

	imgQuery, imgArgs, err := sqlx.In(
		`SELECT id, product_id, url, is_primary FROM product_images WHERE product_id IN (?) ORDER BY is_primary DESC, id ASC`,
		ids,
	)
	if err != nil {
		return nil, errors.Wrap(err, "build image query")
	}
	imgQuery = r.DB.Rebind(imgQuery)

	var images []model.ProductImage
	if err := r.DB.SelectContext(ctx, &images, imgQuery, imgArgs...); err != nil {
		return nil, errors.Wrap(err, "select checkout images")
	}
	imagesByProduct := map[int64][]model.ProductImage{}
	for _, img := range images {
		imagesByProduct[img.ProductID] = append(imagesByProduct[img.ProductID], img)
	}

	for _, p := range products {
		p.Images = imagesByProduct[p.ID]
		result[p.ID] = p
	}
	return result, nil
}
