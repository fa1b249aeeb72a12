package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/partsbaypro/baypro-api/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindOrder(ctx context.Context, orderID, customerID int64) (*model.Order, error) {
	var o model.Order
	query := `SELECT * FROM orders WHERE id = $1 AND customer_id = $2`
	err := r.DB.GetContext(ctx, &o, query, orderID, customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find order")
	}
	return &o, nil
}

func (r *PGRepository) FindOrderByID(ctx context.Context, orderID int64) (*model.Order, error) {
	var o model.Order
	err := r.DB.GetContext(ctx, &o, `SELECT * FROM orders WHERE id = $1`, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find order by id")
	}
	return &o, nil
}

func (r *PGRepository) FindCustomer(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.DB.GetContext(ctx, &u, `SELECT * FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find customer")
	}
	return &u, nil
}

func (r *PGRepository) MarkPaid(ctx context.Context, orderID int64, reference string) error {
	query := `
        UPDATE orders
        SET payment_status = 'paid', status = 'confirmed', payment_reference = $1, updated_at = NOW()
        WHERE id = $2
    `
	_, err := r.DB.ExecContext(ctx, query, reference, orderID)
	return errors.Wrap(err, "mark order paid")
}

func (r *PGRepository) MarkFailed(ctx context.Context, orderID int64) error {
	query := `UPDATE orders SET payment_status = 'failed', updated_at = NOW() WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, orderID)
	return errors.Wrap(err, "mark order failed")
}
