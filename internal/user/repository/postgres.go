package repository

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/partsbaypro/baypro-api/internal/model"
	"github.com/partsbaypro/baypro-api/internal/user"
	"github.com/partsbaypro/baypro-api/internal/user/dto"
)

const pgUniqueViolation = "23505"

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, u *model.User) error {
	query := `
        INSERT INTO users (name, email, password, phone, role, avatar, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id
    `
	err := r.DB.QueryRowxContext(ctx, query,
		u.Name, u.Email, u.PasswordHash, u.Phone, u.Role, u.Avatar, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return user.ErrEmailTaken
		}
		return errors.Wrap(err, "insert user")
	}
	return nil
}

func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.DB.GetContext(ctx, &u, `SELECT * FROM users WHERE email = $1 LIMIT 1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find user by email")
	}
	return &u, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.DB.GetContext(ctx, &u, `SELECT * FROM users WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find user by id")
	}
	return &u, nil
}

func (r *PGRepository) UpdateProfile(ctx context.Context, id int64, input *dto.UpdateProfileInput) error {
	query := `
        UPDATE users
        SET name = COALESCE($1, name),
            phone = COALESCE($2, phone),
            updated_at = NOW()
        WHERE id = $3
    `
	_, err := r.DB.ExecContext(ctx, query, input.Name, input.Phone, id)
	return errors.Wrap(err, "update profile")
}

func (r *PGRepository) ListAddresses(ctx context.Context, userID int64) ([]model.Address, error) {
	addresses := []model.Address{}
	query := `SELECT * FROM addresses WHERE user_id = $1 ORDER BY is_default DESC`
	if err := r.DB.SelectContext(ctx, &addresses, query, userID); err != nil {
		return nil, errors.Wrap(err, "list addresses")
	}
	return addresses, nil
}
