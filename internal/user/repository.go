package user

import (
	"context"

	"github.com/pkg/errors"

	"github.com/partsbaypro/baypro-api/internal/model"
	"github.com/partsbaypro/baypro-api/internal/user/dto"
)

// ErrEmailTaken is raised by Create when the users.email unique constraint
// fires. The constraint, not the pre-check, is the duplicate guarantee.
var ErrEmailTaken = errors.New("email already registered")

var ErrNotFound = errors.New("user not found")

type Repository interface {
	Create(ctx context.Context, u *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, id int64, input *dto.UpdateProfileInput) error
	ListAddresses(ctx context.Context, userID int64) ([]model.Address, error)
}
