package user

import (
	"context"

	"github.com/pkg/errors"

	"github.com/partsbaypro/baypro-api/internal/model"
	"github.com/partsbaypro/baypro-api/internal/user/dto"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type UseCase interface {
	Register(ctx context.Context, input *dto.RegisterInput) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, id int64, input *dto.UpdateProfileInput) (*model.User, error)
	ListAddresses(ctx context.Context, userID int64) ([]model.Address, error)
}
