package usecase

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/partsbaypro/baypro-api/internal/model"
	"github.com/partsbaypro/baypro-api/internal/user"
	"github.com/partsbaypro/baypro-api/internal/user/dto"
)

type userUseCase struct {
	repo   user.Repository
	logger *zap.Logger
}

func NewUserUseCase(repo user.Repository, log *zap.Logger) user.UseCase {
	return &userUseCase{repo: repo, logger: log}
}

func (uc *userUseCase) Register(ctx context.Context, input *dto.RegisterInput) (*model.User, error) {
	role := model.Role(input.Role)
	if !role.Valid() {
		role = model.RoleCustomer
	}

	// Advisory pre-check for a friendly error; the unique constraint in
	// Create is what actually guards concurrent registrations.
	existing, err := uc.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, user.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	now := time.Now()
	u := &model.User{
		BaseModel:    model.BaseModel{CreatedAt: now, UpdatedAt: now},
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	uc.logger.Info("user registered",
		zap.Int64("user_id", u.ID),
		zap.String("role", string(u.Role)),
	)
	return u, nil
}

func (uc *userUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	u, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}
	return u, nil
}

func (uc *userUseCase) GetUser(ctx context.Context, id int64) (*model.User, error) {
	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (uc *userUseCase) UpdateProfile(ctx context.Context, id int64, input *dto.UpdateProfileInput) (*model.User, error) {
	if err := uc.repo.UpdateProfile(ctx, id, input); err != nil {
		return nil, err
	}
	return uc.GetUser(ctx, id)
}

func (uc *userUseCase) ListAddresses(ctx context.Context, userID int64) ([]model.Address, error) {
	return uc.repo.ListAddresses(ctx, userID)
}
