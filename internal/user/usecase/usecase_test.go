package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/partsbaypro/baypro-api/internal/model"
	"github.com/partsbaypro/baypro-api/internal/user"
	"github.com/partsbaypro/baypro-api/internal/user/dto"
)

type fakeRepo struct {
	byEmail map[string]*model.User
	created *model.User
	nextID  int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: map[string]*model.User{}, nextID: 1}
}

func (f *fakeRepo) Create(ctx context.Context, u *model.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return user.ErrEmailTaken
	}
	u.ID = f.nextID
	f.nextID++
	f.byEmail[u.Email] = u
	f.created = u
	return nil
}

func (f *fakeRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) UpdateProfile(ctx context.Context, id int64, input *dto.UpdateProfileInput) error {
	return nil
}

func (f *fakeRepo) ListAddresses(ctx context.Context, userID int64) ([]model.Address, error) {
	return []model.Address{}, nil
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUserUseCase(repo, zap.NewNop())

	u, err := uc.Register(context.Background(), &dto.RegisterInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "hunter22", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter22")))
}

func TestRegisterDefaultsToCustomerRole(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUserUseCase(repo, zap.NewNop())

	u, err := uc.Register(context.Background(), &dto.RegisterInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "hunter22",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, u.Role)

	v, err := uc.Register(context.Background(), &dto.RegisterInput{
		Name:     "Sam Smith",
		Email:    "sam@example.com",
		Password: "hunter22",
		Role:     "vendor",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleVendor, v.Role)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUserUseCase(repo, zap.NewNop())

	input := &dto.RegisterInput{Name: "Jane", Email: "jane@example.com", Password: "hunter22"}
	_, err := uc.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), input)
	assert.ErrorIs(t, err, user.ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUserUseCase(repo, zap.NewNop())

	_, err := uc.Register(context.Background(), &dto.RegisterInput{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	u, err := uc.Authenticate(context.Background(), "jane@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", u.Email)

	_, err = uc.Authenticate(context.Background(), "jane@example.com", "wrong")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	_, err = uc.Authenticate(context.Background(), "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}
