package usecase

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/partsbaypro/baypro-api/internal/model"
	"github.com/partsbaypro/baypro-api/internal/order"
	"github.com/partsbaypro/baypro-api/internal/order/dto"
)

type fakeRepo struct {
	products map[int64]model.Product

	created      []*model.Order
	createErrs   []error
	createCalled int
}

func (f *fakeRepo) CreateOrder(ctx context.Context, o *model.Order) error {
	f.createCalled++
	copied := *o
	f.created = append(f.created, &copied)
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	o.ID = int64(f.createCalled)
	return nil
}

func (f *fakeRepo) FindByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	return nil, nil
}

func (f *fakeRepo) FindByID(ctx context.Context, id, customerID int64) (*model.Order, error) {
	return nil, nil
}

func (f *fakeRepo) ItemsFor(ctx context.Context, orderIDs []int64) (map[int64][]model.OrderItem, error) {
	return map[int64][]model.OrderItem{}, nil
}

func (f *fakeRepo) ActiveProductsByIDs(ctx context.Context, ids []int64) (map[int64]model.Product, error) {
	out := make(map[int64]model.Product)
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func product(id int64, price float64, stock int) model.Product {
	p := model.Product{
		VendorID:      7,
		Name:          "Part",
		Price:         price,
		StockQuantity: stock,
		IsActive:      true,
	}
	p.ID = id
	return p
}

func address() model.ShippingAddress {
	return model.ShippingAddress{
		Name:         "Jane Doe",
		AddressLine1: "12 Main Rd",
		City:         "Cape Town",
		PostalCode:   "8001",
		Country:      "ZA",
	}
}

func newTestUseCase(repo *fakeRepo) *orderUseCase {
	uc := NewOrderUseCase(repo, "https://partsbaypro.com/backend-php/", zap.NewNop()).(*orderUseCase)
	uc.now = func() time.Time { return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC) }
	uc.randInt = func(n int) int { return 41 }
	return uc
}

func TestCheckoutTotals(t *testing.T) {
	repo := &fakeRepo{products: map[int64]model.Product{
		1: product(1, 100, 10),
		2: product(2, 50, 10),
	}}
	uc := newTestUseCase(repo)

	result, err := uc.Checkout(context.Background(), 9, &dto.CheckoutInput{
		Items: []dto.CheckoutItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
		ShippingAddress: address(),
	})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	o := repo.created[0]
	assert.Equal(t, 250.0, o.Subtotal)
	assert.Equal(t, 50.0, o.Shipping)
	assert.Equal(t, 37.5, o.Tax)
	assert.Equal(t, 337.5, o.Total)
	assert.Equal(t, model.OrderPending, o.Status)
	assert.Equal(t, model.PaymentPending, o.PaymentStatus)
	assert.Equal(t, "PayFast", o.PaymentMethod)
	assert.Equal(t, 337.5, result.Order.Total)
	assert.Equal(t, "pending", result.Order.Status)
}

func TestCheckoutShippingBoundary(t *testing.T) {
	cases := []struct {
		name     string
		price    float64
		shipping float64
	}{
		{"at threshold pays flat fee", 500, 50},
		{"above threshold ships free", 500.01, 0},
		{"below threshold pays flat fee", 499.99, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{products: map[int64]model.Product{
				1: product(1, tc.price, 5),
			}}
			uc := newTestUseCase(repo)

			_, err := uc.Checkout(context.Background(), 9, &dto.CheckoutInput{
				Items:           []dto.CheckoutItem{{ProductID: 1, Quantity: 1}},
				ShippingAddress: address(),
			})
			require.NoError(t, err)
			assert.Equal(t, tc.shipping, repo.created[0].Shipping)
		})
	}
}

func TestCheckoutUsesSalePrice(t *testing.T) {
	sale := 80.0
	p := product(1, 100, 5)
	p.SalePrice = &sale
	repo := &fakeRepo{products: map[int64]model.Product{1: p}}
	uc := newTestUseCase(repo)

	_, err := uc.Checkout(context.Background(), 9, &dto.CheckoutInput{
		Items:           []dto.CheckoutItem{{ProductID: 1, Quantity: 2}},
		ShippingAddress: address(),
	})
	require.NoError(t, err)

	o := repo.created[0]
	assert.Equal(t, 160.0, o.Subtotal)
	assert.Equal(t, 80.0, o.Items[0].Price)
}

func TestCheckoutInsufficientStock(t *testing.T) {
	repo := &fakeRepo{products: map[int64]model.Product{
		1: product(1, 100, 1),
	}}
	uc := newTestUseCase(repo)

	_, err := uc.Checkout(context.Background(), 9, &dto.CheckoutInput{
		Items:           []dto.CheckoutItem{{ProductID: 1, Quantity: 2}},
		ShippingAddress: address(),
	})

	var noStock *order.InsufficientStockError
	require.ErrorAs(t, err, &noStock)
	assert.Equal(t, int64(1), noStock.ProductID)
	assert.Zero(t, repo.createCalled)
}

func TestCheckoutUnknownProduct(t *testing.T) {
	repo := &fakeRepo{products: map[int64]model.Product{}}
	uc := newTestUseCase(repo)

	_, err := uc.Checkout(context.Background(), 9, &dto.CheckoutInput{
		Items:           []dto.CheckoutItem{{ProductID: 42, Quantity: 1}},
		ShippingAddress: address(),
	})

	var notFound *order.ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(42), notFound.ProductID)
	assert.Zero(t, repo.createCalled)
}

func TestCheckoutRejectsEmptyInput(t *testing.T) {
	repo := &fakeRepo{products: map[int64]model.Product{1: product(1, 10, 5)}}
	uc := newTestUseCase(repo)

	_, err := uc.Checkout(context.Background(), 9, &dto.CheckoutInput{
		ShippingAddress: address(),
	})
	assert.ErrorIs(t, err, ErrEmptyCheckout)

	_, err = uc.Checkout(context.Background(), 9, &dto.CheckoutInput{
		Items: []dto.CheckoutItem{{ProductID: 1, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrEmptyCheckout)

	_, err = uc.Checkout(context.Background(), 9, &dto.CheckoutInput{
		Items:           []dto.CheckoutItem{{ProductID: 1, Quantity: 0}},
		ShippingAddress: address(),
	})
	assert.ErrorIs(t, err, ErrEmptyCheckout)

	assert.Zero(t, repo.createCalled)
}

func TestCheckoutOrderNumberFormat(t *testing.T) {
	repo := &fakeRepo{products: map[int64]model.Product{1: product(1, 10, 5)}}
	uc := newTestUseCase(repo)

	_, err := uc.Checkout(context.Background(), 9, &dto.CheckoutInput{
		Items:           []dto.CheckoutItem{{ProductID: 1, Quantity: 1}},
		ShippingAddress: address(),
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^BP-2025-\d{5}$`), repo.created[0].OrderNumber)
	assert.Equal(t, "BP-2025-00042", repo.created[0].OrderNumber)
}

func TestCheckoutRetriesOnOrderNumberCollision(t *testing.T) {
	repo := &fakeRepo{
		products:   map[int64]model.Product{1: product(1, 10, 5)},
		createErrs: []error{order.ErrOrderNumberTaken, nil},
	}
	uc := newTestUseCase(repo)

	suffixes := []int{10, 20}
	uc.randInt = func(n int) int {
		next := suffixes[0]
		suffixes = suffixes[1:]
		return next
	}

	result, err := uc.Checkout(context.Background(), 9, &dto.CheckoutInput{
		Items:           []dto.CheckoutItem{{ProductID: 1, Quantity: 1}},
		ShippingAddress: address(),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, repo.createCalled)
	assert.Equal(t, "BP-2025-00021", result.Order.OrderNumber)
}

func TestCheckoutGivesUpAfterRepeatedCollisions(t *testing.T) {
	repo := &fakeRepo{
		products: map[int64]model.Product{1: product(1, 10, 5)},
		createErrs: []error{
			order.ErrOrderNumberTaken,
			order.ErrOrderNumberTaken,
			order.ErrOrderNumberTaken,
		},
	}
	uc := newTestUseCase(repo)

	_, err := uc.Checkout(context.Background(), 9, &dto.CheckoutInput{
		Items:           []dto.CheckoutItem{{ProductID: 1, Quantity: 1}},
		ShippingAddress: address(),
	})

	assert.ErrorIs(t, err, order.ErrOrderNumberTaken)
	assert.Equal(t, 3, repo.createCalled)
}

func TestCheckoutTaxRounding(t *testing.T) {
	repo := &fakeRepo{products: map[int64]model.Product{
		1: product(1, 33.33, 5),
	}}
	uc := newTestUseCase(repo)

	_, err := uc.Checkout(context.Background(), 9, &dto.CheckoutInput{
		Items:           []dto.CheckoutItem{{ProductID: 1, Quantity: 1}},
		ShippingAddress: address(),
	})
	require.NoError(t, err)

	// 33.33 * 0.15 = 4.9995, rounded to two decimals.
	assert.Equal(t, 5.0, repo.created[0].Tax)
}
