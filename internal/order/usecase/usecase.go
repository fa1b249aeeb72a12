package usecase

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/partsbaypro/baypro-api/internal/model"
	"github.com/partsbaypro/baypro-api/internal/order"
	"github.com/partsbaypro/baypro-api/internal/order/dto"
)

const (
	// Orders above this subtotal ship free; at or below it the flat fee
	// applies. The comparison is strictly greater-than.
	freeShippingThreshold = 500.0
	flatShippingFee       = 50.0
	taxRate               = 0.15

	paymentMethod = "PayFast"

	// Bounded retries on an order-number collision within the year bucket.
	orderNumberAttempts = 3
)

var ErrEmptyCheckout = errors.New("items and shipping address are required")

type orderUseCase struct {
	repo         order.Repository
	imageBaseURL string
	logger       *zap.Logger
	now          func() time.Time
	randInt      func(n int) int
}

func NewOrderUseCase(repo order.Repository, imageBaseURL string, log *zap.Logger) order.UseCase {
	return &orderUseCase{
		repo:         repo,
		imageBaseURL: strings.TrimRight(imageBaseURL, "/") + "/",
		logger:       log,
		now:          time.Now,
		randInt:      rand.Intn,
	}
}

func (uc *orderUseCase) Checkout(ctx context.Context, customerID int64, input *dto.CheckoutInput) (*dto.CheckoutResult, error) {
	// Shape validation happens before any transaction is opened.
	if len(input.Items) == 0 || input.ShippingAddress.AddressLine1 == "" {
		return nil, ErrEmptyCheckout
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, ErrEmptyCheckout
		}
	}

	ids := make([]int64, 0, len(input.Items))
	for _, item := range input.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := uc.repo.ActiveProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	var subtotal float64
	items := make([]model.OrderItem, 0, len(input.Items))

	for _, line := range input.Items {
		p, ok := products[line.ProductID]
		if !ok {
			return nil, &order.ProductNotFoundError{ProductID: line.ProductID}
		}
		if p.StockQuantity < line.Quantity {
			return nil, &order.InsufficientStockError{ProductID: p.ID, ProductName: p.Name}
		}

		// Price is resolved per line at checkout time, not the price the
		// client displayed.
		price := p.UnitPrice()
		lineTotal := price * float64(line.Quantity)
		subtotal += lineTotal

		items = append(items, model.OrderItem{
			ProductID:    p.ID,
			VendorID:     p.VendorID,
			ProductName:  p.Name,
			ProductImage: p.DisplayImage(),
			Quantity:     line.Quantity,
			Price:        price,
			Total:        lineTotal,
			CreatedAt:    now,
		})
	}

	shipping := flatShippingFee
	if subtotal > freeShippingThreshold {
		shipping = 0
	}
	tax := round2(subtotal * taxRate)
	total := subtotal + shipping + tax

	o := &model.Order{
		BaseModel:       model.BaseModel{CreatedAt: now, UpdatedAt: now},
		CustomerID:      customerID,
		Subtotal:        subtotal,
		Shipping:        shipping,
		Tax:             tax,
		Total:           total,
		Status:          model.OrderPending,
		PaymentStatus:   model.PaymentPending,
		PaymentMethod:   paymentMethod,
		ShippingAddress: input.ShippingAddress,
		Notes:           input.Notes,
		Items:           items,
	}

	// An order-number collision rolls the transaction back; re-roll the
	// suffix and try again rather than failing the checkout.
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		o.OrderNumber = uc.generateOrderNumber()
		err = uc.repo.CreateOrder(ctx, o)
		if !errors.Is(err, order.ErrOrderNumberTaken) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order created",
		zap.Int64("order_id", o.ID),
		zap.String("order_number", o.OrderNumber),
		zap.Float64("total", o.Total),
	)

	return &dto.CheckoutResult{
		Order: dto.OrderSummary{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			Total:       o.Total,
			Status:      string(o.Status),
		},
	}, nil
}

func (uc *orderUseCase) ListOrders(ctx context.Context, customerID int64) ([]model.Order, error) {
	orders, err := uc.repo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}
	itemsByOrder, err := uc.repo.ItemsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = uc.formatItems(itemsByOrder[orders[i].ID])
	}
	return orders, nil
}

func (uc *orderUseCase) GetOrder(ctx context.Context, id, customerID int64) (*model.Order, error) {
	o, err := uc.repo.FindByID(ctx, id, customerID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, order.ErrNotFound
	}

	itemsByOrder, err := uc.repo.ItemsFor(ctx, []int64{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = uc.formatItems(itemsByOrder[o.ID])
	return o, nil
}

func (uc *orderUseCase) formatItems(items []model.OrderItem) []model.OrderItem {
	if items == nil {
		return []model.OrderItem{}
	}
	for i := range items {
		url := items[i].ProductImage
		if url != "" && !strings.HasPrefix(url, "http") {
			items[i].ProductImage = uc.imageBaseURL + strings.TrimLeft(url, "/")
		}
	}
	return items
}

// generateOrderNumber builds BP-<year>-<5-digit random suffix>.
func (uc *orderUseCase) generateOrderNumber() string {
	return fmt.Sprintf("BP-%d-%05d", uc.now().Year(), uc.randInt(99999)+1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
