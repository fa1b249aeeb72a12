package usecase

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/partsbaypro/baypro-api/config"
	"github.com/partsbaypro/baypro-api/internal/model"
	"github.com/partsbaypro/baypro-api/internal/payment"
	"github.com/partsbaypro/baypro-api/internal/payment/dto"
	"github.com/partsbaypro/baypro-api/pkg/mailer"
)

type fakeRepo struct {
	order    *model.Order
	customer *model.User

	paidOrderID   int64
	paidReference string
	failedOrderID int64
}

func (f *fakeRepo) FindOrder(ctx context.Context, orderID, customerID int64) (*model.Order, error) {
	if f.order != nil && f.order.ID == orderID && f.order.CustomerID == customerID {
		return f.order, nil
	}
	return nil, nil
}

func (f *fakeRepo) FindOrderByID(ctx context.Context, orderID int64) (*model.Order, error) {
	if f.order != nil && f.order.ID == orderID {
		return f.order, nil
	}
	return nil, nil
}

func (f *fakeRepo) FindCustomer(ctx context.Context, id int64) (*model.User, error) {
	if f.customer != nil && f.customer.ID == id {
		return f.customer, nil
	}
	return nil, nil
}

func (f *fakeRepo) MarkPaid(ctx context.Context, orderID int64, reference string) error {
	f.paidOrderID = orderID
	f.paidReference = reference
	return nil
}

func (f *fakeRepo) MarkFailed(ctx context.Context, orderID int64) error {
	f.failedOrderID = orderID
	return nil
}

func testConfig() config.PayFastConfig {
	return config.PayFastConfig{
		MerchantID:  "10000100",
		MerchantKey: "46f0cd694581a",
		Sandbox:     true,
		ReturnURL:   "https://partsbaypro.com/home/payment-success.php",
		CancelURL:   "https://partsbaypro.com/home/payment-cancel.php",
		NotifyURL:   "https://partsbaypro.com/api/payment/payfast/callback",
	}
}

func testRepo() *fakeRepo {
	o := &model.Order{
		OrderNumber: "BP-2025-00042",
		CustomerID:  9,
		Total:       337.5,
	}
	o.ID = 11
	u := &model.User{Name: "Jane van der Merwe", Email: "jane@example.com"}
	u.ID = 9
	return &fakeRepo{order: o, customer: u}
}

func TestInitiateFieldOrder(t *testing.T) {
	repo := testRepo()
	uc := NewPaymentUseCase(repo, testConfig(), nil, zap.NewNop())

	result, err := uc.Initiate(context.Background(), 9, 11)
	require.NoError(t, err)

	assert.Equal(t, "https://sandbox.payfast.co.za/eng/process", result.PaymentURL)

	keys := make([]string, len(result.FormData))
	for i, f := range result.FormData {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{
		"merchant_id", "merchant_key", "return_url", "cancel_url", "notify_url",
		"name_first", "name_last", "email_address", "amount", "item_name",
		"custom_str1", "signature",
	}, keys)

	assert.Equal(t, "337.50", result.FormData.Get("amount"))
	assert.Equal(t, "BayPro Order BP-2025-00042", result.FormData.Get("item_name"))
	assert.Equal(t, "11", result.FormData.Get("custom_str1"))
	assert.Equal(t, "Jane", result.FormData.Get("name_first"))
	assert.Equal(t, "van", result.FormData.Get("name_last"))
	assert.Equal(t, "https://partsbaypro.com/home/payment-success.php?order_id=11", result.FormData.Get("return_url"))

	// The signature covers every field before it.
	expected := Sign(result.FormData[:len(result.FormData)-1], "")
	assert.Equal(t, expected, result.FormData.Get("signature"))
}

func TestInitiateLiveProcessURL(t *testing.T) {
	cfg := testConfig()
	cfg.Sandbox = false
	uc := NewPaymentUseCase(testRepo(), cfg, nil, zap.NewNop())

	result, err := uc.Initiate(context.Background(), 9, 11)
	require.NoError(t, err)
	assert.Equal(t, "https://www.payfast.co.za/eng/process", result.PaymentURL)
}

func TestInitiateUnknownOrder(t *testing.T) {
	uc := NewPaymentUseCase(testRepo(), testConfig(), nil, zap.NewNop())

	_, err := uc.Initiate(context.Background(), 9, 999)
	assert.ErrorIs(t, err, payment.ErrOrderNotFound)

	// Another customer's order is invisible, not forbidden.
	_, err = uc.Initiate(context.Background(), 5, 11)
	assert.ErrorIs(t, err, payment.ErrOrderNotFound)
}

func TestSignKnownValues(t *testing.T) {
	fields := dto.FormFields{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "two words"},
	}
	assert.Equal(t, "492536b19e1b75f0406db5b19cdc17b5", Sign(fields, ""))
	assert.Equal(t, "c6a86cb8c96a558a3db1336d00014ed8", Sign(fields, "secret phrase"))
}

func TestSignTrimsValues(t *testing.T) {
	padded := dto.FormFields{{Key: "a", Value: "  1  "}}
	trimmed := dto.FormFields{{Key: "a", Value: "1"}}
	assert.Equal(t, Sign(trimmed, ""), Sign(padded, ""))
}

func TestSignOrderSensitive(t *testing.T) {
	ab := dto.FormFields{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}
	ba := dto.FormFields{{Key: "b", Value: "2"}, {Key: "a", Value: "1"}}
	assert.NotEqual(t, Sign(ab, ""), Sign(ba, ""))
}

func TestHandleNotificationComplete(t *testing.T) {
	repo := testRepo()
	uc := NewPaymentUseCase(repo, testConfig(), nil, zap.NewNop())

	form := url.Values{}
	form.Set("payment_status", "COMPLETE")
	form.Set("custom_str1", "11")
	form.Set("pf_payment_id", "1089250")

	err := uc.HandleNotification(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, int64(11), repo.paidOrderID)
	assert.Equal(t, "1089250", repo.paidReference)
	assert.Zero(t, repo.failedOrderID)
}

func TestHandleNotificationCancelled(t *testing.T) {
	repo := testRepo()
	uc := NewPaymentUseCase(repo, testConfig(), nil, zap.NewNop())

	form := url.Values{}
	form.Set("payment_status", "CANCELLED")
	form.Set("custom_str1", "11")

	err := uc.HandleNotification(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, int64(11), repo.failedOrderID)
	assert.Zero(t, repo.paidOrderID)
}

func TestHandleNotificationUnknownStatusIsNoOp(t *testing.T) {
	repo := testRepo()
	uc := NewPaymentUseCase(repo, testConfig(), nil, zap.NewNop())

	form := url.Values{}
	form.Set("payment_status", "PENDING")
	form.Set("custom_str1", "11")

	err := uc.HandleNotification(context.Background(), form)
	require.NoError(t, err)
	assert.Zero(t, repo.paidOrderID)
	assert.Zero(t, repo.failedOrderID)
}

func TestHandleNotificationBadPayload(t *testing.T) {
	uc := NewPaymentUseCase(testRepo(), testConfig(), nil, zap.NewNop())

	err := uc.HandleNotification(context.Background(), url.Values{})
	assert.ErrorIs(t, err, payment.ErrEmptyPayload)

	form := url.Values{}
	form.Set("payment_status", "COMPLETE")
	err = uc.HandleNotification(context.Background(), form)
	assert.ErrorIs(t, err, payment.ErrMissingOrderID)

	form.Set("custom_str1", "not-a-number")
	err = uc.HandleNotification(context.Background(), form)
	assert.ErrorIs(t, err, payment.ErrMissingOrderID)
}

func TestNotificationWithMailDisabled(t *testing.T) {
	repo := testRepo()
	// Wired the way main wires it: an empty API key means mail disabled.
	mail := mailer.NewSendGridMailer("", "BayPro", "orders@partsbaypro.com")
	uc := NewPaymentUseCase(repo, testConfig(), mail, zap.NewNop()).(*paymentUseCase)

	require.True(t, uc.mail == nil)

	form := url.Values{}
	form.Set("payment_status", "COMPLETE")
	form.Set("custom_str1", "11")
	form.Set("pf_payment_id", "1089250")

	err := uc.HandleNotification(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, int64(11), repo.paidOrderID)

	// The disabled-mail path must return, not dereference a nil sender.
	uc.sendConfirmation(context.Background(), 11)
}

func TestSplitName(t *testing.T) {
	first, last := splitName("Jane Doe")
	assert.Equal(t, "Jane", first)
	assert.Equal(t, "Doe", last)

	first, last = splitName("Cher")
	assert.Equal(t, "Cher", first)
	assert.Empty(t, last)

	first, last = splitName("")
	assert.Empty(t, first)
	assert.Empty(t, last)
}
