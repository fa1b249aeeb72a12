package usecase

import (
	"context"
	"crypto/md5"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/partsbaypro/baypro-api/config"
	"github.com/partsbaypro/baypro-api/internal/payment"
	"github.com/partsbaypro/baypro-api/internal/payment/dto"
	"github.com/partsbaypro/baypro-api/pkg/mailer"
)

const (
	sandboxProcessURL = "https://sandbox.payfast.co.za/eng/process"
	liveProcessURL    = "https://www.payfast.co.za/eng/process"

	// ITN payment_status sentinels. Anything else is accepted and ignored.
	statusComplete  = "COMPLETE"
	statusCancelled = "CANCELLED"
)

type paymentUseCase struct {
	repo   payment.Repository
	cfg    config.PayFastConfig
	mail   mailer.Mailer
	logger *zap.Logger
}

// NewPaymentUseCase builds the gateway bridge. Credentials come in through
// the config value, never from ambient globals. mail may be nil.
func NewPaymentUseCase(repo payment.Repository, cfg config.PayFastConfig, mail mailer.Mailer, log *zap.Logger) payment.UseCase {
	return &paymentUseCase{repo: repo, cfg: cfg, mail: mail, logger: log}
}

func (uc *paymentUseCase) Initiate(ctx context.Context, customerID, orderID int64) (*dto.InitiateResult, error) {
	o, err := uc.repo.FindOrder(ctx, orderID, customerID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, payment.ErrOrderNotFound
	}

	u, err := uc.repo.FindCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, payment.ErrOrderNotFound
	}

	firstName, lastName := splitName(u.Name)

	fields := dto.FormFields{
		{Key: "merchant_id", Value: uc.cfg.MerchantID},
		{Key: "merchant_key", Value: uc.cfg.MerchantKey},
		{Key: "return_url", Value: fmt.Sprintf("%s?order_id=%d", uc.cfg.ReturnURL, o.ID)},
		{Key: "cancel_url", Value: fmt.Sprintf("%s?order_id=%d", uc.cfg.CancelURL, o.ID)},
		{Key: "notify_url", Value: uc.cfg.NotifyURL},
		{Key: "name_first", Value: firstName},
		{Key: "name_last", Value: lastName},
		{Key: "email_address", Value: u.Email},
		{Key: "amount", Value: fmt.Sprintf("%.2f", o.Total)},
		{Key: "item_name", Value: "BayPro Order " + o.OrderNumber},
		{Key: "custom_str1", Value: strconv.FormatInt(o.ID, 10)},
	}

	fields = append(fields, dto.FormField{
		Key:   "signature",
		Value: Sign(fields, uc.cfg.Passphrase),
	})

	processURL := liveProcessURL
	if uc.cfg.Sandbox {
		processURL = sandboxProcessURL
	}

	return &dto.InitiateResult{
		PaymentURL: processURL,
		FormData:   fields,
	}, nil
}

// Sign computes the gateway signature: md5 over the url-encoded
// key=value pairs joined with '&' in field order, with the passphrase
// appended when one is configured. The gateway re-computes this byte for
// byte, so encoding and ordering must not drift.
func Sign(fields dto.FormFields, passphrase string) string {
	pairs := make([]string, 0, len(fields)+1)
	for _, f := range fields {
		pairs = append(pairs, f.Key+"="+url.QueryEscape(strings.TrimSpace(f.Value)))
	}
	paramString := strings.Join(pairs, "&")
	if passphrase != "" {
		paramString += "&passphrase=" + url.QueryEscape(passphrase)
	}
	return fmt.Sprintf("%x", md5.Sum([]byte(paramString)))
}

func (uc *paymentUseCase) HandleNotification(ctx context.Context, form url.Values) error {
	if len(form) == 0 {
		return payment.ErrEmptyPayload
	}

	orderIDStr := form.Get("custom_str1")
	if orderIDStr == "" {
		return payment.ErrMissingOrderID
	}
	orderID, err := strconv.ParseInt(orderIDStr, 10, 64)
	if err != nil {
		return payment.ErrMissingOrderID
	}

	status := form.Get("payment_status")
	switch status {
	case statusComplete:
		if err := uc.repo.MarkPaid(ctx, orderID, form.Get("pf_payment_id")); err != nil {
			return errors.Wrap(err, "mark order paid")
		}
		uc.logger.Info("payment complete",
			zap.Int64("order_id", orderID),
			zap.String("reference", form.Get("pf_payment_id")),
		)
		go uc.sendConfirmation(context.Background(), orderID)
	case statusCancelled:
		if err := uc.repo.MarkFailed(ctx, orderID); err != nil {
			return errors.Wrap(err, "mark order failed")
		}
		uc.logger.Info("payment cancelled", zap.Int64("order_id", orderID))
	default:
		// Accepted but ignored. Logged so orders stuck in pending are
		// traceable to the status the gateway actually sent.
		uc.logger.Warn("unhandled payment status",
			zap.Int64("order_id", orderID),
			zap.String("payment_status", status),
		)
	}

	return nil
}

func (uc *paymentUseCase) sendConfirmation(ctx context.Context, orderID int64) {
	if uc.mail == nil {
		return
	}

	o, err := uc.repo.FindOrderByID(ctx, orderID)
	if err != nil || o == nil {
		return
	}
	u, err := uc.repo.FindCustomer(ctx, o.CustomerID)
	if err != nil || u == nil {
		return
	}

	subject := "Order Confirmed - BayPro"
	body := fmt.Sprintf(
		"Dear %s,\n\nPayment for order %s has been received. Your order is confirmed.\n\nTotal: R%.2f\n\nThank you for shopping with BayPro!\n",
		u.Name, o.OrderNumber, o.Total,
	)
	if err := uc.mail.Send(u.Name, u.Email, subject, body); err != nil {
		uc.logger.Warn("confirmation mail failed",
			zap.Int64("order_id", orderID),
			zap.Error(err),
		)
	}
}

func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], parts[1]
	}
}
