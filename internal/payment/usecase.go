package payment

import (
	"context"
	"net/url"

	"github.com/pkg/errors"

	"github.com/partsbaypro/baypro-api/internal/payment/dto"
)

var (
	ErrOrderNotFound  = errors.New("order not found")
	ErrEmptyPayload   = errors.New("no data received")
	ErrMissingOrderID = errors.New("no order ID")
)

type UseCase interface {
	Initiate(ctx context.Context, customerID, orderID int64) (*dto.InitiateResult, error)
	// HandleNotification ingests the gateway's form-encoded server-to-server
	// callback. A nil return means the notification was accepted, whether or
	// not it changed order state.
	HandleNotification(ctx context.Context, form url.Values) error
}
