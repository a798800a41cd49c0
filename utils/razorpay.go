package utils

import (
	"academy/config"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const razorpayOrdersURL = "https://api.razorpay.com/v1/orders"

// GatewayOrder is the gateway's view of a provisional order
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// OrderCreator opens a provisional order with the payment gateway. Tests
// swap in a double.
type OrderCreator interface {
	CreateOrder(amountMinor int64, currency, receipt string) (*GatewayOrder, error)
}

// Gateway is the active payment gateway client
var Gateway OrderCreator = &razorpayClient{http: resty.New()}

type razorpayClient struct {
	http *resty.Client
}

func (r *razorpayClient) CreateOrder(amountMinor int64, currency, receipt string) (*GatewayOrder, error) {
	var order GatewayOrder

	resp, err := r.http.R().
		SetBasicAuth(config.AppConfig.RazorpayKeyID, config.AppConfig.RazorpaySecret).
		SetBody(map[string]interface{}{
			"amount":   amountMinor,
			"currency": currency,
			"receipt":  receipt,
		}).
		SetResult(&order).
		Post(razorpayOrdersURL)

	if err != nil {
		return nil, fmt.Errorf("failed to create gateway order: %v", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("gateway error: %s", resp.String())
	}

	return &order, nil
}

// OrderReceipt builds a unique receipt reference for an enrollment's order
func OrderReceipt(enrollmentID uint) string {
	return fmt.Sprintf("receipt_%d_%s", enrollmentID, uuid.NewString()[:8])
}
