package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string
type DeliveryMethod string
type PaymentMethod string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting confirmation
	OrderStatusProcessing OrderStatus = "processing" // Being picked and packed
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the item
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before shipping

	DeliveryCourier DeliveryMethod = "courier"
	DeliveryPost    DeliveryMethod = "post"

	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentCash     PaymentMethod = "cash"
)

// Map string to OrderStatus
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusProcessing):
		return OrderStatusProcessing, nil
	case string(OrderStatusShipped):
		return OrderStatusShipped, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Map string to DeliveryMethod
func ParseDeliveryMethod(method string) (DeliveryMethod, error) {
	switch strings.ToLower(method) {
	case string(DeliveryCourier):
		return DeliveryCourier, nil
	case string(DeliveryPost):
		return DeliveryPost, nil
	default:
		return "", errors.New("invalid delivery method")
	}
}

// Map string to PaymentMethod
func ParsePaymentMethod(method string) (PaymentMethod, error) {
	switch strings.ToLower(method) {
	case string(PaymentCard):
		return PaymentCard, nil
	case string(PaymentTransfer):
		return PaymentTransfer, nil
	case string(PaymentCash):
		return PaymentCash, nil
	default:
		return "", errors.New("invalid payment method")
	}
}

// Label returns the customer-facing name of the delivery method. Values
// outside the closed set are echoed back untranslated.
func (m DeliveryMethod) Label() string {
	switch m {
	case DeliveryCourier:
		return "Курьер"
	case DeliveryPost:
		return "Почта России"
	default:
		return string(m)
	}
}

// Fee returns the flat delivery surcharge in minor currency units. Values
// outside the closed set carry no surcharge.
func (m DeliveryMethod) Fee() int64 {
	switch m {
	case DeliveryCourier:
		return 500
	case DeliveryPost:
		return 200
	default:
		return 0
	}
}

// OrderItem is a snapshot of a cart line taken at commit time. It never
// changes afterwards, so later cart edits cannot rewrite order history.
type OrderItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Image    string `json:"image"`
}

// Order is the immutable record produced by a completed checkout.
// Total is the item subtotal at commit time; the delivery surcharge is kept
// separately in DeliveryFee.
type Order struct {
	ID              string      `json:"id"`
	Date            time.Time   `json:"date"`
	Status          OrderStatus `json:"status"`
	Items           []OrderItem `json:"items"`
	Total           int64       `json:"total"`
	DeliveryFee     int64       `json:"deliveryFee"`
	DeliveryMethod  string      `json:"deliveryMethod"`
	DeliveryAddress Address     `json:"deliveryAddress"`
	TrackingNumber  string      `json:"trackingNumber,omitempty"`
}
