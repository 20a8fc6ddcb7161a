// Package entity contains the core business objects of the project.
package entity

import "errors"

// ErrInvalidStatus is returned when a status value is outside its closed set.
var ErrInvalidStatus = errors.New("invalid status value")

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// PaymentStatus represents the settlement state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	default:
		return false
	}
}

// DeliveryStatus represents the shipment state of a delivery.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusInTransit DeliveryStatus = "in_transit"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusFailed    DeliveryStatus = "failed"
)

// String returns the string representation of the DeliveryStatus.
func (s DeliveryStatus) String() string {
	return string(s)
}

// IsValid checks if the DeliveryStatus is a valid value.
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusInTransit, DeliveryStatusDelivered, DeliveryStatusFailed:
		return true
	default:
		return false
	}
}

// statusLike is the shared constraint for status transition validation.
type statusLike interface {
	~string
	IsValid() bool
}

// ValidateTransition checks whether a status change from one value to another
// is legal. Every transition between valid values is currently allowed; this
// function exists so future transition rules have a single home.
func ValidateTransition[S statusLike](from, to S) error {
	if !from.IsValid() {
		return ErrInvalidStatus
	}
	if !to.IsValid() {
		return ErrInvalidStatus
	}

	return nil
}
