package model

import (
	"strings"
	"time"
)

type SupplyStatus string

// Delivery statuses as the backend stores them. The wire keeps the exact
// casing; comparisons that carry meaning (delivered) are case-insensitive.
const (
	StatusCreated     SupplyStatus = "создана"
	StatusInTransit   SupplyStatus = "в пути"
	StatusAtWarehouse SupplyStatus = "на складе"
	StatusUnderReview SupplyStatus = "проверяется"
	StatusDelivered   SupplyStatus = "доставлено"
	StatusCancelled   SupplyStatus = "отменено"
	StatusReturned    SupplyStatus = "возврат"
	StatusDelayed     SupplyStatus = "задержано"
)

var knownStatuses = []SupplyStatus{
	StatusCreated,
	StatusInTransit,
	StatusAtWarehouse,
	StatusUnderReview,
	StatusDelivered,
	StatusCancelled,
	StatusReturned,
	StatusDelayed,
}

// ParseSupplyStatus maps free-form input onto the closed status set.
// Unknown values are an error rather than a passthrough.
func ParseSupplyStatus(s string) (SupplyStatus, error) {
	for _, known := range knownStatuses {
		if strings.EqualFold(s, string(known)) {
			return known, nil
		}
	}
	return "", ErrUnknownStatus
}

func (s SupplyStatus) Known() bool {
	_, err := ParseSupplyStatus(string(s))
	return err == nil
}

func (s SupplyStatus) Delivered() bool {
	return strings.EqualFold(string(s), string(StatusDelivered))
}

// NormalizeSupplyStatus resolves the backend's two status fields into one:
// deliveryStatus wins, then status, then the initial state.
func NormalizeSupplyStatus(deliveryStatus, status string) SupplyStatus {
	switch {
	case deliveryStatus != "":
		return SupplyStatus(deliveryStatus)
	case status != "":
		return SupplyStatus(status)
	default:
		return StatusCreated
	}
}

// Material is a named, quantified line item within a supply.
type Material struct {
	Name     string
	Category string
	Content  string
	Quantity float64
	Unit     string
}

type Supply struct {
	ID            int64
	ProjectID     int64
	SupplyName    string
	SupplierName  string
	SupplierEmail string
	Materials     []Material
	// Stored document paths; a non-empty list makes the supply inspectable.
	Documents    []string
	Status       SupplyStatus
	CreatedAt    *time.Time
	ExpectedDate *time.Time
}

type CreateSupplyParams struct {
	ProjectID      int64
	SupplyName     string
	SupplierName   string
	SupplierEmail  string
	DeliveryStatus SupplyStatus
	Materials      []Material
	Documents      []string
}

// DocumentFile is an in-memory file handed to the document upload endpoint.
type DocumentFile struct {
	Name string
	Data []byte
}
