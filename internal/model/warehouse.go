package model

import "time"

// WarehouseItem is a stock record. The only creation path is supply approval,
// which stamps SupplyID for provenance.
type WarehouseItem struct {
	ID        int64
	ProjectID int64
	Name      string
	Content   string
	Quantity  float64
	Unit      string
	Category  string
	SupplyID  int64
	CreatedAt *time.Time
}

type CreateWarehouseItemParams struct {
	ProjectID int64
	Name      string
	Content   string
	Quantity  float64
	Unit      string
	Category  string
	SupplyID  int64
}

type UpdateWarehouseItemParams struct {
	Name     string
	Content  string
	Quantity float64
	Unit     string
	Category string
}

type WriteOffStatus string

const (
	WriteOffPending  WriteOffStatus = "pending"
	WriteOffApproved WriteOffStatus = "approved"
	WriteOffRejected WriteOffStatus = "rejected"
)

// WriteOff is a request to deduct quantity from a warehouse item. It is
// judged exactly once; approved and rejected are terminal.
type WriteOff struct {
	ID              int64
	WarehouseItemID int64
	ProjectID       int64
	Quantity        float64
	Content         string
	Reason          string
	Status          WriteOffStatus
	CreatedAt       *time.Time
	UpdatedAt       *time.Time
}

type CreateWriteOffParams struct {
	WarehouseItemID int64
	ProjectID       int64
	Quantity        float64
	Content         string
	Reason          string
}
