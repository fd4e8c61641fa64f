package gateway

import "time"

// Wire shapes. Responses are camelCase; a few write endpoints want PascalCase
// (see warehouse.go and the supply multipart form).

type projectDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type userDTO struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	MiddleName string `json:"middleName"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

type membershipDTO struct {
	UserID    int64  `json:"userId"`
	ProjectID int64  `json:"projectId"`
	Role      string `json:"role"`
}

type materialDTO struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Content  string  `json:"content"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type supplyDTO struct {
	ID            int64         `json:"id"`
	ProjectID     int64         `json:"projectId"`
	SupplyName    string        `json:"supplyName"`
	SupplierName  string        `json:"supplierName"`
	SupplierEmail string        `json:"supplierEmail"`
	Materials     []materialDTO `json:"materials"`
	Documents     []string      `json:"documents"`
	// Older records carry status, newer ones deliveryStatus; both may be set.
	Status         string     `json:"status"`
	DeliveryStatus string     `json:"deliveryStatus"`
	CreatedAt      *time.Time `json:"createdAt"`
	ExpectedDate   *time.Time `json:"expectedDate"`
}

type warehouseItemDTO struct {
	ID        int64      `json:"id"`
	ProjectID int64      `json:"projectId"`
	Name      string     `json:"name"`
	Content   string     `json:"content"`
	Quantity  float64    `json:"quantity"`
	Unit      string     `json:"unit"`
	Category  string     `json:"category"`
	SupplyID  int64      `json:"supplyId"`
	CreatedAt *time.Time `json:"createdAt"`
}

type writeOffDTO struct {
	ID              int64      `json:"id"`
	WarehouseItemID int64      `json:"warehouseItemId"`
	ProjectID       int64      `json:"projectId"`
	Quantity        float64    `json:"quantity"`
	Content         string     `json:"content"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	CreatedAt       *time.Time `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt"`
}

type loginResponseDTO struct {
	Token string `json:"token"`
}
