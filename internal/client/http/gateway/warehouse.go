package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stroyteam/supplydesk/internal/model"
)

const capWarehouse = "warehouse"

func (c *Client) WarehouseByProject(ctx context.Context, projectID int64) ([]model.WarehouseItem, error) {
	var dtos []warehouseItemDTO
	path := fmt.Sprintf("/api/Warehouse/project/%d", projectID)
	if err := c.do(ctx, capWarehouse, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	return warehouseItemsToModel(dtos), nil
}

// The warehouse write endpoints bind PascalCase JSON.
type warehouseItemRequest struct {
	ProjectID int64   `json:"ProjectId,omitempty"`
	Name      string  `json:"Name"`
	Content   string  `json:"Content"`
	Quantity  float64 `json:"Quantity"`
	Unit      string  `json:"Unit"`
	Category  string  `json:"Category"`
	SupplyID  int64   `json:"SupplyId,omitempty"`
}

func (c *Client) CreateWarehouseItem(ctx context.Context, params model.CreateWarehouseItemParams) (*model.WarehouseItem, error) {
	body := warehouseItemRequest{
		ProjectID: params.ProjectID,
		Name:      params.Name,
		Content:   params.Content,
		Quantity:  params.Quantity,
		Unit:      params.Unit,
		Category:  params.Category,
		SupplyID:  params.SupplyID,
	}

	var dto warehouseItemDTO
	if err := c.do(ctx, capWarehouse, http.MethodPost, "/api/Warehouse", body, &dto); err != nil {
		return nil, err
	}

	item := warehouseItemToModel(dto)
	return &item, nil
}

func (c *Client) UpdateWarehouseItem(ctx context.Context, id int64, params model.UpdateWarehouseItemParams) error {
	body := warehouseItemRequest{
		Name:     params.Name,
		Content:  params.Content,
		Quantity: params.Quantity,
		Unit:     params.Unit,
		Category: params.Category,
	}
	return c.do(ctx, capWarehouse, http.MethodPut, fmt.Sprintf("/api/Warehouse/%d", id), body, nil)
}

func (c *Client) DeleteWarehouseItem(ctx context.Context, id int64) error {
	return c.do(ctx, capWarehouse, http.MethodDelete, fmt.Sprintf("/api/Warehouse/%d", id), nil, nil)
}
