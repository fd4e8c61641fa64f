package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/stroyteam/supplydesk/internal/model"
)

const capSupplies = "supplies"

func (c *Client) ListSupplies(ctx context.Context) ([]model.Supply, error) {
	var dtos []supplyDTO
	if err := c.do(ctx, capSupplies, http.MethodGet, "/api/Supplies", nil, &dtos); err != nil {
		return nil, err
	}
	return suppliesToModel(dtos), nil
}

func (c *Client) SupplyByID(ctx context.Context, id int64) (*model.Supply, error) {
	var dto supplyDTO
	if err := c.do(ctx, capSupplies, http.MethodGet, fmt.Sprintf("/api/Supplies/%d", id), nil, &dto); err != nil {
		return nil, err
	}

	s := supplyToModel(dto)
	return &s, nil
}

// CreateSupply posts the supply as multipart/form-data: the backend binds
// PascalCase scalar fields, indexed material fields and a JSON-encoded
// document list from one form.
func (c *Client) CreateSupply(ctx context.Context, params model.CreateSupplyParams) (*model.Supply, error) {
	status := params.DeliveryStatus
	if status == "" {
		status = model.StatusCreated
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	type field struct{ name, value string }

	fields := []field{
		{"ProjectId", strconv.FormatInt(params.ProjectID, 10)},
		{"SupplyName", params.SupplyName},
		{"SupplierName", params.SupplierName},
		{"SupplierEmail", params.SupplierEmail},
		{"DeliveryStatus", string(status)},
	}
	for i, m := range params.Materials {
		fields = append(fields,
			field{fmt.Sprintf("Materials[%d].Name", i), m.Name},
			field{fmt.Sprintf("Materials[%d].Category", i), m.Category},
			field{fmt.Sprintf("Materials[%d].Content", i), m.Content},
			field{fmt.Sprintf("Materials[%d].Quantity", i), strconv.FormatFloat(m.Quantity, 'f', -1, 64)},
		)
	}
	for _, f := range fields {
		if err := form.WriteField(f.name, f.value); err != nil {
			return nil, fmt.Errorf("gateway: supply form field %s: %w", f.name, err)
		}
	}

	docs := params.Documents
	if docs == nil {
		docs = []string{}
	}
	docsJSON, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("gateway: encode documents: %w", err)
	}
	if err := form.WriteField("Documents", string(docsJSON)); err != nil {
		return nil, fmt.Errorf("gateway: supply form field Documents: %w", err)
	}

	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("gateway: close supply form: %w", err)
	}

	var dto supplyDTO
	if err := c.doMultipart(ctx, capSupplies, http.MethodPost, "/api/Supplies", &buf, form.FormDataContentType(), &dto); err != nil {
		return nil, err
	}

	s := supplyToModel(dto)
	return &s, nil
}

func (c *Client) UpdateSupplyStatus(ctx context.Context, id int64, status model.SupplyStatus) error {
	body := map[string]string{"deliveryStatus": string(status)}
	path := fmt.Sprintf("/api/Supplies/%d/status", id)
	return c.do(ctx, capSupplies, http.MethodPut, path, body, nil)
}

func (c *Client) DeleteSupply(ctx context.Context, id int64) error {
	return c.do(ctx, capSupplies, http.MethodDelete, fmt.Sprintf("/api/Supplies/%d", id), nil, nil)
}
