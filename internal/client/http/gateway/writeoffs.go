package gateway

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/stroyteam/supplydesk/internal/model"
)

const capWriteOffs = "writeoffs"

func (c *Client) CreateWriteOff(ctx context.Context, params model.CreateWriteOffParams) (*model.WriteOff, error) {
	body := struct {
		WarehouseItemID int64   `json:"warehouseItemId"`
		ProjectID       int64   `json:"projectId"`
		Quantity        float64 `json:"quantity"`
		Content         string  `json:"content"`
		Reason          string  `json:"reason"`
	}{
		WarehouseItemID: params.WarehouseItemID,
		ProjectID:       params.ProjectID,
		Quantity:        params.Quantity,
		Content:         params.Content,
		Reason:          params.Reason,
	}

	var dto writeOffDTO
	if err := c.do(ctx, capWriteOffs, http.MethodPost, "/api/WarehouseWriteOff", body, &dto); err != nil {
		return nil, err
	}

	wo := writeOffToModel(dto)
	if wo.Status == "" {
		wo.Status = model.WriteOffPending
	}
	return &wo, nil
}

func (c *Client) WriteOffByID(ctx context.Context, id int64) (*model.WriteOff, error) {
	var dto writeOffDTO
	if err := c.do(ctx, capWriteOffs, http.MethodGet, fmt.Sprintf("/api/WarehouseWriteOff/%d", id), nil, &dto); err != nil {
		return nil, err
	}

	wo := writeOffToModel(dto)
	return &wo, nil
}

func (c *Client) DeleteWriteOff(ctx context.Context, id int64) error {
	return c.do(ctx, capWriteOffs, http.MethodDelete, fmt.Sprintf("/api/WarehouseWriteOff/%d", id), nil, nil)
}

func (c *Client) listWriteOffs(ctx context.Context, bucket string, status model.WriteOffStatus) ([]model.WriteOff, error) {
	var dtos []writeOffDTO
	if err := c.do(ctx, capWriteOffs, http.MethodGet, "/api/WarehouseWriteOff/"+bucket, nil, &dtos); err != nil {
		return nil, err
	}
	return writeOffsToModel(dtos, status), nil
}

func (c *Client) PendingWriteOffs(ctx context.Context) ([]model.WriteOff, error) {
	return c.listWriteOffs(ctx, "pending", model.WriteOffPending)
}

func (c *Client) ApprovedWriteOffs(ctx context.Context) ([]model.WriteOff, error) {
	return c.listWriteOffs(ctx, "approved", model.WriteOffApproved)
}

func (c *Client) RejectedWriteOffs(ctx context.Context) ([]model.WriteOff, error) {
	return c.listWriteOffs(ctx, "rejected", model.WriteOffRejected)
}

// ListAllWriteOffs fans out to the three status buckets concurrently and
// merges the results in pending, approved, rejected order.
func (c *Client) ListAllWriteOffs(ctx context.Context) ([]model.WriteOff, error) {
	var pending, approved, rejected []model.WriteOff

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		pending, err = c.PendingWriteOffs(egCtx)
		return err
	})
	eg.Go(func() (err error) {
		approved, err = c.ApprovedWriteOffs(egCtx)
		return err
	})
	eg.Go(func() (err error) {
		rejected, err = c.RejectedWriteOffs(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	all := make([]model.WriteOff, 0, len(pending)+len(approved)+len(rejected))
	all = append(all, pending...)
	all = append(all, approved...)
	all = append(all, rejected...)
	return all, nil
}

func (c *Client) ApproveWriteOff(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/WarehouseWriteOff/%d/approve", id)
	return c.do(ctx, capWriteOffs, http.MethodPut, path, nil, nil)
}

func (c *Client) RejectWriteOff(ctx context.Context, id int64, reason string) error {
	if reason == "" {
		reason = "Причина не указана"
	}
	body := map[string]string{"reason": reason}
	path := fmt.Sprintf("/api/WarehouseWriteOff/%d/reject", id)
	return c.do(ctx, capWriteOffs, http.MethodPut, path, body, nil)
}
