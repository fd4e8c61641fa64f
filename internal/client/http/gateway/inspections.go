package gateway

import (
	"context"
	"net/http"

	"github.com/stroyteam/supplydesk/internal/model"
)

const capInspections = "inspections"

// Reference codes the backend requires on every inspection record.
const (
	inspectionOverdoubt  = "DNS-11-A8131-00133.7387"
	inspectionReachValue = "RMS-11-A8131-00133.7387"
)

func (c *Client) CreateInspection(ctx context.Context, params model.CreateInspectionParams) error {
	body := struct {
		SupplyID   int64  `json:"supplyId"`
		Status     string `json:"status"`
		Comment    string `json:"comment"`
		Overdoubt  string `json:"overdoubt"`
		ReachValue string `json:"reachvalue"`
	}{
		SupplyID:   params.SupplyID,
		Status:     string(params.Status),
		Comment:    params.Comment,
		Overdoubt:  inspectionOverdoubt,
		ReachValue: inspectionReachValue,
	}

	return c.do(ctx, capInspections, http.MethodPost, "/api/Inspections", body, nil)
}
