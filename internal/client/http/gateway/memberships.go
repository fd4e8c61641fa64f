package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stroyteam/supplydesk/internal/model"
)

const capMemberships = "memberships"

func (c *Client) ProjectUsers(ctx context.Context, projectID int64) ([]model.Membership, error) {
	var dtos []membershipDTO
	path := fmt.Sprintf("/api/Projects/%d/users", projectID)
	if err := c.do(ctx, capMemberships, http.MethodGet, path, nil, &dtos); err != nil {
		return nil, err
	}
	return membershipsToModel(dtos), nil
}

func (c *Client) CreateMembership(ctx context.Context, params model.CreateMembershipParams) error {
	body := membershipDTO{
		UserID:    params.UserID,
		ProjectID: params.ProjectID,
		Role:      string(params.Role),
	}
	return c.do(ctx, capMemberships, http.MethodPost, "/api/UserProjects", body, nil)
}

func (c *Client) DeleteMembership(ctx context.Context, userID, projectID int64) error {
	path := fmt.Sprintf("/api/UserProjects/%d/%d", userID, projectID)
	return c.do(ctx, capMemberships, http.MethodDelete, path, nil, nil)
}
