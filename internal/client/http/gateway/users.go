package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stroyteam/supplydesk/internal/model"
)

const capUsers = "users"

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var dtos []userDTO
	if err := c.do(ctx, capUsers, http.MethodGet, "/api/Users", nil, &dtos); err != nil {
		return nil, err
	}
	return usersToModel(dtos), nil
}

func (c *Client) UpdateUserRole(ctx context.Context, id int64, role model.Role) error {
	body := map[string]string{"role": string(role)}
	path := fmt.Sprintf("/api/Users/%d/role", id)
	return c.do(ctx, capUsers, http.MethodPut, path, body, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, capUsers, http.MethodDelete, fmt.Sprintf("/api/Users/%d", id), nil, nil)
}
