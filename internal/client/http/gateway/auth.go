package gateway

import (
	"context"
	"net/http"

	"github.com/stroyteam/supplydesk/internal/model"
)

const capAuth = "auth"

// Login exchanges credentials for a bearer token over the anonymous request
// path: no bearer header is sent, since the exchange happens before any
// token exists.
func (c *Client) Login(ctx context.Context, params model.LoginParams) (string, error) {
	body := map[string]string{
		"email":    params.Email,
		"password": params.Password,
	}

	var dto loginResponseDTO
	if err := c.doAnonymous(ctx, capAuth, http.MethodPost, "/api/Auth/login", body, &dto); err != nil {
		return "", err
	}
	return dto.Token, nil
}

func (c *Client) Register(ctx context.Context, params model.RegisterParams) error {
	body := map[string]string{
		"firstName": params.FirstName,
		"lastName":  params.LastName,
		"email":     params.Email,
		"password":  params.Password,
	}
	return c.doAnonymous(ctx, capAuth, http.MethodPost, "/api/Auth/register", body, nil)
}

// Me returns the user the current token belongs to.
func (c *Client) Me(ctx context.Context) (*model.User, error) {
	var dto userDTO
	if err := c.do(ctx, capAuth, http.MethodGet, "/api/Auth/me", nil, &dto); err != nil {
		return nil, err
	}

	u := userToModel(dto)
	return &u, nil
}
