package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/stroyteam/supplydesk/internal/model"
)

const capProjects = "projects"

func (c *Client) ListProjects(ctx context.Context) ([]model.Project, error) {
	var dtos []projectDTO
	if err := c.do(ctx, capProjects, http.MethodGet, "/api/Projects", nil, &dtos); err != nil {
		return nil, err
	}
	return projectsToModel(dtos), nil
}

func (c *Client) MyProjects(ctx context.Context) ([]model.Project, error) {
	var dtos []projectDTO
	if err := c.do(ctx, capProjects, http.MethodGet, "/api/Projects/my", nil, &dtos); err != nil {
		return nil, err
	}
	return projectsToModel(dtos), nil
}

func (c *Client) CreateProject(ctx context.Context, params model.CreateProjectParams) (*model.Project, error) {
	body := map[string]string{
		"name":    params.Name,
		"address": params.Address,
	}

	var dto projectDTO
	if err := c.do(ctx, capProjects, http.MethodPost, "/api/Projects", body, &dto); err != nil {
		return nil, err
	}

	p := projectToModel(dto)
	return &p, nil
}

func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	return c.do(ctx, capProjects, http.MethodDelete, fmt.Sprintf("/api/Projects/%d", id), nil, nil)
}
