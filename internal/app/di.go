package app

import (
	"context"

	"github.com/stroyteam/supplydesk/internal/auth"
	"github.com/stroyteam/supplydesk/internal/client/http/gateway"
	"github.com/stroyteam/supplydesk/internal/config"
	infrahttp "github.com/stroyteam/supplydesk/internal/infra/http"
	"github.com/stroyteam/supplydesk/internal/model"
	"github.com/stroyteam/supplydesk/internal/report"
	"github.com/stroyteam/supplydesk/internal/service/store"
)

// DomainStore is the slice of the store the application drives directly.
type DomainStore interface {
	InitialLoad(ctx context.Context) error
	LoadProjectWarehouse(ctx context.Context, projectID int64) error
	LoadWriteOffs(ctx context.Context) error
	AvailableProjects() []model.Project
	Warehouse(projectID int64) []model.WarehouseItem
}

type di struct {
	session   *auth.Session
	gateway   *gateway.Client
	store     DomainStore
	generator *report.Generator
	metrics   *infrahttp.Server
}

func NewDI() *di { return &di{} }

func (d *di) Session(_ context.Context) *auth.Session {
	if d.session == nil {
		d.session = auth.NewSession(config.C().Auth.Token())
	}
	return d.session
}

func (d *di) Gateway(ctx context.Context) *gateway.Client {
	if d.gateway == nil {
		cfg := config.C()
		d.gateway = gateway.NewClient(
			cfg.API.BaseURL(),
			cfg.API.Timeout(),
			d.Session(ctx),
		)
	}
	return d.gateway
}

func (d *di) Store(ctx context.Context) DomainStore {
	if d.store == nil {
		d.store = store.NewStore(d.Gateway(ctx), d.Session(ctx))
	}
	return d.store
}

func (d *di) ReportGenerator(ctx context.Context) *report.Generator {
	if d.generator == nil {
		d.generator = report.NewGenerator(d.Store(ctx))
	}
	return d.generator
}

func (d *di) MetricsServer(_ context.Context) *infrahttp.Server {
	if d.metrics == nil {
		d.metrics = infrahttp.NewServer(config.C().Metrics.Address())
	}
	return d.metrics
}
