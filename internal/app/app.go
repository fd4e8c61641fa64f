package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/stroyteam/supplydesk/internal/config"
	"github.com/stroyteam/supplydesk/internal/model"
	"github.com/stroyteam/supplydesk/platform/closer"
	"github.com/stroyteam/supplydesk/platform/logger"
)

type app struct {
	di *di
}

func New(ctx context.Context) (*app, error) {
	a := &app{}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI()
	return nil
}

// authenticate establishes the session: a pre-issued token wins, otherwise
// the configured credentials are exchanged for one. Either way the session is
// populated with the authenticated user.
func (a *app) authenticate(ctx context.Context) error {
	const op = "app.authenticate"

	cfg := config.C()
	session := a.di.Session(ctx)
	gw := a.di.Gateway(ctx)

	if cfg.Auth.Token() == "" {
		if cfg.Auth.Email() == "" || cfg.Auth.Password() == "" {
			return fmt.Errorf("%s: no token and no credentials: %w", op, model.ErrUnauthorized)
		}

		token, err := gw.Login(ctx, model.LoginParams{
			Email:    cfg.Auth.Email(),
			Password: cfg.Auth.Password(),
		})
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		session.SetToken(token)
	}

	me, err := gw.Me(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	session.SetUser(me)

	logger.Info(ctx, "authenticated",
		logger.String("email", me.Email),
		logger.String("role", string(me.EffectiveRole())),
	)
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	if err := a.authenticate(ctx); err != nil {
		return err
	}

	st := a.di.Store(ctx)
	if err := st.InitialLoad(ctx); err != nil {
		return err
	}

	for _, p := range st.AvailableProjects() {
		if err := st.LoadProjectWarehouse(ctx, p.ID); err != nil {
			logger.Warn(ctx, "project warehouse unavailable",
				logger.Int64("project_id", p.ID),
				logger.ErrorF(err),
			)
		}
	}

	if err := st.LoadWriteOffs(ctx); err != nil {
		logger.Warn(ctx, "write-offs unavailable", logger.ErrorF(err))
	}

	if config.C().Report.Enabled() {
		path := config.C().Report.Path()
		if err := a.di.ReportGenerator(ctx).Save(path); err != nil {
			return err
		}
		logger.Info(ctx, "warehouse report written", logger.String("path", path))
	}

	if !config.C().Metrics.Enabled() {
		logger.Info(ctx, "✅ state loaded, metrics disabled, exiting")
		return nil
	}

	srv := a.di.MetricsServer(ctx)
	closer.AddNamed("Metrics Server", func(ctx context.Context) error {
		return srv.Shutdown(ctx)
	})

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return srv.Run(egCtx)
	})

	eg.Go(func() error {
		<-egCtx.Done()
		return srv.Shutdown(context.WithoutCancel(egCtx))
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().Metrics.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during shutdown", logger.ErrorF(err))
		return
	}
	logger.Info(ctx, "✅ Stopped")
}
