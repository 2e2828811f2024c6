package run

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/HazyCorp/statscalc/cmd/statscalc/cmd/globflags"
	"github.com/HazyCorp/statscalc/internal/apiserver"
	"github.com/HazyCorp/statscalc/internal/fxbuild"
	"github.com/HazyCorp/statscalc/internal/metricsrv"
)

var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "runs the stats calculator as a standalone service",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		constructors := fxbuild.GetConstructors()

		var e struct {
			fx.In

			Logger *slog.Logger
		}

		app := fx.New(
			fx.Provide(constructors...),

			fx.Populate(&e),

			fx.Invoke(
				func(*apiserver.Server, *metricsrv.Server) {},
			),

			fx.WithLogger(func(l *slog.Logger) fxevent.Logger {
				return &fxevent.SlogLogger{Logger: l}
			}),
		)

		if err := app.Start(ctx); err != nil {
			return errors.Wrap(err, "cannot start the application")
		}

		l := e.Logger

		select {
		case <-ctx.Done():
			l.Info("got shutdown signal")
		case stopSignal := <-app.Wait():
			l.Info("application ended it's work", slog.String("signal", stopSignal.String()))
		}

		tCtx, tCancel := context.WithTimeout(context.Background(), app.StopTimeout())
		defer tCancel()

		if err := app.Stop(tCtx); err != nil {
			return errors.Wrap(err, "cannot gracefully stop the application")
		}

		l.Info("application shuted down successfully!")
		return nil
	},
}

func init() {
	RunCmd.Flags().StringVarP(&globflags.ConfigPath, "config", "c", "", "path to config for the service run")
}
