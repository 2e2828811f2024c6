package fxbuild

import (
	"log/slog"

	"github.com/HazyCorp/statscalc/internal/apiserver"
	"github.com/HazyCorp/statscalc/internal/configuration"
	"github.com/HazyCorp/statscalc/internal/metricsrv"
	"github.com/HazyCorp/statscalc/internal/registry"
	"github.com/HazyCorp/statscalc/internal/statsapi"
	"github.com/HazyCorp/statscalc/pkg/common/hzlog"
)

func NewLogger(c hzlog.Config) (*slog.Logger, error) {
	return hzlog.Build(c)
}

func NewRegistry(c registry.Config, l *slog.Logger) *registry.Registry {
	return registry.New(c, registry.WithLogger(l))
}

func GetConstructors() []interface{} {
	return []interface{}{
		configuration.Read,
		NewLogger,
		NewRegistry,
		statsapi.New,
		apiserver.NewFX,
		metricsrv.NewFX,
	}
}
