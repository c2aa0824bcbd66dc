//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
)

// InitializeApplication builds the realtime service graph.
func InitializeApplication() (*Application, func(), error) {
	wire.Build(
		ProvideConfig,
		ProvideLogger,
		ProvideMetrics,
		storageSet,
		realtimeSet,
		surfaceSet,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}
