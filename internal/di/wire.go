//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"feedcompose/internal/composer"
)

// This is just a declaration — wire will generate the real body
func InitializeApplication() (*Application, error) {
	wire.Build(
		ProvideConfig,
		ProvideQueue,
		ProvideHub,
		ProvideDraftStore,
		ProvideMongoConnection,
		ProvideConverter,
		ProvideResolver,
		ProvidePostSink,
		ProvideWallet,
		ProvideComposerDeps,
		composer.New,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
