package storefx

import (
	"go.uber.org/fx"

	"teithio/internal/infra"
)

var Module = fx.Provide(provideStore)

func provideStore() *infra.MemStore {
	return infra.NewMemStore()
}
