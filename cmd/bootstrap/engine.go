package bootstrap

import (
	"kantine-order-api/internal/domain/order"
	"kantine-order-api/internal/pkg/config"
	"kantine-order-api/internal/pkg/messages"

	"go.uber.org/fx"
)

var EngineModule = fx.Module("engine",
	fx.Provide(
		NewEngine,
	),
)

// NewEngine wires the admission engine with the configured reference zone and
// violation message locale.
func NewEngine(cfg config.Config) (*order.Engine, error) {
	zone, err := cfg.Order.ReferenceZone()
	if err != nil {
		return nil, err
	}
	return order.NewEngine(zone, messages.ForLocale(cfg.Order.Locale)), nil
}
