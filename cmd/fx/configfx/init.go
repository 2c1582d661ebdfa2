// README: Config and logger providers shared by every binary.
package configfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tourweaver/internal/config"
	"tourweaver/internal/logger"
)

var Module = fx.Provide(
	config.Load,
	ProvideLogger,
)

func ProvideLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Env, cfg.LogLevel)
}
