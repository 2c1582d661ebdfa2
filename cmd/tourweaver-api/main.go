// README: Entry point; wires config, generator, enrichment and the HTTP server through fx.
package main

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"tourweaver/cmd/fx/aifx"
	"tourweaver/cmd/fx/configfx"
	"tourweaver/cmd/fx/enrichfx"
	"tourweaver/cmd/fx/httpfx"
	"tourweaver/cmd/fx/plannerfx"
)

func main() {
	app := fx.New(
		configfx.Module,
		aifx.Module,
		enrichfx.Module,
		plannerfx.Module,
		httpfx.Module,
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
	)
	app.Run()
}
