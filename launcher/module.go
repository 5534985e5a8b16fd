package launcher

import (
	"github.com/lambda-feedback/tool-launcher/internal/execution/supervisor"
	"github.com/lambda-feedback/tool-launcher/util/logging"
	"go.uber.org/fx"
)

// Module provides the supervisor, and ties it to the application
// lifecycle: tools are started with the app, and the app is shut
// down once the tools are done.
func Module(config supervisor.Config) fx.Option {
	return fx.Module(
		"launcher",
		// rename logger for module
		logging.DecorateLogger("launcher"),
		// provide supervisor config
		fx.Supply(config),
		// provide supervisor
		fx.Provide(NewLifecycleSupervisor),
		// invoke supervisor
		fx.Invoke(func(*supervisor.Supervisor) {}),
	)
}
