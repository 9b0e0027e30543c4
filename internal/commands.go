package internal

import (
	"github.com/MrSnakeDoc/urlb/internal/middleware"
	"github.com/spf13/cobra"
)

var defaultCommands = []middleware.CommandFactory{
	NewInitCmd,
	NewBuildCmd,
	middleware.UseMiddlewareChain(middleware.LoadManifest)(NewRenderCmd),
	NewVersionCmd,
}

func RegisterSubCommands(cmd *cobra.Command) {
	for _, factory := range defaultCommands {
		cmd.AddCommand(factory())
	}
}
