package internal

import (
	"errors"
	"os"
	"strings"

	"github.com/MrSnakeDoc/urlb/internal/logger"
	"github.com/MrSnakeDoc/urlb/internal/middleware"
	"github.com/MrSnakeDoc/urlb/internal/version"

	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "urlb",
		Short: "Build URLs from a base URL, a route, an endpoint and a query string",
		Long: `urlb assembles URLs from their parts.
Use "urlb build" for a one-off URL or describe your endpoints in urlb.yml
and print them all with "urlb render".`,
		Example: `urlb build --base https://api.example.com --route /v1 --endpoint /users --query active=true`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.ConfigureLoggerTo(cmd.OutOrStdout())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			versionFlag, _ := cmd.Flags().GetBool("version")
			if versionFlag {
				version.Print(cmd.OutOrStdout())
				return nil
			}
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().BoolP("version", "v", false, "Print version information")

	pf := cmd.PersistentFlags()
	pf.CountVarP(&logger.FlagVerboseCount, "verbose", "V", "Verbose output (debug)")
	pf.BoolVarP(&logger.FlagQuiet, "quiet", "q", false, "Only print results and errors")
	pf.BoolVarP(&logger.FlagSilent, "silent", "s", false, "Print nothing at all")
	pf.BoolVar(&logger.FlagJSON, "json", false, "JSON log output")
	pf.BoolVar(&logger.FlagNoColor, "no-color", false, "Disable colors")

	RegisterSubCommands(cmd)

	return cmd
}

func Execute() error {
	root := NewRootCmd()

	if os.Getenv("COMP_LINE") != "" ||
		(len(os.Args) > 1 && strings.HasPrefix(os.Args[1], "__complete")) {
		return root.Execute()
	}

	if err := root.Execute(); err != nil {
		if !errors.Is(err, middleware.ErrLogged) {
			logger.LogError("%v", err)
		}
		return err
	}
	return nil
}
