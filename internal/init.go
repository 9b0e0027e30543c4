package internal

import (
	"github.com/MrSnakeDoc/urlb/internal/initiator"
	"github.com/MrSnakeDoc/urlb/internal/logger"

	"github.com/spf13/cobra"
)

func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create urlb.yml and register it as the default manifest",
		Long: `Initialize urlb.
This command will:
- Create a sample urlb.yml in the target directory (kept if it already exists)
- Record its path in ~/.config/urlb/config.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			force, _ := cmd.Flags().GetBool("force")

			path, err := initiator.New(dir, force).Execute()
			if err != nil {
				return err
			}

			logger.Success("Initialized urlb with %s", path)
			return nil
		},
	}

	cmd.Flags().String("dir", ".", "Directory where urlb.yml lives")
	cmd.Flags().Bool("force", false, "Overwrite an existing urlb.yml with the sample")
	return cmd
}
