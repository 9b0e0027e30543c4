package internal

import (
	"errors"

	"github.com/MrSnakeDoc/urlb/internal/errs"
	"github.com/MrSnakeDoc/urlb/internal/logger"
	"github.com/MrSnakeDoc/urlb/internal/manifest"
	"github.com/MrSnakeDoc/urlb/internal/middleware"
	"github.com/MrSnakeDoc/urlb/internal/utils"

	"github.com/spf13/cobra"
)

func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render [names...]",
		Aliases: []string{"ls"},
		Short:   "Build the endpoints described in the manifest",
		Long: `Build every endpoint of urlb.yml, or only the named ones.
Results are shown as a table, or as one URL per line with --plain,
--quiet or --json.

The manifest is taken from --file, $URLB_MANIFEST, the path recorded by
"urlb init", or ./urlb.yml, in that order.`,
		Example: `  urlb render
  urlb render active-users --plain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := middleware.Get[*manifest.Manifest](cmd, middleware.CtxKeyManifest)
			if err != nil {
				return err
			}
			path, err := middleware.Get[string](cmd, middleware.CtxKeyManifestPath)
			if err != nil {
				return err
			}

			plain, err := cmd.Flags().GetBool("plain")
			if err != nil {
				return err
			}

			results := m.RenderAll(args)
			failed := utils.Filter(results, func(r manifest.Result) bool { return r.Err != nil })

			for _, r := range results {
				if r.Err == nil {
					warnEmptyQuery(r.Name, r.URL)
				}
			}

			if plain || !logger.Tabular() {
				for _, r := range results {
					if r.Err == nil {
						logger.Result(r.Name, r.URL)
					}
				}
			} else {
				utils.CreateURLTable("", utils.Map(results, toRow))
			}

			for _, r := range failed {
				if errors.Is(r.Err, manifest.ErrUnknownEndpoint) {
					logger.LogError("%s", errs.Msg(errs.UnknownEndpoint, r.Name, path))
					continue
				}
				logger.LogError("%s: %v", r.Name, r.Err)
			}
			if len(failed) > 0 {
				return middleware.ErrLogged
			}
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "Manifest file (default: resolved as described above)")
	cmd.Flags().Bool("plain", false, "Print bare URLs, one per line")
	return cmd
}

func toRow(r manifest.Result) utils.URLRow {
	if r.Err != nil {
		return utils.URLRow{Name: r.Name, URL: "-", Status: r.Err.Error()}
	}
	return utils.URLRow{Name: r.Name, URL: r.URL, Status: "ok"}
}
