package middleware

import (
	"context"
	"os"
	"strings"

	"github.com/MrSnakeDoc/urlb/internal/globalconfig"
	"github.com/MrSnakeDoc/urlb/internal/logger"
	"github.com/MrSnakeDoc/urlb/internal/manifest"
	"github.com/MrSnakeDoc/urlb/internal/utils/pathutils"
	"github.com/spf13/cobra"
)

const EnvManifest = "URLB_MANIFEST"

// LoadManifest resolves the manifest path, loads it and stores both in the
// command context.
func LoadManifest(cmd *cobra.Command, args []string, next func(cmd *cobra.Command, args []string) error) error {
	path, err := ResolveManifestPath(cmd)
	if err != nil {
		return err
	}

	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("Loaded %d endpoint(s) from %s", len(m.Endpoints), path)

	ctx := context.WithValue(cmd.Context(), CtxKeyManifest, m)
	ctx = context.WithValue(ctx, CtxKeyManifestPath, path)
	cmd.SetContext(ctx)

	return next(cmd, args)
}

// ResolveManifestPath picks the manifest from, in order: the --file flag,
// $URLB_MANIFEST, the global config, ./urlb.yml.
func ResolveManifestPath(cmd *cobra.Command) (string, error) {
	if f := cmd.Flags().Lookup("file"); f != nil && f.Value.String() != "" {
		return pathutils.ToAbsolutePath(f.Value.String())
	}

	if env := strings.TrimSpace(os.Getenv(EnvManifest)); env != "" {
		return pathutils.ToAbsolutePath(env)
	}

	pconf, err := globalconfig.LoadPersistentConfig()
	if err == nil {
		return pconf.ManifestFile, nil
	}
	logger.Debug("No usable global config: %v", err)

	return manifest.DefaultFile, nil
}
