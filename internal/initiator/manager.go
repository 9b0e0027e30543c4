package initiator

import (
	"fmt"
	"path/filepath"

	"github.com/MrSnakeDoc/urlb/internal/globalconfig"
	"github.com/MrSnakeDoc/urlb/internal/logger"
	"github.com/MrSnakeDoc/urlb/internal/manifest"
	"github.com/MrSnakeDoc/urlb/internal/utils"
)

type Initiator struct {
	Dir   string
	Force bool
}

func New(dir string, force bool) *Initiator {
	return &Initiator{Dir: dir, Force: force}
}

// Execute makes sure a manifest exists in Dir and records it in the global
// config. An existing manifest is kept unless Force is set.
func (i *Initiator) Execute() (string, error) {
	dir, err := filepath.Abs(i.Dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", i.Dir, err)
	}
	path := filepath.Join(dir, manifest.DefaultFile)

	exists, err := utils.FileExists(path)
	if err != nil {
		return "", err
	}

	switch {
	case exists && !i.Force:
		if _, err := manifest.Load(path); err != nil {
			return "", err
		}
		logger.Info("Keeping existing %s", path)
	default:
		if err := utils.WriteFileAtomic(path, []byte(manifest.Sample), 0o644); err != nil {
			return "", err
		}
		logger.Success("Created sample %s", path)
	}

	cfg := &globalconfig.PersistentConfig{ManifestFile: path}
	if err := cfg.Save(); err != nil {
		return "", err
	}
	return path, nil
}
