// Shared helpers for genetable CLI commands.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/genetable/internal/paths"
	"github.com/mesh-intelligence/genetable/internal/sqlite"
	"github.com/mesh-intelligence/genetable/pkg/types"
)

// resolveDirs returns the effective config and data directories, applying
// the flag > config.yaml > env > default precedence for the data dir.
func resolveDirs() (configDir, dataDir string, v *configValues, err error) {
	configDir, err = paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return "", "", nil, fmt.Errorf("resolve config dir: %w", err)
	}

	vp, err := loadConfig(configDir)
	if err != nil {
		return "", "", nil, err
	}
	cv := &configValues{
		backend:      vp.GetString(cfgKeyBackend),
		dataDir:      vp.GetString(cfgKeyDataDir),
		syncStrategy: vp.GetString(cfgKeySyncStrategy),
	}

	dataDir, err = paths.ResolveDataDir(flags.dataDir, cv.dataDir)
	if err != nil {
		return "", "", nil, fmt.Errorf("resolve data dir: %w", err)
	}
	return configDir, dataDir, cv, nil
}

// configValues carries the settings read from config.yaml.
type configValues struct {
	backend      string
	dataDir      string
	syncStrategy string
}

// attachStore resolves directories, creates a SQLite store, and attaches
// it. The caller must defer store.Detach().
func attachStore() (*sqlite.Store, error) {
	_, dataDir, cv, err := resolveDirs()
	if err != nil {
		return nil, err
	}

	cfg := types.Config{
		Backend:      cv.backend,
		DataDir:      dataDir,
		SyncStrategy: cv.syncStrategy,
	}
	if cfg.Backend == "" {
		cfg.Backend = types.BackendSQLite
	}

	store := sqlite.NewStore()
	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}
	return store, nil
}

// axisFromFlag parses the --axis flag value.
func axisFromFlag(value string) (types.Axis, error) {
	axis, err := types.ParseAxis(value)
	if err != nil {
		return "", fmt.Errorf("invalid --axis %q (valid: row, column)", value)
	}
	return axis, nil
}

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
