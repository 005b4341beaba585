package app

import (
	"os"

	"github.com/tacogips/swift-precompiled/internal/config"
	"github.com/tacogips/swift-precompiled/internal/debug"
	"github.com/tacogips/swift-precompiled/internal/template/model"
)

// ConfigInitOptions contains options for writing a configuration file.
type ConfigInitOptions struct {
	// ConfigPath is the configuration file to create.
	ConfigPath string
	// Dirs are the source roots to record. Empty means none.
	Dirs []string
	// PathAliases are the aliases to record, in declaration order.
	PathAliases []model.AliasEntry
	// WorkingDir resolves a relative ConfigPath. Defaults to the process working directory.
	WorkingDir string
}

// ConfigInitResult contains the outcome of a config init run.
type ConfigInitResult struct {
	// ConfigPath is the absolute path of the created file.
	ConfigPath string
	// Config is the configuration that was written.
	Config *config.Config
}

// ConfigInit writes a new configuration file. An existing file is never
// overwritten.
func ConfigInit(opts ConfigInitOptions) (*ConfigInitResult, error) {
	debug.DebugSection("[app] ConfigInit workflow start")

	cwd, err := workingDir(opts.WorkingDir)
	if err != nil {
		return nil, NewAppError(InitFailed, "failed to determine working directory", err)
	}

	path := opts.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	path = absolutize(cwd, path)
	debug.DebugValue("[app] Config path", path)

	if _, err := os.Lstat(path); err == nil {
		return nil, newPathError(InitTargetExists, path, "Config file already exists at "+path, nil)
	}

	cfg := config.DefaultConfig()
	if len(opts.Dirs) > 0 {
		cfg.Dirs = append(cfg.Dirs, opts.Dirs...)
	}
	if len(opts.PathAliases) > 0 {
		cfg.PathAliases = append(cfg.PathAliases, opts.PathAliases...)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, newPathError(InitFailed, path, "invalid configuration", err)
	}

	if err := config.Save(path, cfg); err != nil {
		return nil, newPathError(InitFailed, path, "failed to write config file", err)
	}

	debug.Debug("[app] Config file created: %s", path)
	return &ConfigInitResult{ConfigPath: path, Config: cfg}, nil
}
