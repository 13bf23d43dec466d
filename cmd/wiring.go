package cmd

import (
	"fmt"

	"golang-netshare/internal/adapter/infrastructure/osversion"
	"golang-netshare/internal/adapter/infrastructure/shell"
	"golang-netshare/internal/adapter/sharing"
	"golang-netshare/internal/pkg/config"
	"golang-netshare/internal/pkg/logging"
	"golang-netshare/internal/pkg/profile"
	"golang-netshare/internal/port"
)

// loadConfig loads, validates and applies the configuration selected by the persistent flags.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if configFlag != "" {
		loaded, err := config.Load(configFlag)
		if err != nil {
			return nil, fmt.Errorf("config error: %w", err)
		}
		cfg = loaded
	}

	if logLevelFlag != "" {
		cfg.Logging.Level = logLevelFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation error: %w", err)
	}

	logging.InitLogger(cfg.Logging)
	logging.GetLogger().WithField("config_file", configFlag).Debug("Configuration loaded")
	return cfg, nil
}

// createCommandRunner returns the runner used for every step.
func createCommandRunner(cfg *config.Config) port.CommandRunner {
	if dryRunFlag {
		logging.WithComponent("cli").Info("Dry run enabled, no command will be executed")
		return shell.NewDryRunAdapter()
	}
	return shell.NewRunnerAdapter(cfg.Shell)
}

// createNetworkConfigurationManager creates the orchestrator for the configured runner.
func createNetworkConfigurationManager(cfg *config.Config) port.NetworkConfigurationManager {
	return sharing.NewManager(createCommandRunner(cfg))
}

// createResolver returns a resolver that detects the host version, or uses osVersion when given.
func createResolver(osVersion string) (*profile.Resolver, error) {
	if osVersion == "" {
		return profile.NewResolver(osversion.NewDetectorAdapter()), nil
	}

	version, err := osversion.ParseVersion(osVersion)
	if err != nil {
		return nil, err
	}
	return profile.NewResolver(osversion.NewStaticAdapter(version)), nil
}
