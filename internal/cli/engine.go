package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/loupe-dev/loupe/internal/analyzer"
	"github.com/loupe-dev/loupe/internal/boundary"
	"github.com/loupe-dev/loupe/internal/config"
	"github.com/loupe-dev/loupe/internal/lang"
	"github.com/loupe-dev/loupe/internal/query"
)

// buildEngine assembles the analysis engine from configuration and the
// global flags. The boundary comes from --root, then config, then root
// marker detection from the working directory.
func buildEngine() (*analyzer.Engine, *config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	configDir := flagConfig
	if configDir == "" {
		configDir = wd
	}
	cfg, err := config.LoadConfigFromDir(configDir)
	if err != nil {
		return nil, nil, err
	}

	root := flagRoot
	if root == "" {
		root = cfg.Root
	}
	var b *boundary.Boundary
	if root != "" {
		b, err = boundary.New(root)
	} else {
		b, err = boundary.DetectRoot(wd)
	}
	if err != nil {
		return nil, nil, err
	}

	registry := lang.NewRegistry(query.NewCatalog(), cfg.Languages.Disabled...)

	engine := analyzer.New(b, registry, analyzer.Options{
		MaxFileSize:  cfg.Limits.MaxFileSizeBytes,
		ParseTimeout: time.Duration(cfg.Limits.ParseTimeoutMS) * time.Millisecond,
		Logger:       newLogger(),
	})
	return engine, cfg, nil
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if flagVerbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
	return logger
}

// jsonOutput reports whether results should be printed as JSON.
func jsonOutput(cfg *config.Config) bool {
	return flagJSON || cfg.Output.Format == "json"
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
