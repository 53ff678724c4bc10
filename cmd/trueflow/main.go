package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trueflow-dev/trueflow/internal/adapter/cli"
	"github.com/trueflow-dev/trueflow/internal/block"
	"github.com/trueflow-dev/trueflow/internal/config"
	"github.com/trueflow-dev/trueflow/internal/ledger"
	"github.com/trueflow-dev/trueflow/internal/observability"
	"github.com/trueflow-dev/trueflow/internal/reviewer"
	"github.com/trueflow-dev/trueflow/internal/trueflowerr"
	"github.com/trueflow-dev/trueflow/internal/version"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, cli.ErrVersionRequested) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func run() error {
	repoRoot := "."

	cfg, err := config.Load(config.LoaderOptions{
		ConfigPaths: defaultConfigPaths(),
		FileName:    "trueflow",
		EnvPrefix:   "TRUEFLOW",
	})
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	ledgerPath := cfg.Ledger.Path
	if ledgerPath == "" {
		ledgerPath = filepath.Join(repoRoot, ledger.DefaultPath)
	}
	store := ledger.Open(ledgerPath)

	identity := cfg.Reviewer.DefaultIdentity
	if identity == "" {
		identity = reviewer.Identity()
	}

	logger := observability.NewDefaultLogger(
		observability.ParseLevel(cfg.Observability.Logging.Level),
		observability.ParseFormat(cfg.Observability.Logging.Format),
	)

	excludeKinds := defaultExcludeKinds(cfg.Scan.ExcludeKinds)

	root := cli.NewRootCommand(cli.Dependencies{
		RepoRoot:           repoRoot,
		Store:              store,
		DefaultExcludeKind: excludeKinds,
		ReviewerIdentity:   identity,
		Logger:             logger,
		Version:            version.Value(),
		ScanConcurrency:    cfg.Scan.Concurrency,
	})

	return root.Execute()
}

func defaultConfigPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "trueflow"))
	}
	return paths
}

func defaultExcludeKinds(names []string) []block.Kind {
	out := make([]block.Kind, 0, len(names))
	for _, name := range names {
		if k, ok := block.ParseKind(name); ok {
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		out = append(out, block.KindGap)
	}
	return out
}

func exitCodeFor(err error) int {
	var tfErr *trueflowerr.Error
	if errors.As(err, &tfErr) {
		return tfErr.Kind.ExitCode()
	}
	return 1
}
