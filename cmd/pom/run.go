package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-rod/pom"
	"github.com/go-rod/pom/lib/defaults"
	"github.com/go-rod/pom/lib/fixture"
	"github.com/go-rod/pom/lib/testdata"
	"github.com/go-rod/pom/pages"
)

var runCmdFlags struct {
	url     string
	fixture bool
	only    string
}

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the game scenarios in a browser",
	Long: `Run the game scenarios in a browser.

The test data can be overridden with the "pom_data" env var, such as:

    pom_data="timeout=5000;interestsAmount=2" pom run --fixture`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return runScenarios(ctx, logger)
	},
}

func init() {
	runCmd.Flags().StringVar(&runCmdFlags.url, "url", "", "the url of the game, defaults to the url of the test data")
	runCmd.Flags().BoolVar(&runCmdFlags.fixture, "fixture", false, "run against the mock game site")
	runCmd.Flags().StringVar(&runCmdFlags.only, "only", "", "only run the scenarios whose name contains it")
	rootCmd.AddCommand(runCmd)
}

func runScenarios(ctx context.Context, logger *zap.Logger) error {
	data, err := testdata.Default()
	if err != nil {
		return err
	}

	url := runCmdFlags.url
	switch {
	case runCmdFlags.fixture:
		srv, err := fixture.Serve("127.0.0.1:0", logger)
		if err != nil {
			return err
		}
		defer func() { _ = srv.Close() }()
		url = srv.URL
	case url == "" && defaults.URL != defaults.DefaultURL:
		url = defaults.URL
	case url == "":
		url = data.URL
	}

	b, err := pom.Launch(ctx, logger)
	if err != nil {
		return err
	}
	defer b.Close()

	failed := 0
	for _, sc := range pages.Scenarios() {
		if !strings.Contains(strings.ToLower(sc.Name), strings.ToLower(runCmdFlags.only)) {
			continue
		}

		s, err := b.Session()
		if err != nil {
			return err
		}

		err = sc.Exec(s.WaitTimeout(data.Timeout), url, data)
		if err != nil {
			failed++
			logger.Error("scenario failed", zap.String("scenario", sc.Name), zap.Error(err))
			continue
		}
		logger.Info("scenario passed", zap.String("scenario", sc.Name))
	}

	if failed > 0 {
		return fmt.Errorf("%d scenario(s) failed", failed)
	}
	return nil
}
