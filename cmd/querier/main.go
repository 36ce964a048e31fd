// Command querier reads an index file and a crawler-produced page
// directory, then answers boolean search queries from stdin until EOF.
//
// Usage: querier <pageDirectory> <indexFilename>
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/rvega-ayllon/tse/internal/config"
	"github.com/rvega-ayllon/tse/internal/index"
	"github.com/rvega-ayllon/tse/internal/logging"
	"github.com/rvega-ayllon/tse/internal/pagedir"
	"github.com/rvega-ayllon/tse/internal/query"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "querier <pageDirectory> <indexFilename>",
	Short: "Answer boolean search queries over a crawled page directory",
	Args:  cobra.ExactArgs(2),
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
}

func run(cmd *cobra.Command, args []string) error {
	pageDir := args[0]
	indexFilename := args[1]

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logCfg := logging.Default()
	logCfg.Level = cfg.LogLevel
	logCfg.LogDir = cfg.LogDir
	if err := logging.Init("querier", logCfg); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	if !pagedir.Validate(pageDir) {
		return fmt.Errorf("pageDirectory %s is not crawler-produced", pageDir)
	}

	idx, ok := index.Load(indexFilename)
	if !ok {
		return fmt.Errorf("failed opening readable index file %s", indexFilename)
	}
	defer idx.Close()

	isTTY := isatty.IsTerminal(os.Stdin.Fd())
	session := query.NewSession(idx, pageDir, os.Stdin, os.Stdout, os.Stderr, isTTY)
	session.Run()

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "querier: %v\n", err)
		os.Exit(1)
	}
}
