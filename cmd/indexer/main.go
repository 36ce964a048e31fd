// Command indexer builds an inverted index from a crawler-produced page
// directory and writes it to an index file.
//
// Usage: indexer <pageDirectory> <indexFilename>
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rvega-ayllon/tse/internal/config"
	"github.com/rvega-ayllon/tse/internal/indexer"
	"github.com/rvega-ayllon/tse/internal/logging"
	"github.com/rvega-ayllon/tse/internal/pagedir"
	"github.com/rvega-ayllon/tse/internal/progressutil"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "indexer <pageDirectory> <indexFilename>",
	Short: "Build an inverted index from a crawler-produced page directory",
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
	if err := logging.Init("indexer", logCfg); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	if !pagedir.Validate(pageDir) {
		return fmt.Errorf("pageDirectory %s is not crawler-produced", pageDir)
	}

	// Pre-check that indexFilename can be created/overwritten, the way
	// the original indexer validates its arguments before doing any work.
	probe, err := os.Create(indexFilename)
	if err != nil {
		return fmt.Errorf("failed opening writable index file %s: %w", indexFilename, err)
	}
	probe.Close()

	bar := progressutil.New(0, "indexing", cfg.ShowProgress)
	idx := indexer.Build(pageDir, func(docID int) { bar.Add(1) })
	bar.Finish()

	idx.Save(indexFilename)
	log.Info().Int("words", idx.Words()).Msg("index built")
	idx.Close()

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "indexer: %v\n", err)
		os.Exit(1)
	}
}
