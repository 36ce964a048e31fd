// Command crawler performs a bounded, internal-domain-only crawl from a
// seed URL, persisting each fetched page into a page directory.
//
// Usage: crawler <seedURL> <pageDirectory> <maxDepth>
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rvega-ayllon/tse/internal/config"
	"github.com/rvega-ayllon/tse/internal/crawler"
	"github.com/rvega-ayllon/tse/internal/logging"
	"github.com/rvega-ayllon/tse/internal/pagedir"
	"github.com/rvega-ayllon/tse/internal/report"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "crawler <seedURL> <pageDirectory> <maxDepth>",
	Short: "Crawl an internal domain from a seed URL into a page directory",
	Args:  cobra.ExactArgs(3),
	RunE:  run,
}

func init() {
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
}

func run(cmd *cobra.Command, args []string) error {
	seedURL := args[0]
	pageDir := args[1]

	maxDepth, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("maxDepth could not be converted to integer: %w", err)
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logCfg := logging.Default()
	logCfg.Level = cfg.LogLevel
	logCfg.LogDir = cfg.LogDir
	if err := logging.Init("crawler", logCfg); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	if !pagedir.Init(pageDir) {
		return fmt.Errorf("failed opening .crawler file in pageDirectory %s", pageDir)
	}

	trace := func(depth int, verb, url string) {
		fmt.Printf("%d\t%s: %s\n", depth, verb, url)
	}

	c, err := crawler.New(seedURL, pageDir, maxDepth, trace)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := c.Run(); err != nil {
		return fmt.Errorf("crawl failed: %w", err)
	}
	duration := time.Since(start)

	log.Info().
		Int("pages_fetched", c.Stats.PagesFetched).
		Int("pages_failed", c.Stats.PagesFailed).
		Dur("duration", duration).
		Msg("crawl complete")

	rpt := report.New(seedURL, maxDepth)
	rpt.PagesFetched = c.Stats.PagesFetched
	rpt.PagesFailed = c.Stats.PagesFailed
	rpt.LinksFound = c.Stats.LinksFound
	rpt.LinksExternal = c.Stats.LinksExternal
	rpt.LinksDup = c.Stats.LinksDup
	rpt.Duration = duration
	rpt.FinishedAt = time.Now()
	if err := rpt.Write(pageDir); err != nil {
		log.Warn().Err(err).Msg("failed writing crawl report")
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "crawler: %v\n", err)
		os.Exit(1)
	}
}
