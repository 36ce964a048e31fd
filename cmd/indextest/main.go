// Command indextest loads an index file produced by the indexer and
// saves it back out to another file, exercising the index module's
// save/load round trip.
//
// Usage: indextest <oldIndexFilename> <newIndexFilename>
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rvega-ayllon/tse/internal/index"
)

var rootCmd = &cobra.Command{
	Use:   "indextest <oldIndexFilename> <newIndexFilename>",
	Short: "Round-trip an index file through load then save",
	Args:  cobra.ExactArgs(2),
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	oldIndexFilename := args[0]
	newIndexFilename := args[1]

	probeOld, err := os.Open(oldIndexFilename)
	if err != nil {
		return fmt.Errorf("indexFile %s is not readable: %w", oldIndexFilename, err)
	}
	probeOld.Close()

	probeNew, err := os.Create(newIndexFilename)
	if err != nil {
		return fmt.Errorf("indexFile %s is not writable: %w", newIndexFilename, err)
	}
	probeNew.Close()

	idx, ok := index.Load(oldIndexFilename)
	if !ok {
		return fmt.Errorf("failed loading index from %s", oldIndexFilename)
	}
	idx.Save(newIndexFilename)
	idx.Close()

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "indextest: %v\n", err)
		os.Exit(1)
	}
}
