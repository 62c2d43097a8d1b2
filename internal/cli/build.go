package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grcjp/testbank/internal/epub"
	"github.com/grcjp/testbank/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the Rapid Memory EPUB for a question bank",
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().String("bank", "bank206", "Which question bank to export")
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, logger, adapter, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	name, _ := cmd.Flags().GetString("bank")
	bank, ok := cfg.FindBank(name)
	if !ok {
		return fmt.Errorf("unknown bank %q (available: %s)", name, bankNames(cfg.Banks))
	}

	svc := epub.NewService(cfg.Book, adapter, logger)
	if err := svc.BuildBank(cmd.Context(), bank); err != nil {
		return err
	}

	fmt.Printf("Wrote: %s\n", bank.OutputPath)
	return nil
}

func bankNames(banks []types.Bank) string {
	names := make([]string, len(banks))
	for i, b := range banks {
		names[i] = b.Name
	}
	return strings.Join(names, ", ")
}
