package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grcjp/testbank/internal/epub"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print per-domain question counts for a bank",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().String("bank", "bank206", "Which question bank to inspect")
}

func runStats(cmd *cobra.Command, args []string) error {
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
	questions, err := svc.LoadBank(cmd.Context(), bank.QuestionsPath)
	if err != nil {
		return err
	}

	// First-seen domain order, matching the chapter order of the built book.
	counts := make(map[string]int)
	var domains []string
	for _, q := range questions {
		if _, seen := counts[q.Domain]; !seen {
			domains = append(domains, q.Domain)
		}
		counts[q.Domain]++
	}

	fmt.Printf("%s (%s)\n", bank.Name, bank.QuestionsPath)
	for _, d := range domains {
		fmt.Printf("  %-50s %4d\n", d, counts[d])
	}
	fmt.Printf("  %-50s %4d\n", "total", len(questions))
	return nil
}
