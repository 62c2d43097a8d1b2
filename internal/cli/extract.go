package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grcjp/testbank/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract questions from the raw text dump into a JSON bank",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().String("source", "", "Source text file (overrides the configured path)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, logger, adapter, cleanup, err := setup(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if source, _ := cmd.Flags().GetString("source"); source != "" {
		cfg.Extract.SourcePath = source
	}

	svc := extract.NewService(cfg.Extract, adapter, logger)
	n, err := svc.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Extracted text written to: %s\n", cfg.Extract.RawTextPath)
	fmt.Printf("Parsed %d questions to: %s\n", n, cfg.Extract.QuestionsPath)
	return nil
}
