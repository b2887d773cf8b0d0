package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmvcosta/vcfkit/internal/config"
	"github.com/jmvcosta/vcfkit/internal/tui"
	"github.com/jmvcosta/vcfkit/internal/vcard"
)

func newDeleteCmd(cfg *config.Config) *cobra.Command {
	var (
		input  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Interactively review and delete contacts",
		Long: `Walks through every contact in the file, asking whether to
delete it. Decisions only take effect once every contact has been
reviewed; quitting mid-review discards them and writes nothing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = outputPath(input, cfg.Output.CleanedSuffix)
			}

			f, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			data, err := io.ReadAll(vcard.WrapReader(f))
			f.Close()
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			records, err := vcard.LoadRecords(string(data))
			if err != nil {
				return fmt.Errorf("load records: %w", err)
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No contacts found.")
				return nil
			}

			res, err := tui.Run(records)
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted, no changes written.")
				return nil
			}
			if err != nil {
				return err
			}

			if err := writeFileAtomic(output, []byte(vcard.RenderRecords(res.Kept))); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			slog.Info("contacts reviewed",
				"input", input,
				"output", output,
				"kept", len(res.Kept),
				"deleted", len(res.Deleted),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Kept %d contacts, deleted %d. Wrote %s\n",
				len(res.Kept), len(res.Deleted), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input VCF file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input with suffix)")
	cmd.MarkFlagRequired("input")

	return cmd
}
