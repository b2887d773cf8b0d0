package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmvcosta/vcfkit/internal/config"
	"github.com/jmvcosta/vcfkit/internal/core"
	"github.com/jmvcosta/vcfkit/internal/transform"
)

func newProcessCmd(cfg *config.Config) *cobra.Command {
	var (
		input  string
		output string
		opts   transform.Options
	)

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Apply cleanup transforms to a VCF file",
		Long: `Reads a VCF file, applies the selected transforms in a fixed
order and writes the result. At least one transform (or --sort) must be
selected. The default output path appends a suffix to the input name,
e.g. contacts.vcf becomes contacts_processed.vcf.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				output = outputPath(input, cfg.Output.ProcessedSuffix)
			}

			f, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()

			service := core.NewService(core.NewProcessLimiter(
				cfg.Upload.MaxConcurrent, cfg.Upload.MaxWaitTime))

			result, stats, err := service.ProcessReader(cmd.Context(), f, opts)
			if err != nil {
				return err
			}

			if err := writeFileAtomic(output, []byte(result)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			slog.Info("file processed",
				"input", input,
				"output", output,
				"records", stats.Records,
				"transforms", stats.Applied,
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d contacts to %s\n", stats.Records, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input VCF file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input with suffix)")
	cmd.MarkFlagRequired("input")

	cmd.Flags().BoolVar(&opts.Readable, "readable", false, "decode quoted-printable values")
	cmd.Flags().BoolVar(&opts.RemovePictures, "remove-pictures", false, "strip PHOTO fields")
	cmd.Flags().BoolVar(&opts.RemoveTypes, "remove-types", false, "strip TYPE parameters from phone numbers")
	cmd.Flags().BoolVar(&opts.FormatNumbers, "format-numbers", false, "normalize phone numbers (strip +351, group digits)")
	cmd.Flags().BoolVar(&opts.FormatNames, "format-names", false, "fill missing display names from structured names")
	cmd.Flags().BoolVar(&opts.AutoSetTypes, "auto-set-types", false, "tag untyped phone numbers as HOME/CELL/VOICE")
	cmd.Flags().BoolVarP(&opts.UpgradeVersion, "update-version", "u", false, "upgrade vCard 2.1 records to 3.0")
	cmd.Flags().BoolVar(&opts.Sort, "sort", false, "sort contacts by display name")

	return cmd
}

// outputPath derives the default output file name by appending a suffix
// to the input's base name: contacts.vcf -> contacts<suffix>.vcf.
func outputPath(input, suffix string) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	return base + suffix + ext
}

// writeFileAtomic writes via a temp file in the target directory and
// renames it into place, so a crash never leaves a half-written output.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
