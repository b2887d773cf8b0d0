package main

import (
	"github.com/spf13/cobra"

	"github.com/jmvcosta/vcfkit/internal/config"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:   "vcf",
		Short: "Clean up and normalize vCard contact files",
		Long: `vcf reads VCF contact exports, applies cleanup transforms
(quoted-printable decoding, photo removal, phone number formatting,
display name synthesis, phone type tagging, vCard 2.1 to 3.0 upgrade)
and writes the cleaned file back out.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newProcessCmd(cfg),
		newDeleteCmd(cfg),
		newServeCmd(cfg),
	)

	return root
}
