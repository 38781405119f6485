// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/chat-export/internal/convert"
	"github.com/pdiddy/chat-export/internal/logger"
	"github.com/pdiddy/chat-export/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <export-file>",
	Short: "Convert a conversation export to text, Markdown, or HTML",
	Long: `Convert loads a conversation export, renders every message in order,
and writes the document. The format comes from --output-format, or from the
--output-file extension (.html, .md) when no format is given. Without
--output-file the document is written next to the input as
<name>_formatted.<ext>.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output-format", "o", "", "output format: text, markdown, or html (default: from output file extension, else text)")
	convertCmd.Flags().StringP("output-file", "f", "", "output file (default: <input>_formatted.<ext>)")
	convertCmd.Flags().BoolP("timestamp", "t", false, "include message timestamps when the export has them")
	convertCmd.Flags().Bool("raw", false, "keep message content as exported (no link stripping or entity decoding)")
	convertCmd.Flags().String("timezone", "", "IANA timezone for timestamps (default: local)")

	viper.BindPFlag("output_format", convertCmd.Flags().Lookup("output-format"))
	viper.BindPFlag("timestamps", convertCmd.Flags().Lookup("timestamp"))
	viper.BindPFlag("raw", convertCmd.Flags().Lookup("raw"))
	viper.BindPFlag("timezone", convertCmd.Flags().Lookup("timezone"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: provide a conversation export file to convert", types.ErrConfig)
	}

	outputFile, _ := cmd.Flags().GetString("output-file")

	cfg := types.ConversionConfig{
		InputPath:  args[0],
		OutputPath: outputFile,
		Format:     types.OutputFormat(viper.GetString("output_format")),
		Timestamps: viper.GetBool("timestamps"),
		Raw:        viper.GetBool("raw"),
		Timezone:   viper.GetString("timezone"),
	}

	_, err := convert.Run(cfg, logger.Component(appLog, "convert"), cmd.OutOrStdout())
	return err
}
