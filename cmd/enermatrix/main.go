// Package main provides the CLI entry point for enermatrix.
package main

import (
	"errors"
	"os"

	"enermatrix/pkg/matriz"
	"enermatrix/pkg/matriz/convert"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	inputDir     string
	convertedDir string
	outputDir    string
	xlsCharset   string
	logLevel     string
)

func main() {
	defaults := matriz.DefaultOptions()

	rootCmd := &cobra.Command{
		Use:   "enermatrix",
		Short: "Consolidate energy matrix spreadsheets into one workbook",
		Long: `enermatrix reads every matrix spreadsheet (.xls, .xlsx, .xlsm) from the
input directory, normalizes legacy files, extracts the data region of
each one, and merges the records into a single consolidated workbook.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVarP(&inputDir, "input", "i", defaults.InputDir, "Directory with input matrices")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", defaults.OutputDir, "Directory for the consolidated workbook")
	rootCmd.Flags().StringVar(&convertedDir, "converted", defaults.ConvertedDir, "Directory for normalized legacy files")
	rootCmd.Flags().StringVar(&xlsCharset, "xls-charset", defaults.XLSCharset, "Charset tried first when reading legacy .xls files")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOGLEVEL")

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	setupEnvironment(logLevel)

	opts := matriz.DefaultOptions()
	opts.InputDir = inputDir
	opts.ConvertedDir = convertedDir
	opts.OutputDir = outputDir
	opts.XLSCharset = xlsCharset

	conv := convert.NewXLSConverter(opts.ConvertedDir, opts.XLSCharset)
	pipeline := matriz.NewPipeline(opts, conv)

	summary, err := pipeline.Run()
	if err != nil {
		var werr *matriz.WriteError
		if errors.As(err, &werr) {
			log.Error().Str("path", werr.Path).Msg("output is not writable; is it open in another program?")
		}
		return err
	}

	for _, f := range summary.Failures {
		log.Warn().Str("file", f.File).Str("reason", f.Reason).Msg("skipped")
	}
	log.Info().Str("output", summary.OutputPath).Msg("done")
	return nil
}
