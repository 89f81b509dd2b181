// Package main provides the CLI entry point for rpnsheet.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/rpnsheet-go/pkg/rpnsheet"
	"github.com/ukaji3/rpnsheet-go/pkg/rpnsheet/models"
	"github.com/ukaji3/rpnsheet-go/pkg/rpnsheet/output"
)

// defaultOutputPath is written on every run unless --output says otherwise.
const defaultOutputPath = "output.csv"

type flags struct {
	outputPath  string
	format      string
	pretty      bool
	quiet       bool
	verbose     bool
	sheet       string
	encoding    string
	delimiter   string
	errorMarker string
	configPath  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:   "rpnsheet [input.csv|input.xlsx]",
		Short: "Evaluate a sheet of postfix cell expressions",
		Long: `rpnsheet evaluates every cell of a sheet written in postfix (RPN) notation,
resolving references such as B2 to other cells, and writes the results to
stdout and to an output file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args[0])
		},
	}

	rootCmd.Flags().StringVarP(&f.outputPath, "output", "o", defaultOutputPath, "Output file path")
	rootCmd.Flags().StringVar(&f.format, "format", "text", "Output file format: text, json, yaml, xlsx")
	rootCmd.Flags().BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Do not print results to stdout")
	rootCmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Log every failed cell")
	rootCmd.Flags().StringVar(&f.sheet, "sheet", "", "Worksheet to read from xlsx input (default: first)")
	rootCmd.Flags().StringVar(&f.encoding, "encoding", "", "Character set of text input (default: UTF-8)")
	rootCmd.Flags().StringVar(&f.delimiter, "delimiter", rpnsheet.DefaultDelimiter, "Field delimiter of text input")
	rootCmd.Flags().StringVar(&f.errorMarker, "error-marker", rpnsheet.DefaultErrorMarker, "Text written for cells that fail to evaluate")
	rootCmd.Flags().StringVar(&f.configPath, "config", "", "YAML file with default flag values")

	return rootCmd
}

func run(cmd *cobra.Command, f *flags, inputPath string) error {
	if f.configPath != "" {
		if err := applyConfigFile(cmd.Flags(), f.configPath); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}

	switch f.format {
	case "text", "csv", "json", "yaml", "xlsx":
	default:
		return fmt.Errorf("invalid format: %s (must be text, json, yaml, or xlsx)", f.format)
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))

	opts := rpnsheet.Options{
		ErrorMarker: f.errorMarker,
		Delimiter:   f.delimiter,
		Encoding:    f.encoding,
		Sheet:       f.sheet,
		Logger:      logger,
	}

	result, err := rpnsheet.EvaluateFile(inputPath, opts)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	if !f.quiet {
		if err := output.WriteText(cmd.OutOrStdout(), result); err != nil {
			return fmt.Errorf("failed to write stdout: %w", err)
		}
	}

	if err := writeOutputFile(result, f.format, f.outputPath, f.pretty); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Debug("wrote output", "path", f.outputPath, "format", f.format)

	return nil
}

func writeOutputFile(result *models.ResultGrid, format, path string, pretty bool) error {
	var data []byte
	var err error

	switch format {
	case "text", "csv":
		var buf bytes.Buffer
		err = output.WriteText(&buf, result)
		data = buf.Bytes()
	case "json":
		data, err = output.ToJSON(result, pretty)
	case "yaml":
		data, err = output.ToYAML(result)
	case "xlsx":
		return output.WriteXLSX(result, path)
	default:
		return fmt.Errorf("invalid format: %s", format)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
