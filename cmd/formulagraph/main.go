// Package main provides the CLI entry point for formulagraph.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/formulagraph-go/pkg/formulagraph"
	"github.com/ukaji3/formulagraph-go/pkg/formulagraph/output"
)

var (
	outputPath string
	outputDir  string
	format     string
	pretty     bool
	sheet      string
	scan       string
	logLevel   string
	logFormat  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "formulagraph [input.xlsx]",
		Short: "Layer the formula dependencies of an Excel sheet",
		Long: `formulagraph builds the formula dependency graph of one worksheet,
orders its cells into layers (inputs first) and prints each layer with the
contiguous frames covering it, as CSV or JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for layers.csv and frames.csv (or analysis.json)")
	rootCmd.Flags().StringVar(&format, "format", "csv", "Output format: csv, json")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&sheet, "sheet", "", "Worksheet to analyze (default: first sheet)")
	rootCmd.Flags().StringVar(&scan, "scan", string(formulagraph.ScanRegex), "Reference scanner: regex, tokens")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&logFormat, "log-format", "text", "Log format: text, json")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if format != "csv" && format != "json" {
		return fmt.Errorf("invalid format: %s (must be csv or json)", format)
	}

	scanMode, err := formulagraph.ParseScanMode(scan)
	if err != nil {
		return err
	}

	logger, err := newLogger(logLevel, logFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	opts := formulagraph.Options{
		Sheet:  sheet,
		Scan:   scanMode,
		Logger: logger,
	}

	result, err := formulagraph.AnalyzeFile(inputPath, opts)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if format == "json" {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	return writeCSV(cmd.OutOrStdout(), result)
}

func writeJSON(stdout io.Writer, result *formulagraph.Result) error {
	jsonData, err := output.ToJSON(result.Report(), pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(outputDir, "analysis.json"), jsonData, 0644)
	}
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = fmt.Fprintln(stdout, string(jsonData))
	return err
}

func writeCSV(stdout io.Writer, result *formulagraph.Result) error {
	exp, err := formulagraph.ExportCSV(result)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(outputDir, "layers.csv"), []byte(exp.Layers), 0644); err != nil {
			return fmt.Errorf("failed to write layers: %w", err)
		}
		if err := os.WriteFile(filepath.Join(outputDir, "frames.csv"), []byte(exp.Frames), 0644); err != nil {
			return fmt.Errorf("failed to write frames: %w", err)
		}
		return nil
	}

	body := exp.Layers + "\n" + exp.Frames
	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(body), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = io.WriteString(stdout, body)
	return err
}
