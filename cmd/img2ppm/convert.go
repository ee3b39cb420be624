package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lmarchetti/img2ppm/internal/config"
	"github.com/lmarchetti/img2ppm/internal/pipeline"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an image to a plain-text pixel dump",
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringP("input", "i", "", "Input image file")
	convertCmd.Flags().StringP("output", "o", "", "Output text file")
	convertCmd.Flags().Bool("alpha", false, "Append the alpha value as a fourth column")
	convertCmd.Flags().String("config", "", "TOML file with flag defaults")
	convertCmd.MarkFlagRequired("input")
	convertCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")
	alpha, _ := cmd.Flags().GetBool("alpha")
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	// Config file values fill in flags the user did not set explicitly.
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("alpha") {
			alpha = cfg.Alpha
		}
		if !cmd.Flags().Changed("verbose") {
			verbose = cfg.Verbose
		}
	}

	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := newLogger(os.Stderr, level)

	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	logger.Debug("read input", "path", inputPath, "bytes", len(inputData))

	result, err := pipeline.Run(inputData, pipeline.Options{Alpha: alpha})
	if err != nil {
		return fmt.Errorf("conversion: %w", err)
	}
	logger.Debug("converted", "width", result.Width, "height", result.Height,
		"lines", 2+result.Width*result.Height, "alpha", alpha)

	// The dump is built entirely in memory; the destination is only
	// touched once conversion has fully succeeded.
	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Converted %dx%d → %d pixel lines\n", result.Width, result.Height, result.Width*result.Height)
	fmt.Printf("Input:  %s (%d bytes)\n", inputPath, len(inputData))
	fmt.Printf("Output: %s (%d bytes)\n", outputPath, len(result.Data))

	return nil
}
