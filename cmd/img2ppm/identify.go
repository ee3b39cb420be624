package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmarchetti/img2ppm/internal/imgio"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect image format and geometry",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := imgio.GetInfo(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	fmt.Printf("File:        %s\n", path)
	fmt.Printf("Format:      %s\n", info.Format)
	fmt.Printf("Dimensions:  %d x %d\n", info.Width, info.Height)
	fmt.Printf("Color model: %s\n", info.Model)
	fmt.Printf("Channels:    %d\n", info.Channels)
	fmt.Printf("Bit depth:   %d\n", info.BitDepth)
	fmt.Printf("File size:   %d bytes\n", len(data))

	return nil
}
