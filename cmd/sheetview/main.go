// Package main provides the CLI entry point for sheetview.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sheetlab/sheetview/internal/config"
	"github.com/sheetlab/sheetview/internal/server"
	"github.com/sheetlab/sheetview/internal/viewer"
	"github.com/sheetlab/sheetview/pkg/sheetview"
	"github.com/sheetlab/sheetview/pkg/sheetview/chart"
)

var (
	outputPath string
	pretty     bool
	noFormulas bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetview",
		Short: "Browser-based spreadsheet viewer",
		Long: `sheetview serves uploaded spreadsheets as browsable grids with a
derived chart sample, and can dump a workbook offline as JSON.`,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the viewer web server",
		RunE:  runServe,
	}

	dumpCmd := &cobra.Command{
		Use:   "dump [input.xlsx]",
		Short: "Decode a spreadsheet and print its grids and chart sample as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}
	dumpCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	dumpCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	dumpCmd.Flags().BoolVar(&noFormulas, "no-formulas", false, "Skip reading cell formula text")

	rootCmd.AddCommand(serveCmd, dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	srv, err := server.New(viewer.New(), cfg)
	if err != nil {
		return fmt.Errorf("server setup failed: %w", err)
	}
	return srv.Run()
}

func runDump(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	f, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", inputPath, err)
	}
	defer f.Close()

	opts := sheetview.DefaultOptions()
	if noFormulas {
		include := false
		opts.IncludeFormulas = &include
	}

	wb, err := sheetview.Ingest(f, inputPath, opts)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	doc := map[string]any{
		"book_name": wb.BookName,
		"sheets":    wb.SheetNames(),
		"grids":     map[string]any{},
	}
	grids := doc["grids"].(map[string]any)
	for _, name := range wb.SheetNames() {
		grid, _ := wb.Sheet(name)
		grids[name] = grid
	}
	if grid, ok := wb.Sheet(wb.FirstSheet()); ok {
		doc["chart"] = chart.BuildSample(grid.Raw())
	}

	var jsonData []byte
	if pretty {
		jsonData, err = json.MarshalIndent(doc, "", "  ")
	} else {
		jsonData, err = json.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}
