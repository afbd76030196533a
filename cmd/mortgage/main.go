package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alex-de-haas/haas.mortgage/internal/calculation"
	"github.com/alex-de-haas/haas.mortgage/internal/config"
	"github.com/alex-de-haas/haas.mortgage/internal/output"
	"github.com/alex-de-haas/haas.mortgage/internal/server"
)

var (
	inputFile  string
	formatName string
	outputFile string
	servePort  string
)

var rootCmd = &cobra.Command{
	Use:   "mortgage",
	Short: "Mortgage amortization schedule calculator",
	Long: "Computes monthly mortgage amortization schedules with per-month payment\n" +
		"overrides and compares each payment scenario against the unmodified base plan.",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Run the scenarios in a configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(inputFile)
		if err != nil {
			return err
		}

		engine := calculation.NewEngine()
		results := engine.RunScenarios(cfg)

		formatter := output.GetFormatterByName(formatName)
		if formatter == nil {
			return fmt.Errorf("unknown format %q (available: %s; aliases: %s)",
				formatName,
				strings.Join(output.AvailableFormatterNames(), ", "),
				strings.Join(output.AvailableFormatAliases(), ", "))
		}

		data, err := formatter.Format(results)
		if err != nil {
			return fmt.Errorf("formatting failed: %w", err)
		}

		if outputFile == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(outputFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputFile, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outputFile)
		return nil
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Write an example scenario configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if outputFile == "" {
			_, err := cmd.OutOrStdout().Write([]byte(config.ExampleYAML))
			return err
		}
		if err := os.WriteFile(outputFile, []byte(config.ExampleYAML), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputFile, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outputFile)
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the schedule HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := server.NewConfig()
		if servePort != "" {
			cfg.Port = servePort
		}
		return server.New(cfg).Run()
	},
}

func init() {
	calculateCmd.Flags().StringVarP(&inputFile, "input", "i", "scenario.yaml", "scenario configuration file")
	calculateCmd.Flags().StringVarP(&formatName, "format", "f", "console", "output format")
	calculateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write output to file instead of stdout")

	exampleCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write the example to file instead of stdout")

	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "listen port (overrides PORT env)")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
