package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "plantctl",
		Short: "Chiller plant performance calculator",
	}

	rootCmd.AddCommand(evaluateCmd())
	rootCmd.AddCommand(iplvCmd())
	rootCmd.AddCommand(flowCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func evaluateCmd() *cobra.Command {
	var o evaluateOpts

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Run one evaluation pass over a plant input file",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runEvaluate(o)
		},
	}

	cmd.Flags().StringVarP(&o.file, "file", "f", "", "plant input JSON file")
	cmd.Flags().StringVar(&o.units, "units", "", "unit system override (SI or I-P)")
	cmd.Flags().StringVar(&o.csvPath, "csv", "", "write the summary row to a CSV file")
	cmd.Flags().StringVar(&o.pdfPath, "pdf", "", "write the report to a PDF file")
	cmd.Flags().StringVar(&o.xlsxPath, "xlsx", "", "write the summary row to an XLSX file")
	cmd.Flags().StringVar(&o.chartPath, "chart", "", "write the COP-vs-load chart to a PNG file")
	cmd.MarkFlagRequired("file")
	return cmd
}

func iplvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "iplv <kw-per-ton-100> <kw-per-ton-75> <kw-per-ton-50> <kw-per-ton-25>",
		Short: "Weighted part-load efficiency from four kW/Ton readings",
		Args:  cobra.ExactArgs(4),
		RunE: func(_ *cobra.Command, args []string) error {
			return runIPLV(args)
		},
	}
}

func flowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flow <capacity-kw> <delta-t-c>",
		Short: "Chilled water flow for a cooling load and temperature differential",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runFlow(args)
		},
	}
}
