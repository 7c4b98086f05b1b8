package main

import (
	"github.com/spf13/cobra"

	"github.com/protocolo-ceremonial/flagplan/internal/adapters/http/dto"
)

type planOptions struct {
	file      string
	format    string
	criterion string
	compare   bool
}

func newPlanCmd(root *rootOptions) *cobra.Command {
	opts := &planOptions{}

	cmd := &cobra.Command{
		Use:   "plan -f EVENT_FILE",
		Short: "Generate the flag plan for an event",
		Long: `Generate the flag plan for the event described in a YAML file.

The file uses the same keys as the HTTP API:

  fecha: "2025-10-12"
  evento: bilateral        # nacional, bilateral, multilateral, corporativo
  sede: interior           # interior, exterior, escenario, desfile
  anfitrion: ES
  delegaciones: [FR, PT]
  incorporarUE: true
  incorporarONU: false
  banderaInstitucional: ""
  criterio: precedencia    # alfabetico, precedencia, antiguedad

Examples:
  # Print the plan as a table
  flagplan plan -f cumbre.yaml

  # Read the event from stdin and print JSON
  cat cumbre.yaml | flagplan plan -f - --format json

  # Compare the order under every criterion
  flagplan plan -f cumbre.yaml --compare`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Path to the event YAML file, or - for stdin (required)")
	cmd.Flags().StringVar(&opts.format, "format", formatText, "Output format: text, json")
	cmd.Flags().StringVar(&opts.criterion, "criterion", "", "Override the ordering criterion from the file")
	cmd.Flags().BoolVar(&opts.compare, "compare", false, "Plan once per ordering criterion")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runPlan(cmd *cobra.Command, root *rootOptions, opts *planOptions) error {
	if err := checkFormat(opts.format); err != nil {
		return err
	}

	req, err := readEvent(opts.file, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if opts.criterion != "" {
		req.Criterion = opts.criterion
	}

	svc, err := root.planner(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if opts.compare {
		results, err := svc.ComparePlans(ctx, req.ToPlanRequest(), nil)
		if err != nil {
			return err
		}
		resp := dto.ToComparePlansResponse(results)
		if opts.format == formatJSON {
			return writeJSON(out, resp)
		}
		return writeComparisonText(out, resp)
	}

	plan, err := svc.GeneratePlan(ctx, req.ToPlanRequest())
	if err != nil {
		return err
	}
	resp := dto.ToPlanResponse(plan)
	if opts.format == formatJSON {
		return writeJSON(out, resp)
	}
	return writePlanText(out, resp)
}
