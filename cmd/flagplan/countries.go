package main

import (
	"github.com/spf13/cobra"

	"github.com/protocolo-ceremonial/flagplan/internal/adapters/http/dto"
)

func newCountriesCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "countries",
		Short: "List the countries available as host or delegation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			svc, err := root.planner(cmd)
			if err != nil {
				return err
			}
			countries, err := svc.ListCountries(cmd.Context())
			if err != nil {
				return err
			}

			resp := dto.ToCountryListResponse(countries)
			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return writeCountriesText(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text, json")
	return cmd
}
