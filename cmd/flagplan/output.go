package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/protocolo-ceremonial/flagplan/internal/adapters/http/dto"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON:
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, formatText, formatJSON)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writePlanText renders a plan for a terminal: the placement table first,
// then warnings, briefings and the timeline.
func writePlanText(w io.Writer, p dto.PlanResponse) error {
	fmt.Fprintln(w, p.Summary)
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tPREC\tCODE\tACTOR\tKIND")
	for _, e := range p.Order {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\n", e.Position, e.Precedence, e.Code, e.Actor, e.Kind)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(p.Warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Avisos:")
		for _, warning := range p.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Briefings:")
	for _, b := range p.Briefings {
		fmt.Fprintf(w, "  %s\n    %s\n", b.Title, b.Details)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Cronograma:")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, m := range p.Milestones {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", m.ISO, m.Title, m.Owner)
	}
	return tw.Flush()
}

// writeComparisonText renders one placement table per criterion. Failed
// criteria print their error in place of the table.
func writeComparisonText(w io.Writer, resp dto.ComparePlansResponse) error {
	for i, r := range resp.Results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "== %s ==\n", r.Criterion)
		if r.Plan == nil {
			fmt.Fprintf(w, "error: %s\n", r.Error)
			continue
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "POS\tPREC\tCODE\tACTOR")
		for _, e := range r.Plan.Order {
			fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", e.Position, e.Precedence, e.Code, e.Actor)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "\n%d criteria, %d succeeded, %d failed\n", resp.Total, resp.Succeeded, resp.Failed)
	return nil
}

func writeCountriesText(w io.Writer, resp dto.CountryListResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tLOCALE\tPRECEDENCE\tUN SINCE")
	for _, c := range resp.Countries {
		prec := "-"
		if c.Precedence > 0 {
			prec = fmt.Sprint(c.Precedence)
		}
		since := c.Seniority
		if since == "" {
			since = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.Code, c.Name, c.Locale, prec, since)
	}
	return tw.Flush()
}
