package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type templateSummary struct {
	Name    string   `json:"name"`
	Prefix  string   `json:"prefix"`
	Options []string `json:"options"`
}

func newTemplatesCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List the templates of the configured descriptor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := a.registry(cmd.Context())
			summaries := make([]templateSummary, 0, len(reg.Names()))
			for _, tpl := range reg.Templates() {
				summaries = append(summaries, templateSummary{
					Name:    tpl.Name,
					Prefix:  tpl.Prefix,
					Options: tpl.OptionNames(),
				})
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(summaries)
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPREFIX\tOPTIONS")
			for _, s := range summaries {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, s.Prefix, strings.Join(s.Options, ","))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
