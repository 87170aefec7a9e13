package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-statsstudio/pkg/classic"
)

func newClassicCmd(a *app) *cobra.Command {
	var (
		username string
		sets     []string
	)
	cmd := &cobra.Command{
		Use:   "classic",
		Short: "Print the stats, languages and graph URLs of the fixed layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			assignments, err := parseAssignments(sets)
			if err != nil {
				return err
			}
			session := classic.NewSession(a.sessionOptions(username)...)
			for _, pair := range assignments {
				session.Set(pair.Key, pair.Value)
			}
			if session.Username() == "" {
				return errUsernameRequired
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, item := range session.EndpointURLs() {
				fmt.Fprintf(tw, "%s\t%s\n", item.Name, item.URL)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "GitHub username")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "option assignment key=value (repeatable)")
	return cmd
}
