package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-statsstudio/pkg/validation"
)

var errLintFailed = errors.New("descriptor lint failed")

func newLintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lint <descriptor>...",
		Short: "Report malformed entries in descriptor files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, path := range args {
				raw, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("lint %s: %w", path, err)
				}
				result := validation.ValidateDescriptor(raw)
				a.logger.Debug("descriptor linted", "file", path, "issues", len(result.Issues))
				for _, issue := range result.Issues {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", path, issue)
				}
				if !result.Valid {
					failed = true
				}
			}
			if failed {
				return errLintFailed
			}
			return nil
		},
	}
}
