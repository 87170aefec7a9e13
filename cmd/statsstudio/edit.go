package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-statsstudio/pkg/palette"
	"github.com/goliatone/go-statsstudio/pkg/prompt"
	"github.com/goliatone/go-statsstudio/pkg/studio"
)

// driverFactory is swapped in tests.
var driverFactory = func(cmd *cobra.Command) prompt.PromptDriver {
	return prompt.NewSurveyDriver(cmd.OutOrStdout())
}

func newEditCmd(a *app) *cobra.Command {
	var username string
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Build a card URL interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := a.registry(cmd.Context())
			session := studio.New(reg, a.sessionOptions(username)...)
			if _, ok := reg.Template(a.cfg.Template); ok {
				session.SelectTemplate(a.cfg.Template)
			}

			editor := prompt.NewEditor(
				prompt.WithDriver(driverFactory(cmd)),
				prompt.WithPalettes(palette.Builtin()),
			)
			err := editor.Run(cmd.Context(), session)
			if errors.Is(err, prompt.ErrAborted) {
				a.logger.Info("edit aborted")
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "initial GitHub username")
	return cmd
}
