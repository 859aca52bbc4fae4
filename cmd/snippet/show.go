package main

import (
	"fmt"

	"github.com/nickwells/snipfile.mod/snippet"
	"github.com/spf13/cobra"
)

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show title [file...]",
		Short: "Show the body of the first snippet with the given title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.filesOrDefault(args[1:])
			if err != nil {
				return err
			}

			cache := snippet.Cache{}
			s, err := cache.Add(files, args[0])
			if err != nil {
				return err
			}

			w, done := a.output(cmd)
			defer done()

			_, err = fmt.Fprintln(w, s.Body())
			return err
		},
	}
}
