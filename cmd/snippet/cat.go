package main

import (
	"github.com/nickwells/snipfile.mod/snippet"
	"github.com/spf13/cobra"
)

func (a *app) catCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat file...",
		Short: "Write out the snippets in the files without any comments",
		Long: `Write out the snippets in the files without any comments.

Every snippet is rewritten in the standard form with newline line endings.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, done := a.output(cmd)
			defer done()

			for _, fName := range args {
				p, err := snippet.Open(fName, a.parserOpts()...)
				if err != nil {
					return err
				}
				_, err = p.WriteTo(w)
				p.Close()
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}
