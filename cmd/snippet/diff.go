package main

import (
	"github.com/nickwells/snipfile.mod/internal/snipdiff"
	"github.com/nickwells/snipfile.mod/snippet"
	"github.com/spf13/cobra"
)

func (a *app) diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff old-file new-file",
		Short: "Show how the snippets differ between two snippet files",
		Long: `Show how the snippets differ between two snippet files.

Snippets are matched by title. Snippets which are the same in both files
are not shown.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldSnips, err := a.readAll(args[0])
			if err != nil {
				return err
			}
			newSnips, err := a.readAll(args[1])
			if err != nil {
				return err
			}

			w, done := a.output(cmd)
			defer done()

			return snipdiff.Format(w,
				snipdiff.Compare(oldSnips, newSnips), a.useColour(cmd))
		},
	}
}

// readAll returns all the snippets in the file
func (a *app) readAll(fName string) ([]snippet.S, error) {
	p, err := snippet.Open(fName, a.parserOpts()...)
	if err != nil {
		return nil, err
	}
	defer p.Close()

	return p.Snippets()
}
