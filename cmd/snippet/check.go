package main

import (
	"fmt"

	"github.com/nickwells/errutil.mod/errutil"
	"github.com/nickwells/snipfile.mod/snippet"
	"github.com/spf13/cobra"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Check the snippet files for problems",
		Long: `Check the snippet files for problems.

The files are checked for badly formed snippets, for snippets hidden by one
with the same title in an earlier file and for snippets which would not read
back unchanged after being written out.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.filesOrDefault(args)
			if err != nil {
				return err
			}

			errs := errutil.NewErrMap()
			count := a.check(files, errs)

			if len(*errs) > 0 {
				errs.Report(cmd.ErrOrStderr(), "snippet check")
				return errProblems
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"%d snippets in %d files: no problems found\n",
				count, len(files))
			return err
		},
	}
}

// check reads the files, recording any problems in errs. It returns the
// number of snippets read.
func (a *app) check(files []string, errs *errutil.ErrMap) int {
	cache := snippet.Cache{}
	firstSeen := map[string]string{}
	count := 0

	for _, fName := range files {
		p, err := snippet.Open(fName, a.parserOpts()...)
		if err != nil {
			errs.AddError("Bad snippet file", err)
			continue
		}

		for s, err := range p.All() {
			if err != nil {
				errs.AddError("Bad snippet", err)
				break
			}
			count++

			if other, ok := firstSeen[s.Title()]; ok {
				errs.AddError("Eclipsed snippet",
					fmt.Errorf("%q in %q is eclipsed by the entry in %q",
						s.Title(), fName, other))
				continue
			}
			firstSeen[s.Title()] = fName
			cache[s.Title()] = s
		}
		p.Close()
	}

	cache.Check(errs)
	return count
}
