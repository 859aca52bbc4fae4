package main

import (
	"github.com/fatih/color"
	"github.com/nickwells/errutil.mod/errutil"
	"github.com/nickwells/snipfile.mod/snippet"
	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	var (
		parts     []string
		only      []string
		hideIntro bool
	)

	cmd := &cobra.Command{
		Use:   "list [file...]",
		Short: "List the snippets in the snippet files",
		Long: `List the snippets in the snippet files.

A snippet whose title has already been seen in an earlier file is eclipsed
and is reported rather than listed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := a.filesOrDefault(args)
			if err != nil {
				return err
			}

			w, done := a.output(cmd)
			defer done()

			errs := errutil.NewErrMap()
			opts := []snippet.ListCfgOptFunc{
				snippet.SetParts(parts...),
				snippet.SetConstraints(only...),
				snippet.HideIntro(hideIntro),
				snippet.SetParserOpts(a.parserOpts()...),
			}
			if a.useColour(cmd) {
				c := color.New(color.FgCyan, color.Bold)
				c.EnableColor()
				opts = append(opts, snippet.SetTitleStyle(c.SprintfFunc()))
			}

			lc, err := snippet.NewListCfg(w, files, errs, opts...)
			if err != nil {
				return err
			}
			lc.List()

			if len(*errs) > 0 {
				errs.Report(cmd.ErrOrStderr(), "snippet list")
				return errProblems
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&parts, "parts", nil,
		"the parts of each snippet to show: title, lines, digest, body")
	f.StringSliceVar(&only, "only", nil,
		"only list the snippets with these titles")
	f.BoolVar(&hideIntro, "hide-intro", false,
		"don't show the introductory text before each part")

	return cmd
}
