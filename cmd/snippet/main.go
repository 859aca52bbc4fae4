// The snippet command lists, shows, checks and edits snippet files.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/nickwells/pager.mod/pager"
	"github.com/nickwells/snipfile.mod/internal/config"
	"github.com/nickwells/snipfile.mod/snippet"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0"

// errProblems is returned by commands which have already reported what
// went wrong
var errProblems = errors.New("problems were found")

// app holds the state shared by the commands
type app struct {
	v   *viper.Viper
	cfg config.Config
}

// newRootCmd builds the snippet command with all its sub-commands
func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	rootCmd := &cobra.Command{
		Use:   "snippet",
		Short: "Work with files of titled text snippets",
		Long: `Work with files of titled text snippets.

A snippet file holds blocks of text each starting with a line like

  -- title --

and ending with the line

  -- end --

Any lines outside a block are comments.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.Bool("page", false, "page the output if it is going to a terminal")
	pf.String("color", config.ColorAuto,
		"when to colour the output: auto, always or never")
	pf.Int("max-line-len", snippet.DfltMaxLineLen,
		"the longest line allowed in a snippet file")

	_ = a.v.BindPFlag(config.KeyPage, pf.Lookup("page"))
	_ = a.v.BindPFlag(config.KeyColor, pf.Lookup("color"))
	_ = a.v.BindPFlag(config.KeyMaxLineLen, pf.Lookup("max-line-len"))

	rootCmd.AddCommand(
		a.listCmd(),
		a.showCmd(),
		a.catCmd(),
		a.addCmd(),
		a.diffCmd(),
		a.exportCmd(),
		a.checkCmd(),
	)

	return rootCmd
}

// toTerminal reports whether the command's output is going to a terminal
func toTerminal(cmd *cobra.Command) bool {
	return cmd.OutOrStdout() == io.Writer(os.Stdout) &&
		isatty.IsTerminal(os.Stdout.Fd())
}

// output returns the writer that the command should write to and a function
// to call when the output is complete. The output is sent through a pager
// if paging is configured and the output is going to a terminal.
func (a *app) output(cmd *cobra.Command) (io.Writer, func()) {
	if !a.cfg.Page || !toTerminal(cmd) {
		return cmd.OutOrStdout(), func() {}
	}

	pgr := pager.W()
	p := pager.Start(&pgr)
	return pgr.StdW(), func() { p.Done() }
}

// useColour reports whether the output should be coloured
func (a *app) useColour(cmd *cobra.Command) bool {
	switch a.cfg.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return toTerminal(cmd)
}

// parserOpts returns the options to use when opening snippet files
func (a *app) parserOpts() []snippet.ParserOptFunc {
	return []snippet.ParserOptFunc{snippet.SetMaxLineLen(a.cfg.MaxLineLen)}
}

// filesOrDefault returns the files given on the command line or, if there
// are none, those from the configuration
func (a *app) filesOrDefault(files []string) ([]string, error) {
	if len(files) > 0 {
		return files, nil
	}
	if len(a.cfg.Files) > 0 {
		return a.cfg.Files, nil
	}
	return nil, errors.New("no snippet files were given" +
		" and none are set in the configuration")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
