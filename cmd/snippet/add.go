package main

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/nickwells/snipfile.mod/snippet"
	"github.com/spf13/cobra"
)

func (a *app) addCmd() *cobra.Command {
	var title, body, bodyFile string

	cmd := &cobra.Command{
		Use:   "add file",
		Short: "Add a snippet to the end of a snippet file",
		Long: `Add a snippet to the end of a snippet file.

The file is created if it does not exist. The snippet is not added if the
file cannot be parsed, if it already has a snippet with the same title or if
the snippet could not be read back unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("body") && bodyFile != "" {
				return errors.New(
					"only one of --body and --body-file may be given")
			}
			if bodyFile != "" {
				b, err := os.ReadFile(bodyFile) //nolint:gosec
				if err != nil {
					return err
				}
				body = trimFinalNewline(string(b))
			}

			s := snippet.New(title, body)
			if err := s.Check(); err != nil {
				return fmt.Errorf("cannot add snippet %q: %w", title, err)
			}
			return a.appendSnippet(args[0], s)
		},
	}

	f := cmd.Flags()
	f.StringVar(&title, "title", "", "the title of the new snippet")
	f.StringVar(&body, "body", "", "the text of the new snippet")
	f.StringVar(&bodyFile, "body-file", "",
		"a file holding the text of the new snippet")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}

// trimFinalNewline removes a single trailing line terminator
func trimFinalNewline(s string) string {
	if t, ok := strings.CutSuffix(s, "\r\n"); ok {
		return t
	}
	return strings.TrimSuffix(s, "\n")
}

// appendSnippet checks that the snippet can be added to the file and then
// writes it at the end, leaving the rest of the file untouched
func (a *app) appendSnippet(fName string, s snippet.S) error {
	content, err := os.ReadFile(fName) //nolint:gosec
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	p, err := snippet.NewParser(bytes.NewReader(content),
		append(a.parserOpts(), snippet.SetSourceName(fName))...)
	if err != nil {
		return err
	}
	if _, err := p.Snippets(); err != nil {
		return err
	}
	if err := p.Add(s); err != nil {
		return fmt.Errorf("cannot add to %q: %w", fName, err)
	}

	f, err := os.OpenFile(fName, //nolint:gosec
		os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}

	if len(content) > 0 && content[len(content)-1] != '\n' {
		if _, err := f.WriteString("\n"); err != nil {
			f.Close()
			return err
		}
	}
	if _, err := s.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
