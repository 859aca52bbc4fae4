package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

const (
	fmtYAML = "yaml"
	fmtJSON = "json"
)

// exportRecord is the exported form of a snippet
type exportRecord struct {
	Title  string `json:"title"  yaml:"title"`
	Body   string `json:"body"   yaml:"body"`
	Digest string `json:"digest" yaml:"digest"`
}

func (a *app) exportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export file",
		Short: "Write out the snippets in a file as YAML or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snips, err := a.readAll(args[0])
			if err != nil {
				return err
			}

			recs := make([]exportRecord, 0, len(snips))
			for _, s := range snips {
				recs = append(recs, exportRecord{
					Title:  s.Title(),
					Body:   s.Body(),
					Digest: s.Digest(),
				})
			}

			var out []byte
			switch format {
			case fmtYAML:
				out, err = yaml.Marshal(recs)
			case fmtJSON:
				out, err = json.MarshalIndent(recs, "", "  ")
				out = append(out, '\n')
			default:
				return fmt.Errorf("bad format: %q (it must be %s or %s)",
					format, fmtYAML, fmtJSON)
			}
			if err != nil {
				return err
			}

			w, done := a.output(cmd)
			defer done()

			_, err = w.Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", fmtYAML,
		"the output format: yaml or json")

	return cmd
}
