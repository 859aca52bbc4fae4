package snippet_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/nickwells/errutil.mod/errutil"
	"github.com/nickwells/snipfile.mod/snippet"
	"github.com/nickwells/testhelper.mod/v2/testhelper"
)

func TestList(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		files   []string
		expOut  string
		expErrs errutil.ErrMap
	}{
		{
			ID: testhelper.MkID("noFiles.noErrs"),
		},
		{
			ID:    testhelper.MkID("oneFile.noErrs"),
			files: []string{snippet.SongsFile},
			expOut: "in: " + snippet.SongsFile + "\n" +
				"    snippet1\n" +
				"        Lines: 2\n" +
				"    snippet2\n" +
				"        Lines: 2\n" +
				"    snippet3 with space\n" +
				"        Lines: 8\n",
		},
		{
			ID:    testhelper.MkID("twoFiles.oneEmpty.noErrs"),
			files: []string{snippet.EmptyFile, snippet.ScenarioFile},
			expOut: "in: " + snippet.EmptyFile + "\n" +
				"in: " + snippet.ScenarioFile + "\n" +
				"    snippet1\n" +
				"        Lines: 2\n" +
				"    snippet2\n" +
				"        Lines: 2\n" +
				"    snippet3\n" +
				"        Lines: 1\n",
		},
		{
			ID:    testhelper.MkID("twoGoodFiles.eclipses"),
			files: []string{snippet.SongsFile, snippet.MoreFile},
			expOut: "in: " + snippet.SongsFile + "\n" +
				"    snippet1\n" +
				"        Lines: 2\n" +
				"    snippet2\n" +
				"        Lines: 2\n" +
				"    snippet3 with space\n" +
				"        Lines: 8\n" +
				"in: " + snippet.MoreFile + "\n" +
				"    Uprising\n" +
				"        Lines: 2\n",
			expErrs: errutil.ErrMap{
				"Eclipsed snippet": []error{
					errors.New(`"snippet2" in "` + snippet.MoreFile + `"` +
						` is eclipsed by the entry` +
						` in "` + snippet.SongsFile + `"`),
				},
			},
		},
		{
			ID:    testhelper.MkID("missingFile"),
			files: []string{snippet.NoSuchFile},
			expErrs: errutil.ErrMap{
				`Bad snippet file: "` + snippet.NoSuchFile + `"`: []error{
					errors.New("the snippet source is unavailable:" +
						" open " + snippet.NoSuchFile +
						": no such file or directory"),
				},
			},
		},
		{
			ID: testhelper.MkID("badFiles"),
			files: []string{
				snippet.UnterminatedFile,
				snippet.DuplicateFile,
			},
			expOut: "in: " + snippet.UnterminatedFile + "\n" +
				"    complete\n" +
				"        Lines: 1\n" +
				"in: " + snippet.DuplicateFile + "\n" +
				"    dup\n" +
				"        Lines: 1\n",
			expErrs: errutil.ErrMap{
				"Bad snippet": []error{
					errors.New(snippet.UnterminatedFile + ":4:" +
						` the snippet has no end marker: "open"`),
					errors.New(snippet.DuplicateFile + ":4:" +
						` duplicate snippet title: "dup"`),
				},
			},
		},
	}

	for _, tc := range testCases {
		var buf bytes.Buffer
		errs := errutil.NewErrMap()
		snippet.List(&buf, tc.files, errs)
		if err := errs.Matches(tc.expErrs); err != nil {
			var errRpt bytes.Buffer
			errs.Report(&errRpt, "Snippet errors")
			t.Log(tc.IDStr())
			t.Log("\t: differences:", err)
			t.Log("\t: error map:\n", errRpt.String())
			t.Errorf("\t: unexpected error map\n\n")
			continue
		}
		testhelper.DiffString(t, tc.IDStr(), "output", buf.String(), tc.expOut)
	}
}

func TestConfigList(t *testing.T) {
	uprising := snippet.New("Uprising",
		"Rise up and take the power back\n"+
			"It's time the fat cats had a heart attack")

	testCases := []struct {
		testhelper.ID
		files  []string
		opts   []snippet.ListCfgOptFunc
		expOut string
	}{
		{
			ID:    testhelper.MkID("configList.hideIntro"),
			files: []string{snippet.ScenarioFile},
			opts:  []snippet.ListCfgOptFunc{snippet.HideIntro(true)},
			expOut: "in: " + snippet.ScenarioFile + "\n" +
				"snippet1\n2\n" +
				"snippet2\n2\n" +
				"snippet3\n1\n",
		},
		{
			ID:    testhelper.MkID("configList.specific-snippet2"),
			files: []string{snippet.ScenarioFile},
			opts: []snippet.ListCfgOptFunc{
				snippet.SetConstraints("snippet2"),
			},
			expOut: "in: " + snippet.ScenarioFile + "\n" +
				"    snippet2\n" +
				"        Lines: 2\n",
		},
		{
			ID:    testhelper.MkID("configList.titles-only"),
			files: []string{snippet.ScenarioFile},
			opts: []snippet.ListCfgOptFunc{
				snippet.SetParts(snippet.TitlePart),
				snippet.HideIntro(true),
			},
			expOut: "in: " + snippet.ScenarioFile + "\n" +
				"snippet1\n" +
				"snippet2\n" +
				"snippet3\n",
		},
		{
			ID:    testhelper.MkID("configList.Uprising.body"),
			files: []string{snippet.MoreFile},
			opts: []snippet.ListCfgOptFunc{
				snippet.SetConstraints("Uprising"),
				snippet.SetParts(snippet.TitlePart, snippet.BodyPart),
			},
			expOut: "in: " + snippet.MoreFile + "\n" +
				"    Uprising\n" +
				"        Body: Rise up and take the power back\n" +
				"              It's time the fat cats had a heart attack\n",
		},
		{
			ID:    testhelper.MkID("configList.Uprising.digest"),
			files: []string{snippet.MoreFile},
			opts: []snippet.ListCfgOptFunc{
				snippet.SetConstraints("Uprising"),
				snippet.SetParts(snippet.LinesPart, snippet.DigestPart),
			},
			expOut: "in: " + snippet.MoreFile + "\n" +
				"         Lines: 2\n" +
				"        Digest: " + uprising.Digest() + "\n",
		},
		{
			ID:    testhelper.MkID("configList.titleStyle"),
			files: []string{snippet.MoreFile},
			opts: []snippet.ListCfgOptFunc{
				snippet.SetParts(snippet.TitlePart),
				snippet.SetTitleStyle(func(format string, a ...any) string {
					return "<" + fmt.Sprintf(format, a...) + ">"
				}),
			},
			expOut: "in: " + snippet.MoreFile + "\n" +
				"    <snippet2>\n" +
				"    <Uprising>\n",
		},
	}

	for _, tc := range testCases {
		var buf bytes.Buffer
		errs := errutil.NewErrMap()
		lc, err := snippet.NewListCfg(&buf, tc.files, errs, tc.opts...)
		if err != nil {
			t.Fatal("Unexpected error:", err)
		}

		lc.List()

		if err = errs.Matches(nil); err != nil {
			var errRpt bytes.Buffer
			errs.Report(&errRpt, "Snippet errors")
			t.Log(tc.IDStr())
			t.Log("\t: differences:", err)
			t.Log("\t: error map:\n", errRpt.String())
			t.Errorf("\t: unexpected error map\n\n")
			continue
		}
		testhelper.DiffString(t, tc.IDStr(), "output", buf.String(), tc.expOut)
	}
}

func TestNewListCfgSetParts(t *testing.T) {
	badPart := "blah blah blah"
	testCases := []struct {
		testhelper.ID
		testhelper.ExpErr
		parts []string
	}{
		{
			ID:    testhelper.MkID("good parts"),
			parts: []string{snippet.TitlePart, snippet.BodyPart},
		},
		{
			ID: testhelper.MkID("bad parts"),
			ExpErr: testhelper.MkExpErr(`"` + badPart + `" is` +
				` not a valid pre-defined part of a snippet`),
			parts: []string{badPart},
		},
	}

	for _, tc := range testCases {
		_, err := snippet.NewListCfg(nil, nil, nil,
			snippet.SetParts(tc.parts...))
		testhelper.CheckExpErr(t, err, tc)
	}
}
