package snippet

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nickwells/errutil.mod/errutil"
	"github.com/nickwells/testhelper.mod/v2/testhelper"
)

func TestSnippetCache(t *testing.T) {
	type titleErr struct {
		title   string
		expErr  error
		expBody string
	}

	testCases := []struct {
		testhelper.ID
		files    []string
		snippets []titleErr
	}{
		{
			ID: testhelper.MkID("no files"),
			snippets: []titleErr{
				{
					title:  "snippet1",
					expErr: errors.New("there are no snippet files to search"),
				},
			},
		},
		{
			ID:    testhelper.MkID("one snippet, found"),
			files: []string{SongsFile},
			snippets: []titleErr{
				{
					title:   "snippet1",
					expBody: "Are we human?\nOr are we dancer?",
				},
			},
		},
		{
			ID:    testhelper.MkID("duplicate snippet, found"),
			files: []string{SongsFile},
			snippets: []titleErr{
				{
					title:   "snippet2",
					expBody: "This is my church.\nThis is where I heal my hurts.",
				},
				{
					title:   "snippet2",
					expBody: "This is my church.\nThis is where I heal my hurts.",
				},
			},
		},
		{
			ID:    testhelper.MkID("not in the one file"),
			files: []string{ScenarioFile},
			snippets: []titleErr{
				{
					title: "nonesuch",
					expErr: errors.New(`snippet "nonesuch"` +
						` is not in the snippet file:` +
						` "` + ScenarioFile + `"`),
				},
			},
		},
		{
			ID:    testhelper.MkID("not in any file"),
			files: []string{ScenarioFile, SongsFile},
			snippets: []titleErr{
				{
					title: "nonesuch",
					expErr: errors.New(`snippet "nonesuch"` +
						` is not in any snippet file:` +
						` "` + ScenarioFile + `", "` + SongsFile + `"`),
				},
			},
		},
		{
			ID:    testhelper.MkID("in the second file"),
			files: []string{SongsFile, MoreFile},
			snippets: []titleErr{
				{
					title: "Uprising",
					expBody: "Rise up and take the power back\n" +
						"It's time the fat cats had a heart attack",
				},
			},
		},
		{
			ID:    testhelper.MkID("the first file wins"),
			files: []string{MoreFile, SongsFile},
			snippets: []titleErr{
				{
					title:   "snippet2",
					expBody: "Eclipsed by the entry in songs.snip",
				},
			},
		},
		{
			ID:    testhelper.MkID("badly formed file"),
			files: []string{UnterminatedFile},
			snippets: []titleErr{
				{
					title:   "complete",
					expBody: "a complete snippet",
				},
				{
					title: "open",
					expErr: errors.New(UnterminatedFile + ":4:" +
						` the snippet has no end marker: "open"`),
				},
			},
		},
	}

	for _, tc := range testCases {
		sc := Cache{}
		for i, sne := range tc.snippets {
			s, err := sc.Add(tc.files, sne.title)
			id := tc.IDStr() + fmt.Sprintf(" [%d]", i)
			testhelper.DiffErr(t, id, "error from Add(...)", err, sne.expErr)
			if err == nil {
				sg, err := sc.Get(sne.title)
				if err != nil {
					t.Log(id)
					t.Logf("\t: calling Cache.Get(%s)", sne.title)
					t.Errorf("\t: unexpected err: %s", err)
				} else if err = s.Matches(sg); err != nil {
					t.Log(id)
					t.Log("\t: the snippet returned by Get differs")
					t.Errorf("\t: differences: %s", err)
				}
				testhelper.DiffString(t, id, "snippet title", s.Title(), sne.title)
				testhelper.DiffString(t, id, "snippet body", s.Body(), sne.expBody)
			} else {
				sg, err := sc.Get(sne.title)
				if err == nil {
					t.Log(id)
					t.Logf("\t: calling Cache.Get(%s)", sne.title)
					t.Errorf("\t: unexpected success: %s", sg)
				}
			}
		}
	}
}

func TestSnippetCacheMissingFile(t *testing.T) {
	sc := Cache{}
	_, err := sc.Add([]string{NoSuchFile}, "any")
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("expected ErrSourceUnavailable, got: %v", err)
	}
}

func TestSnippetCacheCheck(t *testing.T) {
	testCases := []struct {
		testhelper.ID
		cache   Cache
		expErrs errutil.ErrMap
	}{
		{
			ID: testhelper.MkID("empty"),
		},
		{
			ID: testhelper.MkID("all good"),
			cache: Cache{
				"good":  New("good", "body"),
				"empty": New("empty", ""),
			},
		},
		{
			ID: testhelper.MkID("one bad"),
			cache: Cache{
				"good": New("good", "body"),
				"end":  New("end", "body"),
			},
			expErrs: errutil.ErrMap{
				"Unrenderable snippet": []error{
					errors.New(`snippet "end": the title ("end")` +
						` gives a start marker that reads as the end marker`),
				},
			},
		},
	}

	for _, tc := range testCases {
		errMap := errutil.NewErrMap()
		tc.cache.Check(errMap)
		if err := errMap.Matches(tc.expErrs); err != nil {
			t.Log(tc.IDStr())
			t.Log("\t: checking the snippet cache")
			t.Errorf("\t: unexpected error: %s", err)
		}
	}
}
