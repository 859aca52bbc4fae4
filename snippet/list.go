package snippet

import (
	"fmt"
	"io"

	"github.com/nickwells/errutil.mod/errutil"
)

// snipLoc records where a snippet is first found. It is used to report
// snippets in one file which cannot be used because they are hidden
// (eclipsed) by a snippet found earlier in the list of snippet files.
type snipLoc map[string]string

// record records the location that the snippet is found. It records an error
// and returns it if the snippet is already in the snipLoc
func (sl *snipLoc) record(title, fName string, errs *errutil.ErrMap) error {
	if otherFile, eclipsed := (*sl)[title]; eclipsed {
		err := fmt.Errorf("%q in %q is eclipsed by the entry in %q",
			title, fName, otherFile)
		errs.AddError("Eclipsed snippet", err)
		return err
	}
	(*sl)[title] = fName
	return nil
}

// ListCfg holds the configuration for listing the snippets in a collection
// of snippet files
type ListCfg struct {
	w           io.Writer
	files       []string
	errs        *errutil.ErrMap
	constraints map[string]bool
	fc          formatCfg
	parserOpts  []ParserOptFunc
}

// ListCfgOptFunc is the type of a function that can be passed to
// NewListCfg to set optional values
type ListCfgOptFunc func(lc *ListCfg) error

// SetParts returns a ListCfgOptFunc which sets the parts of each snippet to
// be shown. It is an error to give a part which is not one of the
// pre-defined parts.
func SetParts(parts ...string) ListCfgOptFunc {
	return func(lc *ListCfg) error {
		for _, p := range parts {
			if !validParts[p] {
				return fmt.Errorf("%q is not a valid pre-defined part of a snippet",
					p)
			}
			lc.fc.parts[p] = true
		}
		return nil
	}
}

// SetConstraints returns a ListCfgOptFunc which restricts the listing to
// the snippets with the given titles
func SetConstraints(titles ...string) ListCfgOptFunc {
	return func(lc *ListCfg) error {
		for _, t := range titles {
			lc.constraints[t] = true
		}
		return nil
	}
}

// HideIntro returns a ListCfgOptFunc which sets whether the introductory
// text before each part is suppressed
func HideIntro(hide bool) ListCfgOptFunc {
	return func(lc *ListCfg) error {
		lc.fc.hideIntro = hide
		return nil
	}
}

// SetTitleStyle returns a ListCfgOptFunc which sets a function used to
// decorate the snippet titles (to colour them, for instance). It is not used
// if the intro is hidden.
func SetTitleStyle(f func(format string, a ...any) string) ListCfgOptFunc {
	return func(lc *ListCfg) error {
		lc.fc.titleStyle = f
		return nil
	}
}

// SetParserOpts returns a ListCfgOptFunc which sets the options used when
// opening each snippet file
func SetParserOpts(opts ...ParserOptFunc) ListCfgOptFunc {
	return func(lc *ListCfg) error {
		lc.parserOpts = append(lc.parserOpts, opts...)
		return nil
	}
}

// NewListCfg creates a ListCfg which will write to w, listing the snippets
// in files and recording any errors in errs
func NewListCfg(w io.Writer, files []string, errs *errutil.ErrMap,
	opts ...ListCfgOptFunc,
) (*ListCfg, error) {
	lc := &ListCfg{
		w:           w,
		files:       files,
		errs:        errs,
		constraints: map[string]bool{},
		fc: formatCfg{
			parts: map[string]bool{},
		},
	}
	for _, o := range opts {
		if err := o(lc); err != nil {
			return nil, err
		}
	}
	return lc, nil
}

// List will read all of the snippet files and show the available snippets.
// Any errors are recorded in the ListCfg's ErrMap.
func (lc *ListCfg) List() {
	loc := make(snipLoc)

	for _, fName := range lc.files {
		p, err := Open(fName, lc.parserOpts...)
		if err != nil {
			lc.errs.AddError(fmt.Sprintf("Bad snippet file: %q", fName), err)
			continue
		}
		fmt.Fprintln(lc.w, "in: "+fName)
		lc.display(&loc, fName, p)
		p.Close()
	}
}

// display reports each snippet from the Parser that is not eclipsed and
// that satisfies the constraints
func (lc *ListCfg) display(loc *snipLoc, fName string, p *Parser) {
	for s, err := range p.All() {
		if err != nil {
			lc.errs.AddError("Bad snippet", err)
			return
		}
		if err := loc.record(s.title, fName, lc.errs); err != nil {
			continue
		}
		if len(lc.constraints) > 0 && !lc.constraints[s.title] {
			continue
		}
		fmt.Fprint(lc.w, lc.fc.snippetToString(s))
	}
}

// List will read all of the snippet files and show the available snippets
// using the default format. Any errors are recorded in errs.
func List(w io.Writer, files []string, errs *errutil.ErrMap) {
	lc, _ := NewListCfg(w, files, errs)
	lc.List()
}
