package snippet

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"lukechampine.com/blake3"
)

// S records the details of the snippet
type S struct {
	title string
	body  string
}

// New creates a snippet with the given title and body. Any "\r\n" line
// endings in the body are replaced with "\n". No other checks are made; see
// Check for the conditions needed for the snippet to be read back unchanged
// after it has been written.
func New(title, body string) S {
	return S{
		title: title,
		body:  strings.ReplaceAll(body, "\r\n", "\n"),
	}
}

// Title returns the snippet title.
func (s S) Title() string {
	return s.title
}

// Body returns the text of the snippet. Lines are separated by "\n" and
// there is no trailing newline.
func (s S) Body() string {
	return s.body
}

// Lines returns the lines of the snippet body. An empty body has no lines.
func (s S) Lines() []string {
	if s.body == "" {
		return []string{}
	}
	return strings.Split(s.body, "\n")
}

// Equal returns true if the two snippets have the same title and body
func (s S) Equal(other S) bool {
	return s == other
}

// Matches returns an error if the two snippets differ, nil otherwise
func (s S) Matches(other S) error {
	if s.title != other.title {
		return fmt.Errorf("the titles differ: this: %q, other: %q",
			s.title, other.title)
	}
	return cmpSlice("body", s.Lines(), other.Lines())
}

// cmpSlice returns an error if the two slices are different, nil otherwise.
func cmpSlice(name string, a, b []string) error {
	diffs := []string{}
	if len(a) != len(b) {
		diffs = append(diffs,
			fmt.Sprintf("the lengths differ: %d != %d", len(a), len(b)))
	}
	maxBIdx := len(b) - 1
	var diffCount int
	for i, s := range a {
		if i > maxBIdx {
			break
		}
		if s != b[i] {
			if diffCount == 0 {
				diffs = append(diffs,
					fmt.Sprintf("line[%d] differs: %q != %q", i, s, b[i]))
			}
			diffCount++
		}
	}
	if diffCount == 2 {
		diffs = append(diffs, "an additional difference was found")
	} else if diffCount > 2 {
		diffs = append(diffs,
			fmt.Sprintf("%d additional differences were found", diffCount-1))
	}
	if len(diffs) > 0 {
		return fmt.Errorf("%s differs:\n\t%s",
			name, strings.Join(diffs, "\n\t"))
	}
	return nil
}

// String returns the snippet in snippet file format: the start marker, the
// body and the end marker. There is no final newline.
func (s S) String() string {
	return startMarker(s.title) + "\n" + s.body + "\n" + EndMarker
}

// WriteTo writes the snippet in snippet file format, followed by a newline,
// to w.
func (s S) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String()+"\n")
	return int64(n), err
}

// Digest returns the hex-encoded BLAKE3 hash of the snippet in snippet file
// format. Two snippets have the same digest if and only if they are equal.
func (s S) Digest() string {
	sum := blake3.Sum256([]byte(s.String()))
	return hex.EncodeToString(sum[:])
}

// Check returns an error if the snippet would not be read back unchanged
// after being written out. All the problems found are reported.
func (s S) Check() error {
	var errs []error

	if strings.ContainsAny(s.title, "\r\n") {
		errs = append(errs,
			fmt.Errorf("the title (%q) contains a line break", s.title))
	} else if strings.TrimSpace(s.title) != s.title {
		errs = append(errs,
			fmt.Errorf("the title (%q) has leading or trailing white space",
				s.title))
	} else if startMarker(s.title) == EndMarker {
		errs = append(errs,
			fmt.Errorf("the title (%q) gives a start marker"+
				" that reads as the end marker", s.title))
	}

	for i, l := range s.Lines() {
		if isEndMarker(l) {
			errs = append(errs,
				fmt.Errorf("body line %d is the end marker (%q)", i+1, l))
		} else if strings.HasSuffix(l, "\r") {
			errs = append(errs,
				fmt.Errorf("body line %d ends with a carriage return", i+1))
		}
	}

	return errors.Join(errs...)
}
