// Package snipdiff compares two collections of snippets, matching them by
// title.
package snipdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/nickwells/snipfile.mod/snippet"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Kind records how a snippet has changed
type Kind int

const (
	Added Kind = iota
	Removed
	Changed
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Op says whether a line of a changed snippet is common to both versions,
// only in the old one or only in the new one
type Op int

const (
	Same Op = iota
	Delete
	Insert
)

// Line is one line of the difference between two snippet bodies
type Line struct {
	Op   Op
	Text string
}

// Change describes a difference between the old and new snippets with the
// same title. Old is unset for Added changes and New for Removed ones.
// Lines is only set for Changed snippets.
type Change struct {
	Kind  Kind
	Title string
	Old   snippet.S
	New   snippet.S
	Lines []Line
}

// Compare returns the changes needed to turn the old snippets into the new
// ones. Snippets with the same title and body are not reported. The changes
// for titles in the old snippets come first, in the old order, followed by
// those for titles only in the new snippets, in the new order.
func Compare(oldSnips, newSnips []snippet.S) []Change {
	newByTitle := make(map[string]snippet.S, len(newSnips))
	for _, s := range newSnips {
		newByTitle[s.Title()] = s
	}
	oldTitles := make(map[string]bool, len(oldSnips))

	var changes []Change
	for _, o := range oldSnips {
		oldTitles[o.Title()] = true

		n, ok := newByTitle[o.Title()]
		if !ok {
			changes = append(changes,
				Change{Kind: Removed, Title: o.Title(), Old: o})
			continue
		}
		if o.Digest() == n.Digest() {
			continue
		}
		changes = append(changes, Change{
			Kind:  Changed,
			Title: o.Title(),
			Old:   o,
			New:   n,
			Lines: diffLines(o.Lines(), n.Lines()),
		})
	}

	for _, n := range newSnips {
		if !oldTitles[n.Title()] {
			changes = append(changes,
				Change{Kind: Added, Title: n.Title(), New: n})
		}
	}
	return changes
}

// terminated joins the lines, giving each a trailing newline
func terminated(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// diffLines returns the line-by-line differences between the two bodies
func diffLines(oldLines, newLines []string) []Line {
	dmp := diffpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(
		terminated(oldLines), terminated(newLines))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var lines []Line
	for _, d := range diffs {
		var op Op
		switch d.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		default:
			op = Same
		}
		for _, l := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			lines = append(lines, Line{Op: op, Text: l})
		}
	}
	return lines
}

// colours holds the formatting functions used by Format
type colours struct {
	header func(a ...any) string
	del    func(a ...any) string
	ins    func(a ...any) string
}

// newColours returns the colours to use, with colour output forced on or
// off
func newColours(useColour bool) colours {
	mk := func(attrs ...color.Attribute) func(a ...any) string {
		c := color.New(attrs...)
		if useColour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return colours{
		header: mk(color.FgCyan, color.Bold),
		del:    mk(color.FgRed),
		ins:    mk(color.FgGreen),
	}
}

// Format writes the changes to w. Each change starts with a header line
// giving its kind and title, followed by the snippet lines prefixed with
// '-' for removed lines, '+' for added lines and ' ' for unchanged ones.
func Format(w io.Writer, changes []Change, useColour bool) error {
	c := newColours(useColour)

	for _, ch := range changes {
		if _, err := fmt.Fprintln(w,
			c.header(fmt.Sprintf("%s: %s", ch.Kind, ch.Title))); err != nil {
			return err
		}

		var lines []Line
		switch ch.Kind {
		case Added:
			for _, l := range ch.New.Lines() {
				lines = append(lines, Line{Op: Insert, Text: l})
			}
		case Removed:
			for _, l := range ch.Old.Lines() {
				lines = append(lines, Line{Op: Delete, Text: l})
			}
		default:
			lines = ch.Lines
		}

		for _, l := range lines {
			var out string
			switch l.Op {
			case Delete:
				out = c.del("-" + l.Text)
			case Insert:
				out = c.ins("+" + l.Text)
			default:
				out = " " + l.Text
			}
			if _, err := fmt.Fprintln(w, out); err != nil {
				return err
			}
		}
	}
	return nil
}
