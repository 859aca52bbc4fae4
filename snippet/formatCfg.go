package snippet

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	titleIndent = 4
	dfltIndent  = 8
)

// These are the names of the parts of a snippet that can be listed
const (
	TitlePart  = "title"
	LinesPart  = "lines"
	DigestPart = "digest"
	BodyPart   = "body"
)

// validParts records the parts that can be passed to SetParts
var validParts = map[string]bool{
	TitlePart:  true,
	LinesPart:  true,
	DigestPart: true,
	BodyPart:   true,
}

// formatCfg holds the configuration values controlling how we generate a
// string reflecting a snippet value
type formatCfg struct {
	// parts records the parts of the snippet to be shown. If empty then the
	// title and the line count are shown.
	parts map[string]bool

	// hideIntro controls whether introductory strings are printed before the
	// parts of the snippet
	hideIntro bool

	// titleStyle, if set, is applied to the title when the intro is shown
	titleStyle func(format string, a ...any) string
}

type partsToShow struct {
	intro  string
	indent int
	values []string
	styled bool
}

// initPartsToShow constructs the list of parts to show and returns it
func (fc *formatCfg) initPartsToShow(s S) []partsToShow {
	parts := []partsToShow{}

	partsEmpty := len(fc.parts) == 0

	if partsEmpty || fc.parts[TitlePart] {
		parts = append(parts,
			partsToShow{
				intro:  "",
				indent: titleIndent,
				values: []string{s.title},
				styled: true,
			})
	}
	if partsEmpty || fc.parts[LinesPart] {
		parts = append(parts,
			partsToShow{
				intro:  "Lines:",
				values: []string{strconv.Itoa(len(s.Lines()))},
			})
	}
	if fc.parts[DigestPart] {
		parts = append(parts,
			partsToShow{
				intro:  "Digest:",
				values: []string{s.Digest()},
			})
	}
	if fc.parts[BodyPart] {
		parts = append(parts,
			partsToShow{
				intro:  "Body:",
				values: s.Lines(),
			})
	}

	return parts
}

// maxIntroLen returns the length of the longest intro.
func maxIntroLen(parts []partsToShow) int {
	maxIntroLen := 0
	for _, p := range parts {
		if len(p.intro) > maxIntroLen {
			maxIntroLen = len(p.intro)
		}
	}
	return maxIntroLen
}

// snippetToString returns a string showing the Snippet formatted according
// to the formatCfg
func (fc *formatCfg) snippetToString(s S) string {
	parts := fc.initPartsToShow(s)
	rval := ""

	if fc.hideIntro {
		for _, p := range parts {
			for _, l := range p.values {
				rval += l + "\n"
			}
		}
		return rval
	}

	maxLen := maxIntroLen(parts)
	for _, p := range parts {
		var intro, blanks string
		if p.intro != "" {
			intro = fmt.Sprintf("%*s ", maxLen, p.intro)
		}
		indent := p.indent
		if indent == 0 {
			indent = dfltIndent
		}
		intro = strings.Repeat(" ", indent) + intro
		blanks = strings.Repeat(" ", len(intro))

		for _, l := range p.values {
			if p.styled && fc.titleStyle != nil {
				l = fc.titleStyle("%s", l)
			}
			rval += intro + l + "\n"
			intro = blanks
		}
	}

	return rval
}
