package snippet

import (
	"bufio"
	"io"
)

// DfltMaxLineLen is the longest line that a LineReader made by NewLineReader
// will accept unless told otherwise
const DfltMaxLineLen = 1024 * 1024

// LineReader is the source of lines for a Parser. ReadLine returns the next
// line without its line terminator or io.EOF when there are no more lines.
type LineReader interface {
	ReadLine() (string, error)
}

// scanReader is a LineReader reading from an io.Reader
type scanReader struct {
	scanner *bufio.Scanner
}

// NewLineReader returns a LineReader which reads lines from r. Lines may be
// terminated by "\n" or "\r\n" and the last line need not be terminated. A
// line longer than maxLineLen bytes will give an error; if maxLineLen is not
// positive DfltMaxLineLen is used.
func NewLineReader(r io.Reader, maxLineLen int) LineReader {
	if maxLineLen <= 0 {
		maxLineLen = DfltMaxLineLen
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(maxLineLen, bufio.MaxScanTokenSize)),
		maxLineLen)
	return &scanReader{scanner: scanner}
}

// ReadLine returns the next line from the scanner
func (sr *scanReader) ReadLine() (string, error) {
	if sr.scanner.Scan() {
		return sr.scanner.Text(), nil
	}
	if err := sr.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// sliceReader is a LineReader over lines already in memory
type sliceReader struct {
	lines []string
}

// LinesOf returns a LineReader which returns each of the lines in turn
func LinesOf(lines ...string) LineReader {
	return &sliceReader{lines: lines}
}

// ReadLine returns the next line from the slice
func (sr *sliceReader) ReadLine() (string, error) {
	if len(sr.lines) == 0 {
		return "", io.EOF
	}
	l := sr.lines[0]
	sr.lines = sr.lines[1:]
	return l, nil
}
