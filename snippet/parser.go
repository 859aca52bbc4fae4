package snippet

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
)

type parseState int

const (
	idle parseState = iota
	inBlock
	exhausted
)

// Parser reads snippets from a snippet source and holds any snippets added
// to it. Snippets are read from the source only as they are needed: the
// Parser holds at most one partly read snippet at any time. A Parser is not
// safe for concurrent use.
//
// The snippets held by the Parser (its buffer) are those read from the
// source, in the order they were found, followed by those added, in the
// order they were added. Each title appears at most once.
type Parser struct {
	name       string
	maxLineLen int

	src     LineReader
	closer  io.Closer
	lineNum int
	state   parseState
	err     error

	title     string
	startLine int
	body      strings.Builder
	bodyLines int

	scanned []S
	added   []S
	index   map[string]S

	nextIdx int
	nextEOF bool
}

// ParserOptFunc is the type of a function that can be passed to the Parser
// constructors to set optional values
type ParserOptFunc func(p *Parser) error

// SetSourceName returns a ParserOptFunc which sets the name used for the
// source in error messages.
func SetSourceName(name string) ParserOptFunc {
	return func(p *Parser) error {
		p.name = name
		return nil
	}
}

// SetMaxLineLen returns a ParserOptFunc which sets the longest line that
// will be accepted from an io.Reader.
func SetMaxLineLen(n int) ParserOptFunc {
	return func(p *Parser) error {
		if n <= 0 {
			return fmt.Errorf("the maximum line length (%d) must be > 0", n)
		}
		p.maxLineLen = n
		return nil
	}
}

// NewEmptyParser returns a Parser with no source. Snippets can be added to
// it and it can be written out.
func NewEmptyParser() *Parser {
	return &Parser{
		maxLineLen: DfltMaxLineLen,
		state:      exhausted,
		index:      map[string]S{},
	}
}

// newParser creates a Parser with no source and applies the options
func newParser(opts ...ParserOptFunc) (*Parser, error) {
	p := NewEmptyParser()
	for _, o := range opts {
		if err := o(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// FromSnippets returns a Parser holding the given snippets and with no
// source. It returns an error if two of the snippets share a title or if
// any of them fails its Check.
func FromSnippets(snips []S) (*Parser, error) {
	p := NewEmptyParser()
	for _, s := range snips {
		if err := p.Add(s); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// NewLineParser returns a Parser reading from the LineReader.
func NewLineParser(lr LineReader, opts ...ParserOptFunc) (*Parser, error) {
	p, err := newParser(opts...)
	if err != nil {
		return nil, err
	}
	p.src = lr
	p.state = idle
	return p, nil
}

// NewParser returns a Parser reading from r. The caller remains responsible
// for closing r.
func NewParser(r io.Reader, opts ...ParserOptFunc) (*Parser, error) {
	p, err := newParser(opts...)
	if err != nil {
		return nil, err
	}
	p.src = NewLineReader(r, p.maxLineLen)
	p.state = idle
	return p, nil
}

// Open opens the named file and returns a Parser reading from it. The file
// is closed when it has been completely read, when reading it fails or when
// the Parser is closed. If the file cannot be opened the error will match
// ErrSourceUnavailable.
func Open(path string, opts ...ParserOptFunc) (*Parser, error) {
	p, err := newParser(append([]ParserOptFunc{SetSourceName(path)}, opts...)...)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	p.src = NewLineReader(f, p.maxLineLen)
	p.closer = f
	p.state = idle
	return p, nil
}

// Close stops any further reading from the source and releases it if the
// Parser opened it. Snippets already held are unaffected.
func (p *Parser) Close() error {
	p.state = exhausted
	return p.release()
}

// release drops the source, closing it if the Parser owns it
func (p *Parser) release() error {
	p.src = nil
	if p.closer == nil {
		return nil
	}
	err := p.closer.Close()
	p.closer = nil
	return err
}

// fail records the error, stops the Parser and returns the error
func (p *Parser) fail(line int, err error) error {
	p.err = &ParseError{Source: p.name, Line: line, Err: err}
	p.state = exhausted
	_ = p.release()
	return p.err
}

// step reads lines from the source until a snippet is complete or the
// source is exhausted. It returns true if a snippet was added to the
// scanned snippets. Once the source is exhausted it will return false and
// any error previously found.
func (p *Parser) step() (bool, error) {
	for p.state != exhausted {
		line, err := p.src.ReadLine()
		if errors.Is(err, io.EOF) {
			if p.state == inBlock {
				return false, p.fail(p.startLine,
					fmt.Errorf("%w: %q", ErrUnterminatedBlock, p.title))
			}
			p.state = exhausted
			return false, p.release()
		}
		if err != nil {
			return false, p.fail(p.lineNum+1,
				fmt.Errorf("%w: %w", ErrSourceUnavailable, err))
		}
		p.lineNum++

		if p.state == idle {
			if title, ok := parseStartMarker(line); ok {
				p.state = inBlock
				p.title = title
				p.startLine = p.lineNum
				p.body.Reset()
				p.bodyLines = 0
			}
			continue
		}

		if isEndMarker(line) {
			p.state = idle
			s := S{title: p.title, body: p.body.String()}
			p.body.Reset()
			if _, dup := p.index[s.title]; dup {
				return false, p.fail(p.startLine,
					fmt.Errorf("%w: %q", ErrDuplicateTitle, s.title))
			}
			p.index[s.title] = s
			p.scanned = append(p.scanned, s)
			return true, nil
		}

		if p.bodyLines > 0 {
			p.body.WriteByte('\n')
		}
		p.body.WriteString(trimCR(line))
		p.bodyLines++
	}
	return false, p.err
}

// Next returns the next snippet. It first returns the snippets read from
// the source, reading only as far as is needed to complete the next one,
// and then the snippets added to the Parser. When there are no more
// snippets it returns io.EOF and will keep doing so, even if more snippets
// are added. If the source cannot be read or is badly formed the snippets
// read before the problem are returned and then the error, once; after
// that Next returns io.EOF.
func (p *Parser) Next() (S, error) {
	if p.nextEOF {
		return S{}, io.EOF
	}

	if p.nextIdx < len(p.scanned) {
		s := p.scanned[p.nextIdx]
		p.nextIdx++
		return s, nil
	}

	if p.err != nil {
		p.nextEOF = true
		return S{}, p.err
	}

	got, err := p.step()
	if err != nil {
		p.nextEOF = true
		return S{}, err
	}
	if got {
		p.nextIdx++
		return p.scanned[len(p.scanned)-1], nil
	}

	if i := p.nextIdx - len(p.scanned); i < len(p.added) {
		p.nextIdx++
		return p.added[i], nil
	}

	p.nextEOF = true
	return S{}, io.EOF
}

// All returns an iterator over the snippets as returned by Next. Iteration
// stops after the first error.
func (p *Parser) All() iter.Seq2[S, error] {
	return func(yield func(S, error) bool) {
		for {
			s, err := p.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(s, err) || err != nil {
				return
			}
		}
	}
}

// Snippets reads the rest of the source and returns all the snippets held
// by the Parser. If an error is found it is returned and the snippets read
// before the error remain held by the Parser.
func (p *Parser) Snippets() ([]S, error) {
	for {
		got, err := p.step()
		if err != nil {
			return nil, err
		}
		if !got {
			break
		}
	}
	return p.Buffered(), nil
}

// Find returns the snippet with the given title. If it is not already held
// the source is read until it is found; any snippets read on the way are
// held by the Parser. The bool result is false if there is no such snippet.
func (p *Parser) Find(title string) (S, bool, error) {
	if s, ok := p.index[title]; ok {
		return s, true, nil
	}

	for {
		got, err := p.step()
		if err != nil {
			return S{}, false, err
		}
		if !got {
			return S{}, false, nil
		}
		if s := p.scanned[len(p.scanned)-1]; s.title == title {
			return s, true, nil
		}
	}
}

// Add adds the snippet to the Parser. It returns an error matching
// ErrUnrenderable if the snippet fails its Check and one matching
// ErrDuplicateTitle if a snippet with the same title is already held.
// Snippets still to be read from the source are not checked until they are
// read.
func (p *Parser) Add(s S) error {
	if err := s.Check(); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnrenderable, s.title, err)
	}
	if _, dup := p.index[s.title]; dup {
		return fmt.Errorf("%w: %q", ErrDuplicateTitle, s.title)
	}
	p.index[s.title] = s
	p.added = append(p.added, s)
	return nil
}

// Buffered returns the snippets held by the Parser without reading any
// further from the source.
func (p *Parser) Buffered() []S {
	rval := make([]S, 0, len(p.scanned)+len(p.added))
	rval = append(rval, p.scanned...)
	return append(rval, p.added...)
}

// Len returns the number of snippets held by the Parser
func (p *Parser) Len() int {
	return len(p.scanned) + len(p.added)
}

// Exhausted returns true if nothing more will be read from the source
func (p *Parser) Exhausted() bool {
	return p.state == exhausted
}

// Err returns the error that stopped the Parser, if any.
func (p *Parser) Err() error {
	return p.err
}

// WriteTo reads the rest of the source and then writes all the snippets
// held by the Parser to w in snippet file format. Comments in the source
// are not written.
func (p *Parser) WriteTo(w io.Writer) (int64, error) {
	snips, err := p.Snippets()
	if err != nil {
		return 0, err
	}

	var total int64
	for _, s := range snips {
		n, err := s.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Text returns the snippets as written by WriteTo
func (p *Parser) Text() (string, error) {
	var sb strings.Builder
	if _, err := p.WriteTo(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
