package snippet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nickwells/errutil.mod/errutil"
)

// Cache holds a collection of snippets by title
type Cache map[string]S

// Add will check that the snippet is not already in the cache and if not it
// will search the snippet files, in order, for a snippet with that title
// which it will then store in the cache. Each file is only read as far as
// the first snippet with that title. It returns the snippet and any error;
// if the error is non-nil the snippet will be the zero value.
func (c *Cache) Add(files []string, title string) (S, error) {
	if s, ok := (*c)[title]; ok {
		return s, nil
	}

	if len(files) == 0 {
		return S{}, errors.New("there are no snippet files to search")
	}

	for _, fName := range files {
		s, found, err := findInFile(fName, title)
		if err != nil {
			return S{}, err
		}
		if found {
			(*c)[title] = s
			return s, nil
		}
	}

	if len(files) == 1 {
		return S{},
			fmt.Errorf("snippet %q is not in the snippet file: %q",
				title, files[0])
	}
	return S{},
		fmt.Errorf("snippet %q is not in any snippet file: \"%s\"",
			title, strings.Join(files, `", "`))
}

// findInFile opens the snippet file and reads it until the titled snippet
// is found.
func findInFile(fName, title string) (S, bool, error) {
	p, err := Open(fName)
	if err != nil {
		return S{}, false, err
	}
	defer p.Close()

	return p.Find(title)
}

// Get will retrieve the titled snippet from the cache, returning an error if
// it is not present.
func (c Cache) Get(title string) (S, error) {
	s, ok := c[title]
	if !ok {
		return S{}, fmt.Errorf("%q is not in the snippet cache", title)
	}

	return s, nil
}

// Check will check that all the snippets in the Cache can be written out
// and read back unchanged
func (c Cache) Check(em *errutil.ErrMap) {
	for title, s := range c {
		if err := s.Check(); err != nil {
			em.AddError("Unrenderable snippet",
				fmt.Errorf("snippet %q: %w", title, err))
		}
	}
}
