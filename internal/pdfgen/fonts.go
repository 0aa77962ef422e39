package pdfgen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	regularFontFile = "OpenSans-Regular.ttf"
	boldFontFile    = "OpenSans-Bold.ttf"
)

// ErrFontUnavailable — the embedded-font assets could not be loaded. The
// render call fails; the HTTP layer turns this into a 500.
var ErrFontUnavailable = errors.New("font assets unavailable")

type FontSet struct {
	Regular []byte
	Bold    []byte
}

// FontCache reads the two offer fonts from dir exactly once per process and
// hands the same bytes to every render. Concurrent first callers share the
// single load. A failed load is memoized too; the cache keeps returning the
// same error until the process restarts.
type FontCache struct {
	dir  string
	once sync.Once
	set  FontSet
	err  error
}

func NewFontCache(dir string) *FontCache { return &FontCache{dir: dir} }

func (c *FontCache) Get() (FontSet, error) {
	c.once.Do(func() {
		reg, err := os.ReadFile(filepath.Join(c.dir, regularFontFile))
		if err != nil {
			c.err = fmt.Errorf("%w: %v", ErrFontUnavailable, err)
			return
		}
		bold, err := os.ReadFile(filepath.Join(c.dir, boldFontFile))
		if err != nil {
			c.err = fmt.Errorf("%w: %v", ErrFontUnavailable, err)
			return
		}
		c.set = FontSet{Regular: reg, Bold: bold}
	})
	return c.set, c.err
}
