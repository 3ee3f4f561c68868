package content

import (
	"strconv"

	"github.com/goliatone/go-slug"
)

// SlugFunc turns an item title into an anchor-friendly identifier.
type SlugFunc func(title string) (string, error)

// DefaultSlugFunc applies the default go-slug normalisation rules.
func DefaultSlugFunc(title string) (string, error) {
	return slug.Normalize(title)
}

// slugSet hands out slugs that are unique within one document.
type slugSet struct {
	fn   SlugFunc
	seen map[string]int
}

func newSlugSet(fn SlugFunc) *slugSet {
	return &slugSet{fn: fn, seen: map[string]int{}}
}

func (s *slugSet) next(title string) string {
	if s == nil || s.fn == nil {
		return ""
	}
	base, err := s.fn(title)
	if err != nil || base == "" {
		return ""
	}
	s.seen[base]++
	if n := s.seen[base]; n > 1 {
		return base + "-" + strconv.Itoa(n)
	}
	return base
}
