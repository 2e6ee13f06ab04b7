package validation

import (
	"regexp"
	"sync"
)

// compiledPattern holds the outcome of compiling one pattern source.
// Compile failures are stored too, so a broken pattern is not recompiled on
// every evaluation.
type compiledPattern struct {
	re  *regexp.Regexp
	err error
}

type cache interface {
	Load(key any) (value any, ok bool)
	LoadOrStore(key, value any) (actual any, loaded bool)
}

// patternCache is a thread-safe cache of compiled patterns keyed by source.
type patternCache struct {
	c cache // map[string]compiledPattern
}

func newPatternCache() *patternCache {
	return &patternCache{
		c: &sync.Map{},
	}
}

// compiledPatterns is shared by every Rule. Rules stay immutable values; compiled
// state lives here, keyed by pattern source.
var compiledPatterns = newPatternCache()

// get returns the compilation of source, set to leftmost-longest matching.
// Use matchesWhole to test a value against it.
func (c *patternCache) get(source string) (*regexp.Regexp, error) {
	if v, ok := c.c.Load(source); ok {
		cp := v.(compiledPattern)
		return cp.re, cp.err
	}
	v, _ := c.c.LoadOrStore(source, compile(source))
	cp := v.(compiledPattern)
	return cp.re, cp.err
}

// compile leaves source untouched, so any source regexp.Compile accepts is
// accepted here. Longest is set before the expression is shared.
func compile(source string) compiledPattern {
	re, err := regexp.Compile(source)
	if err != nil {
		return compiledPattern{err: err}
	}
	re.Longest()
	return compiledPattern{re: re}
}

// matchesWhole reports whether re matches all of s. A whole-string match
// starts at 0, the leftmost position, and is then the longest match found.
func matchesWhole(re *regexp.Regexp, s string) bool {
	loc := re.FindStringIndex(s)
	return loc != nil && loc[0] == 0 && loc[1] == len(s)
}
