package core

import "regexp"

// EligibilityCache memoizes name-pattern matching decisions (C4). It
// never shrinks during the process lifetime (spec section 3's open
// question: renamed containers could accumulate entries; not
// addressed here either).
type EligibilityCache struct {
	allowed map[string]struct{}
	denied  map[string]struct{}
}

// NewEligibilityCache returns an empty cache.
func NewEligibilityCache() *EligibilityCache {
	return &EligibilityCache{
		allowed: make(map[string]struct{}),
		denied:  make(map[string]struct{}),
	}
}

// Eligible reports whether name matches at least one of patterns,
// memoizing the result. A name appears in at most one of allowed/denied
// (invariant 3), and a cached answer is always returned unchanged on
// subsequent lookups (spec section 8's stability property).
func (c *EligibilityCache) Eligible(name string, patterns []*regexp.Regexp) bool {
	if _, ok := c.allowed[name]; ok {
		return true
	}
	if _, ok := c.denied[name]; ok {
		return false
	}

	for _, p := range patterns {
		if p.MatchString(name) {
			c.allowed[name] = struct{}{}
			return true
		}
	}
	c.denied[name] = struct{}{}
	return false
}
