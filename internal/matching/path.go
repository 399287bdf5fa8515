package matching

import (
	"regexp"
	"strconv"
	"strings"
)

// Predicate reports whether a request path and method select a route.
// Predicates are pure and safe for concurrent use.
type Predicate func(path, method string) bool

// Suffix matches any path ending in suffix, with the given method.
// Example: Suffix("/users", "GET") matches "/api/users" but not "/api/users/1".
func Suffix(suffix, method string) Predicate {
	return func(path, m string) bool {
		return m == method && strings.HasSuffix(path, suffix)
	}
}

// ID matches a path ending in collection followed by one numeric segment
// that fits in an int, with the given method.
// Example: ID("/users", "PUT") matches "/api/users/12" but not "/api/users/abc".
func ID(collection, method string) Predicate {
	re := regexp.MustCompile(regexp.QuoteMeta(collection) + `/[0-9]+$`)
	return func(path, m string) bool {
		if m != method || !re.MatchString(path) {
			return false
		}
		_, ok := TrailingID(path)
		return ok
	}
}

// TrailingID parses the last path segment as a non-negative integer.
// It reports false for non-digit segments and values that overflow int.
func TrailingID(path string) (int, bool) {
	seg := path[strings.LastIndexByte(path, '/')+1:]
	if seg == "" {
		return 0, false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return 0, false
		}
	}
	id, err := strconv.Atoi(seg)
	if err != nil {
		return 0, false
	}
	return id, true
}
