package theme

import (
	"sort"
	"strings"
)

// ClassSet is an in-memory ClassList
type ClassSet map[string]struct{}

// NewClassSet returns a set holding names
func NewClassSet(names ...string) ClassSet {
	s := make(ClassSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s ClassSet) Toggle(name string) bool {
	if _, ok := s[name]; ok {
		delete(s, name)
		return false
	}
	s[name] = struct{}{}
	return true
}

func (s ClassSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// String renders the set like a class attribute, sorted
func (s ClassSet) String() string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, " ")
}
