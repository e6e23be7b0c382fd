package types

import (
	"slices"
	"strings"
)

// IdSet is an unordered set of category ids.
type IdSet map[string]struct{}

var empty = struct{}{}

func NewIdSet(ids ...string) IdSet {
	r := make(IdSet, len(ids))
	for _, id := range ids {
		r[id] = empty
	}
	return r
}

func (r IdSet) Add(id string) {
	r[id] = empty
}

func (r IdSet) Contains(id string) bool {
	_, ok := r[id]
	return ok
}

func (r IdSet) Len() int {
	return len(r)
}

func (r IdSet) Merge(other IdSet) {
	for id := range other {
		r[id] = empty
	}
}

func (r IdSet) Clone() IdSet {
	ret := make(IdSet, len(r))
	for id := range r {
		ret[id] = empty
	}
	return ret
}

// Sorted returns the ids in lexical order, mostly for logs and tests.
func (r IdSet) Sorted() []string {
	ret := make([]string, 0, len(r))
	for id := range r {
		ret = append(ret, id)
	}
	slices.Sort(ret)
	return ret
}

// StringSet is a set of display values (brands) compared without case.
type StringSet map[string]struct{}

func NewStringSet(values ...string) StringSet {
	r := make(StringSet, len(values))
	for _, v := range values {
		r.Add(v)
	}
	return r
}

func normalizeKey(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

func (r StringSet) Add(v string) {
	key := normalizeKey(v)
	if key == "" {
		return
	}
	r[key] = empty
}

func (r StringSet) Remove(v string) {
	delete(r, normalizeKey(v))
}

func (r StringSet) Contains(v string) bool {
	_, ok := r[normalizeKey(v)]
	return ok
}

func (r StringSet) Len() int {
	return len(r)
}

func (r StringSet) Clone() StringSet {
	ret := make(StringSet, len(r))
	for v := range r {
		ret[v] = empty
	}
	return ret
}
