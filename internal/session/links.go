package session

import "strings"

// Slug normalizes a link name: lowercase, with every run of whitespace
// replaced by a single hyphen. Leading and trailing whitespace is dropped.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// LinkIndex resolves link names by slug.
type LinkIndex struct {
	links  []Link
	bySlug map[string]Link
}

// NewLinkIndex builds an index over links. When two names share a slug the
// last one wins.
func NewLinkIndex(links []Link) *LinkIndex {
	idx := &LinkIndex{
		links:  append([]Link(nil), links...),
		bySlug: make(map[string]Link, len(links)),
	}
	for _, l := range links {
		key := Slug(l.Name)
		if key == "" {
			continue
		}
		idx.bySlug[key] = l
	}
	return idx
}

// Resolve looks up a link by name using the same slug rule the index was
// built with.
func (idx *LinkIndex) Resolve(name string) (Link, bool) {
	if idx == nil {
		return Link{}, false
	}
	l, ok := idx.bySlug[Slug(name)]
	return l, ok
}

// Links returns the indexed links in source order.
func (idx *LinkIndex) Links() []Link {
	if idx == nil {
		return nil
	}
	return append([]Link(nil), idx.links...)
}

// Len returns the number of source links.
func (idx *LinkIndex) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.links)
}
