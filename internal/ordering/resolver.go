// Package ordering reproduces the legacy column layout: a fixed template of
// column families plus a total, deterministic ordering over any observed
// set of qualified column names.
package ordering

import (
	"sort"
	"strconv"
	"strings"
)

// Entry is one template element: either a plain family name or a group of
// entries whose families interleave together per instance index. Groups may
// nest one level deep.
type Entry struct {
	Name  string
	Group []Entry
}

// Name returns a plain template entry.
func Name(name string) Entry {
	return Entry{Name: name}
}

// Group returns a grouped template entry.
func Group(entries ...Entry) Entry {
	return Entry{Group: entries}
}

// Template is the hand-authored column layout for one record type.
type Template []Entry

// position is where a family sits inside the template: top-level index,
// index within its enclosing group, and index within a second-level nested
// group (zero when not grouped that deep).
type position struct {
	tmpl  int
	group int
	sub   int
	found bool
}

// locate scans the template top-down for the family.
func (s Template) locate(family string) position {
	for i, entry := range s {
		if entry.Group == nil {
			if entry.Name == family {
				return position{tmpl: i, found: true}
			}

			continue
		}

		for j, member := range entry.Group {
			if member.Group == nil {
				if member.Name == family {
					return position{tmpl: i, group: j, found: true}
				}

				continue
			}

			for k, nested := range member.Group {
				if nested.Name == family {
					return position{tmpl: i, group: j, sub: k, found: true}
				}
			}
		}
	}

	return position{}
}

// sortKey is the composite ordering key for one observed column name.
// Matched names order by (template position, major index, group position,
// minor index, sub-group position); unmatched names follow all matched
// ones, lexicographically.
type sortKey struct {
	unmatched bool
	tmpl      int
	major     int
	group     int
	minor     int
	sub       int
	name      string
}

// Resolve produces the deterministic total order of the observed column
// names under the template. Every input name appears exactly once in the
// output; no name is ever dropped.
func Resolve(names []string, tmpl Template) []string {
	keys := make(map[string]sortKey, len(names))
	for _, name := range names {
		keys[name] = keyFor(name, tmpl)
	}

	ordered := append([]string(nil), names...)

	sort.Slice(ordered, func(a, b int) bool {
		return keys[ordered[a]].less(keys[ordered[b]])
	})

	return ordered
}

func keyFor(name string, tmpl Template) sortKey {
	family, major, minor := splitName(name)

	pos := tmpl.locate(family)
	if !pos.found {
		return sortKey{unmatched: true, name: name}
	}

	return sortKey{
		tmpl:  pos.tmpl,
		major: major,
		group: pos.group,
		minor: minor,
		sub:   pos.sub,
		name:  name,
	}
}

func (k sortKey) less(other sortKey) bool {
	if k.unmatched != other.unmatched {
		return other.unmatched
	}

	if k.unmatched {
		return k.name < other.name
	}

	switch {
	case k.tmpl != other.tmpl:
		return k.tmpl < other.tmpl
	case k.major != other.major:
		return k.major < other.major
	case k.group != other.group:
		return k.group < other.group
	case k.minor != other.minor:
		return k.minor < other.minor
	case k.sub != other.sub:
		return k.sub < other.sub
	default:
		return k.name < other.name
	}
}

// splitName separates a qualified column name into its family and up to two
// 1-based positional suffixes, defaulting to zero when absent.
func splitName(name string) (family string, major, minor int) {
	parts := strings.Split(name, ".")
	family = parts[0]

	if len(parts) > 1 {
		major, _ = strconv.Atoi(parts[1])
	}

	if len(parts) > 2 {
		minor, _ = strconv.Atoi(parts[2])
	}

	return family, major, minor
}
