// Package toc generates the archive's table of contents: a hierarchical
// toc.json for the browsing UI, per-view child tocs referenced through
// $ref stubs for lazy loading, and a flat toc.md rendering.
package toc

import (
	"regexp"
	"strconv"
	"strings"
)

var segmentSplitPattern = regexp.MustCompile(`[.\-:)(\s]+`)

type segment struct {
	numeric bool
	number  int
	text    string
}

// naturalKey splits a name into comparable segments so that section-style
// names order sensibly: "1.2) Cover-Letters" before "1.12) Correspondence",
// and lettered parts before numbered ones at the same position.
func naturalKey(name string) []segment {
	raw := segmentSplitPattern.Split(name, -1)
	key := make([]segment, 0, len(raw))
	for _, part := range raw {
		if part == "" {
			continue
		}
		if number, err := strconv.Atoi(part); err == nil {
			key = append(key, segment{numeric: true, number: number, text: strings.ToLower(part)})
		} else {
			key = append(key, segment{text: strings.ToLower(part)})
		}
	}
	return key
}

func compareSegments(a segment, b segment) int {
	// letters order before numbers at the same position
	switch {
	case !a.numeric && b.numeric:
		return -1
	case a.numeric && !b.numeric:
		return 1
	case a.numeric && b.numeric:
		if a.number != b.number {
			if a.number < b.number {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(a.text, b.text)
}

func compareNaturalKeys(a []segment, b []segment) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareSegments(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// NaturalLess orders names naturally, numbers by value.
func NaturalLess(a string, b string) bool {
	return compareNaturalKeys(naturalKey(a), naturalKey(b)) < 0
}
