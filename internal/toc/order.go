package toc

import (
	"strconv"
	"strings"
)

// Hand-curated orderings for the fixed archive layers. Anything not listed
// falls back to the default rank and sorts naturally within it.
const defaultRank = 50

var topLevelOrder = map[string]int{
	"Supporting": 99,
}

var developmentStageOrder = map[string]int{
	"Preclinical":             1,
	"CMC":                     2,
	"Regulatory":              3,
	"Clinical-Studies":        4,
	"Development-Plans":       5,
	"IND-Application":         6,
	"Research-Data":           7,
	"Medpace-Data-2024":       8,
	"Additional-Items":        9,
	"Additional-Items-Backup": 10,
	"Commercial":              11,
}

var studyContentOrder = map[string]int{
	"CSR":            1,
	"Protocol":       2,
	"TLFs":           3,
	"CSR-TLFs":       3,
	"Statistics":     4,
	"Datasets":       5,
	"ADaM-Data":      5,
	"SDTM-Data":      5,
	"Datalab-Report": 6,
	"DSMB-SSR1":      7,
}

func rankIn(order map[string]int, name string) int {
	if rank, listed := order[name]; listed {
		return rank
	}
	return defaultRank
}

// studyNumber extracts the leading digit run of a name so that numbered
// study folders ("001-First-In-Human", "012-Extension") order by number.
func studyNumber(name string) (int, bool) {
	end := 0
	for end < len(name) && name[end] >= '0' && name[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	number, err := strconv.Atoi(name[:end])
	if err != nil {
		return 0, false
	}
	return number, true
}

type sortKey struct {
	rank    int
	number  int
	natural []segment
}

func keyFor(name string, depth int) sortKey {
	key := sortKey{rank: defaultRank, natural: naturalKey(name)}
	switch depth {
	case 0:
		key.rank = rankIn(topLevelOrder, name)
	case 1:
		key.rank = rankIn(developmentStageOrder, name)
	default:
		key.rank = rankIn(studyContentOrder, name)
	}
	if number, numbered := studyNumber(name); numbered {
		key.number = number
	}
	return key
}

func (k sortKey) less(other sortKey) bool {
	if k.rank != other.rank {
		return k.rank < other.rank
	}
	if k.number != other.number {
		return k.number < other.number
	}
	return compareNaturalKeys(k.natural, other.natural) < 0
}

// entryLess orders sibling entries: folders and files interleaved by the
// layer-specific rank first, then naturally by name.
func entryLess(a *Entry, b *Entry, depth int) bool {
	keyA, keyB := keyFor(a.Name, depth), keyFor(b.Name, depth)
	if keyA.less(keyB) {
		return true
	}
	if keyB.less(keyA) {
		return false
	}
	return strings.Compare(a.Name, b.Name) < 0
}
