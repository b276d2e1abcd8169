package atc

import "strings"

// normalizedLength is the full ATC code length (e.g. L01FF02). Shorter
// codes are padded with X to mark the unspecified tail.
const normalizedLength = 7

// unknownCode classifies products without any ATC code.
const unknownCode = "Z00XXXX"

// prefixLengths are the code lengths at which the classification branches:
// anatomical group, therapeutic subgroup, pharmacological subgroup (4 or
// 5 characters) and the full substance code.
var prefixLengths = []int{1, 3, 4, 5, normalizedLength}

// noFurtherLevel signals that no deeper prefix length yields a new branch.
const noFurtherLevel = 999

// Normalize pads a code to the full length with X, mapping the empty code
// to the unknown bucket.
func Normalize(code string) string {
	if code == "" {
		return unknownCode
	}
	if len(code) < normalizedLength {
		return code + strings.Repeat("X", normalizedLength-len(code))
	}
	return code
}

// Name resolves the human-readable name of a possibly X-padded code,
// trying the most specific reference level first and falling back level by
// level. "Unknown" when nothing matches.
func Name(code string) string {
	if name, found := level3Lookup(code); found {
		return name
	}
	base := strings.TrimRight(code, "X")
	if base != code {
		if name, found := level3Lookup(base); found {
			return name
		}
	}
	if len(base) >= 3 {
		if name, known := level2Names[base[:3]]; known {
			return name
		}
	}
	if len(base) >= 1 {
		if name, known := level1Names[base[:1]]; known {
			return name
		}
	}
	return "Unknown"
}

func level3Lookup(code string) (string, bool) {
	for _, length := range []int{len(code), 5, 4} {
		prefix := code
		if len(code) >= length {
			prefix = code[:length]
		}
		if name, known := level3Names[prefix]; known {
			return name, true
		}
	}
	return "", false
}

// CollapsedPrefix cuts a code to the given length and collapses a trailing
// X run into a single X, so that padded codes of different lengths compare
// equal at the levels their padding blurs.
func CollapsedPrefix(code string, length int) string {
	if length == 0 {
		return ""
	}
	prefix := code
	if len(code) >= length {
		prefix = code[:length]
	}
	base := strings.TrimRight(prefix, "X")
	if len(base) < len(prefix) {
		if base == "" {
			return "X"
		}
		return base + "X"
	}
	return prefix
}

// NextMeaningfulLength returns the next branching length past current that
// produces a different collapsed prefix for the code, or noFurtherLevel if
// all deeper levels collapse to the same prefix.
func NextMeaningfulLength(code string, current int) int {
	collapsed := CollapsedPrefix(code, current)
	for _, length := range prefixLengths {
		if length > current && CollapsedPrefix(code, length) != collapsed {
			return length
		}
	}
	return noFurtherLevel
}
