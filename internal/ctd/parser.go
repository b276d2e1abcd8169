package ctd

import (
	"path/filepath"
	"regexp"
	"strings"
)

// ManualMapping routes a filename matching Pattern to a fixed place in the
// hierarchy. Empty Components place the file at the view root. An empty
// LinkName keeps the original filename.
type ManualMapping struct {
	Pattern    *regexp.Regexp
	Components []string
	LinkName   string
}

// ManualMappings lists per-accession overrides for files whose names carry
// no section number. Checked in order, first match wins.
var ManualMappings = map[string][]ManualMapping{
	"RDCP-26-0003": {
		{Pattern: regexp.MustCompile(`^__Table Of Contents`), LinkName: "Table Of Contents.pdf"},
		{Pattern: regexp.MustCompile(`^_Form_FDA_1571`), LinkName: "Form FDA 1571.pdf"},
		//study series identified via the submission's table of contents
		{Pattern: regexp.MustCompile(`^A-703-`), Components: []string{"4", "4.2", "4.2.3", "4.2.3.2"}},
		{Pattern: regexp.MustCompile(`^XT23\d+`), Components: []string{"4", "4.2", "4.2.3", "4.2.3.3"}},
		{Pattern: regexp.MustCompile(`^5677\d*`), Components: []string{"4", "4.2", "4.2.3", "4.2.3.3"}},
	},
}

// sectionPattern matches a CTD section number: a module digit followed by
// numeric subsections, optionally one letter part with further numbers
// (as in 3.2.P.1).
const sectionPattern = `[1-5](?:\.[0-9]+)*(?:\.[A-Z](?:\.[0-9]+)*)?`

var (
	modulePrefixPattern = regexp.MustCompile(`(?i)^Module\s+(` + sectionPattern + `)\s+(.+)$`)
	moduleInfixPattern  = regexp.MustCompile(`(?i)^(.+?)\s+Module\s+(` + sectionPattern + `)\s*(.*)$`)
	numberTitlePattern  = regexp.MustCompile(`^(` + sectionPattern + `)\s+(.+)$`)
	csrAppendixPattern  = regexp.MustCompile(`^(16(?:\.[0-9]+)+)\s+(.+)$`)
	numberDotPattern    = regexp.MustCompile(`(?i)^(` + sectionPattern + `)[.\-](.+)$`)
)

// csrAppendixParent is where 16.x case study report appendices live in the
// CTD proper.
var csrAppendixParent = []string{"5", "5.3", "5.3.5"}

// ParseInfo extracts the hierarchy placement of a file from its name.
// Recognized forms, in order of precedence after the accession's manual
// overrides:
//
//	"Module 2.5 Clinical Overview.pdf"
//	"Cover Module 1.13.3 Annual Report.pdf" (section number mid-name)
//	"2.6.6 Toxicology Written Summary.pdf"
//	"16.2.1 Discontinued Patients.pdf" (CSR appendix, filed under 5.3.5)
//	"3.2.P.1.description.pdf" / "1.20-General-Plan.pdf"
//
// Returned components are the full ancestor chain of the section, e.g.
// ["3", "3.2", "3.2.P", "3.2.P.1"]; empty components with ok set place the
// file at the view root. linkName is the display name for the symlink, or
// empty to keep the original filename. ok is false when no form matches.
func ParseInfo(filename string, accession string) (components []string, linkName string, ok bool) {
	for _, mapping := range ManualMappings[accession] {
		if mapping.Pattern.MatchString(filename) {
			return mapping.Components, mapping.LinkName, true
		}
	}

	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	if match := modulePrefixPattern.FindStringSubmatch(base); match != nil {
		section, title := match[1], match[2]
		if components = BuildComponents(section); components != nil {
			return components, section + ") " + title + ext, true
		}
		return nil, "", false
	}

	if match := moduleInfixPattern.FindStringSubmatch(base); match != nil {
		leading, section, trailing := match[1], match[2], match[3]
		if components = BuildComponents(section); components != nil {
			title := strings.TrimSpace(leading + " " + trailing)
			return components, section + ") " + title + ext, true
		}
		return nil, "", false
	}

	if match := numberTitlePattern.FindStringSubmatch(base); match != nil {
		section, title := match[1], match[2]
		if components = BuildComponents(section); components != nil {
			return components, section + ") " + title + ext, true
		}
		return nil, "", false
	}

	if match := csrAppendixPattern.FindStringSubmatch(base); match != nil {
		section, title := match[1], match[2]
		components = append(append([]string{}, csrAppendixParent...), BuildComponents(section)...)
		return components, section + ") " + title + ext, true
	}

	// original dotted or dashed form, extension stays part of the remainder
	if match := numberDotPattern.FindStringSubmatch(filename); match != nil {
		section, rest := match[1], match[2]
		if components = BuildComponents(section); components != nil {
			return components, section + ") " + rest, true
		}
		return nil, "", false
	}

	return nil, "", false
}

// BuildComponents expands a section number into its full ancestor chain:
// "3.2.P.1" becomes ["3", "3.2", "3.2.P", "3.2.P.1"]. Nil for an empty
// section.
func BuildComponents(section string) []string {
	if section == "" {
		return nil
	}
	parts := strings.Split(section, ".")
	components := make([]string, 0, len(parts))
	current := ""
	for _, part := range parts {
		if current == "" {
			current = part
		} else {
			current += "." + part
		}
		components = append(components, current)
	}
	return components
}
