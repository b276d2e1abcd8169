// Package dateview builds the chronological archive view: source entries
// whose names carry a recognizable date are grouped by year and day and
// linked under dated folders.
package dateview

import (
	"regexp"
	"strings"
)

var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

const monthAlternatives = `Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec`

var (
	yearFirstPattern = regexp.MustCompile(`(?i)(\d{4})(` + monthAlternatives + `)(\d{1,2})`)
	dayFirstPattern  = regexp.MustCompile(`(?i)(\d{1,2})(` + monthAlternatives + `)(\d{4})`)
	isoPattern       = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`)
)

// ParseDate finds the first date embedded in text and returns it in
// ISO form together with the text around it. Recognized embeddings, in
// order of precedence:
//
//	2019Dec31  ->  2019-12-31
//	28Jan2022  ->  2022-01-28
//	2021-08-24 (taken as is)
//
// ok is false when no date is found, with text returned unchanged.
func ParseDate(text string) (date string, remaining string, ok bool) {
	if loc := yearFirstPattern.FindStringSubmatchIndex(text); loc != nil {
		year := text[loc[2]:loc[3]]
		month := monthNumbers[strings.ToLower(text[loc[4]:loc[5]])]
		day := padDay(text[loc[6]:loc[7]])
		return year + "-" + month + "-" + day, cutMatch(text, loc[0], loc[1]), true
	}
	if loc := dayFirstPattern.FindStringSubmatchIndex(text); loc != nil {
		day := padDay(text[loc[2]:loc[3]])
		month := monthNumbers[strings.ToLower(text[loc[4]:loc[5]])]
		year := text[loc[6]:loc[7]]
		return year + "-" + month + "-" + day, cutMatch(text, loc[0], loc[1]), true
	}
	if loc := isoPattern.FindStringIndex(text); loc != nil {
		return text[loc[0]:loc[1]], cutMatch(text, loc[0], loc[1]), true
	}
	return "", text, false
}

func cutMatch(text string, start int, end int) string {
	return strings.TrimSpace(text[:start] + text[end:])
}

func padDay(day string) string {
	if len(day) == 1 {
		return "0" + day
	}
	return day
}

var (
	serialNumberPattern = regexp.MustCompile(`(?i)\bSN\s*(\d+)\b`)
	submittedPattern    = regexp.MustCompile(`(?i)\bsubmitted\b`)
	fillerRunPattern    = regexp.MustCompile(`[_\s]+`)
	edgeJunkPattern     = regexp.MustCompile(`^[\s_\-]+|[\s_\-]+$`)
)

// CleanTitle normalizes a link title left over after date extraction:
// serial numbers become "SN-<n>", the word "submitted" and the given
// literal patterns are dropped, filler runs collapse to single spaces.
func CleanTitle(title string, stripPatterns []string) string {
	title = serialNumberPattern.ReplaceAllString(title, "SN-$1")
	title = submittedPattern.ReplaceAllString(title, "")
	for _, pattern := range stripPatterns {
		title = strings.ReplaceAll(title, pattern, "")
	}
	title = fillerRunPattern.ReplaceAllString(title, " ")
	return edgeJunkPattern.ReplaceAllString(title, "")
}

// CategoryFromFolder derives the category label of a source directory from
// its base name, dropping the usual submission folder suffixes.
func CategoryFromFolder(folderName string) string {
	category := strings.ReplaceAll(folderName, " Submissions", "")
	return strings.ReplaceAll(category, " Correspondence", "")
}
