package dateview

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/icosian/rdcparc/internal/view"
)

// Options parameterizes one chronological view generation run.
type Options struct {
	Sources       []string //directories whose entries carry dates in their names
	Target        string   //root of the view to materialize
	StripPatterns []string //literals removed from titles, e.g. the application number
}

type datedItem struct {
	date     string
	title    string
	path     string
	ext      string
	category string
}

// Generate builds the chronological view. Every entry of every source
// directory is dated by its name; dated entries are grouped per year and
// per day and linked below the target. A year holding a single entry gets
// no year folder, a day holding a single entry gets no day folder (the
// date moves into the link name instead). Title collisions within one day
// are disambiguated with the source category. Repeated runs skip entries
// that already exist.
//
// The returned slice lists entries without a recognizable date, relative
// to their source directory.
func Generate(opts Options) (stats view.Statistics, undated []string, err error) {
	var items []datedItem

	for _, source := range opts.Sources {
		absolute, pathErr := filepath.Abs(source)
		if pathErr != nil {
			return stats, nil, fmt.Errorf("cannot resolve source %s: %w", source, pathErr)
		}
		entries, readErr := os.ReadDir(absolute)
		if readErr != nil {
			stats.RecordError("source directory not found: %s", absolute)
			continue
		}

		category := CategoryFromFolder(filepath.Base(absolute))
		for _, entry := range entries {
			date, _, ok := ParseDate(entry.Name())
			if !ok {
				undated = append(undated, filepath.Join(filepath.Base(absolute), entry.Name()))
				continue
			}

			name, ext := entry.Name(), ""
			if !entry.IsDir() {
				ext = filepath.Ext(name)
				name = name[:len(name)-len(ext)]
			}
			_, leftover, _ := ParseDate(name)
			title := CleanTitle(leftover, opts.StripPatterns)
			if title == "" {
				title = category
			}

			items = append(items, datedItem{
				date:     date,
				title:    title,
				path:     filepath.Join(absolute, entry.Name()),
				ext:      ext,
				category: category,
			})
		}
	}

	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.date != b.date {
			return a.date < b.date
		}
		if a.category != b.category {
			return a.category < b.category
		}
		return a.title < b.title
	})

	if err = view.EnsureDir(opts.Target, &stats); err != nil {
		return stats, undated, fmt.Errorf("cannot create view root %s: %w", opts.Target, err)
	}

	byYear := groupByYear(items)
	years := make([]string, 0, len(byYear))
	for year := range byYear {
		years = append(years, year)
	}
	sort.Strings(years)

	for _, year := range years {
		byDate := byYear[year]
		dates := make([]string, 0, len(byDate))
		total := 0
		for date, dayItems := range byDate {
			dates = append(dates, date)
			total += len(dayItems)
		}
		sort.Strings(dates)

		parent := opts.Target
		if total > 1 {
			parent = filepath.Join(opts.Target, year)
		}
		for _, date := range dates {
			linkDay(date, byDate[date], parent, &stats)
		}
	}

	return stats, undated, nil
}

func groupByYear(items []datedItem) map[string]map[string][]datedItem {
	byYear := make(map[string]map[string][]datedItem)
	for _, item := range items {
		year := item.date[:4]
		if byYear[year] == nil {
			byYear[year] = make(map[string][]datedItem)
		}
		byYear[year][item.date] = append(byYear[year][item.date], item)
	}
	return byYear
}

func linkDay(date string, dayItems []datedItem, parent string, stats *view.Statistics) {
	if len(dayItems) == 1 {
		item := dayItems[0]
		link := filepath.Join(parent, view.FormatDatedFilename(date, item.title, item.ext))
		view.CreateSymlink(item.path, link, false, stats)
		return
	}

	dateDir := filepath.Join(parent, date)
	collisions := make(map[string]int)
	for _, item := range dayItems {
		collisions[item.title+item.ext]++
	}

	for _, item := range dayItems {
		title := item.title
		if collisions[item.title+item.ext] > 1 {
			title += " (" + item.category + ")"
		}
		link := filepath.Join(dateDir, view.EscapeForPath(title)+item.ext)
		view.CreateSymlink(item.path, link, false, stats)
	}
}
