package view

import (
	"os"
	"path/filepath"
	"strings"
)

// urlHostileChars are the filename characters that break plain URL
// addressing of served files; names containing any of them get an escaped
// alias link next to the original.
const urlHostileChars = "#%?&+"

// NeedsURLAlias reports whether a filename requires an URL-escaped alias.
func NeedsURLAlias(name string) bool {
	return strings.ContainsAny(name, urlHostileChars)
}

const upperhex = "0123456789ABCDEF"

// EscapeForURL percent-encodes every byte outside the unreserved URL set,
// including spaces and separators (strict form, no '+' shorthand).
func EscapeForURL(name string) string {
	var escaped strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9',
			c == '-', c == '_', c == '.', c == '~':
			escaped.WriteByte(c)
		default:
			escaped.WriteByte('%')
			escaped.WriteByte(upperhex[c>>4])
			escaped.WriteByte(upperhex[c&0xF])
		}
	}
	return escaped.String()
}

// CreateURLAliases walks the given directory and creates a relative alias
// symlink with an URL-escaped name beside every file whose name needs one.
// Directory symlinks are followed (the archive is a symlink forest by
// design), bounded by the resolver hop limit. Pre-existing aliases count
// as skipped.
func CreateURLAliases(root string, stats *Statistics) error {
	return aliasWalk(root, 0, stats)
}

func aliasWalk(dir string, depth int, stats *Statistics) error {
	if depth > MaxLinkHops {
		stats.RecordError("alias walk aborted, directory nesting through links too deep: %s", dir)
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		stats.RecordError("walk failed at %s: %s", dir, err)
		return nil
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, statErr := os.Stat(path) //resolves links to decide file vs. directory
		switch {
		case statErr != nil:
			continue //broken link, nothing to alias
		case info.IsDir():
			if err := aliasWalk(path, depth+1, stats); err != nil {
				return err
			}
		case NeedsURLAlias(entry.Name()):
			if isURLAlias(entry.Name(), path) {
				continue //an alias from a previous run, not a name to alias again
			}
			alias := filepath.Join(dir, EscapeForURL(entry.Name()))
			if entryExists(alias) {
				stats.SymlinksSkipped++
				continue
			}
			//alias points at the sibling name, staying valid wherever the folder moves
			if err := os.Symlink(entry.Name(), alias); err != nil {
				stats.RecordError("failed to create alias %s: %s", alias, err)
				continue
			}
			stats.SymlinksCreated++
		}
	}
	return nil
}

// isURLAlias reports whether the entry is an alias from an earlier run: a
// symlink whose own name is the escaped form of its stored target. Escaped
// names contain % and would otherwise get escaped over and over.
func isURLAlias(name string, path string) bool {
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return false
	}
	target, err := os.Readlink(path)
	if err != nil {
		return false
	}
	return EscapeForURL(target) == name
}
