package view

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// MetadataFileName is the sidecar written next to a directory whose
// filesystem-safe name differs from its intended display title.
const MetadataFileName = "__metadata.json"

var pathHostileChars = []string{"/", "\\", ":", "<", ">", "\"", "|", "?", "*"}

// EscapeForPath makes a name safe for use as a filesystem entry by
// replacing hostile characters with dashes and collapsing dash runs.
// Idempotent under re-application.
func EscapeForPath(s string) string {
	for _, c := range pathHostileChars {
		s = strings.ReplaceAll(s, c, "-")
	}
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// FormatDatedFilename composes the canonical dated link name
// "YYYY-MM-DD Title.ext".
func FormatDatedFilename(date string, title string, ext string) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return date + " " + EscapeForPath(strings.TrimSpace(title)) + ext
}

type folderMetadata struct {
	Folder struct {
		Title string `json:"title"`
	} `json:"_folder"`
}

// WriteDisplayMetadata persists the display title of a directory as a
// sidecar file, but only when it differs from the filesystem-safe name;
// downstream index generation reads it back to recover the pretty title.
func WriteDisplayMetadata(dir string, displayName string, fsName string) error {
	if displayName == fsName {
		return nil
	}
	if err := os.MkdirAll(dir, fs.ModePerm); err != nil {
		return err
	}
	var meta folderMetadata
	meta.Folder.Title = displayName
	blob, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, MetadataFileName), blob, fs.ModePerm)
}

// ReadDisplayMetadata returns the display title recorded for a directory,
// or empty if no sidecar exists or it lacks the recognized key.
func ReadDisplayMetadata(dir string) string {
	blob, err := os.ReadFile(filepath.Join(dir, MetadataFileName))
	if err != nil {
		return ""
	}
	var meta folderMetadata
	if json.Unmarshal(blob, &meta) != nil {
		return ""
	}
	return meta.Folder.Title
}
