package util

import (
	"path/filepath"
	"strings"
)

// ParseName extracts a bare dataset name from a file path,
// e.g. "data/spotify_artists.csv" -> "spotify_artists".
func ParseName(path string) string {
	name := filepath.Base(path)
	if i := strings.Index(name, "."); i != -1 {
		name = name[:i]
	}
	return name
}

func AssemblePath(names ...string) string {
	return filepath.Join(names...)
}
