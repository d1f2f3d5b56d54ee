package prefabs

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Dir is the on-disk directory whose files override the embedded prefabs.
const Dir = "prefabs"

//go:embed *.yaml
var embedded embed.FS

// Source reports where a prefab was read from.
type Source string

const (
	SourceDisk     Source = "disk"
	SourceEmbedded Source = "embedded"
)

// Load reads a prefab, preferring an on-disk copy under Dir over the one
// embedded at build time.
func Load(name string) ([]byte, error) {
	data, _, err := LoadWithSource(name)
	return data, err
}

func LoadWithSource(name string) ([]byte, Source, error) {
	clean := path.Clean(strings.TrimPrefix(filepath.ToSlash(name), Dir+"/"))

	data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean)))
	if err == nil {
		return data, SourceDisk, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, "", err
	}

	data, err = embedded.ReadFile(clean)
	if err != nil {
		return nil, "", err
	}
	return data, SourceEmbedded, nil
}
