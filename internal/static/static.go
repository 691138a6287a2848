// Package static embeds default sounds and icons into the binary and copies
// them to the user's data directory on first run.
package static

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"

	"github.com/dbalogun/pulse/config"
)

const filesDir = "files"

//go:embed files/*
var Files embed.FS

// FilePath returns the embedded path for the named file.
func FilePath(name string) string {
	return filesDir + "/" + name
}

// CopyFilesToDataDir installs the embedded assets into the xdg data
// directory, skipping files that already exist so user replacements survive
// upgrades.
func CopyFilesToDataDir() error {
	return fs.WalkDir(
		Files,
		filesDir,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := Files.ReadFile(path)
			if err != nil {
				return err
			}

			stripped := strings.TrimPrefix(path, filesDir+"/")

			relPath := filepath.Join(config.Dir(), "static", stripped)

			destPath, err := xdg.DataFile(relPath)
			if err != nil {
				return err
			}

			if _, err := os.Stat(destPath); os.IsNotExist(err) {
				if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
					return err
				}

				if err := os.WriteFile(destPath, b, 0o644); err != nil {
					return err
				}
			}

			return nil
		},
	)
}

// SoundOpts lists the ambient sounds available to the user: the embedded
// defaults plus any audio files dropped in the data directory.
func SoundOpts() []string {
	seen := make(map[string]struct{})

	entries, err := Files.ReadDir(filesDir)
	if err == nil {
		for _, v := range entries {
			if isSoundFile(v.Name()) {
				seen[stripExtension(v.Name())] = struct{}{}
			}
		}
	}

	dataDir := filepath.Join(xdg.DataHome, config.Dir(), "static")

	dir, err := os.ReadDir(dataDir)
	if err == nil {
		for _, v := range dir {
			if isSoundFile(v.Name()) {
				seen[stripExtension(v.Name())] = struct{}{}
			}
		}
	}

	opts := make([]string, 0, len(seen)+1)
	for name := range seen {
		opts = append(opts, name)
	}

	sort.Strings(opts)

	return append([]string{"off"}, opts...)
}

func isSoundFile(name string) bool {
	switch filepath.Ext(name) {
	case ".ogg", ".mp3", ".flac", ".wav":
		return true
	}

	return false
}

func stripExtension(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
