// Package listing concatenates front-end source files into one text file so
// the whole presentation layer can be reviewed or shared in a single paste.
package listing

import (
	"bytes"
	"fmt"
	"os"
	"path"

	"github.com/harrison/tunecat/internal/config"
	"github.com/harrison/tunecat/internal/filelock"
	"github.com/harrison/tunecat/internal/fileutil"
)

// Build renders the listing for the directories and files in cfg, resolved
// against projectDir. Paths in the output are shown as configured.
// Missing or unreadable inputs are noted inline and never fail the listing.
func Build(projectDir string, cfg config.ListingConfig) []byte {
	var buf bytes.Buffer

	for _, dir := range cfg.Dirs {
		root := config.Resolve(projectDir, dir)
		info, err := os.Stat(root)
		if err != nil || !info.IsDir() {
			fmt.Fprintf(&buf, "Directory %s does not exist\n\n", dir)
			continue
		}

		result, err := fileutil.ScanDirectory(root, fileutil.ScanOptions{
			Recursive:   true,
			ExcludeDirs: cfg.ExcludeDirs,
			SkipHidden:  cfg.SkipHidden,
		})
		if err != nil {
			fmt.Fprintf(&buf, "Error reading directory: %v\n\n", err)
			continue
		}
		for _, f := range result.Files {
			writeEntry(&buf, path.Join(dir, f.RelPath), f.Path)
		}
	}

	for _, file := range cfg.Files {
		full := config.Resolve(projectDir, file)
		if _, err := os.Stat(full); err != nil {
			fmt.Fprintf(&buf, "File %s does not exist\n\n", file)
			continue
		}
		writeEntry(&buf, file, full)
	}

	return buf.Bytes()
}

func writeEntry(buf *bytes.Buffer, shown, full string) {
	fmt.Fprintf(buf, "==> Listing of %s <==\n", shown)
	content, err := os.ReadFile(full)
	if err != nil {
		fmt.Fprintf(buf, "Error reading file: %v\n\n", err)
		return
	}
	buf.Write(content)
	buf.WriteString("\n\n")
}

// Write builds the listing and writes it to cfg.Output. It returns the
// resolved output path.
func Write(projectDir string, cfg config.ListingConfig) (string, error) {
	out := config.Resolve(projectDir, cfg.Output)
	if _, err := filelock.LockAndWrite(out, Build(projectDir, cfg)); err != nil {
		return "", fmt.Errorf("failed to write listing: %w", err)
	}
	return out, nil
}
