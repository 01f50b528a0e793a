package catalog

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/harrison/tunecat/internal/filelock"
	"github.com/harrison/tunecat/internal/fileutil"
	"github.com/harrison/tunecat/internal/parser"
)

// Logger is the subset of the console logger the builder reports through.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
}

var errInvalidEncoding = errors.New("invalid UTF-8 encoding")

// Target describes one catalog to generate.
type Target struct {
	Kind Kind
	// Root is the content directory that is scanned
	Root string
	// Extension selects source files (e.g. ".abc")
	Extension string
	// Output is the generated module path
	Output string
}

// Result reports what a build saw and produced.
type Result struct {
	Catalog *Catalog
	// Created is set when the content directory had to be bootstrapped
	Created bool
	// Scanned counts files matching the extension
	Scanned int
	// Excluded lists tunes without a numeric reference field (relative paths)
	Excluded []string
	// Unreadable lists files that could not be read (relative paths)
	Unreadable []string
	// Written is false when the output already held the rendered bytes
	Written bool
}

// Builder turns content directories into catalogs.
type Builder struct {
	log      Logger
	parsers  map[Kind]parser.Parser
	readFile func(path string) ([]byte, error)
}

// NewBuilder creates a Builder reporting through log.
func NewBuilder(log Logger) *Builder {
	b := &Builder{
		log:      log,
		parsers:  make(map[Kind]parser.Parser),
		readFile: os.ReadFile,
	}
	for _, kind := range Kinds() {
		if p, err := parser.NewParser(kind.Format()); err == nil {
			b.parsers[kind] = p
		}
	}
	return b
}

// Bootstrap creates root when missing so a fresh checkout builds an empty
// catalog instead of failing.
func (b *Builder) Bootstrap(root string) (bool, error) {
	created, err := fileutil.EnsureDir(root)
	if err != nil {
		return false, err
	}
	if created {
		b.log.LogInfo(fmt.Sprintf("Created %s directory", root))
	}
	return created, nil
}

// Build scans t.Root and assembles the sorted catalog. It does not touch
// the output file. Per-file problems are logged and recorded in the result;
// only a root that cannot be scanned is an error.
func (b *Builder) Build(t Target) (*Result, error) {
	p, ok := b.parsers[t.Kind]
	if !ok {
		return nil, fmt.Errorf("unsupported catalog kind: %v", t.Kind)
	}

	scan, err := fileutil.ScanDirectory(t.Root, fileutil.ScanOptions{
		Extensions: []string{t.Extension},
		Recursive:  true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", t.Root, err)
	}
	for _, scanErr := range scan.Errors {
		b.log.LogWarn(scanErr.Error())
	}

	result := &Result{Scanned: len(scan.Files)}
	entries := make([]Entry, 0, len(scan.Files))

	for _, f := range scan.Files {
		content, err := b.readFile(f.Path)
		if err == nil && !utf8.Valid(content) {
			err = errInvalidEncoding
		}
		if err != nil {
			b.log.LogError(fmt.Sprintf("Error reading %s: %v", f.Path, err))
			result.Unreadable = append(result.Unreadable, f.RelPath)
		}

		if t.Kind != KindTunes {
			entries = append(entries, Entry{
				Name: b.title(p, content, err, f),
				File: f.RelPath,
			})
			continue
		}

		// Unreadable tunes fail the reference check along with malformed ones
		if err != nil {
			continue
		}
		if !parser.HasReferenceNumber(content) {
			b.log.LogTrace(fmt.Sprintf("%s: no reference number, skipped", f.RelPath))
			result.Excluded = append(result.Excluded, f.RelPath)
			continue
		}
		entries = append(entries, Entry{
			Name:     b.title(p, content, err, f),
			File:     f.RelPath,
			Category: CategoryOf(f.RelPath),
		})
	}

	result.Catalog = New(t.Kind, entries)
	b.log.LogDebug(fmt.Sprintf("%s: %d scanned, %d catalogued, %d excluded",
		t.Kind, result.Scanned, result.Catalog.Len(), len(result.Excluded)))
	return result, nil
}

func (b *Builder) title(p parser.Parser, content []byte, readErr error, f fileutil.SourceFile) string {
	if readErr == nil {
		if title, ok := p.Title(content); ok {
			return title
		}
	}
	return p.FallbackTitle(f.Name())
}

// Generate bootstraps, builds, renders and writes one catalog.
func (b *Builder) Generate(t Target) (*Result, error) {
	created, err := b.Bootstrap(t.Root)
	if err != nil {
		return nil, err
	}

	result, err := b.Build(t)
	if err != nil {
		return nil, err
	}
	result.Created = created

	data, err := Render(result.Catalog)
	if err != nil {
		return nil, err
	}

	written, err := filelock.LockAndWrite(t.Output, data)
	if err != nil {
		return nil, fmt.Errorf("failed to write %s catalog: %w", t.Kind, err)
	}
	result.Written = written
	if !written {
		b.log.LogDebug(fmt.Sprintf("%s unchanged", t.Output))
	}

	return result, nil
}
