package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTree(t *testing.T, root string, files []string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, []byte("test content"), 0644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
	}
}

func TestScanDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	// tmpDir/
	//   tune.abc
	//   Upper.ABC
	//   notes.txt
	//   guide.md
	//   reels/
	//     fast.abc
	//     slow.abc
	//     sets/
	//       set1.abc
	//   .drafts/
	//     draft.abc
	//   node_modules/
	//     junk.abc
	writeTree(t, tmpDir, []string{
		"tune.abc",
		"Upper.ABC",
		"notes.txt",
		"guide.md",
		"reels/fast.abc",
		"reels/slow.abc",
		"reels/sets/set1.abc",
		".drafts/draft.abc",
		"node_modules/junk.abc",
	})

	tests := []struct {
		name     string
		opts     ScanOptions
		wantRels []string
	}{
		{
			name: "non-recursive scan",
			opts: ScanOptions{},
			wantRels: []string{
				"Upper.ABC", "guide.md", "notes.txt", "tune.abc",
			},
		},
		{
			name: "recursive scan includes hidden dirs by default",
			opts: ScanOptions{Recursive: true},
			wantRels: []string{
				".drafts/draft.abc", "Upper.ABC", "guide.md", "node_modules/junk.abc",
				"notes.txt", "reels/fast.abc", "reels/sets/set1.abc", "reels/slow.abc", "tune.abc",
			},
		},
		{
			name: "extension filter is case-sensitive",
			opts: ScanOptions{Extensions: []string{".abc"}, Recursive: true},
			wantRels: []string{
				".drafts/draft.abc", "node_modules/junk.abc",
				"reels/fast.abc", "reels/sets/set1.abc", "reels/slow.abc", "tune.abc",
			},
		},
		{
			name:     "upper-case extension selected explicitly",
			opts:     ScanOptions{Extensions: []string{".ABC"}, Recursive: true},
			wantRels: []string{"Upper.ABC"},
		},
		{
			name:     "extension without dot prefix",
			opts:     ScanOptions{Extensions: []string{"md"}, Recursive: true},
			wantRels: []string{"guide.md"},
		},
		{
			name: "skip hidden and excluded dirs",
			opts: ScanOptions{
				Extensions:  []string{".abc"},
				Recursive:   true,
				SkipHidden:  true,
				ExcludeDirs: []string{"node_modules"},
			},
			wantRels: []string{
				"reels/fast.abc", "reels/sets/set1.abc", "reels/slow.abc", "tune.abc",
			},
		},
		{
			name:     "excluded nested directory",
			opts:     ScanOptions{Extensions: []string{".abc"}, Recursive: true, ExcludeDirs: []string{"sets"}},
			wantRels: []string{".drafts/draft.abc", "node_modules/junk.abc", "reels/fast.abc", "reels/slow.abc", "tune.abc"},
		},
		{
			name:     "no matches",
			opts:     ScanOptions{Extensions: []string{".xml"}, Recursive: true},
			wantRels: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ScanDirectory(tmpDir, tt.opts)
			if err != nil {
				t.Fatalf("ScanDirectory() error = %v", err)
			}
			if len(result.Errors) != 0 {
				t.Errorf("ScanDirectory() errors = %v, want none", result.Errors)
			}

			if len(result.Files) != len(tt.wantRels) {
				t.Fatalf("ScanDirectory() file count = %d, want %d (got %v)", len(result.Files), len(tt.wantRels), result.Files)
			}
			for i, f := range result.Files {
				if f.RelPath != tt.wantRels[i] {
					t.Errorf("Files[%d].RelPath = %q, want %q", i, f.RelPath, tt.wantRels[i])
				}
			}
		})
	}
}

func TestScanDirectory_AbsolutePaths(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, []string{"reels/fast.abc"})

	result, err := ScanDirectory(tmpDir, ScanOptions{Recursive: true})
	if err != nil {
		t.Fatalf("ScanDirectory() error = %v", err)
	}
	if len(result.Files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(result.Files))
	}

	f := result.Files[0]
	if !filepath.IsAbs(f.Path) {
		t.Errorf("expected absolute path, got %s", f.Path)
	}
	if f.RelPath != "reels/fast.abc" {
		t.Errorf("RelPath = %q, want %q", f.RelPath, "reels/fast.abc")
	}
	if f.Name() != "fast.abc" {
		t.Errorf("Name() = %q, want %q", f.Name(), "fast.abc")
	}
	if _, err := os.Stat(f.Path); err != nil {
		t.Errorf("Path does not exist: %v", err)
	}
}

func TestScanDirectory_Errors(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		_, err := ScanDirectory(filepath.Join(t.TempDir(), "missing"), ScanOptions{})
		if err == nil {
			t.Error("expected error for missing directory")
		}
	})

	t.Run("path is a file", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeTree(t, tmpDir, []string{"tune.abc"})
		_, err := ScanDirectory(filepath.Join(tmpDir, "tune.abc"), ScanOptions{})
		if err == nil {
			t.Error("expected error for file path")
		}
	})
}

func TestScanDirectory_EmptyDirectory(t *testing.T) {
	result, err := ScanDirectory(t.TempDir(), ScanOptions{Recursive: true})
	if err != nil {
		t.Fatalf("ScanDirectory() error = %v", err)
	}
	if len(result.Files) != 0 {
		t.Errorf("expected 0 files, got %d", len(result.Files))
	}
}

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "abc", "nested")

	created, err := EnsureDir(dir)
	if err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	if !created {
		t.Error("EnsureDir() created = false, want true for missing directory")
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("directory was not created: %v", err)
	}

	created, err = EnsureDir(dir)
	if err != nil {
		t.Fatalf("EnsureDir() second call error = %v", err)
	}
	if created {
		t.Error("EnsureDir() created = true on existing directory")
	}

	writeTree(t, tmpDir, []string{"file.abc"})
	if _, err := EnsureDir(filepath.Join(tmpDir, "file.abc")); err == nil {
		t.Error("EnsureDir() expected error when path is a file")
	}
}
