// Package fileutil walks content directories for the catalog builder.
//
// ScanDirectory enumerates the files under a root, filtered by extension and
// optional filename pattern, and reports each match as a SourceFile carrying
// both its absolute path and its slash-separated path relative to the root.
// Results are sorted by relative path so callers never depend on filesystem
// iteration order.
//
// Errors met while walking (an unreadable subdirectory, a path that cannot
// be resolved) are collected in ScanResult.Errors and the walk continues.
// Only an invalid pattern or a root that is not a directory fails the scan.
//
// EnsureDir is the bootstrap step run before a scan: it creates a missing
// root so the scan of a fresh checkout finds an empty tree instead of failing.
//
//	created, err := fileutil.EnsureDir("abc")
//	result, err := fileutil.ScanDirectory("abc", fileutil.ScanOptions{
//	    Extensions: []string{".abc"},
//	    Recursive:  true,
//	})
//	for _, f := range result.Files {
//	    fmt.Println(f.RelPath)
//	}
package fileutil
