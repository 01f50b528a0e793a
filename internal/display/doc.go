// Package display formats user-facing terminal output: warnings about tune
// files that were left out of the catalog, and tree views of a catalog.
//
//	warning := display.WarnExcludedTunes([]string{"reels/fast.abc"})
//	warning.Display(os.Stderr)
//
//	fmt.Print(display.CatalogTree("abc", tunes))
package display
