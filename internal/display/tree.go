package display

import (
	"path"

	"github.com/disiqueira/gotree/v3"

	"github.com/harrison/tunecat/internal/catalog"
)

// CatalogTree renders c under rootLabel. Tunes are grouped by category in
// catalog order; documents are nested by their folder path.
func CatalogTree(rootLabel string, c *catalog.Catalog) string {
	tree := gotree.New(rootLabel)

	if c.Kind() == catalog.KindTunes {
		groups := make(map[string]gotree.Tree)
		for _, category := range c.Categories() {
			groups[category] = tree.Add(category)
		}
		for _, e := range c.Entries() {
			groups[e.Category].Add(entryLabel(e))
		}
		return tree.Print()
	}

	dirs := make(map[string]gotree.Tree)
	var dirNode func(dir string) gotree.Tree
	dirNode = func(dir string) gotree.Tree {
		if dir == "." {
			return tree
		}
		if node, ok := dirs[dir]; ok {
			return node
		}
		node := dirNode(path.Dir(dir)).Add(path.Base(dir))
		dirs[dir] = node
		return node
	}
	for _, e := range c.Entries() {
		dirNode(path.Dir(e.File)).Add(entryLabel(e))
	}
	return tree.Print()
}

func entryLabel(e catalog.Entry) string {
	return e.Name + " (" + path.Base(e.File) + ")"
}
