package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/rowantrollope/pcs-path-cli/internal/bookmark"
)

// PrintBookmarkTree renders bookmarks grouped by side with box-drawing characters.
func (f *Formatter) PrintBookmarkTree(items []*bookmark.Bookmark) {
	groups := map[bookmark.Side][]*bookmark.Bookmark{}
	for _, b := range items {
		groups[b.Side] = append(groups[b.Side], b)
	}

	if f.JSON {
		result := map[string][]string{}
		for side, bs := range groups {
			for _, b := range bs {
				result[string(side)] = append(result[string(side)], b.Name)
			}
		}
		f.PrintJSON(result)
		return
	}

	sides := make([]string, 0, len(groups))
	for side := range groups {
		sides = append(sides, string(side))
	}
	sort.Strings(sides)

	fmt.Fprintln(f.Writer, "bookmarks")
	for i, side := range sides {
		isLast := i == len(sides)-1
		connector, childPrefix := branch(isLast)
		fmt.Fprintf(f.Writer, "%s%s\n", connector, side)
		printTreeChildren(f.Writer, f, groups[bookmark.Side(side)], childPrefix)
	}
	fmt.Fprintf(f.Writer, "\n%d bookmarks\n", len(items))
}

func printTreeChildren(w io.Writer, f *Formatter, children []*bookmark.Bookmark, prefix string) {
	sort.Slice(children, func(i, j int) bool {
		return children[i].Name < children[j].Name
	})

	for i, child := range children {
		connector, _ := branch(i == len(children)-1)
		fmt.Fprintf(w, "%s%s%s -> %s\n", prefix, connector, f.FormatName(child.Name), f.FormatPath(child.Path))
	}
}

func branch(isLast bool) (connector, childPrefix string) {
	if isLast {
		return "└── ", "    "
	}
	return "├── ", "│   "
}
