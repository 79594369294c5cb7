package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/rowantrollope/pcs-path-cli/internal/bookmark"
)

// Formatter handles text/JSON/colored output.
type Formatter struct {
	Writer    io.Writer
	ErrWriter io.Writer
	JSON      bool
	Color     bool
}

// NewFormatter creates a new output formatter.
func NewFormatter(jsonMode, colorMode bool) *Formatter {
	return &Formatter{
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		JSON:      jsonMode,
		Color:     colorMode,
	}
}

// Printf prints formatted text to stdout.
func (f *Formatter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(f.Writer, format, args...)
}

// Println prints a line to stdout.
func (f *Formatter) Println(args ...interface{}) {
	fmt.Fprintln(f.Writer, args...)
}

// Errorf prints a formatted error message to stderr.
func (f *Formatter) Errorf(format string, args ...interface{}) {
	if f.Color {
		c := color.New(color.FgRed)
		c.Fprintf(f.ErrWriter, format, args...)
	} else {
		fmt.Fprintf(f.ErrWriter, format, args...)
	}
}

// PrintJSON outputs a value as JSON.
func (f *Formatter) PrintJSON(v interface{}) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatPath highlights a path.
func (f *Formatter) FormatPath(p string) string {
	if f.Color {
		return color.New(color.FgBlue, color.Bold).Sprint(p)
	}
	return p
}

// FormatName formats a bookmark name.
func (f *Formatter) FormatName(name string) string {
	if f.Color {
		return color.New(color.FgCyan).Sprint(name)
	}
	return name
}

// --- path results ---

// PrintPath prints the result of a path operation. In JSON mode the input
// fields are echoed next to the result.
func (f *Formatter) PrintPath(op string, fields map[string]interface{}, result string) {
	if f.JSON {
		out := map[string]interface{}{"op": op, "result": result}
		for k, v := range fields {
			out[k] = v
		}
		f.PrintJSON(out)
		return
	}
	fmt.Fprintln(f.Writer, f.FormatPath(result))
}

// PrintNoParent reports a path without a parent.
func (f *Formatter) PrintNoParent(p string) {
	if f.JSON {
		f.PrintJSON(map[string]interface{}{"op": "parent", "path": p, "result": nil})
		return
	}
	fmt.Fprintf(f.Writer, "%s: no parent\n", p)
}

// PrintBool prints a yes/no answer.
func (f *Formatter) PrintBool(op, p string, v bool) {
	if f.JSON {
		f.PrintJSON(map[string]interface{}{"op": op, "path": p, "result": v})
		return
	}
	fmt.Fprintln(f.Writer, v)
}

// PrintList prints one path per line.
func (f *Formatter) PrintList(op string, items []string) {
	if f.JSON {
		if items == nil {
			items = []string{}
		}
		f.PrintJSON(map[string]interface{}{"op": op, "result": items})
		return
	}
	for _, it := range items {
		fmt.Fprintln(f.Writer, f.FormatPath(it))
	}
}

// --- read output ---

// PrintFile prints file content followed by a size summary on stderr.
func (f *Formatter) PrintFile(path string, content []byte) {
	if f.JSON {
		f.PrintJSON(map[string]interface{}{
			"path":    path,
			"size":    len(content),
			"content": string(content),
		})
		return
	}
	f.Writer.Write(content)
	if len(content) > 0 && content[len(content)-1] != '\n' {
		fmt.Fprintln(f.Writer)
	}
	fmt.Fprintf(f.ErrWriter, "%s: %s\n", path, humanize.Bytes(uint64(len(content))))
}

// --- bookmark output ---

// PrintBookmarks lists bookmarks as "name  side  path  age".
func (f *Formatter) PrintBookmarks(items []*bookmark.Bookmark) {
	if f.JSON {
		result := make([]map[string]interface{}, 0, len(items))
		for _, b := range items {
			result = append(result, map[string]interface{}{
				"name":  b.Name,
				"side":  string(b.Side),
				"path":  b.Path,
				"ctime": b.CTime,
			})
		}
		f.PrintJSON(result)
		return
	}
	for _, b := range items {
		fmt.Fprintf(f.Writer, "%-16s %-6s %s  (%s)\n",
			f.FormatName(b.Name), b.Side, f.FormatPath(b.Path), FormatAge(b.CTime))
	}
}

// FormatAge formats a unix timestamp relative to now.
func FormatAge(ts int64) string {
	if ts == 0 {
		return "-"
	}
	return humanize.Time(time.Unix(ts, 0))
}
