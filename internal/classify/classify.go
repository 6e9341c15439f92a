package classify

import (
	"path/filepath"
	"sort"
	"strings"
)

// DefaultFallback is the category for extensions no table entry matches.
const DefaultFallback = "Miscellaneous"

// defaultTable maps built-in category names to their extensions. Order is
// irrelevant at lookup time; the index below is keyed by extension.
var defaultTable = map[string][]string{
	"Images":        {".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".svg", ".webp", ".ico"},
	"Documents":     {".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".pages"},
	"Spreadsheets":  {".xls", ".xlsx", ".csv", ".ods"},
	"Presentations": {".ppt", ".pptx", ".odp", ".key"},
	"Videos":        {".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm", ".m4v"},
	"Audio":         {".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma", ".m4a"},
	"Archives":      {".zip", ".rar", ".7z", ".tar", ".gz", ".bz2"},
	"Code":          {".py", ".js", ".html", ".css", ".java", ".cpp", ".c", ".php", ".rb", ".go"},
	"Executables":   {".exe", ".msi", ".dmg", ".pkg", ".deb", ".rpm"},
}

var defaultIndex = buildIndex(defaultTable)

// Classifier maps file names to category names by extension. Custom
// categories are consulted before the built-in table; unmatched extensions
// land in the fallback category.
type Classifier struct {
	customIndex map[string]string
	fallback    string
}

// New builds a classifier from a custom category table (name -> extensions,
// already normalized to lowercase dot-prefixed form) and a fallback category
// name. Both arguments may be zero values.
func New(custom map[string][]string, fallback string) *Classifier {
	fallback = strings.TrimSpace(fallback)
	if fallback == "" {
		fallback = DefaultFallback
	}
	return &Classifier{
		customIndex: buildIndex(custom),
		fallback:    fallback,
	}
}

// Categorize returns the category for the given file name. Matching is
// case-insensitive on the extension.
func (c *Classifier) Categorize(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if category, ok := c.customIndex[ext]; ok {
		return category
	}
	if category, ok := defaultIndex[ext]; ok {
		return category
	}
	return c.fallback
}

// Fallback returns the category used for unmatched extensions.
func (c *Classifier) Fallback() string {
	return c.fallback
}

// buildIndex inverts a category table into an extension-keyed map. Category
// names are visited in sorted order so an extension claimed twice always
// resolves the same way.
func buildIndex(table map[string][]string) map[string]string {
	if len(table) == 0 {
		return nil
	}
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	index := make(map[string]string)
	for _, name := range names {
		for _, ext := range table[name] {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			if _, ok := index[ext]; !ok {
				index[ext] = name
			}
		}
	}
	return index
}
