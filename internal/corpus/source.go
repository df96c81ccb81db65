// Package corpus builds and stores the quote corpus: heterogeneous CSV
// sources are normalized to one canonical record shape, merged, deduplicated,
// length-filtered and emotion-labeled by the offline batch, then persisted
// for the serving process to load at startup.
package corpus

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ColumnMapping declares which source columns hold the canonical fields.
// Author and Tags may be empty when the source has no such column.
type ColumnMapping struct {
	Text   string `yaml:"text"`
	Author string `yaml:"author"`
	Tags   string `yaml:"tags"`
}

// Source describes one CSV input file.
type Source struct {
	Name      string        `yaml:"name"`
	Path      string        `yaml:"path"`
	Delimiter string        `yaml:"delimiter"` // single character, default ","
	Columns   ColumnMapping `yaml:"columns"`
}

// Row is a normalized source record before labeling.
type Row struct {
	Text   string
	Author string
	Tags   string
}

// SourceResult reports the outcome of loading one source. A skipped source
// is not an error for the batch; only zero rows across all sources is.
type SourceResult struct {
	Source  string
	Loaded  int
	Skipped bool
	Reason  string
}

// DefaultSources returns the source layout of the archive datasets,
// rooted at dir.
func DefaultSources(dir string) []Source {
	return []Source{
		{
			Name:    "quotes",
			Path:    dir + "/quotes.csv",
			Columns: ColumnMapping{Text: "quote", Author: "author", Tags: "category"},
		},
		{
			Name:    "stoic",
			Path:    dir + "/stoic_quotes_full.csv",
			Columns: ColumnMapping{Text: "Quote", Author: "Author", Tags: "Tags"},
		},
		{
			Name:      "lessreal",
			Path:      dir + "/lessreal-data.csv",
			Delimiter: ";",
			Columns:   ColumnMapping{Text: "Quote", Author: "Character"},
		},
		{
			Name:    "scraping",
			Path:    dir + "/Scraping_done.csv",
			Columns: ColumnMapping{Text: "quotes", Author: "authors"},
		},
	}
}

// Column name fallbacks tried when the declared mapping is absent from the
// header. The archive files disagree on casing and naming between exports.
var (
	textFallbacks   = []string{"quote", "quotes", "text"}
	authorFallbacks = []string{"author", "authors", "character"}
	tagsFallbacks   = []string{"tags", "category"}
)

// load reads and normalizes one source file. The returned SourceResult is
// always populated; rows is nil whenever the source was skipped.
func load(src Source) ([]Row, SourceResult) {
	f, err := os.Open(src.Path)
	if err != nil {
		return nil, SourceResult{Source: src.Name, Skipped: true, Reason: fmt.Sprintf("open: %v", err)}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	if src.Delimiter != "" {
		r.Comma = rune(src.Delimiter[0])
	}

	header, err := r.Read()
	if err != nil {
		return nil, SourceResult{Source: src.Name, Skipped: true, Reason: fmt.Sprintf("read header: %v", err)}
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	textIdx, ok := resolveColumn(cols, src.Columns.Text, textFallbacks)
	if !ok {
		return nil, SourceResult{Source: src.Name, Skipped: true, Reason: fmt.Sprintf("no text column %q in header", src.Columns.Text)}
	}
	authorIdx, hasAuthor := resolveColumn(cols, src.Columns.Author, authorFallbacks)
	tagsIdx, hasTags := resolveColumn(cols, src.Columns.Tags, tagsFallbacks)

	var rows []Row
	for {
		record, err := r.Read()
		if err != nil {
			break
		}
		if textIdx >= len(record) {
			continue
		}
		row := Row{Text: CleanText(record[textIdx])}
		if row.Text == "" {
			continue
		}
		if hasAuthor && authorIdx < len(record) {
			row.Author = CleanText(record[authorIdx])
		}
		if hasTags && tagsIdx < len(record) {
			row.Tags = CleanText(record[tagsIdx])
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, SourceResult{Source: src.Name, Skipped: true, Reason: "no data rows"}
	}
	return rows, SourceResult{Source: src.Name, Loaded: len(rows)}
}

func resolveColumn(cols map[string]int, declared string, fallbacks []string) (int, bool) {
	if declared != "" {
		if idx, ok := cols[strings.ToLower(declared)]; ok {
			return idx, true
		}
	}
	for _, name := range fallbacks {
		if idx, ok := cols[name]; ok {
			return idx, true
		}
	}
	return 0, false
}

// CleanText canonicalizes raw cell text: Unicode NFC normalization and
// whitespace collapse. Scraped sources mix composed and decomposed forms,
// which would defeat exact-text deduplication.
func CleanText(s string) string {
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}
