package market

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"investtrack/internal/models"
)

//go:embed symbols.yaml
var embeddedSymbols []byte

// SymbolTable is the static list of well-known instruments used when live
// search returns nothing.
type SymbolTable struct {
	entries []models.SearchResult
}

type symbolFile struct {
	Symbols []models.SearchResult `yaml:"symbols"`
}

// DefaultSymbolTable returns the table compiled into the binary.
func DefaultSymbolTable() *SymbolTable {
	t, err := ParseSymbolTable(embeddedSymbols)
	if err != nil {
		panic(fmt.Sprintf("embedded symbol table: %v", err))
	}
	return t
}

// LoadSymbolTable reads a YAML table from path, or the embedded table when
// path is empty.
func LoadSymbolTable(path string) (*SymbolTable, error) {
	if path == "" {
		return DefaultSymbolTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading symbol table: %w", err)
	}
	return ParseSymbolTable(data)
}

// ParseSymbolTable decodes a YAML document with a top-level "symbols" list.
func ParseSymbolTable(data []byte) (*SymbolTable, error) {
	var f symbolFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing symbol table: %w", err)
	}
	entries := make([]models.SearchResult, 0, len(f.Symbols))
	for i, e := range f.Symbols {
		if strings.TrimSpace(e.Symbol) == "" {
			return nil, fmt.Errorf("symbol table entry %d has no symbol", i)
		}
		e.Symbol = strings.ToUpper(strings.TrimSpace(e.Symbol))
		if e.Type == "" {
			e.Type = models.InstrumentOther
		}
		entries = append(entries, e)
	}
	return &SymbolTable{entries: entries}, nil
}

// Len returns the number of entries.
func (t *SymbolTable) Len() int { return len(t.entries) }

// Match returns up to limit entries whose symbol or name contains query,
// ignoring case, in table order.
func (t *SymbolTable) Match(query string, limit int) []models.SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []models.SearchResult{}
	if q == "" || limit <= 0 {
		return out
	}
	for _, e := range t.entries {
		if strings.Contains(strings.ToLower(e.Symbol), q) || strings.Contains(strings.ToLower(e.Name), q) {
			out = append(out, e)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
