// Package i18n resolves dotted key paths against bundled locale tables.
//
// Lookups never fail: a path missing from the requested language falls back
// to the default language, and a path missing there resolves to the path
// itself.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"golang.org/x/text/language"
)

// DefaultLanguage is the locale every lookup falls back to.
const DefaultLanguage = "en"

//go:embed locales/*.json
var bundled embed.FS

// Catalog holds one nested table per language.
type Catalog struct {
	tables  map[string]map[string]any
	langs   []string
	matcher language.Matcher
}

// Load reads the locale tables bundled with the binary.
func Load() (*Catalog, error) {
	return LoadFS(bundled, "locales")
}

// LoadFS reads every <lang>.json file in dir.
func LoadFS(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("i18n: read locales: %w", err)
	}
	tables := make(map[string]map[string]any, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("i18n: read %s: %w", e.Name(), err)
		}
		table := make(map[string]any)
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", e.Name(), err)
		}
		tables[strings.TrimSuffix(e.Name(), ".json")] = table
	}
	return NewCatalog(tables), nil
}

// NewCatalog builds a catalog from already decoded tables.
func NewCatalog(tables map[string]map[string]any) *Catalog {
	langs := make([]string, 0, len(tables))
	for lang := range tables {
		if lang != DefaultLanguage {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	langs = append([]string{DefaultLanguage}, langs...)

	tags := make([]language.Tag, 0, len(langs))
	for _, lang := range langs {
		tags = append(tags, language.Make(lang))
	}
	return &Catalog{
		tables:  tables,
		langs:   langs,
		matcher: language.NewMatcher(tags),
	}
}

// Languages lists the available languages, default first.
func (c *Catalog) Languages() []string {
	out := make([]string, 0, len(c.langs))
	for _, lang := range c.langs {
		if _, ok := c.tables[lang]; ok {
			out = append(out, lang)
		}
	}
	return out
}

// Match returns the best available language for lang: an exact table, then
// its base language, then the closest match, then the default.
func (c *Catalog) Match(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return DefaultLanguage
	}
	if _, ok := c.tables[lang]; ok {
		return lang
	}
	if base, _, ok := strings.Cut(lang, "-"); ok {
		if _, found := c.tables[base]; found {
			return base
		}
	}
	_, idx, conf := c.matcher.Match(language.Make(lang))
	if conf == language.No || idx < 0 || idx >= len(c.langs) {
		return DefaultLanguage
	}
	return c.langs[idx]
}

// Translator returns a lookup context bound to the best match for lang.
func (c *Catalog) Translator(lang string) *Translator {
	return &Translator{catalog: c, lang: c.Match(lang)}
}

func (c *Catalog) lookup(lang, keyPath string) (any, bool) {
	var value any = c.tables[lang]
	if value == nil {
		return nil, false
	}
	for _, part := range strings.Split(keyPath, ".") {
		node, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}
		value, ok = node[part]
		if !ok || value == nil {
			return nil, false
		}
	}
	return value, true
}
