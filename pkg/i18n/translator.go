package i18n

// Translator is a per-session lookup context for one language.
type Translator struct {
	catalog *Catalog
	lang    string
}

// Language is the resolved language code.
func (t *Translator) Language() string {
	return t.lang
}

// Translate resolves keyPath. The result is a string, a slice, a nested map,
// or keyPath itself when nothing matched; callers shape-check structured
// values before use.
func (t *Translator) Translate(keyPath string) any {
	if t == nil || t.catalog == nil {
		return keyPath
	}
	if v, ok := t.catalog.lookup(t.lang, keyPath); ok {
		return v
	}
	if v, ok := t.catalog.lookup(DefaultLanguage, keyPath); ok {
		return v
	}
	return keyPath
}

// String resolves keyPath to display text, or keyPath when the value is
// not a string.
func (t *Translator) String(keyPath string) string {
	if s, ok := t.Translate(keyPath).(string); ok {
		return s
	}
	return keyPath
}

// Strings resolves keyPath to a list of strings. Non-string items are
// skipped; a non-list value yields nil.
func (t *Translator) Strings(keyPath string) []string {
	items, ok := t.Translate(keyPath).([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
