package i18n

import (
	"testing"
	"testing/fstest"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	fsys := fstest.MapFS{
		"locales/en.json": &fstest.MapFile{Data: []byte(`{
			"tagline": "What should I watch today?",
			"reload": {"hit": "Hit"},
			"reasons": {"released": ["a {{date}}", "b {{years}}"]},
			"nothing": null
		}`)},
		"locales/pt.json": &fstest.MapFile{Data: []byte(`{"tagline": "O que devo assistir hoje?"}`)},
		"locales/README": &fstest.MapFile{Data: []byte("ignored")},
	}
	c, err := LoadFS(fsys, "locales")
	if err != nil {
		t.Fatalf("LoadFS() error = %v", err)
	}
	return c
}

func TestTranslateFallback(t *testing.T) {
	c := testCatalog(t)
	pt := c.Translator("pt")

	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "requested language", key: "tagline", want: "O que devo assistir hoje?"},
		{name: "default language", key: "reload.hit", want: "Hit"},
		{name: "missing everywhere", key: "reload.nope", want: "reload.nope"},
		{name: "path through a leaf", key: "tagline.more", want: "tagline.more"},
		{name: "null value", key: "nothing", want: "nothing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pt.String(tt.key); got != tt.want {
				t.Fatalf("String(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestTranslateStructured(t *testing.T) {
	c := testCatalog(t)
	en := c.Translator("en")

	if _, ok := en.Translate("reload").(map[string]any); !ok {
		t.Fatalf("Translate(reload) should return the nested object")
	}
	if got := en.Strings("reasons.released"); len(got) != 2 || got[0] != "a {{date}}" {
		t.Fatalf("Strings() = %v", got)
	}
	if got := en.Strings("tagline"); got != nil {
		t.Fatalf("Strings() on a string = %v, want nil", got)
	}
	if got := en.String("reasons.released"); got != "reasons.released" {
		t.Fatalf("String() on a list = %q, want the key", got)
	}
}

func TestMatch(t *testing.T) {
	c := testCatalog(t)
	tests := map[string]string{
		"":      "en",
		"en":    "en",
		"pt":    "pt",
		"pt-BR": "pt",
		"de":    "en",
		"xx-YY": "en",
	}
	for in, want := range tests {
		if got := c.Match(in); got != want {
			t.Errorf("Match(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNilTranslator(t *testing.T) {
	var tr *Translator
	if got := tr.String("tagline"); got != "tagline" {
		t.Fatalf("nil translator String() = %q", got)
	}
}

func TestBundled(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	langs := c.Languages()
	if len(langs) == 0 || langs[0] != DefaultLanguage {
		t.Fatalf("Languages() = %v, want default first", langs)
	}
	en := c.Translator("en")
	if got := en.String("why"); got != "Why?" {
		t.Fatalf("why = %q", got)
	}
	if _, ok := en.Translate("choices.christmas").([]any); !ok {
		t.Fatalf("bundled christmas choices missing")
	}
	// Portuguese has no choices of its own.
	if _, ok := c.Translator("pt").Translate("choices.christmas").([]any); !ok {
		t.Fatalf("pt should fall back to english choices")
	}
}

func TestCandidates(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	tr := c.Translator("en")

	list, err := tr.Candidates("choices.03-31")
	if err != nil {
		t.Fatalf("Candidates() error = %v", err)
	}
	if len(list) != 1 || list[0].Name != "The Matrix" || list[0].ExternalIDs.TMDBID != 603 {
		t.Fatalf("Candidates() = %+v", list)
	}

	list, err = tr.Candidates("choices.02-30")
	if err != nil || len(list) != 0 {
		t.Fatalf("missing key = %v, %v; want empty", list, err)
	}
	list, err = tr.Candidates("tagline")
	if err != nil || len(list) != 0 {
		t.Fatalf("non-list key = %v, %v; want empty", list, err)
	}
}
