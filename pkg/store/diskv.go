package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	json "github.com/goccy/go-json"
	"github.com/peterbourgon/diskv/v3"
)

// prefsDir is the directory under the base path holding one file per
// preference.
const prefsDir = "prefs"

// Preferences is a small string key-value store for viewer preferences.
type Preferences interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
	All(ctx context.Context) map[string]string
	Watch(ctx context.Context) (<-chan Event, error)
}

// record is the on-disk form of a preference.
type record struct {
	Value   string    `json:"value"`
	Updated time.Time `json:"updated"`
}

// Load creates Preferences backed by diskv using the provided config.
func Load(cfg Config) (Preferences, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: preferences base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      64 * 1024,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Get(key string) (string, bool) {
	if !p.d.Has(key) {
		return "", false
	}
	val, err := p.d.Read(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: read %s: %s\n", key, err)
		return "", false
	}
	var r record
	if err := json.Unmarshal(val, &r); err != nil {
		// Older files hold the bare value.
		return string(val), true
	}
	return r.Value, true
}

func (p *persistence) Set(key, value string) error {
	if key == "" {
		return errors.New("store: empty preference key")
	}
	b, err := json.Marshal(record{Value: value, Updated: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, b); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Delete(key string) error {
	if !p.d.Has(key) {
		return nil
	}
	if err := p.d.Erase(key); err != nil {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func (p *persistence) All(ctx context.Context) map[string]string {
	all := make(map[string]string)
	for key := range p.d.Keys(ctx.Done()) {
		if v, ok := p.Get(key); ok {
			all[key] = v
		}
	}
	return all
}

// Keys returns the sorted keys of m.
func Keys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{prefsDir},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
