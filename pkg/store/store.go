package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Well-known keys persisted by the dashboard. Values are JSON encoded
// unless noted otherwise.
const (
	KeyWidgets   = "widgets"   // widget slot layout
	KeyTodos     = "todos"     // ordered todo list
	KeyNotepad   = "notepad"   // notepad tabs and content
	KeyWallpaper = "wallpaper" // wallpaper source reference
	KeyPalette   = "palette"   // palette computed from the wallpaper
	KeyClock     = "clock"     // clock format preference
	KeyOnboarded = "onboarded" // onboarding-completed flag
	KeyPomodoro  = "pomodoro"  // pomodoro timer snapshot
)

// Persistence defines the key-value persistence contract for dashboard state.
type Persistence interface {
	Get(key string) ([]byte, bool)
	GetJSON(key string, into interface{}) bool
	Set(key string, value []byte) error
	SetJSON(key string, value interface{}) error
	Remove(key string) error
	Keys(ctx context.Context) []string
	Export(ctx context.Context) (map[string]json.RawMessage, error)
	Import(data map[string]json.RawMessage) error
	Clear(ctx context.Context) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Get(key string) ([]byte, bool) {
	val, err := p.d.Read(encodeKey(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

// GetJSON reads and decodes key into the target. Missing keys and corrupt
// payloads both report false so callers fall back to defaults.
func (p *persistence) GetJSON(key string, into interface{}) bool {
	val, ok := p.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(val, into); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: corrupt value: %v\n", key, err)
		return false
	}
	return true
}

func (p *persistence) Set(key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("store: key required")
	}
	if err := p.d.Write(encodeKey(key), value); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) SetJSON(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	return p.Set(key, data)
}

func (p *persistence) Remove(key string) error {
	err := p.d.Erase(encodeKey(key))
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (p *persistence) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		plain, err := decodeKey(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: %s\n", key, err)
			continue
		}
		keys = append(keys, plain)
	}
	sort.Strings(keys)
	return keys
}

// rawTag wraps stored values that are not valid JSON, keeping the export
// file a single well-formed JSON object while preserving the exact bytes.
// The key is reserved: a stored object of just {"$raw": ...} is untagged
// on import.
const rawTag = "$raw"

// Export produces a single JSON object mapping every stored key to its
// stored value. Values that are not valid JSON are wrapped under rawTag.
func (p *persistence) Export(ctx context.Context) (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage)
	for _, key := range p.Keys(ctx) {
		val, ok := p.Get(key)
		if !ok {
			continue
		}
		if json.Valid(val) {
			out[key] = json.RawMessage(val)
			continue
		}
		tagged, err := json.Marshal(map[string][]byte{rawTag: val})
		if err != nil {
			return nil, fmt.Errorf("store: export %s: %w", key, err)
		}
		out[key] = tagged
	}
	return out, nil
}

// untagRaw recovers the original bytes from a rawTag wrapper, false when the
// message is anything else.
func untagRaw(msg json.RawMessage) ([]byte, bool) {
	var obj map[string][]byte
	if err := json.Unmarshal(msg, &obj); err != nil {
		return nil, false
	}
	raw, ok := obj[rawTag]
	if !ok || len(obj) != 1 {
		return nil, false
	}
	return raw, true
}

// Import replaces the entire store contents with the provided snapshot, so
// a get on any key returns the same bytes the exporting store held.
// Existing keys are cleared first; confirmation is the caller's problem.
func (p *persistence) Import(data map[string]json.RawMessage) error {
	if err := p.Clear(context.Background()); err != nil {
		return err
	}
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		val := []byte(data[key])
		if raw, ok := untagRaw(data[key]); ok {
			val = raw
		}
		if err := p.Set(key, val); err != nil {
			return err
		}
	}
	return nil
}

func (p *persistence) Clear(ctx context.Context) error {
	for _, key := range p.Keys(ctx) {
		if err := p.Remove(key); err != nil {
			return fmt.Errorf("store: clear %s: %w", key, err)
		}
	}
	return nil
}

// Keys are base64 encoded on disk so arbitrary key strings cannot escape the
// base path or collide with the directory layout.
func encodeKey(key string) string {
	return base64.URLEncoding.EncodeToString([]byte(key))
}

func decodeKey(encoded string) (string, error) {
	plain, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("undecodable key: %w", err)
	}
	return string(plain), nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{Path: []string{}, FileName: s}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
