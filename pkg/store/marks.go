// Package store persists day marks, the host-supplied annotations
// (holidays, deadlines) the calendar decorates days with. Selections are
// never persisted; only marks are.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/datepick/pkg/civil"
)

// Mark annotates one day.
type Mark struct {
	Date  civil.Date `json:"date"`
	Label string     `json:"label,omitempty"`
}

// Persistence is the persistence contract for marks.
type Persistence interface {
	List(ctx context.Context) []Mark
	ListMonth(ctx context.Context, year int, month time.Month) []Mark
	Marked(ctx context.Context, d civil.Date) bool
	Store(m Mark) error
	Delete(d civil.Date) error
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

// Keys look like "2024-07-04"; on disk they shard by year so a long-lived
// store does not pile every mark into one directory.
func keyToPathTransform(key string) *diskv.PathKey {
	year, rest, ok := strings.Cut(key, "-")
	if !ok {
		return &diskv.PathKey{Path: []string{}, FileName: key + ".json"}
	}
	return &diskv.PathKey{
		Path:     []string{year},
		FileName: rest + ".json",
	}
}

func pathToKeyTransform(pk *diskv.PathKey) string {
	name := strings.TrimSuffix(pk.FileName, ".json")
	if len(pk.Path) == 0 {
		return name
	}
	return pk.Path[len(pk.Path)-1] + "-" + name
}

func key(d civil.Date) string { return d.String() }

func (p *persistence) read(k string) (Mark, error) {
	val, err := p.d.Read(k)
	if err != nil {
		return Mark{}, err
	}
	var m Mark
	if err := json.Unmarshal(val, &m); err != nil {
		return Mark{}, fmt.Errorf("store: corrupt mark %s: %w", k, err)
	}
	return m, nil
}

func (p *persistence) List(ctx context.Context) []Mark {
	var marks []Mark
	for k := range p.d.Keys(ctx.Done()) {
		m, err := p.read(k)
		if err != nil {
			continue
		}
		marks = append(marks, m)
	}
	sort.Slice(marks, func(i, j int) bool {
		return marks[i].Date.Before(marks[j].Date)
	})
	return marks
}

func (p *persistence) ListMonth(ctx context.Context, year int, month time.Month) []Mark {
	var marks []Mark
	for _, m := range p.List(ctx) {
		if m.Date.Year == year && m.Date.Month == month {
			marks = append(marks, m)
		}
	}
	return marks
}

func (p *persistence) Marked(ctx context.Context, d civil.Date) bool {
	return p.d.Has(key(d))
}

func (p *persistence) Store(m Mark) error {
	val, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return p.d.Write(key(m.Date), val)
}

func (p *persistence) Delete(d civil.Date) error {
	k := key(d)
	if !p.d.Has(k) {
		return nil
	}
	return p.d.Erase(k)
}
