// Package collation adapts golang.org/x/text/collate to the leveled
// Collator facet.
package collation

import (
	"bytes"
	"hash/fnv"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	locale "github.com/goliatone/go-locale"
)

// Collator keeps one x/text collator per level. x/text collators are not
// safe for concurrent use, so every call holds mu.
type Collator struct {
	tag   language.Tag
	extra []collate.Option

	mu      sync.Mutex
	byLevel map[locale.CollateLevel]*collate.Collator
	buf     collate.Buffer
}

// New returns a collator for tag. extra options apply to every level.
func New(tag language.Tag, extra ...collate.Option) *Collator {
	return &Collator{
		tag:     tag,
		extra:   extra,
		byLevel: make(map[locale.CollateLevel]*collate.Collator),
	}
}

func levelOptions(level locale.CollateLevel) []collate.Option {
	switch level {
	case locale.Primary:
		return []collate.Option{collate.Loose}
	case locale.Secondary:
		return []collate.Option{collate.IgnoreCase, collate.IgnoreWidth}
	}
	return nil
}

func (c *Collator) collatorLocked(level locale.CollateLevel) *collate.Collator {
	if level > locale.Tertiary {
		level = locale.Tertiary
	}
	if col, ok := c.byLevel[level]; ok {
		return col
	}
	opts := append(levelOptions(level), c.extra...)
	col := collate.New(c.tag, opts...)
	c.byLevel[level] = col
	return col
}

// Compare orders a and b at level. Identical breaks ties on the NFD form.
func (c *Collator) Compare(level locale.CollateLevel, a, b string) int {
	c.mu.Lock()
	res := c.collatorLocked(level).CompareString(a, b)
	c.mu.Unlock()

	if res == 0 && level == locale.Identical {
		return bytes.Compare(norm.NFD.Bytes([]byte(a)), norm.NFD.Bytes([]byte(b)))
	}
	return res
}

// Transform returns a sort key for s.
func (c *Collator) Transform(level locale.CollateLevel, s string) []byte {
	c.mu.Lock()
	c.buf.Reset()
	key := bytes.Clone(c.collatorLocked(level).KeyFromString(&c.buf, s))
	c.mu.Unlock()

	if level == locale.Identical {
		key = append(key, 0, 0)
		key = append(key, norm.NFD.String(s)...)
	}
	return key
}

// Hash is FNV-1a over the sort key.
func (c *Collator) Hash(level locale.CollateLevel, s string) uint64 {
	h := fnv.New64a()
	h.Write(c.Transform(level, s))
	return h.Sum64()
}

var _ locale.Collator = (*Collator)(nil)
