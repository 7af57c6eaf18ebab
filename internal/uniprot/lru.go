// internal/uniprot/lru.go
package uniprot

import "container/list"

type lruEntry struct {
	key string
	rec Record
}

// lru is a fixed-capacity least-recently-used cache.
type lru struct {
	cap   int
	ll    *list.List
	items map[string]*list.Element
}

func newLRU(capacity int) *lru {
	if capacity <= 0 {
		capacity = 1
	}
	return &lru{
		cap:   capacity,
		ll:    list.New(),
		items: make(map[string]*list.Element, capacity),
	}
}

func (c *lru) get(key string) (Record, bool) {
	el, ok := c.items[key]
	if !ok {
		return Record{}, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*lruEntry).rec, true
}

func (c *lru) put(key string, rec Record) {
	if el, ok := c.items[key]; ok {
		c.ll.MoveToFront(el)
		el.Value.(*lruEntry).rec = rec
		return
	}
	c.items[key] = c.ll.PushFront(&lruEntry{key: key, rec: rec})
	if c.ll.Len() > c.cap {
		oldest := c.ll.Back()
		c.ll.Remove(oldest)
		delete(c.items, oldest.Value.(*lruEntry).key)
	}
}
