package types

import "encoding/json"

type documentKey struct {
	kind Kind
	key  string
}

// Document is the ordered list of collections produced by one run. Lookups
// go through a key index; serialization follows insertion order.
type Document struct {
	collections []Collection
	index       map[documentKey]int
}

func NewDocument() *Document {
	return &Document{index: map[documentKey]int{}}
}

// Append adds c at the end of the document. When another collection with
// the same kind and key already exists, the index keeps pointing at the
// first one.
func (d *Document) Append(c Collection) {
	if d.index == nil {
		d.index = map[documentKey]int{}
	}
	d.collections = append(d.collections, c)
	key := documentKey{kind: c.Kind(), key: c.Key()}
	if _, exists := d.index[key]; !exists {
		d.index[key] = len(d.collections) - 1
	}
}

func (d *Document) Lookup(kind Kind, key string) (Collection, bool) {
	idx, ok := d.index[documentKey{kind: kind, key: key}]
	if !ok {
		return nil, false
	}
	return d.collections[idx], true
}

// Collections returns the collections in insertion order.
func (d *Document) Collections() []Collection {
	return append([]Collection(nil), d.collections...)
}

func (d *Document) OfKind(kind Kind) []Collection {
	var matches []Collection
	for _, c := range d.collections {
		if c.Kind() == kind {
			matches = append(matches, c)
		}
	}
	return matches
}

func (d *Document) Len() int {
	return len(d.collections)
}

// MarshalJSON encodes the document as a flat list of tagged objects.
func (d *Document) MarshalJSON() ([]byte, error) {
	if len(d.collections) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(d.collections)
}
