// Package book implements the address book: an insertion-ordered
// mapping from contact name to record.
package book

import (
	"iter"
	"slices"
	"strings"

	"github.com/smileynet/rolo/internal/contact"
)

// Book maps contact names to records. Iteration order is insertion
// order; overwriting an existing name keeps its original position.
type Book struct {
	names   []string
	records map[string]*contact.Record
}

// New returns an empty Book.
func New() *Book {
	return &Book{records: make(map[string]*contact.Record)}
}

// Add inserts r keyed by its name, overwriting any existing entry.
func (b *Book) Add(r *contact.Record) {
	name := r.Name()
	if _, ok := b.records[name]; !ok {
		b.names = append(b.names, name)
	}
	b.records[name] = r
}

// Delete removes the named contact and reports whether an entry was
// removed. Deleting an absent name is a no-op.
func (b *Book) Delete(name string) bool {
	if _, ok := b.records[name]; !ok {
		return false
	}
	delete(b.records, name)
	i := slices.Index(b.names, name)
	b.names = slices.Delete(b.names, i, i+1)
	return true
}

// Find returns the named contact.
func (b *Book) Find(name string) (*contact.Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Len returns the number of contacts.
func (b *Book) Len() int { return len(b.names) }

// Records returns every contact in insertion order.
func (b *Book) Records() []*contact.Record {
	out := make([]*contact.Record, 0, len(b.names))
	for _, name := range b.names {
		out = append(out, b.records[name])
	}
	return out
}

// Search returns every contact whose name or any phone value contains
// query as a case-sensitive substring, in insertion order.
func (b *Book) Search(query string) []*contact.Record {
	var out []*contact.Record
	for _, r := range b.Records() {
		if matches(r, query) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r *contact.Record, query string) bool {
	if strings.Contains(r.Name(), query) {
		return true
	}
	for _, value := range r.Phones() {
		if strings.Contains(value, query) {
			return true
		}
	}
	return false
}

// Batches returns a lazy sequence of insertion-ordered batches, each of
// at most size contacts. Ranging over the result again restarts from
// the first batch. A size below 1 yields nothing.
func (b *Book) Batches(size int) iter.Seq[[]*contact.Record] {
	return func(yield func([]*contact.Record) bool) {
		if size < 1 {
			return
		}
		records := b.Records()
		for i := 0; i < len(records); i += size {
			end := min(i+size, len(records))
			if !yield(records[i:end]) {
				return
			}
		}
	}
}

// Snapshot returns the wire form of every contact in insertion order.
func (b *Book) Snapshot() []contact.Payload {
	out := make([]contact.Payload, 0, len(b.names))
	for _, r := range b.Records() {
		out = append(out, r.Payload())
	}
	return out
}

// Restore replaces the book's contents with records reconstructed from
// payloads. On any reconstruction error the book is left unchanged.
func (b *Book) Restore(payloads []contact.Payload) error {
	names := make([]string, 0, len(payloads))
	records := make(map[string]*contact.Record, len(payloads))
	for _, p := range payloads {
		r, err := contact.FromPayload(p)
		if err != nil {
			return err
		}
		if _, ok := records[r.Name()]; !ok {
			names = append(names, r.Name())
		}
		records[r.Name()] = r
	}
	b.names = names
	b.records = records
	return nil
}
