// Package knowledge holds the fixed corpus of project documents the assistant
// reasons over.
package knowledge

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrEmptyID     = errors.New("document id is empty")
	ErrDuplicateID = errors.New("duplicate document id")
	ErrDocNotFound = errors.New("document not found")
)

// Document is one knowledge-base record.
type Document struct {
	ID   string
	Text string
}

// Base is an immutable, ordered set of documents. Order is insertion order and
// is the order used when composing prompts and rendering the sidebar.
type Base struct {
	docs  []Document
	index map[string]int
}

// New builds a Base from docs, rejecting empty or repeated identifiers.
func New(docs ...Document) (Base, error) {
	b := Base{
		docs:  make([]Document, 0, len(docs)),
		index: make(map[string]int, len(docs)),
	}
	for _, d := range docs {
		if d.ID == "" {
			return Base{}, ErrEmptyID
		}
		if _, ok := b.index[d.ID]; ok {
			return Base{}, fmt.Errorf("%w: %s", ErrDuplicateID, d.ID)
		}
		b.index[d.ID] = len(b.docs)
		b.docs = append(b.docs, d)
	}
	return b, nil
}

// Len returns the number of documents.
func (b Base) Len() int { return len(b.docs) }

// Documents returns a copy of the documents in order.
func (b Base) Documents() []Document {
	out := make([]Document, len(b.docs))
	copy(out, b.docs)
	return out
}

// Texts returns the document texts in order.
func (b Base) Texts() []string {
	out := make([]string, len(b.docs))
	for i, d := range b.docs {
		out[i] = d.Text
	}
	return out
}

// Get looks up a document by identifier.
func (b Base) Get(id string) (Document, error) {
	i, ok := b.index[id]
	if !ok {
		return Document{}, fmt.Errorf("%w: %s", ErrDocNotFound, id)
	}
	return b.docs[i], nil
}

// Label turns an identifier into its display form: underscores become spaces,
// the first letter is upper-cased and the rest lower-cased.
func Label(id string) string {
	s := strings.ToLower(strings.ReplaceAll(id, "_", " "))
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
