// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bookmarks

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// FormatError reports a bookmark file whose content is not a document
// this package can merge into.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "bookmark file format: " + e.Reason
}

// Document is a parsed bookmark file. The JSON is kept as generic values
// so that fields this tool does not know about (guids, meta_info, sync
// state, the browser's checksum) survive a read-merge-write round trip
// untouched.
type Document struct {
	data map[string]any
}

// ParseDocument decodes a bookmark file and validates the one structural
// requirement the merge has: a reachable "other" root. Numbers are kept
// as json.Number so foreign numeric fields round-trip without float
// damage.
func ParseDocument(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, &FormatError{Reason: err.Error()}
	}

	doc := &Document{data: m}
	if _, err := doc.otherRoot(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Marshal serializes the document with two-space indentation and without
// HTML escaping, matching how browsers write the file themselves.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d.data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// otherRoot returns the "other bookmarks" root node. Its absence is a
// fatal structural error: the document is not one we can merge into.
func (d *Document) otherRoot() (map[string]any, error) {
	roots, ok := d.data["roots"].(map[string]any)
	if !ok {
		return nil, &FormatError{Reason: `missing "roots" object`}
	}
	other, ok := roots["other"].(map[string]any)
	if !ok {
		return nil, &FormatError{Reason: `missing "other" root under "roots"`}
	}
	return other, nil
}

func nodeString(node map[string]any, key string) string {
	s, _ := node[key].(string)
	return s
}

func nodeChildren(node map[string]any) []any {
	children, _ := node["children"].([]any)
	return children
}

// maxNodeID walks every node under roots and returns the largest
// string-encoded integer id found, or zero when there is none.
func maxNodeID(d *Document) int64 {
	var max int64
	roots, _ := d.data["roots"].(map[string]any)
	for _, root := range roots {
		node, ok := root.(map[string]any)
		if !ok {
			continue
		}
		walkIDs(node, &max)
	}
	return max
}

func walkIDs(node map[string]any, max *int64) {
	if id, err := strconv.ParseInt(nodeString(node, "id"), 10, 64); err == nil && id > *max {
		*max = id
	}
	for _, child := range nodeChildren(node) {
		if m, ok := child.(map[string]any); ok {
			walkIDs(m, max)
		}
	}
}

// Generator issues node ids and creation timestamps for a single merge
// run. Ids are allocated sequentially starting past the document's
// current maximum, so every id issued is unique within the run and never
// collides with a live node.
type Generator struct {
	now    func() time.Time
	nextID int64
}

// NewGenerator seeds a Generator from the document's existing ids.
func NewGenerator(doc *Document) *Generator {
	return &Generator{
		now:    time.Now,
		nextID: maxNodeID(doc) + 1,
	}
}

// ID returns the next unused node id.
func (g *Generator) ID() string {
	id := g.nextID
	g.nextID++
	return strconv.FormatInt(id, 10)
}

// Timestamp returns the current time in bookmark encoding.
func (g *Generator) Timestamp() string {
	return TimeToChrome(g.now())
}
