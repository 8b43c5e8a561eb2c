package dataset

import (
	"strings"

	"github.com/de-tools/sales-atlas/pkg/models/store"
)

const utf8BOM = "\ufeff"

// header maps trimmed column names to their position. A repeated name
// resolves to its last position.
type header struct {
	names []string
	index map[string]int
}

func newHeader(row []string) header {
	h := header{
		names: make([]string, len(row)),
		index: make(map[string]int, len(row)),
	}
	for i, name := range row {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		name = strings.TrimSpace(name)
		h.names[i] = name
		h.index[name] = i
	}
	return h
}

func (h header) missing(required []string) []string {
	var out []string
	for _, name := range required {
		if _, ok := h.index[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

// record builds a raw record from a row. Rows shorter than the header
// are rejected.
func (h header) record(row []string) (store.RawRecord, bool) {
	if len(row) < len(h.names) {
		return nil, false
	}
	rec := make(store.RawRecord, len(h.index))
	for name, i := range h.index {
		rec[name] = strings.TrimSpace(row[i])
	}
	return rec, true
}
