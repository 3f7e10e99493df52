package tabular

// Schema maps logical field names onto the backing table's actual column
// layout. The physical header is the source of truth for column order: rows
// are always emitted in header order, never in field declaration order, so a
// reordered or extended table keeps every value in its own column.
//
// Columns present in the header but unknown to the code are preserved verbatim
// on rewrite. Canonical fields missing from the header read as defaults and
// are not retroactively added by a read.

type Schema struct {
	header []string
	index  map[string]int
}

// NewSchema builds the field→column mapping from the table's current header.
func NewSchema(header []string) Schema {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	return Schema{header: append([]string(nil), header...), index: idx}
}

func (s Schema) Header() []string { return s.header }

func (s Schema) Empty() bool { return len(s.header) == 0 }

// Column returns the physical position of a field, when the header has it.
func (s Schema) Column(field string) (int, bool) {
	i, ok := s.index[field]
	return i, ok
}

// Value reads a field from a row, defaulting to "" when the column is missing
// from the header or the row is short.
func (s Schema) Value(row []string, field string) string {
	i, ok := s.index[field]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// Row serializes field values in the header's column order. prev, when given,
// supplies the cells for every column not present in values. This is what
// keeps unknown/extra columns intact across a rewrite. For inserts prev is nil
// and unmapped columns stay empty.
func (s Schema) Row(values map[string]string, prev []string) []string {
	row := make([]string, len(s.header))
	for i, name := range s.header {
		if v, ok := values[name]; ok {
			row[i] = v
			continue
		}
		if i < len(prev) {
			row[i] = prev[i]
		}
	}
	return row
}
