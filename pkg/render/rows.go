// Package render turns API resources into columns and rows, and writes them
// as tables, JSON, or YAML.
package render

// Record is a single resource as an ordered list of columns and their values.
type Record struct {
	Columns []string
	Values  []interface{}
}

// NewRecord creates a record from ordered columns and values, both must have the same length.
func NewRecord(columns []string, values []interface{}) *Record {
	return &Record{
		Columns: columns,
		Values:  values,
	}
}

// Rows returns an iterator with the record as its only row.
func (r *Record) Rows() *Rows {
	return SliceRows(r.Columns, [][]interface{}{r.Values})
}

// Rows is a lazy iterator over rows sharing the same columns.
//
// Rows are produced on demand by calling Next, it is finite and can't be restarted:
// once Next returned false, it keeps returning false.
//
//	for rows.Next() {
//		row := rows.Row()
//		...
//	}
type Rows struct {
	columns []string
	next    func() ([]interface{}, bool)
	row     []interface{}
	done    bool
}

// NewRows creates an iterator calling next to produce each row, until it returns false.
func NewRows(columns []string, next func() ([]interface{}, bool)) *Rows {
	return &Rows{
		columns: columns,
		next:    next,
	}
}

// SliceRows creates an iterator over rows which are already known.
func SliceRows(columns []string, rows [][]interface{}) *Rows {
	var i int
	return NewRows(columns, func() ([]interface{}, bool) {
		if i >= len(rows) {
			return nil, false
		}
		i++
		return rows[i-1], true
	})
}

// Columns returns the column names.
func (r *Rows) Columns() []string {
	return r.columns
}

// Next advances to the next row, it returns false when there are no more rows.
func (r *Rows) Next() bool {
	if r.done {
		return false
	}
	row, ok := r.next()
	if !ok {
		r.done = true
		r.row = nil
		return false
	}
	r.row = row
	return true
}

// Row returns the current row.
func (r *Rows) Row() []interface{} {
	return r.row
}
