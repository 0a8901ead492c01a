package exprql

import (
	"fmt"
	"sort"

	"github.com/zoobzio/dbml"
)

// Schema is a catalog of table columns built from a DBML project. It does not
// validate statements; it only supplies the column lists of selected tables.
type Schema struct {
	project *dbml.Project
	columns map[string][]string
}

// NewSchema indexes the tables and columns of project.
func NewSchema(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &Schema{
		project: project,
		columns: make(map[string][]string),
	}
	for _, table := range project.Tables {
		names := make([]string, 0, len(table.Columns))
		for _, col := range table.Columns {
			names = append(names, col.Name)
		}
		s.columns[table.Name] = names
	}
	return s, nil
}

// Project returns the underlying DBML project.
func (s *Schema) Project() *dbml.Project {
	return s.project
}

// Table returns the reference for a known table.
func (s *Schema) Table(name string) (Table, bool) {
	if _, ok := s.columns[name]; !ok {
		return Table{}, false
	}
	return T(name), true
}

// Tables returns the known tables in name order.
func (s *Schema) Tables() []Table {
	names := make([]string, 0, len(s.columns))
	for name := range s.columns {
		names = append(names, name)
	}
	sort.Strings(names)
	tables := make([]Table, len(names))
	for i, name := range names {
		tables[i] = T(name)
	}
	return tables
}

// Columns returns the column references of t in declaration order, or nil
// when t is unknown. A nil Schema knows no tables.
func (s *Schema) Columns(t Table) []Field {
	if s == nil {
		return nil
	}
	names, ok := s.columns[t.name]
	if !ok {
		return nil
	}
	return t.Fields(names...)
}
