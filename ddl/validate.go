package ddl

import "fmt"

// ReferenceError reports a constraint that points at a table or column
// missing from the schema description. RefTable is empty for primary key
// columns, and RefColumn is empty when the referenced table itself is
// missing.
type ReferenceError struct {
	Table     string
	Column    string
	RefTable  string
	RefColumn string
}

func (e *ReferenceError) Error() string {
	switch {
	case e.RefTable == "":
		return fmt.Sprintf("table %s: primary key column %s does not exist", e.Table, e.Column)
	case e.RefColumn == "":
		return fmt.Sprintf("table %s: foreign key on %s references unknown table %s", e.Table, e.Column, e.RefTable)
	default:
		return fmt.Sprintf("table %s: foreign key on %s references unknown column %s.%s", e.Table, e.Column, e.RefTable, e.RefColumn)
	}
}

// DuplicateConstraintError reports two generated constraints that would share
// a name. Table is the table whose constraint collided with an earlier one.
type DuplicateConstraintError struct {
	Name  string
	Table string
}

func (e *DuplicateConstraintError) Error() string {
	return fmt.Sprintf("table %s: duplicate constraint name %s", e.Table, e.Name)
}

// Validate checks a schema description before any DDL is rendered: every
// table and column name must be present and unique, every primary key column
// and foreign key endpoint must exist, and no two generated constraints may
// share a name.
func Validate(schema string, tables []Table) error {
	if schema == "" {
		return fmt.Errorf("target schema name is empty")
	}

	byName := make(map[string]int, len(tables))
	for i := range tables {
		if tables[i].Name == "" {
			return fmt.Errorf("table %d has no name", i)
		}
		if _, dup := byName[tables[i].Name]; dup {
			return fmt.Errorf("duplicate table %s in schema description", tables[i].Name)
		}
		byName[tables[i].Name] = i
	}

	constraintNames := make(map[string]bool)
	for i := range tables {
		table := &tables[i]

		columns := make(map[string]bool, len(table.Columns))
		for _, col := range table.Columns {
			if col.Name == "" {
				return fmt.Errorf("table %s has a column with no name", table.Name)
			}
			if columns[col.Name] {
				return fmt.Errorf("table %s: duplicate column %s", table.Name, col.Name)
			}
			columns[col.Name] = true
		}

		for _, pk := range table.PrimaryKey {
			if !columns[pk] {
				return &ReferenceError{Table: table.Name, Column: pk}
			}
		}

		for _, col := range table.Columns {
			if !col.Unique {
				continue
			}
			name := UniqueConstraintName(schema, table.Name, col.Name)
			if constraintNames[name] {
				return &DuplicateConstraintError{Name: name, Table: table.Name}
			}
			constraintNames[name] = true
		}

		for _, fk := range table.ForeignKeys {
			if !columns[fk.Column] {
				return fmt.Errorf("table %s: foreign key column %s does not exist", table.Name, fk.Column)
			}
			target, ok := byName[fk.RefTable]
			if !ok {
				return &ReferenceError{Table: table.Name, Column: fk.Column, RefTable: fk.RefTable}
			}
			if !tables[target].HasColumn(fk.RefColumn) {
				return &ReferenceError{Table: table.Name, Column: fk.Column, RefTable: fk.RefTable, RefColumn: fk.RefColumn}
			}
			name := ForeignKeyName(schema, table.Name, fk.Column, fk.RefTable, fk.RefColumn)
			if constraintNames[name] {
				return &DuplicateConstraintError{Name: name, Table: table.Name}
			}
			constraintNames[name] = true
		}
	}

	return nil
}
