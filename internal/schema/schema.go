// Package schema parses the flat table/column schema CSV and renders it as
// prompt-ready text for the model.
package schema

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

type Column struct {
	Name     string
	DataType string
	Nullable bool
	Key      string
}

type Table struct {
	Name    string
	Columns []Column
}

// Parse reads a schema CSV with the header
// table_name,column_name,data_type,nullable,key and groups rows by table,
// preserving file order for both tables and columns.
func Parse(r io.Reader) ([]Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read schema header: %w", err)
	}
	index := map[string]int{}
	for i, name := range header {
		index[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"table_name", "column_name", "data_type"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("schema csv is missing column %q", required)
		}
	}

	var tables []Table
	byName := map[string]int{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read schema row: %w", err)
		}

		tableName := strings.TrimSpace(record[index["table_name"]])
		if tableName == "" {
			continue
		}
		column := Column{
			Name:     strings.TrimSpace(record[index["column_name"]]),
			DataType: strings.TrimSpace(record[index["data_type"]]),
			Nullable: true,
		}
		if i, ok := index["nullable"]; ok && i < len(record) {
			column.Nullable = !strings.EqualFold(strings.TrimSpace(record[i]), "no")
		}
		if i, ok := index["key"]; ok && i < len(record) {
			column.Key = strings.TrimSpace(record[i])
		}

		pos, ok := byName[tableName]
		if !ok {
			pos = len(tables)
			byName[tableName] = pos
			tables = append(tables, Table{Name: tableName})
		}
		tables[pos].Columns = append(tables[pos].Columns, column)
	}

	if len(tables) == 0 {
		return nil, fmt.Errorf("schema csv contains no tables")
	}
	return tables, nil
}

// Render produces the prompt text supplied to every model call.
func Render(tables []Table) string {
	var b strings.Builder
	for _, table := range tables {
		b.WriteString("\nTable: ")
		b.WriteString(table.Name)
		b.WriteString("\nColumns:")
		for _, column := range table.Columns {
			b.WriteString(fmt.Sprintf("\n  - %s (%s)", column.Name, column.DataType))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
