package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `table_name,column_name,data_type,nullable,key
customers,customer_id,INTEGER,NO,PRI
customers,name,VARCHAR,NO,
orders,order_id,INTEGER,NO,PRI
orders,total_amount,DOUBLE,YES,
`

func TestParseGroupsColumnsByTable(t *testing.T) {
	tables, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("tables = %d", len(tables))
	}
	if tables[0].Name != "customers" || tables[1].Name != "orders" {
		t.Fatalf("table order = %q, %q", tables[0].Name, tables[1].Name)
	}
	if len(tables[0].Columns) != 2 {
		t.Fatalf("customers columns = %d", len(tables[0].Columns))
	}
	first := tables[0].Columns[0]
	if first.Name != "customer_id" || first.DataType != "INTEGER" {
		t.Fatalf("column = %+v", first)
	}
	if first.Nullable {
		t.Fatal("customer_id should not be nullable")
	}
	if first.Key != "PRI" {
		t.Fatalf("Key = %q", first.Key)
	}
	if !tables[1].Columns[1].Nullable {
		t.Fatal("total_amount should be nullable")
	}
}

func TestParseRejectsMissingColumns(t *testing.T) {
	_, err := Parse(strings.NewReader("table_name,column_name\ncustomers,id\n"))
	if err == nil {
		t.Fatal("expected error for missing data_type column")
	}
}

func TestParseRejectsEmptySchema(t *testing.T) {
	_, err := Parse(strings.NewReader("table_name,column_name,data_type,nullable,key\n"))
	if err == nil {
		t.Fatal("expected error for empty schema")
	}
}

func TestRenderMatchesPromptLayout(t *testing.T) {
	tables, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	got := Render(tables)
	want := "\nTable: customers\nColumns:\n  - customer_id (INTEGER)\n  - name (VARCHAR)\n\nTable: orders\nColumns:\n  - order_id (INTEGER)\n  - total_amount (DOUBLE)"
	if got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tables, err := loadFromFile(path)
	if err != nil {
		t.Fatalf("loadFromFile() error = %v", err)
	}
	if len(tables) != 2 {
		t.Fatalf("tables = %d", len(tables))
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := loadFromFile(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing schema file")
	}
}
