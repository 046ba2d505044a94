package api

import (
	"net/http"

	"github.com/askql/askql/internal/schema"
)

type schemaColumn struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
	Nullable bool   `json:"nullable"`
	Key      string `json:"key,omitempty"`
}

type schemaTable struct {
	Name    string         `json:"name"`
	Columns []schemaColumn `json:"columns"`
}

type schemaResponse struct {
	Tables   []schemaTable `json:"tables"`
	Rendered string        `json:"rendered"`
}

func handleSchema(deps Dependencies, w http.ResponseWriter, r *http.Request) {
	if len(deps.SchemaTables) == 0 {
		writeError(r.Context(), w, http.StatusNotImplemented, "SCHEMA_NOT_CONFIGURED", "schema is not configured", false, nil)
		return
	}

	tables := make([]schemaTable, 0, len(deps.SchemaTables))
	for _, table := range deps.SchemaTables {
		columns := make([]schemaColumn, 0, len(table.Columns))
		for _, column := range table.Columns {
			columns = append(columns, schemaColumn{
				Name:     column.Name,
				DataType: column.DataType,
				Nullable: column.Nullable,
				Key:      column.Key,
			})
		}
		tables = append(tables, schemaTable{Name: table.Name, Columns: columns})
	}

	writeJSON(w, http.StatusOK, schemaResponse{
		Tables:   tables,
		Rendered: schema.Render(deps.SchemaTables),
	})
}
