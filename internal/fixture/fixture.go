// Package fixture declares the playground's tables and their seed records.
package fixture

import (
	"fmt"

	"sqlplayground/internal/sql"
	"sqlplayground/internal/storage"
	"sqlplayground/internal/storage/memstore"
)

// Table is the declaration of one table plus the rows it starts with.
type Table struct {
	Name    string
	Columns []sql.Column
	Rows    []sql.Row
}

var (
	num = sql.Number
	str = sql.String
)

// Tables returns the seed database: employees, departments and projects.
// Each call builds fresh values.
func Tables() []Table {
	return []Table{
		{
			Name: "employees",
			Columns: []sql.Column{
				{Name: "id", Type: sql.TypeNumber, PrimaryKey: true},
				{Name: "name", Type: sql.TypeString},
				{Name: "department", Type: sql.TypeString},
				{Name: "salary", Type: sql.TypeNumber},
			},
			Rows: []sql.Row{
				{num(1), str("John Doe"), str("Engineering"), num(85000)},
				{num(2), str("Jane Smith"), str("Marketing"), num(75000)},
				{num(3), str("Bob Johnson"), str("Engineering"), num(90000)},
				{num(4), str("Alice Brown"), str("HR"), num(65000)},
				{num(5), str("Charlie Wilson"), str("Marketing"), num(80000)},
			},
		},
		{
			Name: "departments",
			Columns: []sql.Column{
				{Name: "id", Type: sql.TypeNumber, PrimaryKey: true},
				{Name: "name", Type: sql.TypeString},
				{Name: "budget", Type: sql.TypeNumber},
			},
			Rows: []sql.Row{
				{num(1), str("Engineering"), num(500000)},
				{num(2), str("Marketing"), num(300000)},
				{num(3), str("HR"), num(200000)},
			},
		},
		{
			Name: "projects",
			Columns: []sql.Column{
				{Name: "id", Type: sql.TypeNumber, PrimaryKey: true},
				{Name: "name", Type: sql.TypeString},
				{Name: "department_id", Type: sql.TypeNumber},
				{Name: "status", Type: sql.TypeString},
				{Name: "budget", Type: sql.TypeNumber},
			},
			Rows: []sql.Row{
				{num(1), str("Website Redesign"), num(2), str("In Progress"), num(50000)},
				{num(2), str("Mobile App"), num(1), str("Completed"), num(120000)},
				{num(3), str("Database Migration"), num(1), str("Planning"), num(75000)},
				{num(4), str("Recruitment Campaign"), num(3), str("In Progress"), num(30000)},
			},
		},
	}
}

// Load creates every fixture table in store and inserts its seed rows.
func Load(store storage.Engine) error {
	for _, t := range Tables() {
		if err := store.CreateTable(t.Name, t.Columns); err != nil {
			return fmt.Errorf("create %s: %w", t.Name, err)
		}
	}

	tx, err := store.Begin(false)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	for _, t := range Tables() {
		for _, row := range t.Rows {
			if _, err := tx.Insert(t.Name, row); err != nil {
				_ = store.Rollback(tx)
				return fmt.Errorf("seed %s: %w", t.Name, err)
			}
		}
	}
	return store.Commit(tx)
}

// NewStore returns an in-memory store holding the seed database.
func NewStore() (storage.Engine, error) {
	store := memstore.New()
	if err := Load(store); err != nil {
		return nil, err
	}
	return store, nil
}
