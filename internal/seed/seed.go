// Package seed populates the sample analytics database: customers, products
// and orders generated from the schema CSV definition.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/askql/askql/internal/schema"
)

const (
	customerCount = 50
	orderCount    = 200
)

var cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
}

var productCategories = []string{"Electronics", "Clothing", "Books", "Home & Garden", "Sports"}

var productNames = map[string][]string{
	"Electronics":   {"Laptop", "Smartphone", "Tablet", "Headphones", "Smart Watch", "Camera"},
	"Clothing":      {"T-Shirt", "Jeans", "Jacket", "Sneakers", "Dress", "Hat"},
	"Books":         {"Fiction Novel", "Biography", "Cookbook", "Self-Help", "Mystery", "Sci-Fi"},
	"Home & Garden": {"Coffee Maker", "Lamp", "Plant Pot", "Bedding Set", "Curtains", "Rug"},
	"Sports":        {"Yoga Mat", "Dumbbells", "Basketball", "Tennis Racket", "Running Shoes", "Water Bottle"},
}

type product struct {
	id       int
	name     string
	category string
	price    float64
	inStock  bool
}

// Run creates the tables described by the schema and fills them with
// deterministic sample data for the given seed.
func Run(ctx context.Context, db *sql.DB, tables []schema.Table, seedValue int64, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	for _, table := range tables {
		statement := createTableSQL(table)
		logger.InfoContext(ctx, "creating table", slog.String("table", table.Name))
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("create table %q: %w", table.Name, err)
		}
	}

	rnd := rand.New(rand.NewSource(seedValue))
	if err := insertCustomers(ctx, db, rnd); err != nil {
		return err
	}
	products, err := insertProducts(ctx, db, rnd)
	if err != nil {
		return err
	}
	if err := insertOrders(ctx, db, rnd, products); err != nil {
		return err
	}

	return verify(ctx, db, logger)
}

func createTableSQL(table schema.Table) string {
	defs := make([]string, 0, len(table.Columns))
	for _, column := range table.Columns {
		def := column.Name + " " + column.DataType
		if !column.Nullable {
			def += " NOT NULL"
		}
		if strings.EqualFold(column.Key, "PRI") {
			def += " PRIMARY KEY"
		}
		defs = append(defs, def)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", table.Name, strings.Join(defs, ", "))
}

func insertCustomers(ctx context.Context, db *sql.DB, rnd *rand.Rand) error {
	base := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= customerCount; i++ {
		signup := base.AddDate(0, 0, rnd.Intn(731)).Format("2006-01-02")
		_, err := db.ExecContext(ctx,
			"INSERT INTO customers VALUES (?, ?, ?, ?, ?, ?)",
			i,
			fmt.Sprintf("Customer %d", i),
			fmt.Sprintf("customer%d@example.com", i),
			18+rnd.Intn(58),
			cities[rnd.Intn(len(cities))],
			signup,
		)
		if err != nil {
			return fmt.Errorf("insert customer %d: %w", i, err)
		}
	}
	return nil
}

func insertProducts(ctx context.Context, db *sql.DB, rnd *rand.Rand) ([]product, error) {
	products := make([]product, 0, len(productCategories)*6)
	id := 1
	for _, category := range productCategories {
		for _, name := range productNames[category] {
			products = append(products, product{
				id:       id,
				name:     name,
				category: category,
				price:    round2(10 + rnd.Float64()*1990),
				inStock:  rnd.Intn(2) == 0,
			})
			id++
		}
	}
	for _, p := range products {
		_, err := db.ExecContext(ctx,
			"INSERT INTO products VALUES (?, ?, ?, ?, ?)",
			p.id, p.name, p.category, p.price, p.inStock,
		)
		if err != nil {
			return nil, fmt.Errorf("insert product %d: %w", p.id, err)
		}
	}
	return products, nil
}

func insertOrders(ctx context.Context, db *sql.DB, rnd *rand.Rand, products []product) error {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= orderCount; i++ {
		p := products[rnd.Intn(len(products))]
		quantity := 1 + rnd.Intn(5)
		_, err := db.ExecContext(ctx,
			"INSERT INTO orders VALUES (?, ?, ?, ?, ?, ?)",
			i,
			1+rnd.Intn(customerCount),
			p.id,
			quantity,
			base.AddDate(0, 0, rnd.Intn(366)).Format("2006-01-02"),
			round2(p.price*float64(quantity)),
		)
		if err != nil {
			return fmt.Errorf("insert order %d: %w", i, err)
		}
	}
	return nil
}

func verify(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	for _, table := range []string{"customers", "products", "orders"} {
		var count int
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			return fmt.Errorf("verify table %q: %w", table, err)
		}
		if count == 0 {
			return fmt.Errorf("table %q is empty after seeding", table)
		}
		logger.InfoContext(ctx, "table seeded", slog.String("table", table), slog.Int("rows", count))
	}
	return nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
