package warehouse

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// createSchemaSQL defines the warehouse tables, one per generated CSV.
const createSchemaSQL = `
CREATE TABLE IF NOT EXISTS suppliers (
    supplier_id       TEXT PRIMARY KEY,
    name              TEXT NOT NULL,
    country           TEXT NOT NULL,
    category          TEXT NOT NULL,
    lead_time_days    INTEGER NOT NULL,
    reliability_score NUMERIC(4,2) NOT NULL,
    payment_terms     TEXT NOT NULL,
    city              TEXT,
    latitude          NUMERIC(8,4),
    longitude         NUMERIC(8,4)
);

CREATE TABLE IF NOT EXISTS materials (
    material_id   TEXT PRIMARY KEY,
    name          TEXT NOT NULL,
    category      TEXT NOT NULL,
    unit          TEXT NOT NULL,
    unit_cost     NUMERIC(10,2) NOT NULL,
    supplier_id   TEXT NOT NULL REFERENCES suppliers(supplier_id),
    reorder_point INTEGER NOT NULL,
    reorder_qty   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
    product_id      TEXT PRIMARY KEY,
    name            TEXT NOT NULL,
    category        TEXT NOT NULL,
    base_price      NUMERIC(10,2) NOT NULL,
    production_cost NUMERIC(10,2) NOT NULL,
    weight_kg       NUMERIC(6,1) NOT NULL,
    active          BOOLEAN NOT NULL
);

CREATE TABLE IF NOT EXISTS bill_of_materials (
    bom_id          TEXT PRIMARY KEY,
    product_id      TEXT NOT NULL REFERENCES products(product_id),
    material_id     TEXT NOT NULL REFERENCES materials(material_id),
    quantity_needed NUMERIC(10,2) NOT NULL,
    unit            TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS customers (
    customer_id    TEXT PRIMARY KEY,
    name           TEXT NOT NULL,
    type           TEXT NOT NULL,
    channel        TEXT NOT NULL,
    city           TEXT NOT NULL,
    region         TEXT NOT NULL,
    created_date   DATE NOT NULL,
    lifetime_value NUMERIC(12,2) NOT NULL,
    segment        TEXT NOT NULL,
    email          TEXT,
    phone          TEXT
);

CREATE TABLE IF NOT EXISTS purchase_orders (
    po_id             TEXT PRIMARY KEY,
    supplier_id       TEXT NOT NULL REFERENCES suppliers(supplier_id),
    material_id       TEXT NOT NULL REFERENCES materials(material_id),
    quantity          INTEGER NOT NULL,
    unit_cost         NUMERIC(10,2) NOT NULL,
    total_cost        NUMERIC(12,2) NOT NULL,
    order_date        DATE NOT NULL,
    expected_delivery DATE NOT NULL,
    actual_delivery   DATE,
    status            TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS production_orders (
    production_id   TEXT PRIMARY KEY,
    product_id      TEXT NOT NULL REFERENCES products(product_id),
    quantity        INTEGER NOT NULL,
    start_date      DATE NOT NULL,
    end_date        DATE NOT NULL,
    status          TEXT NOT NULL,
    production_cost NUMERIC(12,2) NOT NULL,
    defect_count    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS sales_orders (
    order_id      TEXT PRIMARY KEY,
    customer_id   TEXT NOT NULL REFERENCES customers(customer_id),
    order_date    DATE NOT NULL,
    channel       TEXT NOT NULL,
    status        TEXT NOT NULL,
    subtotal      NUMERIC(12,2) NOT NULL,
    discount_pct  NUMERIC(4,1) NOT NULL,
    total         NUMERIC(12,2) NOT NULL,
    shipping_cost NUMERIC(10,2) NOT NULL,
    delivery_date DATE NOT NULL,
    rating        NUMERIC(2,1)
);

CREATE TABLE IF NOT EXISTS order_line_items (
    line_id    TEXT PRIMARY KEY,
    order_id   TEXT NOT NULL REFERENCES sales_orders(order_id),
    product_id TEXT NOT NULL REFERENCES products(product_id),
    quantity   INTEGER NOT NULL,
    unit_price NUMERIC(10,2) NOT NULL,
    line_total NUMERIC(12,2) NOT NULL
);

CREATE TABLE IF NOT EXISTS inventory_snapshots (
    snapshot_id        TEXT PRIMARY KEY,
    date               DATE NOT NULL,
    product_id         TEXT NOT NULL REFERENCES products(product_id),
    quantity_on_hand   INTEGER NOT NULL,
    quantity_reserved  INTEGER NOT NULL,
    quantity_available INTEGER NOT NULL,
    reorder_needed     BOOLEAN NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_metrics (
    date                DATE PRIMARY KEY,
    revenue             NUMERIC(14,2) NOT NULL,
    orders              INTEGER NOT NULL,
    avg_order_value     NUMERIC(12,2) NOT NULL,
    new_customers       INTEGER NOT NULL,
    returning_customers INTEGER NOT NULL,
    production_units    INTEGER NOT NULL,
    defect_rate         NUMERIC(6,4) NOT NULL,
    inventory_turnover  NUMERIC(6,2) NOT NULL,
    online_share        NUMERIC(6,4) NOT NULL
);

CREATE TABLE IF NOT EXISTS supplier_performance (
    month         TEXT NOT NULL,
    supplier_id   TEXT NOT NULL REFERENCES suppliers(supplier_id),
    on_time_pct   NUMERIC(5,1),
    quality_score NUMERIC(5,1) NOT NULL,
    avg_lead_days NUMERIC(5,1) NOT NULL,
    total_orders  INTEGER NOT NULL,
    total_spend   NUMERIC(12,2) NOT NULL,
    PRIMARY KEY (month, supplier_id)
);
`

// loadOrder lists the tables in foreign-key-safe insert order.
var loadOrder = []string{
	"suppliers",
	"materials",
	"products",
	"bill_of_materials",
	"customers",
	"purchase_orders",
	"production_orders",
	"sales_orders",
	"order_line_items",
	"inventory_snapshots",
	"daily_metrics",
	"supplier_performance",
}

// CreateSchema creates all warehouse tables.
func CreateSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, createSchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// DropSchema drops all warehouse tables, reverse dependency order.
func DropSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for i := len(loadOrder) - 1; i >= 0; i-- {
		if _, err := pool.Exec(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", loadOrder[i])); err != nil {
			return fmt.Errorf("failed to drop %s: %w", loadOrder[i], err)
		}
	}
	return nil
}
