package pg

import (
	"context"
	"fmt"
)

const createPartsTable = `
CREATE TABLE IF NOT EXISTS parts (
    part_name TEXT,
    part_id VARCHAR(255),
    mpn_id VARCHAR(255),
    part_price NUMERIC(10, 2),
    install_difficulty VARCHAR(255),
    install_time VARCHAR(255),
    symptoms TEXT,
    appliance_types TEXT,
    replace_parts TEXT,
    brand VARCHAR(255),
    availability VARCHAR(255),
    install_video_url TEXT,
    product_url TEXT
)`

const createRepairsTable = `
CREATE TABLE IF NOT EXISTS repairs (
    product VARCHAR(255),
    symptom VARCHAR(255),
    description TEXT,
    percentage INT,
    parts TEXT,
    symptom_detail_url TEXT,
    difficulty VARCHAR(255),
    repair_video_url TEXT
)`

// EnsureSchema creates the catalog tables when missing.
func EnsureSchema(ctx context.Context, pool *ConnectionPool) error {
	for _, stmt := range []string{createPartsTable, createRepairsTable} {
		if _, err := pool.conn.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// Truncate clears one catalog table before a fresh load.
func Truncate(ctx context.Context, pool *ConnectionPool, table string) error {
	switch table {
	case "parts", "repairs":
	default:
		return fmt.Errorf("unknown catalog table: %s", table)
	}

	if _, err := pool.conn.Exec(ctx, "TRUNCATE TABLE "+table); err != nil {
		return fmt.Errorf("failed to truncate %s: %w", table, err)
	}
	return nil
}
