package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"parthunter/internal/domain"
)

var partsColumns = []string{
	"part_name", "part_id", "mpn_id", "part_price", "install_difficulty",
	"install_time", "symptoms", "appliance_types", "replace_parts", "brand",
	"availability", "install_video_url", "product_url",
}

var repairsColumns = []string{
	"product", "symptom", "description", "percentage", "parts",
	"symptom_detail_url", "difficulty", "repair_video_url",
}

// PartStorer bulk-loads parts rows via CopyFrom.
type PartStorer struct {
	db *pgxpool.Pool
}

func NewPartStorer(pool *ConnectionPool) *PartStorer {
	return &PartStorer{db: pool.conn}
}

func (s *PartStorer) SaveBulk(ctx context.Context, parts []domain.Part) error {
	rows := make([][]interface{}, len(parts))
	for i, p := range parts {
		rows[i] = []interface{}{
			nullable(p.PartName),
			nullable(p.PartID),
			nullable(p.MpnID),
			p.PartPrice,
			nullable(p.InstallDifficulty),
			nullable(p.InstallTime),
			nullable(p.Symptoms),
			nullable(p.ApplianceTypes),
			nullable(p.ReplaceParts),
			nullable(p.Brand),
			nullable(p.Availability),
			nullable(p.InstallVideoURL),
			nullable(p.ProductURL),
		}
	}

	_, err := s.db.CopyFrom(ctx, pgx.Identifier{"parts"}, partsColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to bulk insert parts: %w", err)
	}
	return nil
}

// RepairStorer bulk-loads repairs rows via CopyFrom.
type RepairStorer struct {
	db *pgxpool.Pool
}

func NewRepairStorer(pool *ConnectionPool) *RepairStorer {
	return &RepairStorer{db: pool.conn}
}

func (s *RepairStorer) SaveBulk(ctx context.Context, repairs []domain.Repair) error {
	rows := make([][]interface{}, len(repairs))
	for i, r := range repairs {
		rows[i] = []interface{}{
			nullable(r.Product),
			nullable(r.Symptom),
			nullable(r.Description),
			r.Percentage,
			nullable(r.Parts),
			nullable(r.SymptomDetailURL),
			nullable(r.Difficulty),
			nullable(r.RepairVideoURL),
		}
	}

	_, err := s.db.CopyFrom(ctx, pgx.Identifier{"repairs"}, repairsColumns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to bulk insert repairs: %w", err)
	}
	return nil
}

// nullable maps empty CSV fields to SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
