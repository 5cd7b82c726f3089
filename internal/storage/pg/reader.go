package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"parthunter/internal/domain"
)

// Reader serves the relational lookup tools.
type Reader struct {
	db *pgxpool.Pool
}

func NewReader(pool *ConnectionPool) *Reader {
	return &Reader{db: pool.conn}
}

const selectParts = `
SELECT part_name, part_id, mpn_id, part_price, install_difficulty,
       install_time, symptoms, appliance_types, replace_parts, brand,
       availability, install_video_url, product_url
FROM parts`

const selectRepairs = `
SELECT product, symptom, description, percentage, parts,
       symptom_detail_url, difficulty, repair_video_url
FROM repairs`

// GetPart looks a part up by part id or manufacturer part number.
func (r *Reader) GetPart(ctx context.Context, id string) ([]domain.Part, error) {
	rows, err := r.db.Query(ctx, selectParts+" WHERE part_id = $1 OR mpn_id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to query part %s: %w", id, err)
	}
	defer rows.Close()

	return scanParts(rows)
}

// SearchParts matches parts by name, symptoms, appliance type, or brand.
func (r *Reader) SearchParts(ctx context.Context, query string, limit int) ([]domain.Part, error) {
	pattern := "%" + query + "%"
	rows, err := r.db.Query(ctx, selectParts+`
 WHERE part_name ILIKE $1 OR symptoms ILIKE $1 OR appliance_types ILIKE $1 OR brand ILIKE $1
 LIMIT $2`, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search parts: %w", err)
	}
	defer rows.Close()

	return scanParts(rows)
}

// SearchRepairs matches repair guides by appliance and symptom.
func (r *Reader) SearchRepairs(ctx context.Context, appliance, symptom string, limit int) ([]domain.Repair, error) {
	rows, err := r.db.Query(ctx, selectRepairs+`
 WHERE product ILIKE $1 AND (symptom ILIKE $2 OR description ILIKE $2)
 LIMIT $3`, "%"+appliance+"%", "%"+symptom+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search repairs: %w", err)
	}
	defer rows.Close()

	var repairs []domain.Repair
	for rows.Next() {
		var rep domain.Repair
		var product, symptomCol, desc, parts *string
		var detailURL, difficulty, videoURL *string
		if err := rows.Scan(&product, &symptomCol, &desc, &rep.Percentage, &parts,
			&detailURL, &difficulty, &videoURL); err != nil {
			return nil, fmt.Errorf("failed to scan repair row: %w", err)
		}
		rep.Product = deref(product)
		rep.Symptom = deref(symptomCol)
		rep.Description = deref(desc)
		rep.Parts = deref(parts)
		rep.SymptomDetailURL = deref(detailURL)
		rep.Difficulty = deref(difficulty)
		rep.RepairVideoURL = deref(videoURL)
		repairs = append(repairs, rep)
	}

	return repairs, rows.Err()
}

func scanParts(rows pgx.Rows) ([]domain.Part, error) {
	var parts []domain.Part
	for rows.Next() {
		var p domain.Part
		var name, partID, mpnID, difficulty, installTime *string
		var symptoms, applianceTypes, replaceParts, brand *string
		var availability, videoURL, productURL *string
		if err := rows.Scan(&name, &partID, &mpnID, &p.PartPrice, &difficulty,
			&installTime, &symptoms, &applianceTypes, &replaceParts, &brand,
			&availability, &videoURL, &productURL); err != nil {
			return nil, fmt.Errorf("failed to scan part row: %w", err)
		}
		p.PartName = deref(name)
		p.PartID = deref(partID)
		p.MpnID = deref(mpnID)
		p.InstallDifficulty = deref(difficulty)
		p.InstallTime = deref(installTime)
		p.Symptoms = deref(symptoms)
		p.ApplianceTypes = deref(applianceTypes)
		p.ReplaceParts = deref(replaceParts)
		p.Brand = deref(brand)
		p.Availability = deref(availability)
		p.InstallVideoURL = deref(videoURL)
		p.ProductURL = deref(productURL)
		parts = append(parts, p)
	}

	return parts, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
