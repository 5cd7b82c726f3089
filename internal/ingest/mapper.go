package ingest

import (
	"strconv"
	"strings"

	"parthunter/internal/domain"
	"parthunter/internal/ingest/reader"
)

// MapPart converts one CSV record into a parts row. Empty fields stay as
// NULLs; an unparsable price becomes NULL rather than failing the import.
func MapPart(rec reader.Record) domain.Part {
	return domain.Part{
		PartName:          rec["part_name"],
		PartID:            rec["part_id"],
		MpnID:             rec["mpn_id"],
		PartPrice:         parsePrice(rec["part_price"]),
		InstallDifficulty: rec["install_difficulty"],
		InstallTime:       rec["install_time"],
		Symptoms:          rec["symptoms"],
		ApplianceTypes:    rec["appliance_types"],
		ReplaceParts:      rec["replace_parts"],
		Brand:             rec["brand"],
		Availability:      rec["availability"],
		InstallVideoURL:   rec["install_video_url"],
		ProductURL:        rec["product_url"],
	}
}

// MapRepair converts one CSV record into a repairs row. The source data
// capitalizes the Product column.
func MapRepair(rec reader.Record) domain.Repair {
	return domain.Repair{
		Product:          rec["Product"],
		Symptom:          rec["symptom"],
		Description:      rec["description"],
		Percentage:       parsePercentage(rec["percentage"]),
		Parts:            rec["parts"],
		SymptomDetailURL: rec["symptom_detail_url"],
		Difficulty:       rec["difficulty"],
		RepairVideoURL:   rec["repair_video_url"],
	}
}

func parsePrice(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parsePercentage(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}
