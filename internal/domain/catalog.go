package domain

import (
	"fmt"
	"strings"
)

// Part is one row of the parts catalog.
type Part struct {
	PartName          string
	PartID            string
	MpnID             string
	PartPrice         *float64
	InstallDifficulty string
	InstallTime       string
	Symptoms          string
	ApplianceTypes    string
	ReplaceParts      string
	Brand             string
	Availability      string
	InstallVideoURL   string
	ProductURL        string
}

// Text renders the part as field lines for tool output.
func (p Part) Text() string {
	var b strings.Builder
	writeField(&b, "part_name", p.PartName)
	writeField(&b, "part_id", p.PartID)
	writeField(&b, "mpn_id", p.MpnID)
	if p.PartPrice != nil {
		writeField(&b, "part_price", fmt.Sprintf("%.2f", *p.PartPrice))
	}
	writeField(&b, "install_difficulty", p.InstallDifficulty)
	writeField(&b, "install_time", p.InstallTime)
	writeField(&b, "symptoms", p.Symptoms)
	writeField(&b, "appliance_types", p.ApplianceTypes)
	writeField(&b, "replace_parts", p.ReplaceParts)
	writeField(&b, "brand", p.Brand)
	writeField(&b, "availability", p.Availability)
	writeField(&b, "install_video_url", p.InstallVideoURL)
	writeField(&b, "product_url", p.ProductURL)
	return strings.TrimRight(b.String(), "\n")
}

// Repair is one row of the repairs catalog.
type Repair struct {
	Product          string
	Symptom          string
	Description      string
	Percentage       *int
	Parts            string
	SymptomDetailURL string
	Difficulty       string
	RepairVideoURL   string
}

func (r Repair) Text() string {
	var b strings.Builder
	writeField(&b, "product", r.Product)
	writeField(&b, "symptom", r.Symptom)
	writeField(&b, "description", r.Description)
	if r.Percentage != nil {
		writeField(&b, "percentage", fmt.Sprintf("%d", *r.Percentage))
	}
	writeField(&b, "parts", r.Parts)
	writeField(&b, "symptom_detail_url", r.SymptomDetailURL)
	writeField(&b, "difficulty", r.Difficulty)
	writeField(&b, "repair_video_url", r.RepairVideoURL)
	return strings.TrimRight(b.String(), "\n")
}

func writeField(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString(name)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}
