package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mchexpo/fairhall-contracts/internal/register"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the issued-contracts register workbook.
func (g *Generator) Generate(entries []register.Entry) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Contracts"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Contracts register")
	set("A2", "Exported at")
	set("B2", time.Now().UTC().Format("2006-01-02 15:04"))
	set("A3", "Contracts")
	set("B3", len(entries))

	tableRow := 5
	headers := []string{
		"Issued at",
		"Contract ID",
		"Fair",
		"Hall",
		"Stand area, m2",
		"Company ID",
		"Company",
		"Document",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, entry := range entries {
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), entry.IssuedAt.Format("2006-01-02 15:04"))
		set(fmt.Sprintf("B%d", row), entry.ID.String())
		set(fmt.Sprintf("C%d", row), entry.FairID)
		set(fmt.Sprintf("D%d", row), entry.HallID)
		set(fmt.Sprintf("E%d", row), entry.SquareMeters)
		set(fmt.Sprintf("F%d", row), entry.CompanyID)
		set(fmt.Sprintf("G%d", row), entry.CompanyName)
		set(fmt.Sprintf("H%d", row), entry.Filename)
	}

	_ = file.SetColWidth(sheet, "A", "B", 20)
	_ = file.SetColWidth(sheet, "C", "E", 14)
	_ = file.SetColWidth(sheet, "F", "H", 30)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
