package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/mchexpo/fairhall-contracts/internal/model"
)

const (
	registrationFee = 3999.00
	rentPerM2       = 925.00
)

// Generator draws the exhibition-hall rental contract.
type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Times"}
}

func (g *Generator) Generate(data model.ContractData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "COMPANY INFORMATION", "", 1, "L", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	companyLines := [][2]string{
		{fmt.Sprintf("Company: %s", data.Company.Name), "MCH Formland"},
		{fmt.Sprintf("CVR: %s", safeValue(data.Company.ID)), "Vardevej 1, DK-7400 Herning"},
		{fmt.Sprintf("Address: %s", safeValue(data.Company.Address)), ""},
		{fmt.Sprintf("Phone: %s", safeValue(data.Company.Phone)), ""},
	}
	for _, line := range companyLines {
		pdf.CellFormat(110, 6, tr(line[0]), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, tr(line[1]), "", 1, "L", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, "Kontrakt", "", 1, "R", false, 0, "")
	divider(pdf)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(25, 8, "Fair:", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Fair %d — %s", data.FairID, hallLabel(data))), "", 1, "L", false, 0, "")
	divider(pdf)

	pdf.SetFont(g.fontName, "", 11)
	standLines := []string{
		fmt.Sprintf("Hall: %s", hallLabel(data)),
		fmt.Sprintf("Stand area: %d m2", data.SquareMeters),
	}
	for _, line := range standLines {
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
	divider(pdf)

	rent := float64(data.SquareMeters) * rentPerM2
	total := registrationFee + rent

	headers := []string{"Description", "Quantity", "Unit price", "Total"}
	widths := []float64{80, 30, 35, 35}
	drawTableRow(pdf, g.fontName, headers, widths, true)
	drawTableRow(pdf, g.fontName, []string{"Registration fee", "1", formatKr(registrationFee), formatKr(registrationFee)}, widths, false)
	drawTableRow(pdf, g.fontName, []string{"Stand rent", fmt.Sprintf("%d m2", data.SquareMeters), formatKr(rentPerM2), formatKr(rent)}, widths, false)

	pdf.Ln(2)
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Total: %s", formatKr(total))), "", 1, "R", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont(g.fontName, "", 10)
	terms := []string{
		"Se vilkår for deltagelse og betalingsbetingelser på efterfølgende sider.",
		"MCH Ordensregler kan findes på: www.formland.dk",
		"OBS: Kontrakten er IKKE en faktura. Særskilt faktura vil blive sendt senere.",
	}
	for _, line := range terms {
		pdf.CellFormat(0, 5, tr(line), "", 1, "L", false, 0, "")
	}

	pdf.Ln(10)
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(60, 6, "______________________", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, "______________________", "", 1, "L", false, 0, "")
	pdf.CellFormat(60, 6, "Date", "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Signature", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func hallLabel(data model.ContractData) string {
	if data.HallName != "" {
		return data.HallName
	}
	return fmt.Sprintf("Hall %d", data.HallID)
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func divider(pdf *gofpdf.Fpdf) {
	pdf.Ln(1)
	x, y := pdf.GetX(), pdf.GetY()
	width, _ := pdf.GetPageSize()
	pdf.Line(x, y, width-15, y)
	pdf.Ln(3)
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "—"
	}
	return value
}

func formatKr(value float64) string {
	return fmt.Sprintf("%.2f kr", value)
}
