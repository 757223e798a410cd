package tui

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/venalora/stillpoint/internal/models"
)

// GeneratePDFReport renders the full session log to a PDF at path.
// Best-effort, one-way: there is no import counterpart.
func GeneratePDFReport(sessions []models.Session, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Breathing Practice Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(60, 8, "Date", "B", 0, "", false, 0, "")
	pdf.CellFormat(30, 8, "Duration", "B", 0, "", false, 0, "")
	pdf.CellFormat(40, 8, "Mode", "B", 0, "", false, 0, "")
	pdf.Ln(9)

	pdf.SetFont("Arial", "", 11)
	if len(sessions) == 0 {
		pdf.Cell(0, 8, "No sessions recorded yet.")
		pdf.Ln(9)
	}
	totalMinutes := 0
	for _, s := range sessions {
		totalMinutes += s.Minutes
		pdf.CellFormat(60, 7, FormatSessionDate(s.CreatedAt), "", 0, "", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d min", s.Minutes), "", 0, "", false, 0, "")
		pdf.CellFormat(40, 7, s.Mode.Title(), "", 0, "", false, 0, "")
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Total: %d sessions, %s", len(sessions), FormatMinutes(totalMinutes)))

	return pdf.OutputFileAndClose(path)
}
