package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/venalora/stillpoint/internal/models"
	"github.com/venalora/stillpoint/internal/testutil"
)

func TestGeneratePDFReport(t *testing.T) {
	sessions := []models.Session{
		testutil.NewSession().At(time.Now().Add(-48 * time.Hour)).WithMinutes(10).Build(),
		testutil.NewSession().WithMinutes(5).WithMode(models.ModeRelax).Build(),
	}
	path := filepath.Join(t.TempDir(), "report.pdf")

	if err := GeneratePDFReport(sessions, path); err != nil {
		t.Fatalf("GeneratePDFReport: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("report is empty")
	}
}

func TestGeneratePDFReportEmptyLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := GeneratePDFReport(nil, path); err != nil {
		t.Fatalf("GeneratePDFReport: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("report not written: %v", err)
	}
}
