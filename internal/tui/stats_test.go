package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/venalora/stillpoint/internal/models"
	"github.com/venalora/stillpoint/internal/testutil"
)

func TestRefreshDegradesToEmptyOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStore(ctrl)
	store.EXPECT().AllSessions(gomock.Any()).Return(nil, errors.New("db closed"))

	m := NewStatsModel(testContext(t, store))
	if m.sessions != nil {
		t.Fatalf("sessions = %v, want none", m.sessions)
	}
	if !strings.Contains(m.View(), "0 sessions") {
		t.Fatal("view does not show an empty log")
	}
}

func TestViewShowsWeeklySummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now()
	sessions := []models.Session{
		testutil.NewSession().At(now).WithMinutes(5).Build(),
		testutil.NewSession().At(now).WithMinutes(10).WithMode(models.ModeFocus).Build(),
	}
	store := NewMockStore(ctrl)
	store.EXPECT().AllSessions(gomock.Any()).Return(sessions, nil)

	m := NewStatsModel(testContext(t, store))
	view := m.View()
	if !strings.Contains(view, "2 sessions · 15m") {
		t.Fatalf("weekly summary missing from view:\n%s", view)
	}
	if !strings.Contains(view, "█") {
		t.Fatal("week chart has no bar for a practiced day")
	}
}

func TestExportPDFCreatesReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStore(ctrl)
	store.EXPECT().AllSessions(gomock.Any()).Return([]models.Session{
		testutil.NewSession().WithMinutes(10).Build(),
	}, nil)

	m := NewStatsModel(testContext(t, store))
	m.reportsDir = t.TempDir()

	msg := m.exportPDF()
	if !strings.HasPrefix(msg, "Exported ") {
		t.Fatalf("message = %q", msg)
	}
	path := strings.TrimPrefix(msg, "Exported ")
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("report is empty")
	}
}

func TestExportJSONWritesStoreSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payload := []byte(`{"version": 1, "sessions": []}`)
	store := NewMockStore(ctrl)
	store.EXPECT().AllSessions(gomock.Any()).Return(nil, nil)
	store.EXPECT().ExportJSON(gomock.Any()).Return(payload, nil)

	m := NewStatsModel(testContext(t, store))
	m.reportsDir = t.TempDir()

	msg := m.exportJSON()
	if !strings.HasPrefix(msg, "Exported ") {
		t.Fatalf("message = %q", msg)
	}
	want := filepath.Join(m.reportsDir,
		"sessions_"+time.Now().Format("2006-01-02")+".json")
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("export not written: %v", err)
	}
	if string(data) != string(payload) {
		t.Fatalf("export = %q, want %q", data, payload)
	}
}

func TestExportJSONReportsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStore(ctrl)
	store.EXPECT().AllSessions(gomock.Any()).Return(nil, nil)
	store.EXPECT().ExportJSON(gomock.Any()).Return(nil, errors.New("db closed"))

	m := NewStatsModel(testContext(t, store))
	m.reportsDir = t.TempDir()
	if msg := m.exportJSON(); msg != "Export failed." {
		t.Fatalf("message = %q", msg)
	}
}

func TestRefreshKeyReloadsSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockStore(ctrl)
	first := store.EXPECT().AllSessions(gomock.Any()).Return(nil, nil)
	store.EXPECT().AllSessions(gomock.Any()).Return([]models.Session{
		testutil.NewSession().WithMinutes(5).Build(),
	}, nil).After(first)

	m := NewStatsModel(testContext(t, store))
	m, _ = m.Update(runeKey('r'))
	if len(m.sessions) != 1 {
		t.Fatalf("sessions after refresh = %d, want 1", len(m.sessions))
	}
}
