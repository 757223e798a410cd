package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/venalora/stillpoint/internal/audio"
	"github.com/venalora/stillpoint/internal/config"
	"github.com/venalora/stillpoint/internal/database"
	"github.com/venalora/stillpoint/internal/notify"
	"github.com/venalora/stillpoint/internal/settings"
	"github.com/venalora/stillpoint/internal/tui"
	"github.com/venalora/stillpoint/internal/util"
)

func main() {
	ctx := context.Background()

	dataRoot := dataDir()
	_ = os.MkdirAll(dataRoot, 0o755)

	db, err := database.Open(ctx, filepath.Join(dataRoot, config.DBFileName))
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	model := tui.NewMainModel(tui.Context{
		Ctx:      ctx,
		Store:    db,
		Settings: settings.NewStore(db),
		Player:   audio.NewPlayer(filepath.Join(dataRoot, config.SoundsDir)),
	}, notify.NewScheduler(notify.Desktop{}))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func dataDir() string {
	return util.DataDir(config.AppName)
}
