package tui

import (
	"context"
	"testing"

	"github.com/venalora/stillpoint/internal/audio"
	"github.com/venalora/stillpoint/internal/settings"
)

// memSettings is an in-memory settings repository for TUI tests.
type memSettings struct {
	values map[string]string
}

func newMemSettings() *memSettings {
	return &memSettings{values: make(map[string]string)}
}

func (s *memSettings) GetSetting(_ context.Context, key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *memSettings) SetSetting(_ context.Context, key, value string) error {
	s.values[key] = value
	return nil
}

func (s *memSettings) DeleteSetting(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

// testContext wires a Context around the given store with in-memory
// settings and a player pointed at an empty directory, so playback is
// silently skipped.
func testContext(t *testing.T, store Store) Context {
	t.Helper()
	ctx := context.Background()
	st := settings.NewStore(newMemSettings())
	st.Load(ctx)
	return Context{
		Ctx:      ctx,
		Store:    store,
		Settings: st,
		Player:   audio.NewPlayer(t.TempDir()),
	}
}

type fakeNotifier struct {
	calls int
}

func (f *fakeNotifier) Notify(id, title, body string) error {
	f.calls++
	return nil
}
