// Package notify turns the configured reminder time into a recurring
// daily notification delivered through the host platform.
package notify

import (
	"github.com/gen2brain/beeep"
)

// Notifier delivers one notification. The production implementation
// hands off to the OS; tests substitute fakes.
type Notifier interface {
	Notify(id, title, body string) error
}

// Desktop delivers via the platform notification service.
type Desktop struct{}

func (Desktop) Notify(id, title, body string) error {
	beeep.AppName = id
	return beeep.Notify(title, body, "")
}
