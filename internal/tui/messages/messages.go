package messages

import (
	"phonefield/internal/config"
	"phonefield/internal/field"
)

type ErrorMsg struct {
	Err error
}

// CountryChosenMsg is sent when a picker entry is confirmed.
type CountryChosenMsg struct {
	ISO2 string
}

// EmitPendingMsg carries a deferred emission token back through the event
// queue so it runs strictly after the update that scheduled it.
type EmitPendingMsg struct {
	Pending field.Pending
}

// ConfigReloadedMsg is sent when the watched config file changes on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}
