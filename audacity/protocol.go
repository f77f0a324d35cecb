package audacity

import "time"

// Protocol constants for the mod-script-pipe channel.
const (
	// StatusPrefix begins the final line of every reply from Audacity.
	StatusPrefix = "BatchCommand finished: "

	// StatusOK is the status value reported for a successful command.
	StatusOK = "OK"

	// StatusFailed is the status value reported for a failed command.
	StatusFailed = "Failed!"

	// DefaultTimeout is applied to Do calls whose context carries no
	// deadline. Effects on long selections can be slow, so this is generous.
	DefaultTimeout = 30 * time.Second

	// DefaultCommandDelay is the pause inserted between consecutive commands
	// in DoAll. Audacity can drop commands that arrive back to back.
	DefaultCommandDelay = time.Millisecond
)
