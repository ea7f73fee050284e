package command

// Lifecycle event names, fired in this order over one run. EventOutput
// fires only when usage text is rendered; EventConstructed fires once at
// construction time rather than per run.
const (
	EventConstructed      = "constructed"
	EventRun              = "run"
	EventOptionsAdded     = "options-added"
	EventOptionsAvailable = "options-available"
	EventOutput           = "output"
	EventPreMain          = "pre-main"
	EventShutdown         = "shutdown"
)
