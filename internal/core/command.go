package core

// Command is a discrete user action forwarded by a frontend.
type Command int

const (
	// CommandSelectNext moves the highlight to the next electron.
	CommandSelectNext Command = iota
	// CommandEmit sends a photon away from the highlighted electron.
	CommandEmit
	// CommandAbsorb sends a photon towards the highlighted electron.
	CommandAbsorb
	// CommandAddElectron appends a new electron.
	CommandAddElectron
)

func (c Command) String() string {
	switch c {
	case CommandSelectNext:
		return "select-next"
	case CommandEmit:
		return "emit"
	case CommandAbsorb:
		return "absorb"
	case CommandAddElectron:
		return "add-electron"
	}
	return "unknown"
}

// EventKind enumerates things a sim reports after a tick or command.
type EventKind int

const (
	EventEmitted EventKind = iota
	EventAbsorbing
	EventCollided
	EventExpired
)

// Event describes a single photon lifecycle transition.
type Event struct {
	Kind     EventKind
	Electron int
	Shell    uint8
}
