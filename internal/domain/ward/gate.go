package ward

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/statekit"
)

// Gate states. These must remain untyped string constants for
// statekit.StateID compatibility.
const (
	GateOpen   = "open"
	GateLocked = "locked"
)

// Gate events.
const (
	EventLock   = "lock"
	EventUnlock = "unlock"
)

// Description prefixes that encode the gate state in the .ward file.
const (
	lockedPrefix   = "LOCKED: "
	unlockedPrefix = "UNLOCKED: "
)

// GateState derives the gate state from a stored ward description. A ward
// is locked only when its description carries the LOCKED: prefix.
func GateState(cfg *Config) string {
	if cfg != nil && strings.HasPrefix(cfg.Description, lockedPrefix) {
		return GateLocked
	}
	return GateOpen
}

// LockDescription builds the description recorded when locking a ward.
func LockDescription(message string) string {
	return lockedPrefix + message
}

// UnlockDescription builds the description recorded when unlocking a ward.
func UnlockDescription(message string) string {
	return unlockedPrefix + message
}

// GateContext carries gate data through the state machine.
type GateContext struct {
	Path string
}

// GateMachine defines the valid lock transitions for one warded directory.
// Locking a locked ward, or unlocking an open one, is rejected instead of
// silently replanting the marker file.
type GateMachine struct {
	interpreter *statekit.Interpreter[GateContext]
}

// NewGateMachine builds a gate machine starting from initialState.
func NewGateMachine(initialState string, path string) (*GateMachine, error) {
	builder := statekit.NewMachine[GateContext]("ward-gate").
		WithInitial(statekit.StateID(initialState)).
		WithContext(GateContext{Path: path})

	builder.State(GateOpen).
		On(EventLock).Target(GateLocked).
		Done()

	builder.State(GateLocked).
		On(EventUnlock).Target(GateOpen).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("build gate machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &GateMachine{interpreter: interpreter}, nil
}

// Transition attempts to apply the event. In statekit an invalid event
// leaves the state unchanged, which is reported as an error here.
func (g *GateMachine) Transition(event string) error {
	before := g.Current()
	g.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := g.Current()

	if before == after {
		return fmt.Errorf("the action '%s' is not allowed while the ward is '%s'", event, before)
	}
	return nil
}

// Current returns the current gate state.
func (g *GateMachine) Current() string {
	return string(g.interpreter.State().Value)
}
