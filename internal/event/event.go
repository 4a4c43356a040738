// internal/event/event.go
package event

import "fmt"

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Buffer Events
	TypeBufferModified // Fired when buffer content changes
	TypeBufferLoaded   // Fired after a buffer is successfully loaded
	TypeBufferSaved    // Fired after a buffer is successfully saved

	// History Events
	TypeUndoAvailabilityChanged // Undo stack crossed the empty/non-empty boundary
	TypeRedoAvailabilityChanged // Redo stack crossed the empty/non-empty boundary
	TypeHistoryApplied          // An undo or redo was applied to the text
	TypeHistoryRestored         // History was replaced from a snapshot

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins
)

func (t Type) String() string {
	switch t {
	case TypeBufferModified:
		return "BufferModified"
	case TypeBufferLoaded:
		return "BufferLoaded"
	case TypeBufferSaved:
		return "BufferSaved"
	case TypeUndoAvailabilityChanged:
		return "UndoAvailabilityChanged"
	case TypeRedoAvailabilityChanged:
		return "RedoAvailabilityChanged"
	case TypeHistoryApplied:
		return "HistoryApplied"
	case TypeHistoryRestored:
		return "HistoryRestored"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// --- Specific Event Data Structures ---

// BufferModifiedData describes one replaced region of the buffer.
type BufferModifiedData struct {
	Start  int
	Before string
	After  string
}

// BufferLoadedData contains info about the loaded buffer.
type BufferLoadedData struct {
	FilePath string
}

// BufferSavedData contains info about the saved buffer.
type BufferSavedData struct {
	FilePath string
}

// AvailabilityData is sent with the undo/redo availability events.
type AvailabilityData struct {
	Available bool
}

// HistoryAppliedData describes a completed undo or redo.
type HistoryAppliedData struct {
	Redo   bool // False for undo
	Start  int
	Cursor int
}

// HistoryRestoredData carries the stack sizes after a restore.
type HistoryRestoredData struct {
	UndoCount int
	RedoCount int
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
