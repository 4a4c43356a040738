// internal/buffer/buffer.go
package buffer

// Buffer defines the interface for flat text buffer operations.
// Offsets are byte offsets into the text.
type Buffer interface {
	Load(filePath string) error
	Save(filePath string) error
	Text() string
	Len() int
	Slice(start, end int) (string, error)
	// Replace swaps [start, end) for s and returns the text it removed.
	Replace(start, end int, s string) (string, error)
	SetText(text string)
	FilePath() string
	IsModified() bool
}
