package terminal

// Backend abstracts platform-specific terminal operations
type Backend interface {
	// Init enters raw mode
	Init() error
	// Fini restores the mode saved by Init
	Fini()

	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// Read blocks until input is available, the poll interval elapses or stopCh is closed
	// Returns nil data on timeout and stop, io.EOF when input is closed
	Read(stopCh <-chan struct{}) ([]byte, error)
}
