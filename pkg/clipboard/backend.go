package clipboard

// Backend is the narrow contract over a platform clipboard. All read
// methods report ok=false when the clipboard does not currently offer
// that representation.
type Backend interface {
	// Sequence returns a value that changes whenever the clipboard
	// content changes. It does not need to be a counter, only distinct
	// across consecutive selections.
	Sequence() (uint64, error)

	ReadText() (string, bool)
	ReadHTML() (string, bool)
	ReadImage() ([]byte, bool)
	ReadFiles() ([]string, bool)

	WriteText(text string) error
}
