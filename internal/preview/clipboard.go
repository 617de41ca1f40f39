package preview

import "github.com/atotto/clipboard"

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Copy places text on the system clipboard.
func Copy(text string) error {
	return writeClipboard(text)
}
