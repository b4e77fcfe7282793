package draw

import "golang.org/x/term"

// termSize wraps x/term so the rest of the package stays testable with a
// custom TermSizeFunc.
func termSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}
