// Package terminal reports the size of the terminal the game is drawn on.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// SizeOf returns the width and height of the terminal behind w.
// Writers that are not terminals report the defaults.
func SizeOf(w io.Writer) (width, height int) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// WidthOf returns the terminal width behind w.
func WidthOf(w io.Writer) int {
	width, _ := SizeOf(w)
	return width
}
