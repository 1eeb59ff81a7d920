//go:build (aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris) && !js && !wasip1

package hostbridge

import (
	"os"

	"github.com/BourgeoisBear/rasterm"
	"golang.org/x/crypto/ssh/terminal"
	"golang.org/x/sys/unix"
)

func getTermSize() (termSize, error) {
	var err error
	var f *os.File
	if f, err = os.OpenFile("/dev/tty", unix.O_NOCTTY|unix.O_CLOEXEC|unix.O_NDELAY|unix.O_RDWR, 0666); err == nil {
		defer f.Close()
		var sz *unix.Winsize
		if sz, err = unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ); err == nil {
			return termSize{Rows: uint(sz.Row), Cols: uint(sz.Col), XPixel: uint(sz.Xpixel), YPixel: uint(sz.Ypixel)}, nil
		}
	}
	var w, h int
	if w, h, err = terminal.GetSize(int(os.Stdout.Fd())); err == nil {
		return termSize{Rows: uint(h), Cols: uint(w)}, nil
	}
	return termSize{}, err
}

// terminalGraphics names the inline image protocol of the terminal, judged
// from the environment only.
func terminalGraphics() string {
	switch {
	case rasterm.IsTermKitty():
		return "kitty"
	case rasterm.IsTermItermWez():
		return "iterm"
	}
	return ""
}
