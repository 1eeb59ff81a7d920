//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris) && !js && !wasip1

package hostbridge

import (
	"os"

	"golang.org/x/crypto/ssh/terminal"
)

func getTermSize() (termSize, error) {
	w, h, err := terminal.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return termSize{}, err
	}
	return termSize{Rows: uint(h), Cols: uint(w)}, nil
}

func terminalGraphics() string {
	return ""
}
