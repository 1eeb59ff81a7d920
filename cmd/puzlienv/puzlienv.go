// Binary puzlienv prints the environment go-puzli detects when launched
// natively in the current terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/common-nighthawk/go-figure"
	"github.com/golang/glog"
	"github.com/gookit/color"

	"badc0de.net/pkg/go-puzli/environment"
	"badc0de.net/pkg/go-puzli/hostbridge"
)

var (
	banner  = flag.Bool("banner", true, "print a banner")
	noColor = flag.Bool("no_color", false, "do not use color escape sequences")
)

func main() {
	flagutil.Parse()

	bridge := hostbridge.Terminal{}
	cfg := environment.DefaultLaunchConfig()

	env, err := detect(bridge, &cfg)
	if err != nil {
		glog.Exitf("no terminal to detect: %v", err)
	}

	if *noColor {
		color.Enable = false
	}
	if *banner {
		figure.NewFigure("puzli", "", true).Print()
		fmt.Println()
	}

	row := func(name string, value interface{}) {
		fmt.Fprintf(os.Stdout, "%s %v\n", color.Cyan.Sprintf("%-14s", name+":"), value)
	}
	row("platform", env.Platform)
	row("user agent", bridge.UserAgent())
	row("canvas", fmt.Sprintf("%dx%d", env.ScreenWidth, env.ScreenHeight))
	row("mobile", env.IsMobile())
	row("antialiasing", cfg.Antialiasing)
}

// detect runs desktop detection, reporting a missing terminal as an error
// instead of crashing with the bridge's panic.
func detect(b hostbridge.Bridge, cfg *environment.LaunchConfig) (env environment.Environment, err error) {
	defer func() {
		if p := recover(); p != nil {
			if lookupErr, ok := p.(*hostbridge.HostLookupError); ok {
				err = lookupErr
				return
			}
			panic(p)
		}
	}()
	return environment.DetectDesktop(b, cfg)
}
