// Package environment works out what kind of host a go-puzli program is
// running in, using nothing but the host bridge.
package environment

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"badc0de.net/pkg/go-puzli/hostbridge"
)

type Platform int

const (
	Desktop Platform = iota
	Web
	WebAndroid
	WebIOS
	WebIPad
	Unknown
)

func (p Platform) String() string {
	switch p {
	case Desktop:
		return "DESKTOP"
	case Web:
		return "WEB"
	case WebAndroid:
		return "WEB_ANDROID"
	case WebIOS:
		return "WEB_IOS"
	case WebIPad:
		return "WEB_IPAD"
	case Unknown:
		return "UNKNOWN"
	}
	return fmt.Sprintf("Platform(%d)", int(p))
}

// Environment describes the host the program was launched in.
type Environment struct {
	Platform Platform
	// Browser is the raw user agent; empty on desktop.
	Browser      string
	ScreenWidth  int
	ScreenHeight int
}

// IsMobile reports whether the environment is a phone. Tablets are not.
func (e Environment) IsMobile() bool {
	return e.Platform == WebAndroid || e.Platform == WebIOS
}

// LaunchConfig holds the launcher settings adjusted by detection.
type LaunchConfig struct {
	// Width and Height of the application surface. Zero for both uses all
	// available space; FitCanvas for both is replaced by the detected canvas
	// size.
	Width, Height int
	Antialiasing  bool
}

// FitCanvas as both LaunchConfig.Width and Height asks detection to size the
// surface to the canvas.
const FitCanvas = -1

func (c *LaunchConfig) fitCanvas(width, height int) {
	if c.Width == FitCanvas && c.Height == FitCanvas {
		c.Width, c.Height = width, height
	}
}

// DefaultLaunchConfig returns a config that fills the available space.
func DefaultLaunchConfig() LaunchConfig {
	return LaunchConfig{Width: 0, Height: 0, Antialiasing: true}
}

var mobileUserAgent = regexp.MustCompile(`Mobile|Mini|Android|Miui`)

// Detect classifies a browser host from its user agent and canvas size, and
// adjusts cfg for it: antialiasing is turned off on mobile devices, and a
// FitCanvas surface takes the canvas size.
//
// Progress is logged through the bridge. A missing canvas fails inside the
// bridge and is not recovered here.
func Detect(b hostbridge.Bridge, cfg *LaunchConfig) (Environment, error) {
	b.Log("getEnvironment")

	userAgent := b.UserAgent()
	b.Log("UserAgent: " + userAgent)

	var platform Platform
	if mobileUserAgent.MatchString(userAgent) {
		b.Log("User is on mobile. Disabling AA.")
		cfg.Antialiasing = false
		switch {
		case strings.Contains(userAgent, "Android"):
			platform = WebAndroid
		case strings.Contains(userAgent, "iPad"):
			platform = WebIPad
		case strings.Contains(userAgent, "iPhone"):
			platform = WebIOS
		default:
			platform = Unknown
		}
	} else {
		b.Log("User is not on mobile. Enabling AA.")
		cfg.Antialiasing = true
		platform = Web
	}

	width, height, err := ParseCanvasSize(b.CanvasSize())
	if err != nil {
		return Environment{}, errors.Wrap(err, "detecting environment")
	}
	b.Log(fmt.Sprintf("platform: %v, canvasSize: %d, %d", platform, width, height))
	cfg.fitCanvas(width, height)

	return Environment{
		Platform:     platform,
		Browser:      userAgent,
		ScreenWidth:  width,
		ScreenHeight: height,
	}, nil
}

// DetectDesktop describes a native host: the platform is always Desktop and
// antialiasing stays on.
func DetectDesktop(b hostbridge.Bridge, cfg *LaunchConfig) (Environment, error) {
	cfg.Antialiasing = true
	width, height, err := ParseCanvasSize(b.CanvasSize())
	if err != nil {
		return Environment{}, errors.Wrap(err, "detecting desktop environment")
	}
	b.Log(fmt.Sprintf("platform: %v, canvasSize: %d, %d", Desktop, width, height))
	cfg.fitCanvas(width, height)
	return Environment{Platform: Desktop, ScreenWidth: width, ScreenHeight: height}, nil
}

// ParseCanvasSize decodes a "<width>;<height>" value as returned by
// hostbridge.Bridge.CanvasSize.
func ParseCanvasSize(s string) (width, height int, err error) {
	fields := strings.Split(s, ";")
	if len(fields) != 2 {
		return 0, 0, errors.Errorf("canvas size %q: want <width>;<height>", s)
	}
	if width, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, errors.Wrapf(err, "canvas size %q: width", s)
	}
	if height, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, errors.Wrapf(err, "canvas size %q: height", s)
	}
	return width, height, nil
}
