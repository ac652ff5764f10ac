package gui

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Driver describes the OpenGL context raylib created for the window.
type Driver struct {
	Vendor   string
	Renderer string
	Version  string
}

func (d Driver) String() string {
	if d.Renderer == "" {
		return "unknown renderer"
	}
	return fmt.Sprintf("%s (GL %s)", d.Renderer, d.Version)
}

// probeDriver loads the GL entry points for the current context. It must run
// after the window is open.
func probeDriver() (Driver, error) {
	if err := gl.Init(); err != nil {
		return Driver{}, fmt.Errorf("failed to init opengl: %v", err)
	}
	return Driver{
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
	}, nil
}
