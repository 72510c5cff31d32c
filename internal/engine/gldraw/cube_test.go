package gldraw

import (
	"strings"
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/scenegraph/pkg/math"
)

func stubGetError(t *testing.T, code uint32) {
	t.Helper()
	saved := getError
	getError = func() uint32 { return code }
	t.Cleanup(func() { getError = saved })
}

func TestCheckGL(t *testing.T) {
	stubGetError(t, gl.NO_ERROR)
	if err := checkGL("cube upload"); err != nil {
		t.Errorf("no pending error: got %v", err)
	}

	stubGetError(t, gl.OUT_OF_MEMORY)
	err := checkGL("cube upload")
	if err == nil {
		t.Fatal("expected an error for GL_OUT_OF_MEMORY")
	}
	if msg := err.Error(); !strings.Contains(msg, "cube upload") || !strings.Contains(msg, "0x505") {
		t.Errorf("unexpected error message %q", msg)
	}
}

func TestDrawReleasedCube(t *testing.T) {
	c := &Cube{}
	id := math.Identity()
	if err := c.Draw(id, id, id, id); err == nil {
		t.Error("drawing a released cube should fail")
	}
}
