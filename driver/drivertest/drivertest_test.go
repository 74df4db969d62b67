package drivertest

import (
	"bytes"
	"testing"

	"github.com/gogpu/safegl/driver"
)

func TestHandlesAreSequentialAndNonZero(t *testing.T) {
	d := New()

	a := d.GenBuffer()
	b := d.CreateProgram()
	c := d.GenRenderbuffer()
	if a == 0 || b == 0 || c == 0 {
		t.Fatalf("got zero handle: %d %d %d", a, b, c)
	}
	if a == b || b == c || a == c {
		t.Errorf("handles not unique: %d %d %d", a, b, c)
	}

	d.FailCreate = true
	if h := d.GenBuffer(); h != 0 {
		t.Errorf("GenBuffer with FailCreate = %d, want 0", h)
	}
}

func TestErrorQueue(t *testing.T) {
	d := New()

	if code := d.GetError(); code != driver.NO_ERROR {
		t.Fatalf("empty queue GetError = %#x, want NO_ERROR", uint32(code))
	}

	d.QueueError(driver.INVALID_ENUM)
	d.QueueError(driver.INVALID_VALUE)
	if code := d.GetError(); code != driver.INVALID_ENUM {
		t.Errorf("first GetError = %#x, want INVALID_ENUM", uint32(code))
	}
	if code := d.GetError(); code != driver.INVALID_VALUE {
		t.Errorf("second GetError = %#x, want INVALID_VALUE", uint32(code))
	}
	if code := d.GetError(); code != driver.NO_ERROR {
		t.Errorf("drained GetError = %#x, want NO_ERROR", uint32(code))
	}
}

func TestInfoLogConventions(t *testing.T) {
	d := New()
	p := d.CreateProgram()

	if got := d.GetProgramiv(p, driver.INFO_LOG_LENGTH); got != 0 {
		t.Errorf("no log INFO_LOG_LENGTH = %d, want 0", got)
	}

	d.InfoLogs = map[uint32]string{p: "oops"}
	if got := d.GetProgramiv(p, driver.INFO_LOG_LENGTH); got != 5 {
		t.Errorf("INFO_LOG_LENGTH = %d, want len+1 = 5", got)
	}
	raw := d.GetProgramInfoLog(p, 5)
	if !bytes.Equal(raw, []byte("oops\x00")) {
		t.Errorf("log bytes = % x, want NUL-terminated text", raw)
	}
}

func TestLinkStatusFollowsAttachedShaders(t *testing.T) {
	d := New()
	p := d.CreateProgram()

	d.LinkProgram(p)
	if got := d.GetProgramiv(p, driver.LINK_STATUS); got != driver.FALSE {
		t.Errorf("link with no shaders = %d, want FALSE", got)
	}
	if d.InfoLogs[p] == "" {
		t.Error("failed link did not synthesize an info log")
	}

	s := d.CreateShader(driver.VERTEX_SHADER)
	d.AttachShader(p, s)
	d.LinkProgram(p)
	if got := d.GetProgramiv(p, driver.LINK_STATUS); got != driver.TRUE {
		t.Errorf("link with shader = %d, want TRUE", got)
	}
}

func TestRegisteredAsTestDriver(t *testing.T) {
	fns := driver.Get(driver.NameTest)
	if _, ok := fns.(*Driver); !ok {
		t.Fatalf("driver.Get(%q) = %T, want *Driver", driver.NameTest, fns)
	}
}
