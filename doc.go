// Package safegl is a safety layer over a stateful, handle-based
// graphics driver in the OpenGL style.
//
// # Overview
//
// The underlying driver deals in raw numeric handles and a single global
// "currently bound object" slot per target. safegl wraps the handles in
// owned objects with destroy-once lifetimes and wraps the binding state
// in an explicit binder/binding protocol, so that double binds and
// stale-binding use become checked failures instead of silent state
// corruption.
//
// # Quick start
//
//	fns, err := driver.Default()
//	if err != nil {
//		// no platform driver registered
//	}
//	gl := safegl.New(fns)
//
//	program, err := gl.CreateProgram()
//	// ... create and attach shaders, then:
//	if err := gl.LinkProgram(program); err != nil {
//		// err carries the link log
//	}
//	defer program.Destroy()
//
//	color, err := gl.UniformLocation(program, "color")
//	err = gl.WithProgram(program, func(b *safegl.ProgramBinding) error {
//		return b.SetUniform(color, safegl.Vec4s{{1, 0, 0, 1}})
//	})
//
// # Binding protocol
//
// The Context holds one binder per bindable target: array buffer,
// element array buffer, program, framebuffer, renderbuffer, and one per
// texture unit. A Bind* call lends the target's binder to the returned
// binding value; until that binding is closed, further binds to the
// same target fail with ErrTargetBound, and all "acts on currently
// bound" operations are only reachable through the binding. Closing the
// binding returns the binder. Destroying an object while its binding is
// live makes every operation on that binding fail with
// ErrObjectDestroyed. The With* variants scope the binding to a
// callback and close it on every exit path.
//
// # Threading
//
// The driver constrains all calls to the one thread that owns its
// context, and safegl inherits that constraint. Only SetLogger, Logger
// and the driver registry are safe for concurrent use.
package safegl
