// Package cgobinding is the cgo layer over the native xs233 library.
//
// Each exported function wraps exactly one C entry point. No logic beyond
// argument marshalling lives here; semantics, error taxonomy and the public
// type system are the job of api/curve. Unlike handle-based native libraries
// there is no resource ownership to manage: xsk233 points are value structs
// that are copied across the boundary, so there is no Free and no finalizer.
package cgobinding
