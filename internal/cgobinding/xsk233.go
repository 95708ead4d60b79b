package cgobinding

import (
	"unsafe"
)

/*
#cgo CFLAGS:                -I${SRCDIR}
#cgo linux                  CFLAGS:   -I/usr/local/include
#cgo linux                  LDFLAGS:  -L/usr/local/lib
#cgo darwin                 CFLAGS:   -I/opt/homebrew/include
#cgo darwin                 LDFLAGS:  -L/opt/homebrew/lib
#cgo LDFLAGS: -lxs233

#include <stddef.h>
#include <stdint.h>
#include "xs233.h"
*/
import "C"

// =========== Point Type =====================

// Point is the opaque native representation of an xsk233 group element.
//
// It is a plain value struct on the C side (an array of field words), so it
// is bit-copyable and has no heap ownership: copying a Point copies the
// element, and there is nothing to free. The contents are uninterpreted by
// Go code; only the native entry points below may look inside.
type Point C.xsk233_point

// EncodedSize is the byte length of the canonical compressed encoding
// produced by PointEncode and consumed by PointDecode.
const EncodedSize = 30

// equalsTrue is the sentinel xsk233_equals and xsk233_decode return on
// success: all bits set, 0 otherwise.
const equalsTrue = 0xFFFFFFFF

// Neutral returns the group identity (point at infinity).
func Neutral() Point {
	return Point(C.xsk233_neutral)
}

// Generator returns the conventional generator of the prime-order subgroup.
func Generator() Point {
	return Point(C.xsk233_generator)
}

// =========== Point Operations =====================

// PointAdd returns p1 + p2.
func PointAdd(p1, p2 *Point) Point {
	var out Point
	C.xsk233_add((*C.xsk233_point)(&out), (*C.xsk233_point)(p1), (*C.xsk233_point)(p2))
	return out
}

// PointSub returns p1 - p2.
func PointSub(p1, p2 *Point) Point {
	var out Point
	C.xsk233_sub((*C.xsk233_point)(&out), (*C.xsk233_point)(p1), (*C.xsk233_point)(p2))
	return out
}

// PointDouble returns p + p.
func PointDouble(p *Point) Point {
	var out Point
	C.xsk233_double((*C.xsk233_point)(&out), (*C.xsk233_point)(p))
	return out
}

// PointNeg returns -p. The identity negates to itself.
func PointNeg(p *Point) Point {
	var out Point
	C.xsk233_neg((*C.xsk233_point)(&out), (*C.xsk233_point)(p))
	return out
}

// PointMulFrob multiplies p by the scalar given as a little-endian byte
// sequence. The native side runs a Frobenius-accelerated double-and-add over
// exactly len(scalarLE) bytes, so callers strip trailing zero bytes to keep
// the iteration count down. An empty scalar means zero and short-circuits to
// the neutral element without crossing the cgo boundary.
func PointMulFrob(p *Point, scalarLE []byte) Point {
	if len(scalarLE) == 0 {
		return Neutral()
	}
	var out Point
	C.xsk233_mul_frob(
		(*C.xsk233_point)(&out),
		(*C.xsk233_point)(p),
		unsafe.Pointer(&scalarLE[0]),
		C.size_t(len(scalarLE)),
	)
	return out
}

// PointEquals reports whether p1 and p2 represent the same group element.
// The native primitive compares algebraically, not bytewise.
func PointEquals(p1, p2 *Point) bool {
	return uint32(C.xsk233_equals((*C.xsk233_point)(p1), (*C.xsk233_point)(p2))) == equalsTrue
}

// PointIsNeutral reports whether p is the group identity.
func PointIsNeutral(p *Point) bool {
	n := C.xsk233_neutral
	return uint32(C.xsk233_equals(&n, (*C.xsk233_point)(p))) == equalsTrue
}

// =========== Serialization =====================

// PointEncode writes the canonical compressed encoding of p: exactly
// EncodedSize bytes regardless of the point value. Encoding cannot fail.
func PointEncode(p *Point) [EncodedSize]byte {
	var dst [EncodedSize]byte
	C.xsk233_encode(unsafe.Pointer(&dst[0]), (*C.xsk233_point)(p))
	return dst
}

// PointDecode parses a canonical compressed encoding. src must be exactly
// EncodedSize bytes. The second return value is false if the native decoder
// rejects the buffer (off-curve, non-canonical, or wrong length); the
// returned Point is the neutral element in that case and must not be used.
func PointDecode(src []byte) (Point, bool) {
	var out Point
	if len(src) != EncodedSize {
		return Point(C.xsk233_neutral), false
	}
	ok := uint32(C.xsk233_decode((*C.xsk233_point)(&out), unsafe.Pointer(&src[0])))
	if ok != equalsTrue {
		return Point(C.xsk233_neutral), false
	}
	return out, true
}
