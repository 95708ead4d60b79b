package curve

import (
	"math/big"

	"github.com/xs233/xsk233-go/internal/cgobinding"
)

// Static parameters of the xsk233 group. Everything in this file is
// process-wide immutable data; accessors hand out copies so callers cannot
// corrupt the shared constants.

// PointSize is the byte length of the canonical compressed point encoding.
// Every point, including the identity, serializes to exactly this many bytes.
const PointSize = cgobinding.EncodedSize

// Cofactor of the curve as a little-endian word array. The upstream source
// carries a doc comment claiming the cofactor is 1 while encoding 4 in the
// constant; the constant is treated as authoritative here and the
// discrepancy is preserved rather than reconciled. See also CofactorInv.
var cofactor = [...]uint64{0x4}

// mustBig parses a decimal integer literal or panics. Only used for
// compile-time constants below, where a parse failure is a build defect.
func mustBig(dec string) *big.Int {
	v, ok := new(big.Int).SetString(dec, 10)
	if !ok {
		panic("curve: bad integer literal " + dec)
	}
	return v
}

var (
	// frModulus is the order r of the prime-order scalar field Fr.
	frModulus = mustBig("3450873173395281893717377931138512760570940988862252126328087024741343")

	// fqModulus is the order q of the base field Fq.
	fqModulus = mustBig("13803492693581127574869511724554050904902217944340773110325048447598591")

	// Short-Weierstrass coefficients y^2 = x^3 + a*x + b.
	coeffA = big.NewInt(0)
	coeffB = big.NewInt(1)

	// Affine coordinates of the conventional generator. Informational only:
	// the working generator value lives in the native engine, which does not
	// accept coordinate input (see Affine.XY).
	generatorX = mustBig("9980522611481012342443087688797002679043489582926858424680330554073382")

	generatorY = mustBig("12814767389816757102953168016268660157166792010263439198493421287958179")
)

// Order returns r, the order of the scalar field Fr.
func Order() *big.Int {
	return new(big.Int).Set(frModulus)
}

// BaseFieldOrder returns q, the order of the base field Fq.
func BaseFieldOrder() *big.Int {
	return new(big.Int).Set(fqModulus)
}

// CoeffA returns the short-Weierstrass coefficient a (zero for xsk233).
func CoeffA() *big.Int {
	return new(big.Int).Set(coeffA)
}

// CoeffB returns the short-Weierstrass coefficient b.
func CoeffB() *big.Int {
	return new(big.Int).Set(coeffB)
}

// Cofactor returns the group cofactor, 4.
func Cofactor() uint64 {
	return cofactor[0]
}

// CofactorInv returns the scalar the upstream parameters declare as the
// cofactor inverse mod r, which is 1. Note this does not invert the encoded
// cofactor of 4; the pair is shipped exactly as upstream defines it.
func CofactorInv() *Scalar {
	return NewScalarUint64(1)
}

// GeneratorXY returns the affine coordinates of the generator as base-field
// integers. These are curve metadata; points constructed by this package
// never expose their own coordinates.
func GeneratorXY() (x, y *big.Int) {
	return new(big.Int).Set(generatorX), new(big.Int).Set(generatorY)
}

// MulByA multiplies a base-field element by the coefficient a. The upstream
// parameterization special-cases this as x+x+x mod q; the exact form is kept
// so the coefficient can change without silently diverging from it.
func MulByA(x *big.Int) *big.Int {
	t := new(big.Int).Add(x, x)
	t.Add(t, x)
	return t.Mod(t, fqModulus)
}
