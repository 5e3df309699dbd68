package ticketqr

import "fmt"

// Galois Field (256) logic for QR Code Reed-Solomon error correction.
// Primitive Polynomial: x^8 + x^4 + x^3 + x^2 + 1 (0x11D or 285), generator 2.

var (
	expTable [256]byte
	logTable [256]int
)

func init() {
	val := 1
	for i := 0; i < 255; i++ {
		expTable[i] = byte(val)
		logTable[val] = i
		val <<= 1
		if val >= 256 {
			val ^= 0x11D
		}
	}
}

// DomainError is the panic value raised when a field operation is asked for
// an element outside its domain, such as the logarithm of zero.
type DomainError struct {
	Op string
	N  int
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("gf256: %s(%d) is undefined", e.Op, e.N)
}

// glog returns the discrete logarithm of n base 2. n must be in [1, 255].
func glog(n int) int {
	if n < 1 || n > 255 {
		panic(&DomainError{Op: "log", N: n})
	}
	return logTable[n]
}

// gexp returns 2^n. Any n is accepted; negative exponents wrap modulo 255.
func gexp(n int) byte {
	n %= 255
	if n < 0 {
		n += 255
	}
	return expTable[n]
}

func gfAdd(x, y byte) byte {
	return x ^ y
}

func gfMul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return gexp(glog(int(x)) + glog(int(y)))
}
