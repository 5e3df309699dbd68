package ticketqr

import (
	"fmt"
	"sync"
)

// symbolGenerator is the generator polynomial for the fixed layout's
// correction codeword count. It is built on first use and never mutated.
var symbolGenerator = sync.OnceValue(func() polynomial {
	return generatorPolynomial(ECCodewords)
})

// checkECCount panics unless n is a correction codeword count a single
// block can carry.
func checkECCount(n int) {
	if n < 1 || n > 254 {
		panic(fmt.Sprintf("ticketqr: %d correction codewords out of range [1,254]", n))
	}
}

func generatorPolynomial(numECCodewords int) polynomial {
	gen := polynomial{terms: []byte{1}}
	for i := 0; i < numECCodewords; i++ {
		gen = gen.multiply(polynomial{terms: []byte{1, gexp(i)}})
	}
	return gen
}

// GeneratorPolynomial returns the coefficients, highest degree first, of
// (x - 2^0)(x - 2^1)...(x - 2^(n-1)) over GF(256).
func GeneratorPolynomial(numECCodewords int) []byte {
	checkECCount(numECCodewords)
	if numECCodewords == ECCodewords {
		return symbolGenerator().bytes(ECCodewords + 1)
	}
	return generatorPolynomial(numECCodewords).bytes(numECCodewords + 1)
}

// CalculateECCodewords generates numECCodewords error correction codewords
// for data: the remainder of data(x) * x^n divided by the generator
// polynomial, left-padded to exactly n bytes.
func CalculateECCodewords(data []byte, numECCodewords int) []byte {
	checkECCount(numECCodewords)
	generator := symbolGenerator()
	if numECCodewords != ECCodewords {
		generator = generatorPolynomial(numECCodewords)
	}
	msg := newPolynomial(data, numECCodewords)
	return msg.mod(generator).bytes(numECCodewords)
}

// codewords returns the final codeword sequence: data followed by its
// correction codewords.
func codewords(data []byte) []byte {
	out := make([]byte, 0, len(data)+ECCodewords)
	out = append(out, data...)
	return append(out, CalculateECCodewords(data, ECCodewords)...)
}
