package ticketqr

// polynomial is an immutable polynomial over GF(256), highest degree term
// first. The stored form never starts with a zero coefficient; the zero
// polynomial has no terms at all.
type polynomial struct {
	terms []byte
}

// newPolynomial trims leading zero terms from coeffs and multiplies the
// result by x^shift. coeffs is copied.
func newPolynomial(coeffs []byte, shift int) polynomial {
	offset := 0
	for offset < len(coeffs) && coeffs[offset] == 0 {
		offset++
	}
	if offset == len(coeffs) {
		return polynomial{}
	}
	terms := make([]byte, len(coeffs)-offset+shift)
	copy(terms, coeffs[offset:])
	return polynomial{terms: terms}
}

func (p polynomial) len() int {
	return len(p.terms)
}

func (p polynomial) at(i int) byte {
	return p.terms[i]
}

func (p polynomial) isZero() bool {
	return len(p.terms) == 0
}

// degree returns -1 for the zero polynomial.
func (p polynomial) degree() int {
	return len(p.terms) - 1
}

// bytes returns the coefficients left-padded with zeros to n terms.
func (p polynomial) bytes(n int) []byte {
	out := make([]byte, n)
	copy(out[n-len(p.terms):], p.terms)
	return out
}

func (p polynomial) multiply(q polynomial) polynomial {
	if p.isZero() || q.isZero() {
		return polynomial{}
	}
	num := make([]byte, p.len()+q.len()-1)
	for i := 0; i < p.len(); i++ {
		for j := 0; j < q.len(); j++ {
			num[i+j] = gfAdd(num[i+j], gfMul(p.at(i), q.at(j)))
		}
	}
	return newPolynomial(num, 0)
}

// mod returns the remainder of p divided by divisor. divisor must not be zero.
func (p polynomial) mod(divisor polynomial) polynomial {
	if divisor.isZero() {
		panic(&DomainError{Op: "mod", N: 0})
	}
	r := p
	for !r.isZero() && r.degree() >= divisor.degree() {
		ratio := glog(int(r.at(0))) - glog(int(divisor.at(0)))
		num := make([]byte, r.len())
		copy(num, r.terms)
		for i := 0; i < divisor.len(); i++ {
			if divisor.at(i) == 0 {
				continue
			}
			num[i] = gfAdd(num[i], gexp(glog(int(divisor.at(i)))+ratio))
		}
		r = newPolynomial(num, 0)
	}
	return r
}
