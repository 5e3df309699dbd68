package ticketqr

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestFieldTablesInverse(t *testing.T) {
	c := qt.New(t)
	for n := 1; n < 256; n++ {
		c.Assert(int(gexp(glog(n))), qt.Equals, n, qt.Commentf("n=%d", n))
	}
	for i := 0; i < 255; i++ {
		c.Assert(glog(int(gexp(i))), qt.Equals, i, qt.Commentf("i=%d", i))
	}
}

func TestGexpWraps(t *testing.T) {
	c := qt.New(t)
	c.Assert(gexp(0), qt.Equals, byte(1))
	c.Assert(gexp(1), qt.Equals, byte(2))
	c.Assert(gexp(8), qt.Equals, byte(0x1d))
	c.Assert(gexp(255), qt.Equals, gexp(0))
	c.Assert(gexp(-1), qt.Equals, gexp(254))
	c.Assert(gexp(-255), qt.Equals, gexp(0))
	c.Assert(gexp(-300), qt.Equals, gexp(210))
	c.Assert(gexp(600), qt.Equals, gexp(90))
}

func TestGlogDomain(t *testing.T) {
	c := qt.New(t)
	c.Assert(func() { glog(0) }, qt.PanicMatches, `gf256: log\(0\) is undefined`)
	c.Assert(func() { glog(256) }, qt.PanicMatches, `gf256: log\(256\) is undefined`)
}

func TestGfMul(t *testing.T) {
	c := qt.New(t)
	c.Assert(gfMul(0, 7), qt.Equals, byte(0))
	c.Assert(gfMul(7, 0), qt.Equals, byte(0))
	c.Assert(gfMul(1, 0x53), qt.Equals, byte(0x53))
	c.Assert(gfMul(2, 0x80), qt.Equals, byte(0x1d))
	for a := 1; a < 256; a += 7 {
		for b := 1; b < 256; b += 11 {
			c.Assert(gfMul(byte(a), byte(b)), qt.Equals, gfMul(byte(b), byte(a)))
		}
	}
	c.Assert(gfAdd(0x53, 0x53), qt.Equals, byte(0))
}
