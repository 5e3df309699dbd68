package ticketqr

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestBitBufferPut(t *testing.T) {
	c := qt.New(t)
	b := NewBitBuffer()
	c.Assert(b.Len(), qt.Equals, 0)
	c.Assert(b.Bytes(), qt.HasLen, 0)

	b.Put(ModeByte, 4)
	b.Put(26, 8)
	c.Assert(b.Len(), qt.Equals, 12)
	c.Assert(b.Bytes(), qt.DeepEquals, []byte{0x41, 0xa0})

	want := []bool{false, true, false, false, false, false, false, true, true, false, true, false}
	for i, bit := range want {
		c.Assert(b.Get(i), qt.Equals, bit, qt.Commentf("bit %d", i))
	}
}

func TestBitBufferPutBitGrows(t *testing.T) {
	c := qt.New(t)
	b := NewBitBuffer()
	for i := 0; i < 8; i++ {
		b.PutBit(true)
	}
	c.Assert(b.Bytes(), qt.DeepEquals, []byte{0xff})
	b.PutBit(false)
	c.Assert(b.Bytes(), qt.DeepEquals, []byte{0xff, 0x00})
	b.PutBit(true)
	c.Assert(b.Bytes(), qt.DeepEquals, []byte{0xff, 0x40})
	c.Assert(b.Len(), qt.Equals, 10)
}

func TestBitBufferPutTruncatesHighBits(t *testing.T) {
	c := qt.New(t)
	b := NewBitBuffer()
	b.Put(0x1ff, 4)
	c.Assert(b.Bytes(), qt.DeepEquals, []byte{0xf0})
}

func TestBitBufferBytesIsCopy(t *testing.T) {
	c := qt.New(t)
	b := NewBitBuffer()
	b.Put(0xec, 8)
	out := b.Bytes()
	out[0] = 0
	c.Assert(b.Bytes(), qt.DeepEquals, []byte{0xec})
}

func TestBitBufferGetOutOfRange(t *testing.T) {
	c := qt.New(t)
	b := NewBitBuffer()
	b.Put(1, 3)
	c.Assert(func() { b.Get(3) }, qt.PanicMatches, `ticketqr: bit index 3 out of range \[0,3\)`)
	c.Assert(func() { b.Get(-1) }, qt.PanicMatches, `ticketqr: bit index -1 out of range \[0,3\)`)
}
