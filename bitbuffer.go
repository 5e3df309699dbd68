package ticketqr

import "fmt"

// BitBuffer is an append-only sequence of bits backed by bytes, most
// significant bit first within each byte.
type BitBuffer struct {
	buf []byte
	n   int
}

func NewBitBuffer() *BitBuffer {
	return &BitBuffer{}
}

// Put appends the low length bits of num, most significant bit first.
func (b *BitBuffer) Put(num, length int) {
	for i := 0; i < length; i++ {
		b.PutBit((num>>(length-1-i))&1 == 1)
	}
}

func (b *BitBuffer) PutBit(bit bool) {
	idx := b.n / 8
	if len(b.buf) <= idx {
		b.buf = append(b.buf, 0)
	}
	if bit {
		b.buf[idx] |= 0x80 >> (b.n % 8)
	}
	b.n++
}

// Get reports bit i. It panics if i is not less than Len.
func (b *BitBuffer) Get(i int) bool {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("ticketqr: bit index %d out of range [0,%d)", i, b.n))
	}
	return (b.buf[i/8]>>(7-i%8))&1 == 1
}

func (b *BitBuffer) Len() int {
	return b.n
}

// Bytes returns a copy of the backing bytes. A trailing partial byte is
// zero-padded.
func (b *BitBuffer) Bytes() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	return out
}
