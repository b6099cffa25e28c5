package formatter

import (
	"bytes"
	"strconv"
	"strings"
)

// Encoding records which byte container a payload came from.
type Encoding int

const (
	// Prost is an owned byte slice.
	Prost Encoding = iota
	// Protobuf is a shared buffer.
	Protobuf
)

func (e Encoding) String() string {
	switch e {
	case Prost:
		return "Prost"
	case Protobuf:
		return "Protobuf"
	}
	return "Encoding(" + strconv.Itoa(int(e)) + ")"
}

// Bytes is an opaque payload handed to a CustomFormatter. It is built per
// render call and never retained.
type Bytes struct {
	enc Encoding
	b   []byte
}

// FromSlice wraps an owned byte slice.
func FromSlice(b []byte) Bytes {
	return Bytes{enc: Prost, b: b}
}

// FromBuffer wraps the unread portion of buf without draining it.
func FromBuffer(buf *bytes.Buffer) Bytes {
	if buf == nil {
		return Bytes{enc: Protobuf}
	}
	return Bytes{enc: Protobuf, b: buf.Bytes()}
}

func (b Bytes) Encoding() Encoding { return b.enc }

// Bytes returns the payload. Callers must not modify it.
func (b Bytes) Bytes() []byte { return b.b }

func (b Bytes) Len() int { return len(b.b) }

// String renders the payload as a decimal byte list, e.g. "Prost([104, 105])".
// The output is the same for both encodings.
func (b Bytes) String() string {
	var sb strings.Builder
	sb.Grow(8 + 5*len(b.b))
	sb.WriteString("Prost([")
	for i, c := range b.b {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(int(c)))
	}
	sb.WriteString("])")
	return sb.String()
}
