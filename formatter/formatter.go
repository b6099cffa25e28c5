package formatter

import (
	"encoding/hex"
	"fmt"
)

// CustomFormatter renders the opaque payloads embedded in raft records. Each
// method covers one payload site.
type CustomFormatter interface {
	FormatEntryContext(v Bytes) string
	FormatEntryData(v Bytes) string
	FormatConfChangeV2Context(v Bytes) string
	FormatConfChangeContext(v Bytes) string
	FormatMessageContext(v Bytes) string
	FormatSnapshotData(v Bytes) string
}

// DefaultFormatter renders every payload with Bytes.String. Embed it to
// override only some of the payload sites.
type DefaultFormatter struct{}

func (DefaultFormatter) FormatEntryContext(v Bytes) string        { return v.String() }
func (DefaultFormatter) FormatEntryData(v Bytes) string           { return v.String() }
func (DefaultFormatter) FormatConfChangeV2Context(v Bytes) string { return v.String() }
func (DefaultFormatter) FormatConfChangeContext(v Bytes) string   { return v.String() }
func (DefaultFormatter) FormatMessageContext(v Bytes) string      { return v.String() }
func (DefaultFormatter) FormatSnapshotData(v Bytes) string        { return v.String() }

// Funcs overrides individual payload sites with functions. Sites left nil are
// rendered by Fallback, or by DefaultFormatter when Fallback is nil.
type Funcs struct {
	Fallback CustomFormatter

	EntryContext        func(Bytes) string
	EntryData           func(Bytes) string
	ConfChangeV2Context func(Bytes) string
	ConfChangeContext   func(Bytes) string
	MessageContext      func(Bytes) string
	SnapshotData        func(Bytes) string
}

func (f Funcs) fallback() CustomFormatter {
	if f.Fallback == nil {
		return DefaultFormatter{}
	}
	return f.Fallback
}

func (f Funcs) FormatEntryContext(v Bytes) string {
	if f.EntryContext != nil {
		return f.EntryContext(v)
	}
	return f.fallback().FormatEntryContext(v)
}

func (f Funcs) FormatEntryData(v Bytes) string {
	if f.EntryData != nil {
		return f.EntryData(v)
	}
	return f.fallback().FormatEntryData(v)
}

func (f Funcs) FormatConfChangeV2Context(v Bytes) string {
	if f.ConfChangeV2Context != nil {
		return f.ConfChangeV2Context(v)
	}
	return f.fallback().FormatConfChangeV2Context(v)
}

func (f Funcs) FormatConfChangeContext(v Bytes) string {
	if f.ConfChangeContext != nil {
		return f.ConfChangeContext(v)
	}
	return f.fallback().FormatConfChangeContext(v)
}

func (f Funcs) FormatMessageContext(v Bytes) string {
	if f.MessageContext != nil {
		return f.MessageContext(v)
	}
	return f.fallback().FormatMessageContext(v)
}

func (f Funcs) FormatSnapshotData(v Bytes) string {
	if f.SnapshotData != nil {
		return f.SnapshotData(v)
	}
	return f.fallback().FormatSnapshotData(v)
}

// Uniform returns a CustomFormatter that renders every payload site with fn.
func Uniform(fn func(Bytes) string) CustomFormatter {
	return Funcs{
		EntryContext:        fn,
		EntryData:           fn,
		ConfChangeV2Context: fn,
		ConfChangeContext:   fn,
		MessageContext:      fn,
		SnapshotData:        fn,
	}
}

// HexFormatter renders payloads as 0x-prefixed lowercase hex.
var HexFormatter = Uniform(func(v Bytes) string {
	return "0x" + hex.EncodeToString(v.Bytes())
})

// RedactFormatter hides payload contents, keeping only their length.
var RedactFormatter = Uniform(func(v Bytes) string {
	return fmt.Sprintf("<redacted %d bytes>", v.Len())
})

// Truncate caps each payload at max bytes before handing it to inner, and
// appends how many bytes were cut. A nil inner means DefaultFormatter.
func Truncate(inner CustomFormatter, max int) CustomFormatter {
	if inner == nil {
		inner = DefaultFormatter{}
	}
	cut := func(render func(Bytes) string) func(Bytes) string {
		return func(v Bytes) string {
			if max < 0 || v.Len() <= max {
				return render(v)
			}
			short := Bytes{enc: v.enc, b: v.b[:max]}
			return fmt.Sprintf("%s...(+%d bytes)", render(short), v.Len()-max)
		}
	}
	return Funcs{
		EntryContext:        cut(inner.FormatEntryContext),
		EntryData:           cut(inner.FormatEntryData),
		ConfChangeV2Context: cut(inner.FormatConfChangeV2Context),
		ConfChangeContext:   cut(inner.FormatConfChangeContext),
		MessageContext:      cut(inner.FormatMessageContext),
		SnapshotData:        cut(inner.FormatSnapshotData),
	}
}
