package mailstore

import "mailcorpus/internal/textutil"

// Optional is an attribute value that a store may or may not provide.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it was present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Present reports whether the value was provided.
func (o Optional[T]) Present() bool {
	return o.ok
}

// Or returns the value if present, otherwise def.
func (o Optional[T]) Or(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// Text is a textual attribute that may have arrived either as a string or as
// a raw byte sequence in an unknown (usually UTF-8) encoding.
type Text struct {
	str   string
	raw   []byte
	isRaw bool
}

// String builds a Text from an already-decoded string.
func String(s string) Text {
	return Text{str: s}
}

// Bytes builds a Text from a raw byte sequence.
func Bytes(b []byte) Text {
	return Text{raw: b, isRaw: true}
}

// IsRaw reports whether the value arrived as bytes.
func (t Text) IsRaw() bool {
	return t.isRaw
}

// String decodes the value. Byte values are decoded as lossy UTF-8.
func (t Text) String() string {
	if t.isRaw {
		return textutil.Lossy(t.raw)
	}
	return textutil.Clean(t.str)
}

// SomeString is shorthand for Some(String(s)).
func SomeString(s string) Optional[Text] {
	return Some(String(s))
}

// Raw returns the undecoded bytes of a byte value, or the string's bytes.
func (t Text) Raw() []byte {
	if t.isRaw {
		return t.raw
	}
	return []byte(t.str)
}
