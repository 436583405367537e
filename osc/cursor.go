package osc

import "bytes"

// Cursor is a bounds-unchecked read position within a decoded byte buffer. Every returned string,
// blob, or symbol is a view into the underlying array and must not outlive it; MIDI and RGBA values
// are returned as 4-byte array copies. Only Args allocates, for the []Arg slice it returns.
//
// A nil Cursor is poisoned: every method on a nil Cursor returns the zero value and a nil Cursor,
// propagating the failure through a chain of calls exactly as spec.md §4.2/§9 describes. A
// non-nil, zero-length Cursor is valid but exhausted.
//
// Cursor does not check against an end bound; callers must validate untrusted input with
// CheckMessage/CheckBundle/CheckPacket (or their error-returning *Err variants in validate.go)
// first, before walking a Cursor over data that hasn't been shown well-formed.
type Cursor []byte

// Int32 decodes a big-endian int32 and advances the cursor by 4 bytes.
func (c Cursor) Int32() (int32, Cursor) {
	if c == nil {
		return 0, nil
	}
	return decodeInt32(c[:4]), c[4:]
}

// Float decodes a big-endian float32 and advances the cursor by 4 bytes.
func (c Cursor) Float() (float32, Cursor) {
	if c == nil {
		return 0, nil
	}
	return decodeFloat32(c[:4]), c[4:]
}

// String decodes a NUL-terminated, zero-padded string and advances past it. The returned slice is
// the unterminated string content, a view into the cursor's backing array.
func (c Cursor) String() ([]byte, Cursor) {
	if c == nil {
		return nil, nil
	}
	i := bytes.IndexByte(c, 0)
	if i < 0 {
		return nil, nil
	}
	n := paddedStringLen(i)
	return c[:i], c[n:]
}

// Symbol decodes a symbol (alternate string) argument. On the wire it is identical to String.
func (c Cursor) Symbol() ([]byte, Cursor) {
	return c.String()
}

// Blob decodes a 4-byte-size-prefixed, zero-padded blob and advances past it. The returned slice is
// a view into the cursor's backing array.
func (c Cursor) Blob() ([]byte, Cursor) {
	if c == nil {
		return nil, nil
	}
	size := decodeInt32(c[:4])
	if size < 0 {
		return nil, nil
	}
	n := paddedBlobLen(int(size))
	return c[4 : 4+size], c[n:]
}

// Int64 decodes a big-endian int64 and advances the cursor by 8 bytes.
func (c Cursor) Int64() (int64, Cursor) {
	if c == nil {
		return 0, nil
	}
	return decodeInt64(c[:8]), c[8:]
}

// Double decodes a big-endian float64 and advances the cursor by 8 bytes.
func (c Cursor) Double() (float64, Cursor) {
	if c == nil {
		return 0, nil
	}
	return decodeFloat64(c[:8]), c[8:]
}

// TimeTag decodes an opaque 64-bit time tag and advances the cursor by 8 bytes.
func (c Cursor) TimeTag() (TimeTag, Cursor) {
	if c == nil {
		return 0, nil
	}
	return TimeTag(decodeUint64(c[:8])), c[8:]
}

// Char decodes a 32-bit character argument and advances the cursor by 4 bytes.
func (c Cursor) Char() (rune, Cursor) {
	if c == nil {
		return 0, nil
	}
	return rune(decodeInt32(c[:4]) & 0xff), c[4:]
}

// MIDI decodes a raw 4-byte MIDI packet and advances the cursor by 4 bytes. The packet is returned
// as a copy, not as a view into the cursor's backing array.
func (c Cursor) MIDI() ([4]byte, Cursor) {
	if c == nil {
		return [4]byte{}, nil
	}
	var m [4]byte
	copy(m[:], c[:4])
	return m, c[4:]
}

// RGBA decodes a 32-bit RGBA color argument and advances the cursor by 4 bytes. Only meaningful
// when the caller has opted into the OSC 1.1 extensions.
func (c Cursor) RGBA() ([4]byte, Cursor) {
	return c.MIDI()
}

// Path decodes the leading address path of a message. It is a plain padded string; Path exists as
// a named alias so callers reading message structure don't need to know that.
func (c Cursor) Path() ([]byte, Cursor) {
	return c.String()
}

// TypeTags decodes the comma-prefixed type-tag field of a message and returns the tag characters
// without the leading comma.
func (c Cursor) TypeTags() ([]byte, Cursor) {
	tags, rest := c.String()
	if tags == nil || len(tags) == 0 || tags[0] != ',' {
		return nil, nil
	}
	return tags[1:], rest
}

// Skip advances the cursor past one argument of the given type tag, discarding the value.
func (c Cursor) Skip(tag byte) Cursor {
	if c == nil {
		return nil
	}
	if w := fixedWidth(tag); w >= 0 {
		if w == 0 {
			return c
		}
		return c[w:]
	}
	switch tag {
	case TagString, TagSymbol:
		_, rest := c.String()
		return rest
	case TagBlob:
		_, rest := c.Blob()
		return rest
	default:
		return nil
	}
}

// Get decodes one argument of the given type tag into an Arg and advances the cursor past it. It
// is the generic, tag-dispatched counterpart to the typed methods above, used by the variadic
// argument walk.
func (c Cursor) Get(tag byte) (Arg, Cursor) {
	if c == nil {
		return Arg{}, nil
	}
	switch tag {
	case TagInt32:
		v, rest := c.Int32()
		return ArgInt32(v), rest
	case TagFloat:
		v, rest := c.Float()
		return ArgFloat(v), rest
	case TagString:
		v, rest := c.String()
		return Arg{Tag: TagString, Str: v}, rest
	case TagBlob:
		v, rest := c.Blob()
		return Arg{Tag: TagBlob, Blob: v}, rest
	case TagInt64:
		v, rest := c.Int64()
		return ArgInt64(v), rest
	case TagDouble:
		v, rest := c.Double()
		return ArgDouble(v), rest
	case TagTime:
		v, rest := c.TimeTag()
		return ArgTime(v), rest
	case TagSymbol:
		v, rest := c.Symbol()
		return Arg{Tag: TagSymbol, Str: v}, rest
	case TagChar:
		v, rest := c.Char()
		return ArgChar(v), rest
	case TagMIDI:
		v, rest := c.MIDI()
		return ArgMIDI(v), rest
	case TagRGBA:
		v, rest := c.RGBA()
		return Arg{Tag: TagRGBA, MIDI: v}, rest
	case TagTrue:
		return ArgTrue(), c
	case TagFalse:
		return ArgFalse(), c
	case TagNil:
		return ArgNilValue(), c
	case TagBang:
		return ArgBangValue(), c
	default:
		return Arg{}, nil
	}
}

// Args walks the given type-tag string (without its leading comma) left to right, decoding one
// argument per tag. It stops and returns a nil Cursor (poisoned) on the first unknown tag or once
// the cursor itself is poisoned.
func (c Cursor) Args(tags []byte) ([]Arg, Cursor) {
	args := make([]Arg, 0, len(tags))
	cur := c
	for _, tag := range tags {
		var arg Arg
		arg, cur = cur.Get(tag)
		if cur == nil {
			return nil, nil
		}
		args = append(args, arg)
	}
	return args, cur
}
