package osc

import "fmt"

// Standard OSC type tags (spec.md §6 alphabet).
const (
	TagInt32  = 'i'
	TagFloat  = 'f'
	TagString = 's'
	TagBlob   = 'b'
	TagTrue   = 'T'
	TagFalse  = 'F'
	TagNil    = 'N'
	TagBang   = 'I'
	TagInt64  = 'h'
	TagDouble = 'd'
	TagTime   = 't'
	TagSymbol = 'S'
	TagChar   = 'c'
	TagMIDI   = 'm'
)

// Extended OSC 1.1 tags. TagRGBA is accepted by the validator only when strict=false (relaxed) mode
// is requested; the array delimiters are rejected in both modes.
const (
	TagRGBA       = 'r'
	TagArrayOpen  = '['
	TagArrayClose = ']'
)

// UnknownTagError occurs when a type-tag character outside the supported alphabet is encountered.
type UnknownTagError struct {
	Tag byte
}

func (e UnknownTagError) Error() string {
	return fmt.Sprintf("osc: unknown type tag %q", e.Tag)
}

// ArraysNotSupportedError occurs when an OSC 1.1 array delimiter is encountered; arrays are
// explicitly out of scope (spec.md §6: "baseline rejects them").
type ArraysNotSupportedError struct {
	Tag byte
}

func (e ArraysNotSupportedError) Error() string {
	return fmt.Sprintf("osc: array type tag %q not supported", e.Tag)
}

// Arg is a tagged union holding exactly one OSC argument value, selected by Tag. It replaces the
// original C implementation's variadic argument list (spec.md §9: "replace this with a
// tagged-value iterator").
//
// Only the field matching Tag is meaningful; all others are zero.
type Arg struct {
	Tag byte

	I    int32
	F    float32
	Str  []byte // also used for TagSymbol
	Blob []byte
	H    int64
	D    float64
	TT   TimeTag
	C    rune
	MIDI [4]byte
}

// ArgInt32 constructs an int32 argument.
func ArgInt32(v int32) Arg { return Arg{Tag: TagInt32, I: v} }

// ArgFloat constructs a float32 argument.
func ArgFloat(v float32) Arg { return Arg{Tag: TagFloat, F: v} }

// ArgString constructs a string argument. The value is written verbatim; it must not contain a NUL
// byte.
func ArgString(v string) Arg { return Arg{Tag: TagString, Str: []byte(v)} }

// ArgBlob constructs a blob argument.
func ArgBlob(v []byte) Arg { return Arg{Tag: TagBlob, Blob: v} }

// ArgInt64 constructs an int64 argument.
func ArgInt64(v int64) Arg { return Arg{Tag: TagInt64, H: v} }

// ArgDouble constructs a float64 argument.
func ArgDouble(v float64) Arg { return Arg{Tag: TagDouble, D: v} }

// ArgTime constructs a time tag argument.
func ArgTime(v TimeTag) Arg { return Arg{Tag: TagTime, TT: v} }

// ArgSymbol constructs a symbol argument.
func ArgSymbol(v string) Arg { return Arg{Tag: TagSymbol, Str: []byte(v)} }

// ArgChar constructs a character argument.
func ArgChar(v rune) Arg { return Arg{Tag: TagChar, C: v} }

// ArgMIDI constructs a 4-byte MIDI packet argument.
func ArgMIDI(v [4]byte) Arg { return Arg{Tag: TagMIDI, MIDI: v} }

// ArgTrue constructs a boolean-true argument (no payload on the wire).
func ArgTrue() Arg { return Arg{Tag: TagTrue} }

// ArgFalse constructs a boolean-false argument (no payload on the wire).
func ArgFalse() Arg { return Arg{Tag: TagFalse} }

// ArgNilValue constructs a nil argument (no payload on the wire).
func ArgNilValue() Arg { return Arg{Tag: TagNil} }

// ArgBangValue constructs an infinitum/bang argument (no payload on the wire).
func ArgBangValue() Arg { return Arg{Tag: TagBang} }

// fixedWidth returns the fixed wire width of a tag with constant width, or -1 for variable-width
// (string/blob) or unknown tags.
func fixedWidth(tag byte) int {
	switch tag {
	case TagInt32, TagFloat, TagChar, TagMIDI, TagRGBA:
		return 4
	case TagInt64, TagDouble, TagTime:
		return 8
	case TagTrue, TagFalse, TagNil, TagBang:
		return 0
	default:
		return -1
	}
}

// isKnownTag reports whether tag is part of the supported alphabet, optionally including the OSC
// 1.1 RGBA extension when strict is false. Array delimiters are never "known" here; callers reject
// them unconditionally before reaching this check, since arrays aren't supported at any strictness.
func isKnownTag(tag byte, strict bool) bool {
	switch tag {
	case TagInt32, TagFloat, TagString, TagBlob,
		TagTrue, TagFalse, TagNil, TagBang,
		TagInt64, TagDouble, TagTime,
		TagSymbol, TagChar, TagMIDI:
		return true
	case TagRGBA:
		return !strict
	default:
		return false
	}
}
