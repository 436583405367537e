package osc

import (
	"bytes"
	"errors"
	"fmt"
)

// Structural validation errors. Each names the specific malformation so a caller logging a
// rejected packet can say why, without needing to re-derive it from a byte offset. These back the
// Err-suffixed diagnostic entry points; the plain Check* functions report only pass/fail, matching
// the validator's boolean contract.
var (
	ErrTruncated          = errors.New("osc: buffer truncated")
	ErrMisaligned         = errors.New("osc: element not 4-byte aligned")
	ErrPathEmpty          = errors.New("osc: address path empty")
	ErrPathNoSlash        = errors.New("osc: address path does not start with '/'")
	ErrTypeTagsNoComma    = errors.New("osc: type tag string does not start with ','")
	ErrBundleBadTag       = errors.New("osc: bundle identifier is not \"#bundle\\0\"")
	ErrBundleSizeOverrun  = errors.New("osc: bundle element size prefix overruns buffer")
	ErrBundleSizeNegative = errors.New("osc: bundle element size prefix is non-positive")
)

// CheckPath reports whether path is a syntactically valid OSC address: non-empty, starting with
// '/', made up entirely of printable ASCII, and free of space and '#'. Wildcard characters such as
// '*' and '?' are accepted.
func CheckPath(path []byte) bool {
	return checkPathErr(path) == nil
}

// CheckPathErr is CheckPath with a diagnostic error in place of a bare boolean, for logging and
// tests.
func CheckPathErr(path []byte) error {
	return checkPathErr(path)
}

func checkPathErr(path []byte) error {
	if len(path) == 0 {
		return ErrPathEmpty
	}
	if path[0] != '/' {
		return ErrPathNoSlash
	}
	for _, c := range path[1:] {
		if c < 0x20 || c > 0x7e {
			return fmt.Errorf("osc: address path contains non-printable byte %#x", c)
		}
		switch c {
		case ' ', '#':
			return fmt.Errorf("osc: address path contains reserved character %q", c)
		}
	}
	return nil
}

// CheckTypeTags reports whether tags (comma included) is a syntactically valid type-tag field:
// starts with ',' and every character after it is a known type tag. strict controls whether the
// OSC 1.1 RGBA tag 'r' is accepted; the array delimiters '[' and ']' are rejected in both modes.
func CheckTypeTags(tags []byte, strict bool) bool {
	return checkTypeTagsErr(tags, strict) == nil
}

// CheckTypeTagsErr is CheckTypeTags with a diagnostic error in place of a bare boolean.
func CheckTypeTagsErr(tags []byte, strict bool) error {
	return checkTypeTagsErr(tags, strict)
}

func checkTypeTagsErr(tags []byte, strict bool) error {
	if len(tags) == 0 || tags[0] != ',' {
		return ErrTypeTagsNoComma
	}
	for _, c := range tags[1:] {
		if c == TagArrayOpen || c == TagArrayClose {
			return ArraysNotSupportedError{Tag: c}
		}
		if !isKnownTag(c, strict) {
			return UnknownTagError{Tag: c}
		}
	}
	return nil
}

// CheckMessage reports whether buf holds one syntactically valid, fully self-contained message: a
// padded path, a padded type-tag string, and exactly enough argument bytes to match the type tags,
// with nothing left over. It is the Go counterpart of osc_check_message.
func CheckMessage(buf []byte, strict bool) bool {
	return checkMessageErr(buf, strict) == nil
}

// CheckMessageErr is CheckMessage with a diagnostic error in place of a bare boolean.
func CheckMessageErr(buf []byte, strict bool) error {
	return checkMessageErr(buf, strict)
}

func checkMessageErr(buf []byte, strict bool) error {
	c := Cursor(buf)
	path, rest := c.Path()
	if rest == nil {
		return ErrTruncated
	}
	if err := checkPathErr(path); err != nil {
		return err
	}
	tagField, rest2 := Cursor(rest).String()
	if rest2 == nil {
		return ErrTruncated
	}
	if len(tagField) == 0 || tagField[0] != ',' {
		return ErrTypeTagsNoComma
	}
	if err := checkTypeTagsErr(tagField, strict); err != nil {
		return err
	}
	cur := Cursor(rest2)
	for _, tag := range tagField[1:] {
		if cur == nil {
			return ErrTruncated
		}
		switch w := fixedWidth(byte(tag)); {
		case w > 0:
			if len(cur) < w {
				return ErrTruncated
			}
			cur = cur[w:]
		case w == 0:
			// no payload
		default:
			switch byte(tag) {
			case TagString, TagSymbol:
				i := bytes.IndexByte(cur, 0)
				if i < 0 {
					return ErrTruncated
				}
				n := paddedStringLen(i)
				if len(cur) < n {
					return ErrTruncated
				}
				cur = cur[n:]
			case TagBlob:
				if len(cur) < 4 {
					return ErrTruncated
				}
				size := decodeInt32(cur[:4])
				if size < 0 {
					return ErrBundleSizeNegative
				}
				n := paddedBlobLen(int(size))
				if len(cur) < n {
					return ErrTruncated
				}
				cur = cur[n:]
			}
		}
	}
	if len(cur) != 0 {
		return fmt.Errorf("osc: message has %d trailing bytes", len(cur))
	}
	return nil
}

// IsBundle reports whether buf begins with the bundle identifier.
func IsBundle(buf []byte) bool {
	return len(buf) >= 8 && string(buf[:8]) == bundleTag
}

// CheckBundle reports whether buf holds one syntactically valid bundle: the "#bundle\0" tag, an
// 8-byte time tag, and zero or more length-prefixed elements whose sizes exactly partition the
// remainder of the buffer. Each element is recursively checked as a message or nested bundle. It
// is the Go counterpart of osc_check_bundle. An empty bundle (header and time tag only) is valid.
func CheckBundle(buf []byte, strict bool) bool {
	return checkBundleErr(buf, strict) == nil
}

// CheckBundleErr is CheckBundle with a diagnostic error in place of a bare boolean.
func CheckBundleErr(buf []byte, strict bool) error {
	return checkBundleErr(buf, strict)
}

func checkBundleErr(buf []byte, strict bool) error {
	if !IsBundle(buf) {
		return ErrBundleBadTag
	}
	rest := buf[8:]
	if len(rest) < 8 {
		return ErrTruncated
	}
	rest = rest[8:] // time tag
	for len(rest) > 0 {
		if len(rest) < 4 {
			return ErrTruncated
		}
		size := decodeInt32(rest[:4])
		if size <= 0 {
			return ErrBundleSizeNegative
		}
		rest = rest[4:]
		if int(size) > len(rest) {
			return ErrBundleSizeOverrun
		}
		elem := rest[:size]
		if err := checkPacketErr(elem, strict); err != nil {
			return err
		}
		rest = rest[size:]
	}
	return nil
}

// CheckPacket reports whether buf holds one syntactically valid top-level packet: a message or a
// bundle, dispatching on the leading bytes. It is the Go counterpart of osc_check_packet, and the
// library's primary validation entry point.
func CheckPacket(buf []byte, strict bool) bool {
	return checkPacketErr(buf, strict) == nil
}

// CheckPacketErr is CheckPacket with a diagnostic error in place of a bare boolean, for logging
// rejected packets.
func CheckPacketErr(buf []byte, strict bool) error {
	return checkPacketErr(buf, strict)
}

func checkPacketErr(buf []byte, strict bool) error {
	if len(buf) == 0 {
		return ErrTruncated
	}
	if len(buf)%4 != 0 {
		return ErrMisaligned
	}
	if IsBundle(buf) {
		return checkBundleErr(buf, strict)
	}
	return checkMessageErr(buf, strict)
}
