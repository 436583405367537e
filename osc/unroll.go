package osc

// UnrollMode selects how deeply bundle nesting is flattened before a packet reaches a consumer.
type UnrollMode int

const (
	// UnrollNone leaves the packet untouched; the caller sees bundles as bundles.
	UnrollNone UnrollMode = iota
	// UnrollPartial repacks each bundle level's direct messages into one compacted bundle and
	// delivers it via Bundle, then descends into nested bundles and does the same for each of them
	// in turn, recursively. Unlike UnrollFull it never surfaces a message from inside a bundle on its
	// own; every such message reaches the caller wrapped in its (possibly single-element) enclosing
	// bundle. A bare top-level message is delivered via Message.
	UnrollPartial
	// UnrollFull recursively flattens every level of bundle nesting, delivering only messages.
	UnrollFull
)

// Inject carries the callbacks Unroll invokes as it walks a packet. Under UnrollPartial and
// UnrollFull, Stamp is called once per bundle walked into (before its elements); UnrollNone never
// calls Stamp. Message is called once per message delivered on its own: every message under
// UnrollFull, and a bare top-level message under any mode. Bundle is called once per bundle
// delivered as a whole: under UnrollNone for a top-level bundle, and under UnrollPartial for every
// bundle level that has at least one direct message of its own (an empty level is discarded
// silently).
type Inject struct {
	Stamp   func(tt TimeTag)
	Message func(buf []byte)
	Bundle  func(buf []byte)
}

// Unroll walks buf, a syntactically valid top-level packet, and invokes the callbacks in inject
// for each element surfaced under mode. It returns false if buf is not well-formed enough to walk
// (callers are expected to have already run CheckPacket over untrusted input; Unroll itself does
// not repeat the structural checks beyond what it needs to stay within buf).
//
// UnrollPartial compacts the bundle's own backing array in place (spec.md §5/§9): each level's
// message elements are moved forward via copy over the nested-bundle elements between them, so buf
// must be uniquely owned by the caller for the duration of the call.
func Unroll(buf []byte, mode UnrollMode, inject Inject) bool {
	switch mode {
	case UnrollNone:
		return unrollNone(buf, inject)
	case UnrollPartial:
		return unrollPartial(buf, inject)
	case UnrollFull:
		return unrollFull(buf, inject)
	default:
		return false
	}
}

func unrollNone(buf []byte, inject Inject) bool {
	if IsBundle(buf) {
		if inject.Bundle != nil {
			inject.Bundle(buf)
		}
		return true
	}
	if inject.Message != nil {
		inject.Message(buf)
	}
	return true
}

// unrollFull recursively flattens every level of nesting, invoking Message for every message
// found and Stamp once per bundle header walked into. It is the Go counterpart of
// _unroll_full/osc_unroll_packet in full mode.
func unrollFull(buf []byte, inject Inject) bool {
	if !IsBundle(buf) {
		if inject.Message != nil {
			inject.Message(buf)
		}
		return true
	}
	if len(buf) < 16 {
		return false
	}
	tt := TimeTag(decodeUint64(buf[8:16]))
	if inject.Stamp != nil {
		inject.Stamp(tt)
	}
	rest := buf[16:]
	for len(rest) > 0 {
		if len(rest) < 4 {
			return false
		}
		size := decodeInt32(rest[:4])
		if size <= 0 || int(size) > len(rest)-4 {
			return false
		}
		elem := rest[4 : 4+size]
		if !unrollFull(elem, inject) {
			return false
		}
		rest = rest[4+size:]
	}
	return true
}

// unrollPartial repacks this bundle's direct message elements, size prefixes included, to start
// right after the 16-byte header, squeezing out its own nested-bundle elements (each of which is
// copied aside when it is reached, so the compaction can never clobber them), delivers the
// repacked bundle via Bundle, and then recurses into each nested bundle in turn. It is the Go
// counterpart of _unroll_partial, restructured as a single pass plus recursion rather than
// _unroll_partial's own two passes, since Go's copy (unlike a naive memmove-free compaction) does
// the right thing regardless of which elements are visited first.
func unrollPartial(buf []byte, inject Inject) bool {
	if !IsBundle(buf) {
		if inject.Message != nil {
			inject.Message(buf)
		}
		return true
	}
	if len(buf) < 16 {
		return false
	}
	tt := TimeTag(decodeUint64(buf[8:16]))
	if inject.Stamp != nil {
		inject.Stamp(tt)
	}

	src := buf[16:]
	dst := buf[16:16]
	var nested [][]byte
	for len(src) > 0 {
		if len(src) < 4 {
			return false
		}
		size := decodeInt32(src[:4])
		if size <= 0 || int(size) > len(src)-4 {
			return false
		}
		payload := src[4 : 4+size]
		if IsBundle(payload) {
			// Copy the nested bundle's payload out before compaction runs, since compacting the
			// messages that precede it in src would otherwise overwrite bytes it still owns.
			nested = append(nested, append([]byte(nil), payload...))
		} else {
			// Keep the size prefix: dst must remain a well-formed sequence of size-prefixed
			// elements, not a bare concatenation of payloads. copy tolerates the source and
			// destination slices overlapping, which they always do here since dst trails src
			// within the same backing array.
			full := src[:4+size]
			n := copy(dst[len(dst):cap(dst)], full)
			dst = dst[:len(dst)+n]
		}
		src = src[4+size:]
	}

	if len(dst) > 0 {
		if inject.Bundle != nil {
			inject.Bundle(buf[:16+len(dst)])
		}
	}

	for _, elem := range nested {
		if !unrollPartial(elem, inject) {
			return false
		}
	}
	return true
}
