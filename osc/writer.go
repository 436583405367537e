package osc

// Writer builds an OSC packet into a caller-provided, fixed-size buffer. It is a sticky-error
// cursor in the style of Rob Pike's errWriter: once a bounded write would overflow the buffer, Ok
// starts reporting false and every subsequent Set/Start/End call becomes a no-op, so a chain of
// calls can be written without checking an error after each one and inspected once at the end.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	buf  []byte
	pos  int
	ok   bool
	mark []int // stack of bundle-item length-prefix positions, for back-patching
	bndl []int // stack of bundle base positions (before the "#bundle\0" tag), for empty rollback
}

// NewWriter returns a Writer that builds into buf starting at offset 0. The caller owns buf and
// must size it generously enough; Writer never grows it.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf, ok: true}
}

// Ok reports whether every write so far has fit within the buffer.
func (w *Writer) Ok() bool { return w.ok }

// Pos returns the number of bytes written so far.
func (w *Writer) Pos() int { return w.pos }

// Bytes returns the written prefix of the buffer. Its result is meaningless if Ok reports false.
func (w *Writer) Bytes() []byte { return w.buf[:w.pos] }

// fail marks the writer poisoned and returns it, for chaining.
func (w *Writer) fail() *Writer {
	w.ok = false
	return w
}

// reserve claims n bytes at the current position and returns the slice to fill, or nil if the
// writer is poisoned or the buffer has no room left.
func (w *Writer) reserve(n int) []byte {
	if !w.ok {
		return nil
	}
	if w.pos+n > len(w.buf) {
		w.fail()
		return nil
	}
	b := w.buf[w.pos : w.pos+n]
	w.pos += n
	return b
}

func (w *Writer) writeBytes(b []byte) *Writer {
	dst := w.reserve(len(b))
	if dst == nil {
		return w
	}
	copy(dst, b)
	return w
}

func (w *Writer) writePaddedString(s []byte) *Writer {
	n := paddedStringLen(len(s))
	dst := w.reserve(n)
	if dst == nil {
		return w
	}
	copy(dst, s)
	for i := len(s); i < n; i++ {
		dst[i] = 0
	}
	return w
}

// SetPath writes a message address path.
func (w *Writer) SetPath(path string) *Writer {
	return w.writePaddedString([]byte(path))
}

// SetTypeTags writes the comma-prefixed type-tag field for the given tag body (without the leading
// comma).
func (w *Writer) SetTypeTags(tags string) *Writer {
	n := paddedTagLen(len(tags))
	dst := w.reserve(n)
	if dst == nil {
		return w
	}
	dst[0] = ','
	copy(dst[1:], tags)
	for i := 1 + len(tags); i < n; i++ {
		dst[i] = 0
	}
	return w
}

// SetInt32 writes a big-endian int32 argument.
func (w *Writer) SetInt32(v int32) *Writer {
	b := encodeInt32(v)
	return w.writeBytes(b[:])
}

// SetFloat writes a big-endian float32 argument.
func (w *Writer) SetFloat(v float32) *Writer {
	b := encodeFloat32(v)
	return w.writeBytes(b[:])
}

// SetString writes a NUL-terminated, zero-padded string argument. s must not contain a NUL byte.
func (w *Writer) SetString(s string) *Writer {
	return w.writePaddedString([]byte(s))
}

// SetBlob writes a 4-byte-size-prefixed, zero-padded blob argument.
func (w *Writer) SetBlob(b []byte) *Writer {
	if !w.ok {
		return w
	}
	sizeB := encodeInt32(int32(len(b)))
	if w.writeBytes(sizeB[:]); !w.ok {
		return w
	}
	n := paddedBlobLen(len(b)) - 4
	dst := w.reserve(n)
	if dst == nil {
		return w
	}
	copy(dst, b)
	for i := len(b); i < n; i++ {
		dst[i] = 0
	}
	return w
}

// SetInt64 writes a big-endian int64 argument.
func (w *Writer) SetInt64(v int64) *Writer {
	b := encodeInt64(v)
	return w.writeBytes(b[:])
}

// SetDouble writes a big-endian float64 argument.
func (w *Writer) SetDouble(v float64) *Writer {
	b := encodeFloat64(v)
	return w.writeBytes(b[:])
}

// SetTimeTag writes an opaque 64-bit time tag argument.
func (w *Writer) SetTimeTag(v TimeTag) *Writer {
	b := encodeUint64(uint64(v))
	return w.writeBytes(b[:])
}

// SetSymbol writes a symbol argument. On the wire it is identical to SetString.
func (w *Writer) SetSymbol(s string) *Writer {
	return w.writePaddedString([]byte(s))
}

// SetChar writes a character argument.
func (w *Writer) SetChar(c rune) *Writer {
	b := encodeInt32(int32(c))
	return w.writeBytes(b[:])
}

// SetMIDI writes a raw 4-byte MIDI packet argument.
func (w *Writer) SetMIDI(m [4]byte) *Writer {
	return w.writeBytes(m[:])
}

// True, False, Nil, and Bang carry no payload on the wire; their presence in the type-tag string
// written by SetTypeTags is the entire encoding, so there is no corresponding Set method.

// SetArg writes a single already-constructed Arg using the method matching its Tag.
func (w *Writer) SetArg(a Arg) *Writer {
	switch a.Tag {
	case TagInt32:
		return w.SetInt32(a.I)
	case TagFloat:
		return w.SetFloat(a.F)
	case TagString:
		return w.writePaddedString(a.Str)
	case TagBlob:
		return w.SetBlob(a.Blob)
	case TagInt64:
		return w.SetInt64(a.H)
	case TagDouble:
		return w.SetDouble(a.D)
	case TagTime:
		return w.SetTimeTag(a.TT)
	case TagSymbol:
		return w.writePaddedString(a.Str)
	case TagChar:
		return w.SetChar(a.C)
	case TagMIDI, TagRGBA:
		return w.SetMIDI(a.MIDI)
	case TagTrue, TagFalse, TagNil, TagBang:
		return w
	default:
		return w.fail()
	}
}

// tagsOf returns the type-tag string implied by a sequence of Args, derived from each Arg's own
// Tag field rather than taken as a separately supplied parameter. Keeping a single source of truth
// for the type-tag string rules out the string and the arguments silently disagreeing.
func tagsOf(args []Arg) string {
	tags := make([]byte, len(args))
	for i, a := range args {
		tags[i] = a.Tag
	}
	return string(tags)
}

// SetMessage writes a complete message: path, type-tag string, and arguments, in order.
func (w *Writer) SetMessage(path string, args ...Arg) *Writer {
	w.SetPath(path)
	w.SetTypeTags(tagsOf(args))
	for _, a := range args {
		w.SetArg(a)
	}
	return w
}

// StartBundle writes a bundle header (the "#bundle\0" tag and the given time tag) and remembers the
// position it started at, so EndBundle can roll back if the bundle turns out to be empty. Every
// StartBundle must be paired with an EndBundle.
func (w *Writer) StartBundle(tt TimeTag) *Writer {
	if !w.ok {
		return w
	}
	base := w.pos
	w.writeBytes([]byte(bundleTag))
	w.SetTimeTag(tt)
	if !w.ok {
		return w
	}
	w.bndl = append(w.bndl, base)
	return w
}

// EndBundle closes the bundle most recently opened by StartBundle. If no bundle item was written
// in between, the bundle is empty; EndBundle then rewinds the writer to the position StartBundle
// found it in, discarding the "#bundle\0" tag and time tag along with it, matching
// osc_end_bundle's rollback to the saved bndl handle when nothing follows the header. Calling
// EndBundle without a matching StartBundle poisons the writer.
func (w *Writer) EndBundle() *Writer {
	if !w.ok {
		return w
	}
	if len(w.bndl) == 0 {
		return w.fail()
	}
	base := w.bndl[len(w.bndl)-1]
	w.bndl = w.bndl[:len(w.bndl)-1]
	if w.pos == base+16 {
		w.pos = base
	}
	return w
}

// StartBundleItem reserves a 4-byte size prefix for one bundle element and remembers its position
// so EndBundleItem can back-patch it once the element's length is known.
func (w *Writer) StartBundleItem() *Writer {
	if !w.ok {
		return w
	}
	start := w.pos
	if w.reserve(4) == nil {
		return w
	}
	w.mark = append(w.mark, start)
	return w
}

// EndBundleItem back-patches the size prefix reserved by the matching StartBundleItem with the
// number of bytes written since. If the item turned out empty (size == 0, typically because a
// nested StartBundle/EndBundle pair found nothing to write), the 4-byte reservation is discarded
// instead of being back-patched with a zero, matching osc_end_bundle_item's rollback to the saved
// itm handle, so the writer never emits a zero-size bundle element CheckBundle would reject.
// Calling EndBundleItem without a matching StartBundleItem poisons the writer.
func (w *Writer) EndBundleItem() *Writer {
	if !w.ok {
		return w
	}
	if len(w.mark) == 0 {
		return w.fail()
	}
	start := w.mark[len(w.mark)-1]
	w.mark = w.mark[:len(w.mark)-1]
	size := w.pos - start - 4
	if size == 0 {
		w.pos = start
		return w
	}
	b := encodeInt32(int32(size))
	copy(w.buf[start:start+4], b[:])
	return w
}

// SetBundleItem writes one complete message as a length-prefixed bundle element, composing
// StartBundleItem, SetMessage, and EndBundleItem atomically.
func (w *Writer) SetBundleItem(path string, args ...Arg) *Writer {
	w.StartBundleItem()
	w.SetMessage(path, args...)
	return w.EndBundleItem()
}

// SetNestedBundleItem writes a complete sub-bundle as a length-prefixed bundle element. fn is
// called with the writer positioned to write the sub-bundle's own header and items.
func (w *Writer) SetNestedBundleItem(tt TimeTag, fn func(w *Writer)) *Writer {
	w.StartBundleItem()
	w.StartBundle(tt)
	fn(w)
	w.EndBundle()
	return w.EndBundleItem()
}
