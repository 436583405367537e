package osc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterSetMessage(t *testing.T) {
	buf := make([]byte, 64)
	w := NewWriter(buf)
	w.SetMessage("/foo", ArgInt32(1000), ArgString("hello"))
	assert.True(t, w.Ok())
	assert.Equal(t, []byte("/foo\x00\x00\x00\x00,is\x00\x00\x00\x03\xe8hello\x00\x00\x00"), w.Bytes())
}

func TestWriterOverflowPoisons(t *testing.T) {
	buf := make([]byte, 4)
	w := NewWriter(buf)
	w.SetPath("/toolong")
	assert.False(t, w.Ok())
}

func TestWriterStickyAfterOverflow(t *testing.T) {
	buf := make([]byte, 8)
	w := NewWriter(buf)
	w.SetPath("/toolong")
	assert.False(t, w.Ok())
	posBefore := w.Pos()
	w.SetInt32(1)
	assert.Equal(t, posBefore, w.Pos())
	assert.False(t, w.Ok())
}

func TestWriterBundleItem(t *testing.T) {
	buf := make([]byte, 64)
	w := NewWriter(buf)
	w.StartBundle(Immediate)
	w.SetBundleItem("/a", ArgInt32(1))
	assert.True(t, w.Ok())

	got := w.Bytes()
	assert.Equal(t, []byte(bundleTag), got[:8])
	assert.Equal(t, Immediate, TimeTag(decodeUint64(got[8:16])))

	elemSize := decodeInt32(got[16:20])
	assert.Equal(t, int32(12), elemSize)
	assert.Equal(t, []byte("/a\x00\x00,i\x00\x00\x00\x00\x00\x01"), got[20:32])
}

func TestWriterArgTagDerivedFromArgs(t *testing.T) {
	buf := make([]byte, 32)
	w := NewWriter(buf)
	w.SetMessage("/", ArgTrue(), ArgFalse(), ArgNilValue())
	assert.True(t, w.Ok())
	assert.Equal(t, []byte("/\x00\x00\x00,TFN\x00\x00\x00\x00"), w.Bytes())
}

func TestWriterEmptyBundleRollsBack(t *testing.T) {
	buf := make([]byte, 64)
	w := NewWriter(buf)
	w.StartBundle(Immediate)
	w.EndBundle()
	assert.True(t, w.Ok())
	assert.Equal(t, 0, w.Pos())
	assert.Empty(t, w.Bytes())
}

func TestWriterEmptyNestedBundleItemRollsBack(t *testing.T) {
	buf := make([]byte, 64)
	w := NewWriter(buf)
	w.StartBundle(Immediate)
	w.SetBundleItem("/a", ArgInt32(1))
	w.SetNestedBundleItem(TimeTag(7), func(w *Writer) {
		// no items written: the nested bundle is empty
	})
	w.EndBundle()
	assert.True(t, w.Ok())

	got := w.Bytes()
	assert.True(t, CheckBundle(got, true))

	// Only the "/a" element survives; the empty nested bundle item left nothing behind.
	elemSize := decodeInt32(got[16:20])
	assert.Equal(t, int32(12), elemSize)
	assert.Len(t, got, 32)
}

func TestWriterEndBundleWithoutStartPoisons(t *testing.T) {
	buf := make([]byte, 16)
	w := NewWriter(buf)
	w.EndBundle()
	assert.False(t, w.Ok())
}
