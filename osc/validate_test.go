package osc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPathValid(t *testing.T) {
	assert.True(t, CheckPath([]byte("/foo/bar")))
}

func TestCheckPathEmpty(t *testing.T) {
	assert.False(t, CheckPath(nil))
	assert.ErrorIs(t, CheckPathErr(nil), ErrPathEmpty)
}

func TestCheckPathNoSlash(t *testing.T) {
	assert.False(t, CheckPath([]byte("foo")))
	assert.ErrorIs(t, CheckPathErr([]byte("foo")), ErrPathNoSlash)
}

func TestCheckPathRejectsSpaceAndHash(t *testing.T) {
	assert.False(t, CheckPath([]byte("/ ")))
	assert.False(t, CheckPath([]byte("/#")))
}

func TestCheckTypeTagsValid(t *testing.T) {
	assert.True(t, CheckTypeTags([]byte(",isfb"), true))
}

func TestCheckTypeTagsMissingComma(t *testing.T) {
	assert.False(t, CheckTypeTags([]byte("isfb"), true))
	assert.ErrorIs(t, CheckTypeTagsErr([]byte("isfb"), true), ErrTypeTagsNoComma)
}

func TestCheckTypeTagsUnknown(t *testing.T) {
	err := CheckTypeTagsErr([]byte(",iz"), true)
	var unknown UnknownTagError
	assert.ErrorAs(t, err, &unknown)
	assert.Equal(t, byte('z'), unknown.Tag)
}

func TestCheckTypeTagsArraysRejectedByDefault(t *testing.T) {
	err := CheckTypeTagsErr([]byte(",i[i]"), true)
	var arrErr ArraysNotSupportedError
	assert.ErrorAs(t, err, &arrErr)
}

func TestCheckTypeTagsRGBAOnlyWhenRelaxed(t *testing.T) {
	assert.False(t, CheckTypeTags([]byte(",r"), true))
	assert.True(t, CheckTypeTags([]byte(",r"), false))
}

func TestCheckMessageValid(t *testing.T) {
	buf := []byte("/oscillator/4/frequency\x00,f\x00\x00\x43\xdc\x00\x00")
	assert.True(t, CheckMessage(buf, true))
}

func TestCheckMessageTruncatedArgument(t *testing.T) {
	buf := []byte("/\x00\x00\x00,i\x00\x00\x00\x00")
	assert.False(t, CheckMessage(buf, true))
}

func TestCheckMessageTrailingBytes(t *testing.T) {
	buf := []byte("/\x00\x00\x00,\x00\x00\x00extra")
	assert.False(t, CheckMessage(buf, true))
}

func TestCheckBundleValid(t *testing.T) {
	buf := []byte("#bundle\x00\x00\x00\x00\x00\x00\x00\x00\x01\x00\x00\x00\x0c/\x00\x00\x00,s\x00\x00hi\x00\x00")
	assert.True(t, CheckBundle(buf, true))
}

func TestCheckBundleEmptyIsValid(t *testing.T) {
	buf := []byte("#bundle\x00\x00\x00\x00\x00\x00\x00\x00\x01")
	assert.True(t, CheckBundle(buf, true))
}

func TestCheckBundleBadTag(t *testing.T) {
	buf := []byte("notbundle")
	assert.False(t, CheckBundle(buf, true))
	assert.ErrorIs(t, CheckBundleErr(buf, true), ErrBundleBadTag)
}

func TestCheckBundleSizeOverrun(t *testing.T) {
	buf := []byte("#bundle\x00\x00\x00\x00\x00\x00\x00\x00\x01\x00\x00\x00\xff/\x00\x00\x00")
	assert.False(t, CheckBundle(buf, true))
}

func TestCheckBundleZeroSizeElementInvalid(t *testing.T) {
	buf := []byte("#bundle\x00\x00\x00\x00\x00\x00\x00\x00\x01\x00\x00\x00\x00")
	assert.False(t, CheckBundle(buf, true))
}

func TestCheckPacketDispatchesByTag(t *testing.T) {
	msg := []byte("/\x00\x00\x00,\x00\x00\x00")
	assert.True(t, CheckPacket(msg, true))

	bundle := []byte("#bundle\x00\x00\x00\x00\x00\x00\x00\x00\x01\x00\x00\x00\x08/\x00\x00\x00,\x00\x00\x00")
	assert.True(t, CheckPacket(bundle, true))
}

func TestCheckPacketMisaligned(t *testing.T) {
	assert.False(t, CheckPacket([]byte("/ab"), true))
	assert.ErrorIs(t, CheckPacketErr([]byte("/ab"), true), ErrMisaligned)
}

func TestCheckPacketBoundsSafetyUnderTruncation(t *testing.T) {
	valid := []byte("#bundle\x00\x00\x00\x00\x00\x00\x00\x00\x01\x00\x00\x00\x0c/a\x00\x00,i\x00\x00\x00\x00\x00\x01\x00\x00\x00\x0c/b\x00\x00,i\x00\x00\x00\x00\x00\x02")
	require := assert.New(t)
	require.True(CheckPacket(valid, true))

	for n := 0; n <= len(valid); n++ {
		assert.NotPanics(t, func() {
			CheckPacket(valid[:n], true)
		})
	}
}
