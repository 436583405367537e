package osc

import "time"

// TimeTag is an opaque 64-bit OSC time tag. The codec never interprets its bits; Immediate is the
// one reserved value with defined meaning ("execute as soon as possible").
//
// Semantically a TimeTag is an NTP-style seconds.fraction pair (32 bits of seconds since the 1900
// epoch, 32 bits of fractional seconds), but that interpretation lives entirely in TimeTagFromTime
// and Time below; nothing in cursor.go, writer.go, validate.go, unroll.go, or dispatch.go depends
// on it.
type TimeTag uint64

// ntpEpochOffset is the number of seconds between the NTP epoch (1900-01-01) and the Unix epoch
// (1970-01-01).
const ntpEpochOffset = 2208988800

// TimeTagFromTime converts a time.Time into its NTP-style OSC TimeTag representation.
func TimeTagFromTime(t time.Time) TimeTag {
	secs := uint64(t.Unix()+ntpEpochOffset) << 32
	frac := uint64(float64(t.Nanosecond()) * (1 << 32) / 1e9)
	return TimeTag(secs | frac)
}

// Time converts the TimeTag back into a time.Time, assuming NTP-style seconds.fraction semantics.
// Immediate has no meaningful time value; callers should check for it separately.
func (tt TimeTag) Time() time.Time {
	secs := int64(tt>>32) - ntpEpochOffset
	frac := uint64(tt & 0xffffffff)
	nanos := int64(float64(frac) * 1e9 / (1 << 32))
	return time.Unix(secs, nanos).UTC()
}
