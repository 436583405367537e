package osc

// MethodFunc handles one matched message. tt is the timetag of the enclosing bundle, or Immediate
// for a bare top-level message. path and fmt are views into buf (path without padding, fmt without
// its leading comma). args is a cursor positioned at the first argument, and remaining is the
// number of argument bytes left in the message.
//
// A MethodFunc reports whether it consumed the message: true stops Dispatch from trying any
// further Method entries against this particular message; false lets the scan continue, so more
// than one registered Method can fire for the same message.
type MethodFunc func(tt TimeTag, path, fmt []byte, args Cursor, remaining int, user any) bool

// Method binds a callback to an address pattern and, optionally, a required type-tag string.
// A nil Path or nil Fmt matches any value for that field, mirroring the NULL-pointer "don't care"
// convention of the C implementation's method table.
//
// Dispatch scans a []Method in declaration order; scanning for a given message stops as soon as a
// matching Method's Callback reports it consumed the message, exactly as
// osc_match_method/_osc_method_dispatch_message does. Wildcard glob matching against Path is
// explicitly out of scope; Path match is a literal byte comparison.
type Method struct {
	Path     *string
	Fmt      *string
	Callback MethodFunc
}

func matchMethod(m Method, path, fmt []byte) bool {
	if m.Path != nil && string(path) != *m.Path {
		return false
	}
	if m.Fmt != nil && string(fmt) != *m.Fmt {
		return false
	}
	return true
}

// dispatchMessage decodes one message's path and type-tag field and invokes every Method in
// methods whose pattern matches, stopping early for a Method whose Callback reports consumption.
// It is the Go counterpart of _osc_method_dispatch_message.
func dispatchMessage(tt TimeTag, buf []byte, methods []Method, user any) {
	c := Cursor(buf)
	path, rest := c.Path()
	if rest == nil {
		return
	}
	tagField, argRest := Cursor(rest).TypeTags()
	if argRest == nil {
		return
	}
	for _, m := range methods {
		if !matchMethod(m, path, tagField) {
			continue
		}
		if m.Callback == nil {
			continue
		}
		if m.Callback(tt, path, tagField, argRest, len(argRest), user) {
			return
		}
	}
}

// BundleHooks lets a caller observe bundle boundaries while Dispatch walks nested bundles, without
// those boundaries being a Method concern. Either field may be nil.
type BundleHooks struct {
	Enter func(tt TimeTag, user any)
	Exit  func(tt TimeTag, user any)
}

// dispatchBundle recursively walks a bundle, invoking hooks around it and dispatching every
// message it finds (at any depth) against methods with that message's enclosing bundle's timetag.
// It is the Go counterpart of _osc_method_dispatch_bundle.
func dispatchBundle(buf []byte, methods []Method, hooks BundleHooks, user any) bool {
	if len(buf) < 16 {
		return false
	}
	tt := TimeTag(decodeUint64(buf[8:16]))
	if hooks.Enter != nil {
		hooks.Enter(tt, user)
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
		if !dispatchPacket(tt, elem, methods, hooks, user) {
			return false
		}
		rest = rest[4+size:]
	}
	if hooks.Exit != nil {
		hooks.Exit(tt, user)
	}
	return true
}

func dispatchPacket(tt TimeTag, buf []byte, methods []Method, hooks BundleHooks, user any) bool {
	if IsBundle(buf) {
		return dispatchBundle(buf, methods, hooks, user)
	}
	dispatchMessage(tt, buf, methods, user)
	return true
}

// Dispatch walks buf, a syntactically valid top-level packet, and invokes every Method in methods
// whose Path and Fmt match each message found, recursing through any bundle nesting and carrying
// each message's enclosing bundle's timetag. A bare top-level message carries the implicit
// Immediate timetag. hooks, for whichever fields are non-nil, is invoked around each bundle
// boundary encountered. user is passed through to every Callback and hook invocation unchanged.
//
// Dispatch does not itself validate buf; run CheckPacket first over untrusted input. It is the Go
// counterpart of osc_dispatch_method.
func Dispatch(buf []byte, methods []Method, hooks BundleHooks, user any) bool {
	if IsBundle(buf) {
		return dispatchBundle(buf, methods, hooks, user)
	}
	dispatchMessage(Immediate, buf, methods, user)
	return true
}
