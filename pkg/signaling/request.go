package signaling

import "github.com/backkem/kvsignaling/pkg/bounded"

// Request holds the caller-owned buffers a builder renders into.
//
// The capacity of each slot is the length of its buffer. After a successful
// build URLLen and BodyLen report the bytes used. After a failed build the
// buffers may hold partial output and must be ignored.
type Request struct {
	URLBuf  []byte
	BodyBuf []byte

	URLLen  int
	BodyLen int
}

// NewRequest allocates a Request with the given slot capacities.
func NewRequest(urlCap, bodyCap int) *Request {
	return &Request{
		URLBuf:  make([]byte, urlCap),
		BodyBuf: make([]byte, bodyCap),
	}
}

// URL returns the rendered URL.
func (r *Request) URL() []byte {
	return r.URLBuf[:r.URLLen]
}

// Body returns the rendered body. It is empty for body-less requests.
func (r *Request) Body() []byte {
	return r.BodyBuf[:r.BodyLen]
}

// begin resets the used lengths and returns writers over both slots.
func (r *Request) begin() (url, body *bounded.Writer) {
	r.URLLen, r.BodyLen = 0, 0
	return bounded.NewWriter(r.URLBuf), bounded.NewWriter(r.BodyBuf)
}

// finish records the used lengths, or returns the first writer error.
func (r *Request) finish(url, body *bounded.Writer) error {
	if err := url.Err(); err != nil {
		return err
	}
	if err := body.Err(); err != nil {
		return err
	}
	r.URLLen, r.BodyLen = url.Len(), body.Len()
	return nil
}

func checkRequired(s string, max int) error {
	if s == "" || len(s) > max {
		return ErrBadParam
	}
	return nil
}

func checkOptional(s string, max int) error {
	if len(s) > max {
		return ErrBadParam
	}
	return nil
}

// writeStringField writes "key":"value" with a leading comma unless first.
func writeStringField(w *bounded.Writer, first bool, key, value string) {
	if !first {
		_ = w.WriteByte(',')
	}
	_ = w.WriteByte('"')
	_ = w.WriteString(key)
	_ = w.WriteString(`":"`)
	_ = w.WriteString(value)
	_ = w.WriteByte('"')
}
