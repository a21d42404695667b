package signaling

import (
	"bytes"
	"errors"
	"testing"
)

const (
	testRegion     = "us-west-2"
	testControlURL = "https://kinesisvideo.us-west-2.amazonaws.com"
	testChannelARN = "arn:aws:kinesisvideo:us-west-2:123456789012:channel/demo/1234567890123"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	c, err := NewContext(ContextConfig{Region: testRegion})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return c
}

// checkRequest builds with ample buffers and compares the output.
func checkRequest(t *testing.T, build func(req *Request) error, wantURL, wantBody string) {
	t.Helper()
	req := NewRequest(2048, 4096)
	if err := build(req); err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := string(req.URL()); got != wantURL {
		t.Errorf("url:\n got %s\nwant %s", got, wantURL)
	}
	if got := string(req.Body()); got != wantBody {
		t.Errorf("body:\n got %s\nwant %s", got, wantBody)
	}
}

// checkShrink verifies that every URL or body capacity below the rendered
// length fails with ErrOutOfMemory and leaves the bytes past capacity alone.
func checkShrink(t *testing.T, build func(req *Request) error) {
	t.Helper()
	full := NewRequest(2048, 4096)
	if err := build(full); err != nil {
		t.Fatalf("build: %v", err)
	}
	urlLen, bodyLen := full.URLLen, full.BodyLen

	const sentinel = 0xAA
	fill := func(b []byte) {
		for i := range b {
			b[i] = sentinel
		}
	}
	untouched := func(b []byte) bool {
		return bytes.Count(b, []byte{sentinel}) == len(b)
	}

	for n := 0; n < urlLen; n++ {
		backing := make([]byte, urlLen+8)
		fill(backing)
		req := &Request{URLBuf: backing[:n], BodyBuf: make([]byte, 4096)}
		if err := build(req); !errors.Is(err, ErrOutOfMemory) {
			t.Fatalf("url capacity %d/%d: expected ErrOutOfMemory, got %v", n, urlLen, err)
		}
		if !untouched(backing[n:]) {
			t.Fatalf("url capacity %d: wrote past capacity", n)
		}
	}

	for n := 0; n < bodyLen; n++ {
		backing := make([]byte, bodyLen+8)
		fill(backing)
		req := &Request{URLBuf: make([]byte, 2048), BodyBuf: backing[:n]}
		if err := build(req); !errors.Is(err, ErrOutOfMemory) {
			t.Fatalf("body capacity %d/%d: expected ErrOutOfMemory, got %v", n, bodyLen, err)
		}
		if !untouched(backing[n:]) {
			t.Fatalf("body capacity %d: wrote past capacity", n)
		}
	}
}
