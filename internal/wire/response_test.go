package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriteResponse_Shape(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResponse(&buf, "Stocks reset"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := "HTTP/1.1 200 OK\r\n" +
		"Server: SimpleServer\r\n" +
		"Content-Length: 12\r\n" +
		"Connection: Close\r\n" +
		"Content-Type: text/html\r\n\r\n" +
		"Stocks reset"
	if buf.String() != want {
		t.Fatalf("response mismatch:\ngot  %q\nwant %q", buf.String(), want)
	}
}

func TestWriteResponse_EmptyBody(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResponse(&buf, ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Content-Length: 0\r\n")) {
		t.Fatalf("expected Content-Length: 0, got %q", buf.String())
	}
}

// failWriter fails after n bytes.
type failWriter struct {
	n int
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errWrite
	}
	if len(p) > w.n {
		p = p[:w.n]
	}
	w.n -= len(p)
	if w.n == 0 {
		return len(p), errWrite
	}
	return len(p), nil
}

var errWrite = errors.New("write failed")

func TestWriteResponse_WriteFailure(t *testing.T) {
	if err := WriteResponse(&failWriter{n: 10}, "body"); err == nil {
		t.Fatal("expected error from failing writer")
	}
}
