package wire

import (
	"fmt"
	"io"
)

// responseHead is the fixed response shape; only Content-Length varies.
// Every reply is a 200 — ledger misses and invalid verbs are reported in
// the body, never in the status line.
const responseHead = "HTTP/1.1 200 OK\r\n" +
	"Server: SimpleServer\r\n" +
	"Content-Length: %d\r\n" +
	"Connection: Close\r\n" +
	"Content-Type: text/html\r\n\r\n"

// WriteResponse writes the response head and the result body to w.
// Content-Length is the exact byte length of the body.
func WriteResponse(w io.Writer, body string) error {
	if _, err := fmt.Fprintf(w, responseHead, len(body)); err != nil {
		return err
	}
	_, err := io.WriteString(w, body)
	return err
}
