// Package wire implements the line-based request/response protocol spoken
// on the trading socket. It is deliberately not real HTTP: requests are
// parsed positionally and every reply is a fixed-shape 200 response.
package wire

import (
	"bufio"
	"net/url"
	"strconv"
	"strings"
)

// Request is one parsed transaction request.
type Request struct {
	Verb   string
	Symbol string
	Amount int64
}

// ReadRequest reads one request head from r: the request line, then every
// header line up to and including the terminating blank line. Headers are
// drained and discarded; the protocol carries no body.
func ReadRequest(r *bufio.Reader) (Request, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return Request{}, err
	}
	req := ParseRequestLine(line)

	// Drain header lines up to the blank line. An EOF here is tolerated:
	// the request line already carried everything we need.
	for {
		hdr, err := r.ReadString('\n')
		trimmed := strings.TrimRight(hdr, "\r\n")
		if trimmed == "" || err != nil {
			break
		}
	}
	return req, nil
}

// ParseRequestLine extracts the transaction from an HTTP-style request line
// such as "GET /trans?trans=buy&stock=ABC&a=30 HTTP/1.1".
//
// The target (second whitespace-delimited field) is percent-decoded, then
// '&' and '=' are normalized to spaces and the verb, symbol and amount are
// read from token positions 2, 4 and 6. Field names are never matched by
// key — a client that reorders its query fields gets whatever values happen
// to sit at those positions. Missing tokens yield empty strings; a
// non-numeric amount yields 0.
func ParseRequestLine(line string) Request {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Request{}
	}

	target, err := url.QueryUnescape(fields[1])
	if err != nil {
		target = fields[1]
	}
	target = strings.ReplaceAll(target, "&", " ")
	target = strings.ReplaceAll(target, "=", " ")

	tokens := strings.Fields(target)
	var req Request
	if len(tokens) > 1 {
		req.Verb = tokens[1]
	}
	if len(tokens) > 3 {
		req.Symbol = tokens[3]
	}
	if len(tokens) > 5 {
		if a, err := strconv.ParseUint(tokens[5], 10, 63); err == nil {
			req.Amount = int64(a)
		}
	}
	return req
}
