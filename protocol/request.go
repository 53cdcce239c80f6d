package protocol

import (
	"errors"
	"strings"
)

// MaxRequestSize bounds the single buffered read per connection. A payload
// larger than this is truncated and will usually fail JSON decoding; clients
// are expected to keep bodies on one short line.
const MaxRequestSize = 1024

const bearerPrefix = "Bearer "

// ErrMalformed means the raw bytes could not be parsed into a request line.
var ErrMalformed = errors.New("malformed request")

// Request is one decoded wire message. Token carries the bearer token from
// the Authorization header, empty if the header is absent — callers decide
// whether auth is required.
type Request struct {
	Method  string
	Path    string
	Headers map[string]string
	Body    string
	Token   string
}

// Decode parses a raw buffered read into a Request.
//
// The wire format is line-based: CRLF-separated, first line "METHOD PATH",
// then "Header-Name: value" lines until a blank line, and the final
// non-empty line is the body payload (a single-line JSON document).
func Decode(raw []byte) (*Request, error) {
	lines := strings.Split(string(raw), "\r\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, ErrMalformed
	}

	requestLine := strings.Split(lines[0], " ")
	if len(requestLine) < 2 {
		return nil, ErrMalformed
	}

	req := &Request{
		Method:  requestLine[0],
		Path:    requestLine[1],
		Headers: make(map[string]string),
	}

	for _, line := range lines[1:] {
		if line == "" {
			break
		}
		name, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		req.Headers[name] = value
	}

	if auth, ok := req.Headers["Authorization"]; ok && strings.HasPrefix(auth, bearerPrefix) {
		req.Token = strings.TrimPrefix(auth, bearerPrefix)
	}

	// The body is whatever came after the blank header separator; with
	// single-line JSON payloads that is the last non-empty line.
	for i := len(lines) - 1; i > 0; i-- {
		if lines[i] != "" {
			req.Body = lines[i]
			break
		}
	}

	return req, nil
}
