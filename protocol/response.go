package protocol

import "fmt"

// Response is the minimal one-line reply written back to the client. This is
// deliberately not standards-compliant HTTP: no headers, no Content-Length,
// just a status line carrying the payload.
type Response struct {
	StatusCode int
	StatusText string
	Body       string
}

// Encode renders the response as wire bytes.
func (r *Response) Encode() []byte {
	body := r.Body
	if body == "" {
		body = r.StatusText
	}
	return []byte(fmt.Sprintf("HTTP/1.1 %d %s\r\n", r.StatusCode, body))
}

func OK(body string) *Response {
	return &Response{StatusCode: 200, StatusText: "OK", Body: body}
}

func Created(body string) *Response {
	if body == "" {
		body = "Successfully created"
	}
	return &Response{StatusCode: 201, StatusText: "Created", Body: body}
}

func BadRequest(body string) *Response {
	if body == "" {
		body = "The request was invalid"
	}
	return &Response{StatusCode: 400, StatusText: "Bad Request", Body: body}
}

func Unauthorized(body string) *Response {
	if body == "" {
		body = "Authentication is required and has failed or has not yet been provided"
	}
	return &Response{StatusCode: 401, StatusText: "Unauthorized", Body: body}
}

func NotFound(body string) *Response {
	if body == "" {
		body = "The requested resource was not found"
	}
	return &Response{StatusCode: 404, StatusText: "Not Found", Body: body}
}

func Conflict(body string) *Response {
	if body == "" {
		body = "The resource already exists"
	}
	return &Response{StatusCode: 409, StatusText: "Conflict", Body: body}
}

func InternalServerError() *Response {
	return &Response{StatusCode: 500, StatusText: "Internal Server Error", Body: "An internal server error occurred"}
}
