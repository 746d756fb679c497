package nest

import "net/http"

// Response represents an HTTP response with a custom status code and body.
// Handlers that need to control the status code build one with the
// constructors below and deliver it through Send:
//
//	func (c *ItemController) Create(ctx nest.Context) error {
//		item, err := c.store.Insert(ctx)
//		if err != nil {
//			return err
//		}
//		return nest.Created(item).Send(ctx)
//	}
type Response struct {
	// StatusCode is the HTTP status code to return (e.g., 200, 201, 404)
	StatusCode int `json:"-"`

	// Body is JSON encoded and sent to the client; nil sends an empty body
	Body any `json:"body,omitempty"`

	headers map[string]string
}

// NewResponse creates a new Response with the specified status code and body
func NewResponse(statusCode int, body any) *Response {
	return &Response{
		StatusCode: statusCode,
		Body:       body,
	}
}

// OK creates a 200 OK response with the given body
func OK(body any) *Response {
	return NewResponse(http.StatusOK, body)
}

// Created creates a 201 Created response with the given body
func Created(body any) *Response {
	return NewResponse(http.StatusCreated, body)
}

// NoContent creates a 204 No Content response
func NoContent() *Response {
	return NewResponse(http.StatusNoContent, nil)
}

// BadRequest creates a 400 Bad Request response with the given error message
func BadRequest(message string) *Response {
	return NewResponse(http.StatusBadRequest, map[string]string{"error": message})
}

// NotFound creates a 404 Not Found response with the given error message
func NotFound(message string) *Response {
	return NewResponse(http.StatusNotFound, map[string]string{"error": message})
}

// InternalServerError creates a 500 Internal Server Error response with the given error message
func InternalServerError(message string) *Response {
	return NewResponse(http.StatusInternalServerError, map[string]string{"error": message})
}

// WithHeader adds a response header applied when the response is sent.
func (r *Response) WithHeader(key, value string) *Response {
	if r.headers == nil {
		r.headers = make(map[string]string)
	}
	r.headers[key] = value
	return r
}

// Send writes the response through c. A zero status code defaults to 200,
// and a nil body or a 204 status sends no body.
func (r *Response) Send(c Context) error {
	for k, v := range r.headers {
		c.SetHeader(k, v)
	}
	status := r.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	if r.Body == nil || status == http.StatusNoContent {
		return c.NoContent(status)
	}
	return c.JSON(status, r.Body)
}
