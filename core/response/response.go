// Package response provides construction helpers for the structured
// responses returned by callback-style route handlers.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/routegate/routegate/core/router"
)

// Text builds a response whose body is the UTF-8 encoding of text and whose
// content-type header carries an explicit utf-8 charset. Pure construction,
// no error conditions.
func Text(text, contentType string, code int) router.Response {
	if code == 0 {
		code = http.StatusOK
	}
	return router.Response{
		Code: code,
		Body: []byte(text),
		Headers: map[string][]string{
			"content-type": {contentType + ";charset=utf-8"},
		},
	}
}

// String is a text/plain response with the given status code.
func String(text string, code int) router.Response {
	return Text(text, "text/plain", code)
}

// JSON marshals v and wraps it as an application/json response.
// Marshal failures surface to the caller; nothing is completed on error.
func JSON(v any, code int) (router.Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return router.Response{}, err
	}
	if code == 0 {
		code = http.StatusOK
	}
	return router.Response{
		Code: code,
		Body: body,
		Headers: map[string][]string{
			"content-type": {"application/json;charset=utf-8"},
		},
	}, nil
}

// NotFound is the empty-body 404 response used for unmatched requests.
func NotFound() router.Response {
	return router.NotFoundResponse()
}
