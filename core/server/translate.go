package server

import (
	"maps"
	"strings"

	"github.com/routegate/routegate/core/router"
	"github.com/routegate/routegate/core/transport"
)

// translateRequest converts a wire request into the form handlers consume:
// verb parsed into its mask bit, path canonicalized, each multi-value header
// flattened into one space-joined string, body decoded as UTF-8 text.
// Methods outside the verb enumeration yield a zero mask, which never
// matches.
func translateRequest(req *transport.Request) router.Request {
	verb, _ := router.ParseVerb(req.Verb)

	headers := make(map[string]string, len(req.Headers))
	for name, vals := range req.Headers {
		headers[name] = strings.Join(vals, " ")
	}

	return router.Request{
		Verb:        verb,
		Path:        router.NormalizePath(req.Path),
		Headers:     headers,
		PathParams:  maps.Clone(req.PathParams),
		QueryParams: maps.Clone(req.QueryParams),
		Body:        string(req.Body),
	}
}

// translateResponse copies a handler response onto the wire verbatim: status
// code, body bytes, header map and protocol-version marker unchanged.
func translateResponse(resp router.Response) *transport.Response {
	return &transport.Response{
		Code:    resp.Code,
		Body:    resp.Body,
		Headers: maps.Clone(resp.Headers),
		Proto:   resp.Proto,
	}
}
