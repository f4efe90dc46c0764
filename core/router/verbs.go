package router

import (
	"net/http"
	"strings"
)

// Verb is a bitmask of allowed HTTP methods for a route.
// Combining masks for the same path is a bitwise OR, so repeated
// registration accumulates verbs instead of replacing them.
type Verb uint

const (
	VerbGet Verb = 1 << iota
	VerbPost
	VerbPut
	VerbPatch
	VerbDelete
	VerbHead
	VerbOptions
)

// VerbAll matches every method the package knows about.
const VerbAll = VerbGet | VerbPost | VerbPut | VerbPatch | VerbDelete |
	VerbHead | VerbOptions

var verbMap = map[string]Verb{
	http.MethodGet:     VerbGet,
	http.MethodPost:    VerbPost,
	http.MethodPut:     VerbPut,
	http.MethodPatch:   VerbPatch,
	http.MethodDelete:  VerbDelete,
	http.MethodHead:    VerbHead,
	http.MethodOptions: VerbOptions,
}

var verbNames = []struct {
	verb Verb
	name string
}{
	{VerbGet, http.MethodGet},
	{VerbPost, http.MethodPost},
	{VerbPut, http.MethodPut},
	{VerbPatch, http.MethodPatch},
	{VerbDelete, http.MethodDelete},
	{VerbHead, http.MethodHead},
	{VerbOptions, http.MethodOptions},
}

// ParseVerb maps an HTTP method name to its verb bit.
// Returns false for methods outside the fixed enumeration.
func ParseVerb(method string) (Verb, bool) {
	v, ok := verbMap[strings.ToUpper(method)]
	return v, ok
}

// Union returns the combination of both masks.
func (v Verb) Union(other Verb) Verb {
	return v | other
}

// Contains reports whether any bit of other is set in v.
func (v Verb) Contains(other Verb) bool {
	return v&other != 0
}

// String renders the mask as a pipe-separated method list, e.g. "GET|POST".
func (v Verb) String() string {
	if v == 0 {
		return "NONE"
	}
	names := make([]string, 0, len(verbNames))
	for _, vn := range verbNames {
		if v&vn.verb != 0 {
			names = append(names, vn.name)
		}
	}
	return strings.Join(names, "|")
}
