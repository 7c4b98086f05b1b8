// Package acl implements the Anti-Corruption Layer between the remote country
// reference registry and the domain. The wire translator lives in the
// acl/country subpackage; request execution and error mapping live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/protocolo-ceremonial/flagplan/internal/domain"
)

// maxErrorBodySize caps how much of an error body is read.
const maxErrorBodySize = 1 << 20

// RegistryError is a non-success answer from the reference registry. It
// unwraps to the domain error the status maps to, if any.
type RegistryError struct {
	Status int
	Detail string
	cause  error
}

func (e *RegistryError) Error() string {
	msg := fmt.Sprintf("registry answered %d", e.Status)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *RegistryError) Unwrap() error { return e.cause }

// TranslateHTTPError turns a registry error response into a *RegistryError.
// 404 maps to ErrNotFound and 400/422 to ErrValidation, with per-field
// messages when the problem body lists them. The registry is read-only for
// this service, so auth failures, throttling and 5xx all map to
// ErrUnavailable. Other statuses carry no domain meaning.
func TranslateHTTPError(resp *http.Response) error {
	pd := readProblem(resp)
	e := &RegistryError{Status: resp.StatusCode, Detail: pd.Detail}
	if e.Detail == "" {
		e.Detail = http.StatusText(resp.StatusCode)
	}

	switch code := resp.StatusCode; {
	case code == http.StatusNotFound:
		e.cause = domain.ErrNotFound
	case code == http.StatusBadRequest, code == http.StatusUnprocessableEntity:
		e.cause = domain.ErrValidation
		if len(pd.Errors) > 0 {
			e.cause = pd.validationError()
		}
	case code == http.StatusUnauthorized, code == http.StatusForbidden,
		code == http.StatusTooManyRequests, code >= http.StatusInternalServerError:
		e.cause = domain.ErrUnavailable
	}
	return e
}

// problem is the subset of an RFC 9457 body the registry fills in.
type problem struct {
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// readProblem decodes an application/problem+json body. Anything else, or an
// undecodable body, yields an empty problem.
func readProblem(resp *http.Response) problem {
	var pd problem
	if resp.Body == nil {
		return pd
	}
	mt, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mt != "application/problem+json" {
		return pd
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&pd); err != nil {
		return problem{}
	}
	return pd
}

// validationError keys fields by location with the "query." prefix removed.
func (p problem) validationError() *domain.ValidationError {
	fields := make(map[string]string, len(p.Errors))
	for _, d := range p.Errors {
		fields[strings.TrimPrefix(d.Location, "query.")] = d.Message
	}
	return &domain.ValidationError{Fields: fields}
}
