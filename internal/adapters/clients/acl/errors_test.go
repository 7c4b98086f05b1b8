package acl

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/protocolo-ceremonial/flagplan/internal/domain"
)

func registryResponse(status int, contentType, body string) *http.Response {
	h := http.Header{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &http.Response{StatusCode: status, Header: h, Body: io.NopCloser(strings.NewReader(body))}
}

func TestTranslateHTTPError(t *testing.T) {
	t.Parallel()

	const problemJSON = "application/problem+json"
	domainErrs := []error{domain.ErrNotFound, domain.ErrValidation, domain.ErrInvalidInput, domain.ErrUnavailable}

	tests := []struct {
		name       string
		resp       *http.Response
		wantIs     error // nil means no domain error
		wantDetail string
	}{
		{name: "404", resp: registryResponse(http.StatusNotFound, "", ""), wantIs: domain.ErrNotFound, wantDetail: "Not Found"},
		{name: "400", resp: registryResponse(http.StatusBadRequest, "", ""), wantIs: domain.ErrValidation},
		{name: "422", resp: registryResponse(http.StatusUnprocessableEntity, "", ""), wantIs: domain.ErrValidation},
		{name: "401", resp: registryResponse(http.StatusUnauthorized, "", ""), wantIs: domain.ErrUnavailable},
		{name: "403", resp: registryResponse(http.StatusForbidden, "", ""), wantIs: domain.ErrUnavailable},
		{name: "429", resp: registryResponse(http.StatusTooManyRequests, "", ""), wantIs: domain.ErrUnavailable},
		{name: "500", resp: registryResponse(http.StatusInternalServerError, "", ""), wantIs: domain.ErrUnavailable},
		{name: "503", resp: registryResponse(http.StatusServiceUnavailable, "", ""), wantIs: domain.ErrUnavailable},
		{name: "418 unmapped", resp: registryResponse(http.StatusTeapot, "", ""), wantDetail: "I'm a teapot"},
		{
			name:       "problem detail",
			resp:       registryResponse(http.StatusNotFound, problemJSON, `{"title":"Not Found","detail":"country table not published"}`),
			wantIs:     domain.ErrNotFound,
			wantDetail: "country table not published",
		},
		{
			name:       "problem with charset",
			resp:       registryResponse(http.StatusBadGateway, problemJSON+"; charset=utf-8", `{"detail":"upstream gone"}`),
			wantIs:     domain.ErrUnavailable,
			wantDetail: "upstream gone",
		},
		{
			name:       "plain text body ignored",
			resp:       registryResponse(http.StatusNotFound, "text/plain", "nothing here"),
			wantIs:     domain.ErrNotFound,
			wantDetail: "Not Found",
		},
		{
			name:       "broken problem body",
			resp:       registryResponse(http.StatusBadGateway, problemJSON, `{"detail":`),
			wantIs:     domain.ErrUnavailable,
			wantDetail: "Bad Gateway",
		},
		{
			name:       "nil body",
			resp:       &http.Response{StatusCode: http.StatusNotFound, Header: http.Header{"Content-Type": {problemJSON}}},
			wantIs:     domain.ErrNotFound,
			wantDetail: "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := TranslateHTTPError(tt.resp)

			var regErr *RegistryError
			if !errors.As(err, &regErr) {
				t.Fatalf("error %v is not a *RegistryError", err)
			}
			if regErr.Status != tt.resp.StatusCode {
				t.Errorf("Status = %d, want %d", regErr.Status, tt.resp.StatusCode)
			}
			if tt.wantDetail != "" && regErr.Detail != tt.wantDetail {
				t.Errorf("Detail = %q, want %q", regErr.Detail, tt.wantDetail)
			}
			for _, de := range domainErrs {
				if got, want := errors.Is(err, de), de == tt.wantIs; got != want {
					t.Errorf("errors.Is(err, %v) = %v, want %v", de, got, want)
				}
			}
		})
	}
}

func TestTranslateHTTPError_FieldErrors(t *testing.T) {
	t.Parallel()

	body := `{
		"detail": "validation failed",
		"errors": [
			{"location": "query.region", "message": "unknown region"},
			{"location": "query.since", "message": "must be a date"},
			{"location": "header.Accept", "message": "unsupported"}
		]
	}`
	err := TranslateHTTPError(registryResponse(http.StatusBadRequest, "application/problem+json", body))

	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("error %v is not ErrValidation", err)
	}
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error %v carries no *ValidationError", err)
	}
	want := map[string]string{
		"region":        "unknown region",
		"since":         "must be a date",
		"header.Accept": "unsupported",
	}
	if len(verr.Fields) != len(want) {
		t.Fatalf("Fields = %v, want %v", verr.Fields, want)
	}
	for k, v := range want {
		if verr.Fields[k] != v {
			t.Errorf("Fields[%q] = %q, want %q", k, verr.Fields[k], v)
		}
	}
	if !strings.Contains(err.Error(), "registry answered 400") {
		t.Errorf("message = %q", err.Error())
	}
}
