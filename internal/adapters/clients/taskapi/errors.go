package taskapi

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/action-pipeline/internal/domain"
)

// maxProblemSize bounds how much of an error body is read.
const maxProblemSize = 64 << 10

// problem is the subset of an RFC 9457 body the task API returns that
// callers can act on.
type problem struct {
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// translateResponse maps a non-202 answer to a domain error. Field errors
// become a *domain.ValidationError so a rejected item reads the same as one
// rejected locally; throttling and server faults wrap domain.ErrUnavailable.
func translateResponse(resp *http.Response) error {
	p := readProblem(resp)
	detail := p.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	status := resp.StatusCode
	switch {
	case len(p.Errors) > 0 && (status == http.StatusBadRequest || status == http.StatusUnprocessableEntity):
		verr := domain.NewValidationError()
		for _, e := range p.Errors {
			verr.Add(strings.TrimPrefix(e.Location, "body."), e.Message)
		}
		return verr
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity:
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)
	case status == http.StatusNotFound:
		return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
	case status == http.StatusConflict:
		return fmt.Errorf("%s: %w", detail, domain.ErrConflict)
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return fmt.Errorf("%s: %w", detail, domain.ErrForbidden)
	case status == http.StatusTooManyRequests, status >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", status, detail)
	}
}

// readProblem decodes a problem+json body, returning the zero problem for
// any other or unreadable body.
func readProblem(resp *http.Response) problem {
	var p problem
	if resp.Body == nil {
		return p
	}
	if mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err != nil || mt != "application/problem+json" {
		return p
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxProblemSize)).Decode(&p); err != nil {
		return problem{}
	}
	return p
}
