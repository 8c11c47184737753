package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/apolonotes/apolo-console/internal/notify"
	"github.com/go-resty/resty/v2"
)

// Fixed user-visible messages per outcome class. The classifier dispatches
// exactly one of them per failed call before re-raising the mapped error.
const (
	msgTimeout      = "Timeout: request expired"
	msgNetwork      = "Network error: the server is not responding or is down"
	msgBadRequest   = "Invalid request"
	msgUnauthorized = "Unauthorized. Please sign in."
	msgForbidden    = "Access denied"
	msgServer       = "Server error"
	msgOther        = "Request failed"
)

// apiError is the backend's JSON error envelope.
type apiError struct {
	Message string `json:"message"`
}

// classify inspects the outcome of a single request. For every outcome other
// than plain success it dispatches the fixed notification for its class and
// returns an error wrapping the matching sentinel; callers then apply their
// own handling on top.
func (h *httpDoer) classify(resp *resty.Response, err error) error {
	if err != nil {
		if isTimeout(err) {
			h.dispatcher.Notify(msgTimeout, notify.SeverityError)
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		h.dispatcher.Notify(msgNetwork, notify.SeverityError)
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	message := serverMessage(resp)
	h.logger.Debug().Int("status", status).Str("message", message).Msg("request failed")

	switch {
	case status == http.StatusBadRequest:
		h.dispatcher.Notify(msgBadRequest, notify.SeverityError)
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case status == http.StatusUnauthorized:
		h.dispatcher.Notify(msgUnauthorized, notify.SeverityError)
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case status == http.StatusForbidden:
		h.dispatcher.Notify(msgForbidden, notify.SeverityError)
		return fmt.Errorf("%w: %s", ErrForbidden, message)
	case status == http.StatusNotFound:
		h.dispatcher.Notify(msgOther, notify.SeverityError)
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case status >= http.StatusInternalServerError:
		h.dispatcher.Notify(msgServer, notify.SeverityError)
		return fmt.Errorf("%w: http %d: %s", ErrServer, status, message)
	default:
		h.dispatcher.Notify(msgOther, notify.SeverityError)
		return fmt.Errorf("http %d: %s", status, message)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// serverMessage extracts the backend's error message from the response body,
// falling back to the raw body and then to the HTTP status text.
func serverMessage(resp *resty.Response) string {
	var payload apiError
	if unmarshalErr := json.Unmarshal(resp.Body(), &payload); unmarshalErr == nil && payload.Message != "" {
		return payload.Message
	}

	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}
	return http.StatusText(resp.StatusCode())
}
