package session

import (
	"errors"

	"github.com/dmitrijs2005/fitcoach/internal/client/client"
)

const (
	MsgAuthFailed     = "Authentication failed"
	MsgNetwork        = "Network error. Please check that the backend is reachable."
	MsgBusy           = "Please wait, a request is already in progress."
	MsgSessionExpired = "Your session has expired. Please log in again."
)

// UserMessage turns an error from Login/Signup/UpdateProfile into the text
// shown under the form. A server-supplied detail is returned verbatim.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrBusy):
		return MsgBusy
	case errors.Is(err, ErrSessionExpired):
		return MsgSessionExpired
	case errors.Is(err, client.ErrUnavailable):
		return MsgNetwork
	}
	if rej, ok := client.IsRejected(err); ok && rej.Detail != "" {
		return rej.Detail
	}
	return MsgAuthFailed
}
