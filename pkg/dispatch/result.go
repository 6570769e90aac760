package dispatch

import (
	"fmt"
	"net/http"
)

// MessageAllSent is the message reported when no item failed.
const MessageAllSent = "Successfully sent emails!"

// Result is the response payload for a dispatched batch.
// Status doubles as the HTTP status code.
type Result struct {
	Status  int       `json:"status"`
	Message string    `json:"message"`
	Data    []Request `json:"data,omitempty"`
}

// Aggregate reduces an Outcome to the client-facing Result.
func Aggregate(out Outcome) Result {
	if len(out.Failed) == 0 {
		return Result{Status: http.StatusOK, Message: MessageAllSent}
	}

	return Result{
		Status:  http.StatusInternalServerError,
		Message: fmt.Sprintf("Had %d errors", len(out.Failed)),
		Data:    out.Failed,
	}
}
