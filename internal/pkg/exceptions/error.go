package exceptions

import (
	"fmt"
	"runtime"

	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/constvars"
)

// Kind classifies a failure so the presentation layer can choose a
// message more specific than the per-operation fallback.
type Kind string

const (
	KindValidation       Kind = "validation"
	KindInvalidSelection Kind = "invalid_selection"
	KindConflict         Kind = "conflict"
	KindNetwork          Kind = "network"
	KindNotLoggedIn      Kind = "not_logged_in"
	KindUnknown          Kind = "unknown"
)

type CustomError struct {
	StatusCode    int              `json:"status_code"`
	Kind          Kind             `json:"kind"`
	ClientMessage string           `json:"message"`
	DevMessage    string           `json:"-"`
	Fields        ValidationErrors `json:"fields,omitempty"`
	Location      Location         `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func BuildNewCustomError(err error, kind Kind, statusCode int, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(3),
	}
}

// KindFromStatus maps an upstream status code to a failure kind.
// 409 and the upstream's slot-taken 400 both read as conflicts on the
// appointment path; callers pass conflictOnBadRequest accordingly.
func KindFromStatus(statusCode int, conflictOnBadRequest bool) Kind {
	switch {
	case statusCode == constvars.StatusConflict:
		return KindConflict
	case statusCode == constvars.StatusBadRequest && conflictOnBadRequest:
		return KindConflict
	case statusCode == constvars.StatusBadRequest:
		return KindValidation
	case statusCode == constvars.StatusUnauthorized || statusCode == constvars.StatusForbidden:
		return KindNotLoggedIn
	default:
		return KindUnknown
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{File: "unknown", FunctionName: "unknown"}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
