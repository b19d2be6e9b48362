package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/constvars"
	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/exceptions"
)

// RenderAlert prints the user-facing message for a failure. Kinds let
// the screen prefer a sharper message than the per-operation fallback;
// field-level validation errors never end up here.
func RenderAlert(w io.Writer, err error) {
	var custom *exceptions.CustomError
	if !errors.As(err, &custom) {
		fmt.Fprintln(w, constvars.ErrClientSomethingWrongWithApplication)
		return
	}

	switch custom.Kind {
	case exceptions.KindNetwork:
		fmt.Fprintln(w, constvars.ErrClientNetworkFailure)
	case exceptions.KindNotLoggedIn:
		fmt.Fprintln(w, constvars.ErrClientNotLoggedIn)
	default:
		fmt.Fprintln(w, custom.ClientMessage)
	}
}

// RenderFieldErrors prints validation errors inline, one per field.
func RenderFieldErrors(w io.Writer, fields exceptions.ValidationErrors) {
	for _, field := range []string{"name", "email", "old_password", "password", "password_confirmation"} {
		if message, ok := fields[field]; ok {
			fmt.Fprintf(w, "  %s %s\n", field, message)
		}
	}
}
