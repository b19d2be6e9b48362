package utils

import (
	"fmt"
	"io"
)

// UpstreamBodyError captures a rejected response's body so the dev
// message keeps whatever diagnostics the upstream sent. Nil when the
// body is empty or unreadable.
func UpstreamBodyError(body io.Reader) error {
	bodyBytes, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(bodyBytes) == 0 {
		return nil
	}
	return fmt.Errorf("%s", bodyBytes)
}
