package httpx

import (
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody limits how much of a failed response we will put in an error.
const maxErrorBody = 1024

// StatusError returns an error describing the response if it does not have a
// 2xx status code.
func StatusError(resp *http.Response) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("http status: %s: body: %s", resp.Status, body)
	}
	return nil
}
