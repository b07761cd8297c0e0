package httpx

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// NewPostFormRequest creates a POST request whose body is an already URL
// encoded form.
func NewPostFormRequest(ctx context.Context, endpoint string, encodedForm string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(encodedForm))
	if err != nil {
		return nil, fmt.Errorf("failed to create form request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}
