package httpx

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DoUnmarshalJSONResponse sends the request and unmarshals the JSON body of a
// successful response into response.
func DoUnmarshalJSONResponse(client Client, request *http.Request, response any) error {
	resp, err := client.Do(request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	defer io.Copy(io.Discard, resp.Body)

	if err := StatusError(resp); err != nil {
		return err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}
	return nil
}
