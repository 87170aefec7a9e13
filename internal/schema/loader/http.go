package loader

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"
)

// maxDescriptorBytes bounds remote descriptor payloads.
const maxDescriptorBytes = 4 << 20

// ErrDescriptorTooLarge reports a remote payload above maxDescriptorBytes.
var ErrDescriptorTooLarge = errors.New("schema loader: descriptor exceeds 4 MiB")

func loadHTTP(ctx context.Context, client *http.Client, url string, timeout time.Duration) ([]byte, error) {
	if client == nil {
		return nil, errors.New("schema loader: http client is not configured")
	}
	if url == "" {
		return nil, errors.New("schema loader: url is required")
	}

	reqCtx := ctx
	var cancel context.CancelFunc
	if timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.5")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.New("schema loader: unexpected status " + resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDescriptorBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxDescriptorBytes {
		return nil, ErrDescriptorTooLarge
	}
	return data, nil
}
