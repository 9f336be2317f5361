// Package netx holds the direct-to-storage transfer step of the upload
// protocol: a raw PUT to a presigned URL. The grant itself authorizes the
// write, so the request carries no app credentials and only the headers the
// signature covers.
package netx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

func UploadToPresignedURL(ctx context.Context, client *http.Client, url, contentType string, file []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(file))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload failed: %s; body: %s", resp.Status, string(b))
	}
	return nil
}
