package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strconv"

	"github.com/driveframe/driveframe/internal/util/buffers"
)

// Download fetches the full contents of fileID into an in-memory buffer.
// On failure it returns ErrDownloadFailed; the buffer is not returned, so a
// partial read can never be mistaken for a complete file.
func (c *Client) Download(ctx context.Context, fileID string) (*bytes.Buffer, error) {
	var buf bytes.Buffer
	if err := c.DownloadTo(ctx, fileID, &buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

// DownloadTo streams the contents of fileID into w in fixed-size chunks.
// Callers must not assume w holds meaningful data when an error is returned.
func (c *Client) DownloadTo(ctx context.Context, fileID string, w io.Writer) error {
	query := url.Values{}
	query.Set("alt", "media")

	resp, err := c.doRequest(ctx, "/drive/v3/files/"+url.PathEscape(fileID), query)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != nethttp.StatusOK {
		return fmt.Errorf("%w: status %d: %s", ErrDownloadFailed, resp.StatusCode, readError(resp))
	}

	buf := buffers.GetChunkBuffer()
	defer buffers.PutChunkBuffer(buf)
	if _, err := io.CopyBuffer(w, resp.Body, *buf); err != nil {
		return fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	return nil
}

// FileSize asks the metadata endpoint for the byte size of fileID. The CLI
// uses it to size the download progress bar; a zero size with nil error means
// the remote did not report one.
func (c *Client) FileSize(ctx context.Context, fileID string) (int64, error) {
	query := url.Values{}
	query.Set("fields", "size")

	resp, err := c.doRequest(ctx, "/drive/v3/files/"+url.PathEscape(fileID), query)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != nethttp.StatusOK {
		return 0, fmt.Errorf("%w: status %d: %s", ErrDownloadFailed, resp.StatusCode, readError(resp))
	}

	var meta struct {
		Size string `json:"size"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return 0, fmt.Errorf("%w: failed to decode metadata: %w", ErrDownloadFailed, err)
	}
	size, _ := strconv.ParseInt(meta.Size, 10, 64)
	return size, nil
}
