package drive

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/driveframe/driveframe/internal/models"
)

// listEntry mirrors the fields requested from the files.list endpoint.
// Drive serializes size as a decimal string.
type listEntry struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	MIMEType     string    `json:"mimeType"`
	Size         string    `json:"size"`
	CreatedTime  time.Time `json:"createdTime"`
	ModifiedTime time.Time `json:"modifiedTime"`
}

type listPage struct {
	NextPageToken string      `json:"nextPageToken"`
	Files         []listEntry `json:"files"`
}

// ListFolder returns every media file directly inside folderID whose
// extension is in allowlist, concatenating pages in arrival order. Entries
// without an extension are skipped. Any page failure returns ErrListingFailed
// and discards everything accumulated so far.
func (c *Client) ListFolder(ctx context.Context, folderID string, allowlist map[string]bool) ([]models.MediaFile, error) {
	var files []models.MediaFile
	pageToken := ""

	q := fmt.Sprintf("'%s' in parents and trashed=false and (mimeType contains 'image/' or mimeType contains 'video/')", folderID)

	for {
		query := url.Values{}
		query.Set("q", q)
		query.Set("pageSize", strconv.Itoa(c.pageSize))
		query.Set("fields", "nextPageToken, files(id, name, mimeType, size, createdTime, modifiedTime)")
		if pageToken != "" {
			query.Set("pageToken", pageToken)
		}

		resp, err := c.doRequest(ctx, "/drive/v3/files", query)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrListingFailed, err)
		}

		if resp.StatusCode != nethttp.StatusOK {
			msg := readError(resp)
			resp.Body.Close()
			return nil, fmt.Errorf("%w: status %d: %s", ErrListingFailed, resp.StatusCode, msg)
		}

		var page listPage
		if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: failed to decode page: %w", ErrListingFailed, err)
		}
		resp.Body.Close()

		for _, entry := range page.Files {
			ext := models.ExtOf(entry.Name)
			if ext == "" || !allowlist[ext] {
				continue
			}
			size, _ := strconv.ParseInt(entry.Size, 10, 64)
			files = append(files, models.MediaFile{
				ID:       entry.ID,
				Name:     entry.Name,
				Ext:      ext,
				Size:     size,
				MIMEType: entry.MIMEType,
				Created:  entry.CreatedTime,
				Modified: entry.ModifiedTime,
				Source:   models.SourceRemote,
			})
		}

		if page.NextPageToken == "" {
			return files, nil
		}
		pageToken = page.NextPageToken
	}
}
