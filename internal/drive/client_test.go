package drive

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveframe/driveframe/internal/models"
)

type staticToken string

func (s staticToken) Token(ctx context.Context) (string, error) { return string(s), nil }

type failingToken struct{}

func (failingToken) Token(ctx context.Context) (string, error) {
	return "", errors.New("no credential")
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewClient(staticToken("test-token"), WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	return client, srv
}

func TestListFolderTwoPages(t *testing.T) {
	var tokens []string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/drive/v3/files", r.URL.Path)
		require.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		pageToken := r.URL.Query().Get("pageToken")
		tokens = append(tokens, pageToken)
		switch pageToken {
		case "":
			fmt.Fprint(w, `{"nextPageToken":"T","files":[{"id":"a","name":"x.jpg","mimeType":"image/jpeg","size":"10"}]}`)
		case "T":
			fmt.Fprint(w, `{"files":[{"id":"b","name":"y.txt","mimeType":"text/plain","size":"20"}]}`)
		default:
			t.Errorf("unexpected page token %q", pageToken)
			w.WriteHeader(http.StatusBadRequest)
		}
	})

	client, _ := newTestClient(t, handler)

	files, err := client.ListFolder(context.Background(), "folder1", models.ImageExtensions)
	require.NoError(t, err)

	// Exactly the image from page one; the .txt on page two is filtered out.
	require.Len(t, files, 1)
	assert.Equal(t, "a", files[0].ID)
	assert.Equal(t, "x.jpg", files[0].Name)
	assert.Equal(t, ".jpg", files[0].Ext)
	assert.Equal(t, int64(10), files[0].Size)
	assert.Equal(t, models.SourceRemote, files[0].Source)

	// The client stops exactly when a page omits the continuation token.
	assert.Equal(t, []string{"", "T"}, tokens)
}

func TestListFolderSkipsExtensionless(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"files":[
			{"id":"a","name":"README","mimeType":"image/png","size":"1"},
			{"id":"b","name":"photo.PNG","mimeType":"image/png","size":"2"}
		]}`)
	})

	client, _ := newTestClient(t, handler)

	files, err := client.ListFolder(context.Background(), "folder1", models.ImageExtensions)
	require.NoError(t, err)
	require.Len(t, files, 1)
	// Extension matching is case-insensitive on the trailing suffix.
	assert.Equal(t, "b", files[0].ID)
	assert.Equal(t, ".png", files[0].Ext)
}

func TestListFolderPageErrorDiscardsPartials(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("pageToken") == "" {
			fmt.Fprint(w, `{"nextPageToken":"T","files":[{"id":"a","name":"x.jpg","mimeType":"image/jpeg","size":"10"}]}`)
			return
		}
		http.Error(w, "forbidden", http.StatusForbidden)
	})

	client, _ := newTestClient(t, handler)

	files, err := client.ListFolder(context.Background(), "folder1", models.ImageExtensions)
	require.ErrorIs(t, err, ErrListingFailed)
	// No partial success: page one's results are not surfaced.
	assert.Nil(t, files)
}

func TestListFolderTokenError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server without a token")
	}))
	defer srv.Close()

	client := NewClient(failingToken{}, WithBaseURL(srv.URL))
	_, err := client.ListFolder(context.Background(), "folder1", models.ImageExtensions)
	require.ErrorIs(t, err, ErrListingFailed)
}

func TestDownload(t *testing.T) {
	content := []byte("fake image bytes")
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/drive/v3/files/file1", r.URL.Path)
		require.Equal(t, "media", r.URL.Query().Get("alt"))
		w.Write(content)
	})

	client, _ := newTestClient(t, handler)

	buf, err := client.Download(context.Background(), "file1")
	require.NoError(t, err)
	assert.Equal(t, content, buf.Bytes())
}

func TestDownloadFailure(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	client, _ := newTestClient(t, handler)

	_, err := client.Download(context.Background(), "missing")
	require.ErrorIs(t, err, ErrDownloadFailed)
}

func TestFileSize(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "size", r.URL.Query().Get("fields"))
		fmt.Fprint(w, `{"size":"4242"}`)
	})

	client, _ := newTestClient(t, handler)

	size, err := client.FileSize(context.Background(), "file1")
	require.NoError(t, err)
	assert.Equal(t, int64(4242), size)
}
