package testutil

import (
	"bytes"
	"mime"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"
)

// PNG is the smallest prefix http.DetectContentType recognises as image/png.
var PNG = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

// File is one part of a multipart form built by MultipartBody.
type File struct {
	Field   string
	Name    string
	Content []byte
}

// MultipartBody encodes files and plain fields as multipart/form-data and
// returns the body with its Content-Type header value.
func MultipartBody(t *testing.T, fields map[string]string, files ...File) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.Field+`"; filename="`+f.Name+`"`)
		h.Set("Content-Type", "application/octet-stream")
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

// FileHeaders parses files back into the headers a handler would see.
func FileHeaders(t *testing.T, files ...File) []*multipart.FileHeader {
	t.Helper()

	body, contentType := MultipartBody(t, nil, files...)
	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)

	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(10 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	var headers []*multipart.FileHeader
	seen := map[string]bool{}
	for _, f := range files {
		if !seen[f.Field] {
			seen[f.Field] = true
			headers = append(headers, form.File[f.Field]...)
		}
	}
	return headers
}
