package consolesdk

import (
	"bytes"
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testDocument(name, content string) Document {
	return Document{
		Name:        name,
		ContentType: "application/pdf",
		Content:     strings.NewReader(content),
	}
}

// parts decodes a recorded multipart body into field name -> values, file
// parts as "filename:content".
func parts(t *testing.T, got recorded) map[string][]string {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(got.ContentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	out := make(map[string][]string)
	r := multipart.NewReader(bytes.NewReader(got.Body), params["boundary"])
	for {
		p, err := r.NextPart()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)

		data, err := io.ReadAll(p)
		require.NoError(t, err)

		value := string(data)
		if p.FileName() != "" {
			value = p.FileName() + ":" + value
		}
		out[p.FormName()] = append(out[p.FormName()], value)
	}
}

func TestExtractDocumentData(t *testing.T) {
	t.Parallel()

	rec := newRecorder(t, http.StatusOK, `{"extracted_data":{"invoice_number":"INV-7"},"confidence":0.93}`)
	api, _, _ := newTestSession(t, rec, "tok")

	result, err := api.AI.ExtractDocumentData(context.Background(), testDocument("bill.pdf", "%PDF"), "invoice")
	require.NoError(t, err)
	require.Equal(t, 0.93, result["confidence"])

	got := rec.Last(t)
	require.Equal(t, http.MethodPost, got.Method)
	require.Equal(t, "/ai/document-extraction", got.URI)
	require.Equal(t, "Bearer tok", got.Header.Get("Authorization"))
	require.Equal(t, map[string][]string{
		"file":            {"bill.pdf:%PDF"},
		"extraction_type": {"invoice"},
	}, parts(t, got))
}

func TestBatchProcessDocuments(t *testing.T) {
	t.Parallel()

	rec := newRecorder(t, http.StatusOK, `{"processed":2}`)
	api, _, _ := newTestSession(t, rec, "tok")
	ctx := context.Background()

	_, err := api.AI.BatchProcessDocuments(ctx, nil, "receipt")
	require.Error(t, err)
	require.Empty(t, rec.Requests())

	_, err = api.AI.BatchProcessDocuments(ctx, []Document{
		testDocument("a.pdf", "one"),
		testDocument("b.pdf", "two"),
	}, "receipt")
	require.NoError(t, err)

	got := rec.Last(t)
	require.Equal(t, "/ai/document-batch-processing", got.URI)
	require.Equal(t, map[string][]string{
		"files":           {"a.pdf:one", "b.pdf:two"},
		"extraction_type": {"receipt"},
	}, parts(t, got))
}

func TestMultipartBodyRejectsEmptyDocument(t *testing.T) {
	t.Parallel()

	_, err := NewMultipartBody(nil, FormFile{Field: "file", Document: Document{Name: "empty.pdf"}})
	require.Error(t, err)
}

func TestMultipartBodyIsReplayable(t *testing.T) {
	t.Parallel()

	body, err := NewMultipartBody(map[string]string{"b": "2", "a": "1"})
	require.NoError(t, err)

	first, err := io.ReadAll(body.Reader())
	require.NoError(t, err)
	second, err := io.ReadAll(body.Reader())
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Less(t, bytes.Index(first, []byte(`name="a"`)), bytes.Index(first, []byte(`name="b"`)))
}

func TestDocumentFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Statement.PDF")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7"), 0o600))

	doc, err := DocumentFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "Statement.PDF", doc.Name)
	require.Equal(t, "application/pdf", doc.ContentType)

	data, err := io.ReadAll(doc.Content)
	require.NoError(t, err)
	require.Equal(t, "%PDF-1.7", string(data))

	_, err = DocumentFromFile(filepath.Join(t.TempDir(), "missing.pdf"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
