package consolesdk

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Document is a file to upload.
type Document struct {
	// Name is the file name reported to the server.
	Name string

	// ContentType defaults to application/octet-stream.
	ContentType string

	Content io.Reader
}

// DocumentFromFile reads the file at path into a Document.
func DocumentFromFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read document: %w", err)
	}

	return Document{
		Name:        filepath.Base(path),
		ContentType: contentTypeForExt(filepath.Ext(path)),
		Content:     bytes.NewReader(data),
	}, nil
}

// FormFile is a file part of a multipart body.
type FormFile struct {
	Field    string
	Document Document
}

// MultipartBody is a fully encoded multipart/form-data request body.
type MultipartBody struct {
	data        []byte
	contentType string
}

// NewMultipartBody encodes files followed by the string fields, fields in key
// order.
func NewMultipartBody(fields map[string]string, files ...FormFile) (*MultipartBody, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range files {
		if err := writeFilePart(w, f); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := w.WriteField(k, fields[k]); err != nil {
			return nil, fmt.Errorf("failed to write form field %q: %w", k, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalise multipart body: %w", err)
	}

	return &MultipartBody{
		data:        buf.Bytes(),
		contentType: w.FormDataContentType(),
	}, nil
}

// Reader returns a fresh reader over the encoded body.
func (m *MultipartBody) Reader() io.Reader { return bytes.NewReader(m.data) }

// ContentType returns the multipart content type including the boundary.
func (m *MultipartBody) ContentType() string { return m.contentType }

func writeFilePart(w *multipart.Writer, f FormFile) error {
	if f.Document.Content == nil {
		return fmt.Errorf("consolesdk: document %q has no content", f.Document.Name)
	}

	ct := f.Document.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		escapeQuotes(f.Field), escapeQuotes(f.Document.Name)))
	h.Set("Content-Type", ct)

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, f.Document.Content); err != nil {
		return fmt.Errorf("failed to write file part: %w", err)
	}
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string { return quoteEscaper.Replace(s) }

func contentTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".csv":
		return "text/csv"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}
