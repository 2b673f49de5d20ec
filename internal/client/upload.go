package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/agentmart-dev/agentmart/pkg/models"
)

// UploadPackageOptions configure the package upload.
type UploadPackageOptions struct {
	// ShowProgress renders a progress bar on stderr while reading the file.
	ShowProgress bool
}

// UploadPackage uploads a skill package archive as multipart form data.
// This is the only operation with a non-JSON request body; the response is
// JSON like everything else.
func (c *Client) UploadPackage(ctx context.Context, path string, opts UploadPackageOptions) (*models.UploadResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, newTransportError("open package", err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, newTransportError("stat package", err)
	}

	var source io.Reader = file
	if opts.ShowProgress {
		bar := progressbar.DefaultBytes(info.Size(), "Uploading "+filepath.Base(path))
		source = io.TeeReader(file, bar)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("package", filepath.Base(path))
	if err != nil {
		return nil, newTransportError("build multipart form", err)
	}
	if _, err := io.Copy(part, source); err != nil {
		return nil, newTransportError("read package", err)
	}
	if err := writer.Close(); err != nil {
		return nil, newTransportError("finalize multipart form", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/skills/upload", &buf)
	if err != nil {
		return nil, newTransportError("create upload request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-API-Key", c.apiKey)
	if c.agentID != "" {
		req.Header.Set("X-Agent-ID", c.agentID)
	}

	var raw json.RawMessage
	if err := c.send(req, &raw); err != nil {
		return nil, err
	}
	var result models.UploadResult
	if err := json.Unmarshal(unwrapData(raw), &result); err != nil {
		return nil, newTransportError("decode upload result", err)
	}
	return &result, nil
}
