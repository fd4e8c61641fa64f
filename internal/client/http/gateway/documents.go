package gateway

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/stroyteam/supplydesk/internal/model"
)

const capDocuments = "documents"

// UploadDocuments attaches files to a supply under the repeated "files"
// multipart field and returns the stored document paths.
func (c *Client) UploadDocuments(ctx context.Context, supplyID int64, files []model.DocumentFile) ([]string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	for _, f := range files {
		part, err := form.CreateFormFile("files", f.Name)
		if err != nil {
			return nil, fmt.Errorf("gateway: document part %s: %w", f.Name, err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return nil, fmt.Errorf("gateway: document payload %s: %w", f.Name, err)
		}
	}
	if err := form.Close(); err != nil {
		return nil, fmt.Errorf("gateway: close document form: %w", err)
	}

	var stored []string
	path := fmt.Sprintf("/api/Supplies/%d/documents", supplyID)
	if err := c.doMultipart(ctx, capDocuments, http.MethodPost, path, &buf, form.FormDataContentType(), &stored); err != nil {
		return nil, err
	}

	if stored == nil {
		// Some backends answer 204; fall back to the names we sent.
		for _, f := range files {
			stored = append(stored, f.Name)
		}
	}
	return stored, nil
}

func (c *Client) SupplyDocuments(ctx context.Context, supplyID int64) ([]string, error) {
	var docs []string
	path := fmt.Sprintf("/api/Supplies/%d/documents", supplyID)
	if err := c.do(ctx, capDocuments, http.MethodGet, path, nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// DownloadDocument streams one stored document back as raw bytes.
func (c *Client) DownloadDocument(ctx context.Context, supplyID int64, documentPath string) ([]byte, error) {
	path := fmt.Sprintf("/api/Supplies/%d/documents/%s", supplyID, encodeDocumentPath(documentPath))

	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gateway: GET %s: %w: %w", path, model.ErrBadGateway, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(http.MethodGet, path, resp.StatusCode, nil)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("gateway: read document %s: %w", documentPath, err)
	}
	return buf.Bytes(), nil
}

func (c *Client) DeleteDocument(ctx context.Context, supplyID int64, documentPath string) error {
	path := fmt.Sprintf("/api/Supplies/%d/documents/%s", supplyID, encodeDocumentPath(documentPath))
	return c.do(ctx, capDocuments, http.MethodDelete, path, nil, nil)
}

// encodeDocumentPath strips the storage prefix the backend prepends and
// escapes the remainder for use as a single path segment.
func encodeDocumentPath(p string) string {
	p = strings.TrimPrefix(p, "/uploads/")
	p = strings.TrimPrefix(p, "uploads/")
	return url.PathEscape(p)
}
