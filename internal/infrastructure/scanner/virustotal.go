package scanner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"homedrive-api/config"
	"homedrive-api/internal/application/ports"
	"homedrive-api/internal/domain/scan"
)

const defaultTimeout = 60 * time.Second

// Client talks to a VirusTotal-compatible file analysis API: one POST to
// submit the file, then GETs against /{analysis_id} for the report.
type Client struct {
	uploadURL  string
	reportURL  string
	apiKey     string
	httpClient *http.Client
}

func New(cfg config.Scan) (*Client, error) {
	if cfg.UploadURL == "" || cfg.ReportURL == "" {
		return nil, fmt.Errorf("scan upload and report URLs are required")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("scan API key is required")
	}

	return &Client{
		uploadURL: cfg.UploadURL,
		reportURL: cfg.ReportURL,
		apiKey:    cfg.APIKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}, nil
}

type uploadResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type reportResponse struct {
	Data struct {
		Attributes struct {
			Status string `json:"status"`
			Stats  struct {
				Malicious  int `json:"malicious"`
				Suspicious int `json:"suspicious"`
				Undetected int `json:"undetected"`
			} `json:"stats"`
		} `json:"attributes"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) SubmitFile(ctx context.Context, fileName string, r io.Reader) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return "", fmt.Errorf("build multipart body: %w", err)
	}
	if _, err = io.Copy(fw, r); err != nil {
		return "", fmt.Errorf("read file for scan: %w", err)
	}
	if err = mw.Close(); err != nil {
		return "", fmt.Errorf("close multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("x-apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("scan upload request: %w", err)
	}
	defer resp.Body.Close()

	var parsed uploadResponse
	if err = json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode scan upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("scan upload failed: %s (status %d)", parsed.Error.Message, resp.StatusCode)
	}
	if parsed.Data.ID == "" {
		return "", fmt.Errorf("scan upload response missing analysis id")
	}

	return parsed.Data.ID, nil
}

func (c *Client) FetchReport(ctx context.Context, analysisID string) (*scan.Report, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.reportURL+"/"+analysisID, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scan report request: %w", err)
	}
	defer resp.Body.Close()

	var parsed reportResponse
	if err = json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode scan report response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scan report failed: %s (status %d)", parsed.Error.Message, resp.StatusCode)
	}

	return &scan.Report{
		Status: parsed.Data.Attributes.Status,
		Stats: scan.Stats{
			Malicious:  parsed.Data.Attributes.Stats.Malicious,
			Suspicious: parsed.Data.Attributes.Stats.Suspicious,
			Undetected: parsed.Data.Attributes.Stats.Undetected,
		},
	}, nil
}

var _ ports.Scanner = (*Client)(nil)
