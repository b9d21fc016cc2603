package langflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Config — параметры клиента.
type Config struct {
	// BaseURL — адрес Langflow API, без завершающего "/".
	BaseURL string

	// LangflowID — ID организации для Astra-хостинга.
	// Пустой — self-hosted, без префикса /lf/{id}.
	LangflowID string

	// Token — application token для bearer-авторизации.
	// Пустой — запросы идут без заголовка Authorization.
	Token string

	// Timeout — таймаут каждого запроса.
	Timeout time.Duration

	// Logger — логгер для диагностики (--verbose).
	Logger *slog.Logger
}

// Client — HTTP-клиент Langflow API.
type Client struct {
	baseURL    string
	langflowID string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient создаёт клиент для Langflow API.
func NewClient(cfg Config) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		langflowID: cfg.LangflowID,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Run выполняет flow и возвращает тело ответа как получено.
// Сетевые ошибки оборачиваются в ErrUnreachable, коды вне 2xx — в *StatusError.
func (c *Client) Run(ctx context.Context, endpoint string, runReq RunRequest) (json.RawMessage, error) {
	payload, err := json.Marshal(runReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := c.apiURL("/run/"+endpoint) + "?stream=false"
	c.logger.Debug("sending run request",
		"url", url,
		"authorized", c.token != "",
		"payload", string(payload),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuth(req)

	return c.send(req)
}

// UploadFile загружает локальный файл на upload endpoint flow
// и возвращает серверную ссылку на него.
func (c *Client) UploadFile(ctx context.Context, endpoint, localPath string) (UploadedFile, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return UploadedFile{}, fmt.Errorf("%w: %s", ErrFileNotFound, localPath)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filepath.Base(localPath))
	if err != nil {
		return UploadedFile{}, fmt.Errorf("failed to build upload request: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return UploadedFile{}, fmt.Errorf("failed to read %s: %w", localPath, err)
	}
	if err := mw.Close(); err != nil {
		return UploadedFile{}, fmt.Errorf("failed to build upload request: %w", err)
	}

	url := c.apiURL("/files/upload/" + endpoint)
	c.logger.Debug("uploading file", "url", url, "file", localPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return UploadedFile{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.setAuth(req)

	body, err := c.send(req)
	if err != nil {
		return UploadedFile{}, err
	}

	var uf UploadedFile
	if err := json.Unmarshal(body, &uf); err != nil {
		return UploadedFile{}, fmt.Errorf("failed to decode upload response: %w", err)
	}
	if uf.FilePath == "" {
		return UploadedFile{}, ErrBadUploadResponse
	}

	c.logger.Debug("file uploaded", "remote_path", uf.FilePath)
	return uf, nil
}

// apiURL строит полный URL для пути внутри /api/v1.
// Для Astra-хостинга добавляется префикс /lf/{langflow_id}.
func (c *Client) apiURL(path string) string {
	base := c.baseURL
	if c.langflowID != "" {
		base += "/lf/" + c.langflowID
	}
	return base + "/api/v1" + path
}

func (c *Client) setAuth(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

func (c *Client) send(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
