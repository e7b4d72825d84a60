package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"resumeforge/internal/app/client/config"
	"resumeforge/internal/domain/resume"
)

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	userAgent string
}

// draftResponse - конверт, в котором сервер возвращает черновик.
type draftResponse struct {
	Status string        `json:"status"`
	Draft  *resume.Draft `json:"draft,omitempty"`
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		// Экспорт ждет рендер PDF, поэтому таймаут с запасом
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			DisableCompression:  false,
			DisableKeepAlives:   false,
			MaxIdleConnsPerHost: 10,
		},
	}

	// Определяем протокол
	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}
	baseURL := scheme + cfg.ServerAddress

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   baseURL,
		userAgent: "ResumeForge-Client/1.0",
	}, nil
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", h.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("сервер вернул статус: %d", resp.StatusCode)
	}

	return nil
}

// CreateDraft создает пустой черновик на сервере
func (h *httpClient) CreateDraft(ctx context.Context) (*resume.Draft, error) {
	resp, err := h.doRequest(ctx, "POST", "/api/v1/drafts", nil)
	if err != nil {
		return nil, err
	}

	return h.parseDraft(resp)
}

// GetDraft получает черновик по ID
func (h *httpClient) GetDraft(ctx context.Context, id string) (*resume.Draft, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/v1/drafts/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	return h.parseDraft(resp)
}

// DeleteDraft удаляет черновик на сервере
func (h *httpClient) DeleteDraft(ctx context.Context, id string) error {
	resp, err := h.doRequest(ctx, "DELETE", "/api/v1/drafts/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

// UpdatePersonal обновляет одно контактное поле
func (h *httpClient) UpdatePersonal(ctx context.Context, id, field, value string) (*resume.Draft, error) {
	req := struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}{Field: field, Value: value}

	resp, err := h.doRequest(ctx, "PUT", "/api/v1/drafts/"+url.PathEscape(id)+"/personal", req)
	if err != nil {
		return nil, err
	}

	return h.parseDraft(resp)
}

// UpdateSkills заменяет блок навыков целиком
func (h *httpClient) UpdateSkills(ctx context.Context, id, skills string) (*resume.Draft, error) {
	req := struct {
		Skills string `json:"skills"`
	}{Skills: skills}

	resp, err := h.doRequest(ctx, "PUT", "/api/v1/drafts/"+url.PathEscape(id)+"/skills", req)
	if err != nil {
		return nil, err
	}

	return h.parseDraft(resp)
}

// UpdatePhoto заменяет фотографию (data URI)
func (h *httpClient) UpdatePhoto(ctx context.Context, id, dataURI string) (*resume.Draft, error) {
	req := struct {
		Data string `json:"data"`
	}{Data: dataURI}

	resp, err := h.doRequest(ctx, "PUT", "/api/v1/drafts/"+url.PathEscape(id)+"/photo", req)
	if err != nil {
		return nil, err
	}

	return h.parseDraft(resp)
}

// AppendEntry добавляет пустую позицию в секцию (experience или education)
func (h *httpClient) AppendEntry(ctx context.Context, id, section string) (*resume.Draft, error) {
	resp, err := h.doRequest(ctx, "POST", fmt.Sprintf("/api/v1/drafts/%s/%s", url.PathEscape(id), section), nil)
	if err != nil {
		return nil, err
	}

	return h.parseDraft(resp)
}

// UpdateEntry обновляет одно поле позиции секции по индексу
func (h *httpClient) UpdateEntry(ctx context.Context, id, section string, index int, field, value string) (*resume.Draft, error) {
	req := struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}{Field: field, Value: value}

	resp, err := h.doRequest(ctx, "PUT", fmt.Sprintf("/api/v1/drafts/%s/%s/%d", url.PathEscape(id), section, index), req)
	if err != nil {
		return nil, err
	}

	return h.parseDraft(resp)
}

// RemoveEntry удаляет позицию секции по индексу
func (h *httpClient) RemoveEntry(ctx context.Context, id, section string, index int) (*resume.Draft, error) {
	resp, err := h.doRequest(ctx, "DELETE", fmt.Sprintf("/api/v1/drafts/%s/%s/%d", url.PathEscape(id), section, index), nil)
	if err != nil {
		return nil, err
	}

	return h.parseDraft(resp)
}

// Validate проверяет обязательные поля черновика
func (h *httpClient) Validate(ctx context.Context, id string) (bool, map[string]string, error) {
	resp, err := h.doRequest(ctx, "GET", "/api/v1/drafts/"+url.PathEscape(id)+"/validate", nil)
	if err != nil {
		return false, nil, err
	}

	var validateResp struct {
		Valid  bool              `json:"valid"`
		Errors map[string]string `json:"errors"`
	}

	if err := h.parseResponse(resp, &validateResp); err != nil {
		return false, nil, err
	}

	return validateResp.Valid, validateResp.Errors, nil
}

// Preview возвращает HTML предпросмотр черновика
func (h *httpClient) Preview(ctx context.Context, id, variant string) ([]byte, error) {
	path := "/api/v1/drafts/" + url.PathEscape(id) + "/preview"
	if variant != "" {
		path += "?variant=" + url.QueryEscape(variant)
	}

	resp, err := h.doRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}

	return h.parseBinary(resp)
}

// Export запускает экспорт в PDF и возвращает имя файла с сервера и данные
func (h *httpClient) Export(ctx context.Context, id, variant string) (string, []byte, error) {
	req := struct {
		Variant string `json:"variant,omitempty"`
	}{Variant: variant}

	resp, err := h.doRequest(ctx, "POST", "/api/v1/drafts/"+url.PathEscape(id)+"/export", req)
	if err != nil {
		return "", nil, err
	}

	disposition := resp.Header.Get("Content-Disposition")

	data, err := h.parseBinary(resp)
	if err != nil {
		return "", nil, err
	}

	return filenameFromDisposition(disposition), data, nil
}

// filenameFromDisposition достает имя файла из Content-Disposition,
// при проблемах возвращает пустую строку
func filenameFromDisposition(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	// Добавляем заголовки
	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseDraft(resp *http.Response) (*resume.Draft, error) {
	var draftResp draftResponse
	if err := h.parseResponse(resp, &draftResp); err != nil {
		return nil, err
	}

	if draftResp.Draft == nil {
		return nil, fmt.Errorf("сервер не вернул черновик")
	}

	return draftResp.Draft, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"body", string(body),
	)

	if resp.StatusCode >= 400 {
		return serverError(resp.StatusCode, body)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}

// parseBinary читает тело как есть, без JSON конверта
func (h *httpClient) parseBinary(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	if resp.StatusCode >= 400 {
		return nil, serverError(resp.StatusCode, body)
	}

	return body, nil
}

// serverError разворачивает тело ошибки в читаемое сообщение.
// Сервер отвечает в формате RFC 7807: detail плюс список errors.
func serverError(status int, body []byte) error {
	var errResp struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
		Errors []struct {
			Message  string `json:"message"`
			Location string `json:"location"`
		} `json:"errors"`
	}

	if err := json.Unmarshal(body, &errResp); err == nil {
		if len(errResp.Errors) > 0 {
			msgs := make([]string, 0, len(errResp.Errors))
			for _, e := range errResp.Errors {
				msgs = append(msgs, e.Message)
			}
			return fmt.Errorf("ошибка сервера: %s", strings.Join(msgs, "; "))
		}
		if errResp.Detail != "" {
			return fmt.Errorf("ошибка сервера: %s", errResp.Detail)
		}
		if errResp.Title != "" {
			return fmt.Errorf("ошибка сервера: %s", errResp.Title)
		}
	}

	return fmt.Errorf("ошибка сервера: статус %d", status)
}
