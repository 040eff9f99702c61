// Package vcapi реализует клиент внешнего read-only контент-API площадки.
// Клиент читает статью по числовому ID и приводит ответ к доменной модели.
package vcapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/magabrotheeeer/vc-metrics/internal/models"
)

// Client — HTTP-клиент контент-API.
type Client struct {
	apiURL     string
	httpClient *http.Client
}

// NewClient создаёт клиент контент-API с таймаутом на запрос.
func NewClient(apiURL string, timeout time.Duration) *Client {
	return &Client{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// contentResponse — форма ответа внешнего API. Счётчик открытий в старых
// ответах приходит как hitsCount на верхнем уровне, в новых — в counters.
type contentResponse struct {
	Result struct {
		ID       int    `json:"id"`
		URL      string `json:"url"`
		Title    string `json:"title"`
		Date     int64  `json:"date"`
		Counters struct {
			Views int `json:"views"`
			Hits  int `json:"hits"`
		} `json:"counters"`
		HitsCount int    `json:"hitsCount"`
		CustomURI string `json:"customUri"`
	} `json:"result"`
}

// FetchContent запрашивает статью по ID и возвращает её каноническое
// представление. Не-2xx статус или нечитаемое тело — ошибка вызова.
func (c *Client) FetchContent(ctx context.Context, id int) (*models.Article, error) {
	const op = "vcapi.FetchContent"

	url := fmt.Sprintf("%s/v2.10/content?id=%d&markdown=false", c.apiURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected status: %s", op, resp.Status)
	}

	var payload contentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := payload.Result
	if res.ID == 0 {
		return nil, fmt.Errorf("%s: empty result payload", op)
	}

	hits := res.Counters.Hits
	if hits == 0 {
		hits = res.HitsCount
	}
	articleURL := res.URL
	if articleURL == "" {
		articleURL = "https://vc.ru/" + res.CustomURI
	}

	return &models.Article{
		ID:          res.ID,
		URL:         articleURL,
		Title:       res.Title,
		PublishedAt: time.Unix(res.Date, 0).UTC(),
		Counters: models.Counters{
			Hits:  hits,
			Views: res.Counters.Views,
		},
		LastUpdated: time.Now().UTC(),
	}, nil
}
