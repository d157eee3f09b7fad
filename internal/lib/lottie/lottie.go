// Package lottie загружает декоративные lottie-анимации с внешнего CDN.
//
// Загрузка строго best-effort: любой сбой (таймаут, не-200 ответ, битый
// JSON) означает "анимации нет" и никогда не превращается в ошибку для
// пользователя.
package lottie

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"
)

// Страницы приложения и адреса их анимаций, как в исходной версии.
var pageURLs = map[string]string{
	"welcome": "https://assets3.lottiefiles.com/packages/lf20_UJNc2t.json",
	"cooking": "https://assets5.lottiefiles.com/packages/lf20_tfb3estd.json",
	"story":   "https://assets9.lottiefiles.com/packages/lf20_M9p23l.json",
}

// Client загружает анимации с ограниченным таймаутом.
type Client struct {
	httpClient *http.Client
}

// New создаёт Client с заданным таймаутом исходящего запроса.
func New(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch возвращает JSON анимации для страницы или nil, если страница
// неизвестна либо загрузка не удалась.
func (c *Client) Fetch(ctx context.Context, page string) json.RawMessage {
	url, ok := pageURLs[page]
	if !ok {
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil || !json.Valid(body) {
		return nil
	}
	return body
}
