package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"resty.dev/v3"
)

type GoogleConfig struct {
	BaseURL string
	Timeout time.Duration
}

// GoogleTranslator uses the keyless translate_a endpoint, detecting the source language.
type GoogleTranslator struct {
	httpClient *resty.Client
}

var _ Translator = (*GoogleTranslator)(nil)

func NewGoogleTranslator(config GoogleConfig) *GoogleTranslator {
	client := resty.New()
	client.SetBaseURL(config.BaseURL)
	client.SetTimeout(config.Timeout)
	return &GoogleTranslator{httpClient: client}
}

func (t *GoogleTranslator) Close() error {
	return t.httpClient.Close()
}

func (t *GoogleTranslator) Translate(ctx context.Context, text string) (string, error) {
	response, err := t.httpClient.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     "auto",
			"tl":     "en",
			"dt":     "t",
			"q":      text,
		}).
		Get("/translate_a/single")
	if err != nil {
		return "", fmt.Errorf("httpClient.Get > %w", err)
	}
	if response.IsError() {
		return "", fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}
	return parseGoogleResponse([]byte(response.String()))
}

// parseGoogleResponse joins the translated segments of a response such as
// [[["Aspirin","阿司匹林",null,null,10]],null,"zh-CN"].
func parseGoogleResponse(body []byte) (string, error) {
	var top []json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return "", fmt.Errorf("json.Unmarshal > %w", err)
	}
	if len(top) == 0 {
		return "", ErrEmptyTranslation
	}

	var segments [][]interface{}
	if err := json.Unmarshal(top[0], &segments); err != nil {
		return "", fmt.Errorf("json.Unmarshal(segments) > %w", err)
	}
	var builder strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		if s, ok := segment[0].(string); ok {
			builder.WriteString(s)
		}
	}
	if builder.Len() == 0 {
		return "", ErrEmptyTranslation
	}
	return builder.String(), nil
}
