package source

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Vikt-B/sampling/pkg/model"
)

// HTTPSource 通过 GET 请求获取数据集
type HTTPSource struct {
	url        string
	timeout    time.Duration
	httpClient *http.Client
}

func NewHTTPSource(target string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:        buildTargetUrl(target),
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

func buildTargetUrl(target string) string {
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = "http://" + target
	}
	return target
}

func (h *HTTPSource) Load(ctx context.Context) ([]*model.Reading, error) {
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, NewReadError(h.url, err)
	}
	req.Header.Set("Accept", "application/json, application/yaml, text/csv")
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, NewReadError(h.url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, NewReadError(h.url, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status))
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewReadError(h.url, err)
	}
	return NewBody(h.url, h.format(resp.Header.Get("Content-Type")), data).Readings()
}

// format 优先使用 Content-Type, 其次是 URL 后缀, 都无法判断时按 JSON 处理
func (h *HTTPSource) format(contentType string) DataFormat {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		switch {
		case strings.HasSuffix(mt, "json"):
			return DataJSON
		case strings.HasSuffix(mt, "yaml"):
			return DataYAML
		case mt == "text/csv":
			return DataCSV
		}
	}
	if u, err := url.Parse(h.url); err == nil {
		if f, err := FormatFromName(u.Path); err == nil {
			return f
		}
	}
	return DataJSON
}
