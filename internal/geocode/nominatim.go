package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Nominatim is rate-sensitive and requires a descriptive User-Agent.

// NominatimConfig configures the secondary (open/community) geocoder client.
type NominatimConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// NominatimClient queries the Nominatim search API, requesting at most one
// match with Korean display names.
type NominatimClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NewNominatimClient creates a Nominatim client with the configured timeout.
func NewNominatimClient(cfg NominatimConfig) *NominatimClient {
	return &NominatimClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
	}
}

// Geocode resolves address through Nominatim. The formatted address of a hit
// is Nominatim's own display_name.
func (c *NominatimClient) Geocode(ctx context.Context, address string) (*Result, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("nominatim URL 파싱 실패: %w", err)
	}

	q := u.Query()
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("accept-language", "ko")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("nominatim 요청 생성 실패: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("nominatim 요청 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim 응답 상태 %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("nominatim 응답 디코딩 실패: %w", err)
	}

	if len(places) == 0 {
		return nil, ErrNoMatch
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim 위도 파싱 실패: %w", err)
	}
	lng, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim 경도 파싱 실패: %w", err)
	}

	return &Result{Lat: lat, Lng: lng, FormattedAddress: places[0].DisplayName}, nil
}
