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

// API Docs: https://www.vworld.kr/dev/v4dv_geocoderguide2_s001.do
// Sample request: https://api.vworld.kr/req/address?service=address&request=getcoord&address=...&type=road&key=...

// VWorldConfig configures the primary (national road-address) geocoder client.
type VWorldConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// VWorldClient queries the VWorld address geocoder. It asks for a single best
// match in epsg:4326 and treats anything other than a definitive OK with a
// point as a miss.
type VWorldClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

type vworldResponse struct {
	Response struct {
		Status string `json:"status"`
		Result struct {
			Point struct {
				X string `json:"x"`
				Y string `json:"y"`
			} `json:"point"`
		} `json:"result"`
	} `json:"response"`
}

// NewVWorldClient creates a VWorld client with the configured timeout.
func NewVWorldClient(cfg VWorldConfig) *VWorldClient {
	return &VWorldClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

// Geocode resolves address through VWorld. The formatted address of a hit is
// the address that was sent, since VWorld does not echo a canonical string.
func (c *VWorldClient) Geocode(ctx context.Context, address string) (*Result, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("vworld URL 파싱 실패: %w", err)
	}

	q := u.Query()
	q.Set("service", "address")
	q.Set("request", "getcoord")
	q.Set("version", "2.0")
	q.Set("crs", "epsg:4326")
	q.Set("format", "json")
	q.Set("type", "road")
	q.Set("address", address)
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("vworld 요청 생성 실패: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vworld 요청 실패: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vworld 응답 상태 %d", resp.StatusCode)
	}

	var apiResp vworldResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("vworld 응답 디코딩 실패: %w", err)
	}

	if apiResp.Response.Status != "OK" {
		return nil, ErrNoMatch
	}

	point := apiResp.Response.Result.Point
	if point.X == "" || point.Y == "" {
		return nil, ErrNoMatch
	}

	lng, err := strconv.ParseFloat(point.X, 64)
	if err != nil {
		return nil, fmt.Errorf("vworld 경도 파싱 실패: %w", err)
	}
	lat, err := strconv.ParseFloat(point.Y, 64)
	if err != nil {
		return nil, fmt.Errorf("vworld 위도 파싱 실패: %w", err)
	}

	return &Result{Lat: lat, Lng: lng, FormattedAddress: address}, nil
}
