package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/tadodev/ecotrack/internal/model"
)

const tcbsBarsURL = "https://apipubaws.tcbs.com.vn/stock-insight/v1/stock/bars-long-term"

// VietnamIndices are the TCBS index tickers and their display metadata.
var VietnamIndices = map[string]struct {
	Name     string
	Exchange string
}{
	"VNINDEX":    {Name: "VN-Index", Exchange: "HOSE"},
	"VN30":       {Name: "VN30", Exchange: "HOSE"},
	"HNXINDEX":   {Name: "HNX-Index", Exchange: "HNX"},
	"HNX30":      {Name: "HNX30", Exchange: "HNX"},
	"UPCOMINDEX": {Name: "UPCOM-Index", Exchange: "UPCOM"},
}

// TCBSFetcher implements BarFetcher against the TCBS public stock API.
type TCBSFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewTCBSFetcher creates a TCBS fetcher. baseURL is overridable for
// tests; empty means the public endpoint.
func NewTCBSFetcher(baseURL, proxyURL string) *TCBSFetcher {
	if baseURL == "" {
		baseURL = tcbsBarsURL
	}
	return &TCBSFetcher{BaseURL: baseURL, Client: newHTTPClient(proxyURL)}
}

func (f *TCBSFetcher) Name() string { return "tcbs" }

// tcbsBar tolerates the API's two date encodings: tradingDate string or
// time in epoch millis.
type tcbsBar struct {
	TradingDate string  `json:"tradingDate"`
	TimeMs      int64   `json:"time"`
	Open        float64 `json:"open"`
	High        float64 `json:"high"`
	Low         float64 `json:"low"`
	Close       float64 `json:"close"`
	Volume      float64 `json:"volume"`
}

func (b tcbsBar) timestamp() time.Time {
	if b.TradingDate != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
			if t, err := time.Parse(layout, b.TradingDate); err == nil {
				return t
			}
		}
	}
	if b.TimeMs > 0 {
		return time.UnixMilli(b.TimeMs)
	}
	return time.Time{}
}

func (f *TCBSFetcher) FetchDailyBars(symbol string, days int) ([]model.OHLCV, error) {
	symbol = strings.ToUpper(symbol)
	kind := "stock"
	if _, ok := VietnamIndices[symbol]; ok {
		kind = "index"
	}

	to := time.Now()
	from := to.AddDate(0, 0, -days)
	u := fmt.Sprintf("%s?ticker=%s&type=%s&resolution=D&from=%d&to=%d",
		f.BaseURL, symbol, kind, from.Unix(), to.Unix())

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Origin", "https://tcbs.com.vn")
	req.Header.Set("Referer", "https://tcbs.com.vn/")

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tcbs fetch %s: %w", symbol, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tcbs %s: status %d, body: %s", symbol, resp.StatusCode, string(body))
	}

	var payload struct {
		Data []tcbsBar `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("tcbs decode %s: %w", symbol, err)
	}
	if len(payload.Data) == 0 {
		return nil, fmt.Errorf("tcbs: no data for %s", symbol)
	}

	bars := make([]model.OHLCV, 0, len(payload.Data))
	for _, b := range payload.Data {
		ts := b.timestamp()
		if ts.IsZero() {
			continue
		}
		bars = append(bars, model.OHLCV{
			Time:   ts,
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
