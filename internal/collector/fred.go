package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tadodev/ecotrack/internal/model"
)

const fredBaseURL = "https://api.stlouisfed.org/fred"

// usIndicator maps one canonical key to its FRED series and the
// transform applied to the raw observations.
type usIndicator struct {
	key    string
	series string
	name   string
	unit   string
	// yoyStep > 0 means the value is the year-over-year change computed
	// against the observation yoyStep periods back.
	yoyStep int
}

// usIndicators is the FRED series table, evaluated in order.
var usIndicators = []usIndicator{
	{key: "inflation", series: "CPIAUCSL", name: "Consumer Price Index", unit: "%", yoyStep: 12},
	{key: "pce", series: "PCEPI", name: "PCE Price Index", unit: "%", yoyStep: 12},
	{key: "unemployment", series: "UNRATE", name: "Unemployment Rate", unit: "%"},
	{key: "fed_rate", series: "FEDFUNDS", name: "Federal Funds Rate", unit: "%"},
	{key: "gdp", series: "GDP", name: "Gross Domestic Product", unit: "%", yoyStep: 4},
	{key: "housing", series: "HOUST", name: "Housing Starts", unit: "K units"},
	{key: "retail_sales", series: "RSXFS", name: "Retail Sales", unit: "USD M"},
	{key: "industrial_production", series: "INDPRO", name: "Industrial Production", unit: "Index"},
	{key: "treasury_10y", series: "GS10", name: "10-Year Treasury Yield", unit: "%"},
	{key: "treasury_2y", series: "GS2", name: "2-Year Treasury Yield", unit: "%"},
}

// FREDFetcher pulls US macro series from the St. Louis Fed API.
type FREDFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewFREDFetcher creates a FRED fetcher. baseURL is overridable for tests.
func NewFREDFetcher(baseURL, apiKey, proxyURL string) *FREDFetcher {
	if baseURL == "" {
		baseURL = fredBaseURL
	}
	return &FREDFetcher{BaseURL: baseURL, APIKey: apiKey, Client: newHTTPClient(proxyURL)}
}

func (f *FREDFetcher) Name() string { return "fred" }

type fredObservation struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

func (f *FREDFetcher) fetchSeries(seriesID string, monthsBack int) ([]fredObservation, error) {
	start := time.Now().AddDate(0, -monthsBack, 0).Format("2006-01-02")
	u := fmt.Sprintf("%s/series/observations?series_id=%s&api_key=%s&file_type=json&observation_start=%s",
		f.BaseURL, url.QueryEscape(seriesID), url.QueryEscape(f.APIKey), start)

	resp, err := f.Client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("fred fetch %s: %w", seriesID, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fred %s: status %d, body: %s", seriesID, resp.StatusCode, string(body))
	}

	var payload struct {
		Observations []fredObservation `json:"observations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("fred decode %s: %w", seriesID, err)
	}

	// FRED encodes gaps as ".", drop them.
	obs := payload.Observations[:0]
	for _, o := range payload.Observations {
		if o.Value == "." || o.Value == "" {
			continue
		}
		obs = append(obs, o)
	}
	return obs, nil
}

// FetchIndicators builds the US snapshot. Each series degrades
// independently; a single failing series never fails the snapshot.
func (f *FREDFetcher) FetchIndicators() (model.IndicatorSnapshot, error) {
	if f.APIKey == "" {
		return nil, fmt.Errorf("fred: api key not configured")
	}
	snap := model.IndicatorSnapshot{}

	for _, ind := range usIndicators {
		monthsBack := 18
		if ind.yoyStep == 4 {
			monthsBack = 30 // quarterly series needs more history for YoY
		}
		obs, err := f.fetchSeries(ind.series, monthsBack)
		if err != nil || len(obs) == 0 {
			continue
		}

		values := make([]float64, 0, len(obs))
		for _, o := range obs {
			v, perr := strconv.ParseFloat(o.Value, 64)
			if perr != nil {
				continue
			}
			values = append(values, v)
		}
		n := len(values)
		if n == 0 {
			continue
		}
		date := obs[len(obs)-1].Date

		if ind.yoyStep > 0 {
			// Value is YoY percent change; previous is the change one
			// period earlier so the snapshot still carries a trend.
			if n < ind.yoyStep+1 {
				continue
			}
			yoy := yoyChange(values, n-1, ind.yoyStep)
			prev := model.Float{}
			if n >= ind.yoyStep+2 {
				prev = yoyChange(values, n-2, ind.yoyStep)
			}
			snap[ind.key] = model.NewIndicatorValue(ind.name, ind.unit, date, yoy, prev)
			continue
		}

		value := model.FloatOf(values[n-1])
		prev := model.Float{}
		if n >= 2 {
			prev = model.FloatOf(values[n-2])
		}
		snap[ind.key] = model.NewIndicatorValue(ind.name, ind.unit, date, value, prev)
	}

	if len(snap) == 0 {
		return nil, fmt.Errorf("fred: no series returned data")
	}
	return snap, nil
}

func yoyChange(values []float64, at, step int) model.Float {
	base := values[at-step]
	if base == 0 {
		return model.Float{}
	}
	return model.FloatOf((values[at]/base - 1) * 100)
}

// FetchFedGauge derives the yield-curve rate-path gauge from FEDFUNDS
// and GS10.
func (f *FREDFetcher) FetchFedGauge() (*model.FedGauge, error) {
	fed, err := f.fetchSeries("FEDFUNDS", 12)
	if err != nil {
		return nil, err
	}
	t10, err := f.fetchSeries("GS10", 12)
	if err != nil {
		return nil, err
	}
	if len(fed) == 0 || len(t10) == 0 {
		return nil, fmt.Errorf("fred: empty gauge series")
	}

	curFed, err := strconv.ParseFloat(fed[len(fed)-1].Value, 64)
	if err != nil {
		return nil, fmt.Errorf("fred parse FEDFUNDS: %w", err)
	}
	cur10, err := strconv.ParseFloat(t10[len(t10)-1].Value, 64)
	if err != nil {
		return nil, fmt.Errorf("fred parse GS10: %w", err)
	}

	spread := cur10 - curFed
	cutProb := 25
	if spread < 0 {
		cutProb = 75
	} else if spread < 1 {
		cutProb = 50
	}
	return &model.FedGauge{
		YieldCurve:  spread,
		FedRate:     curFed,
		Treasury10Y: cur10,
		CutProb:     cutProb,
	}, nil
}
