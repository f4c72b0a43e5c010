package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/tadodev/ecotrack/internal/model"
)

const teBaseURL = "https://api.tradingeconomics.com"

// teIndicators maps TradingEconomics category names (lowercased) to
// canonical snapshot keys.
var teIndicators = map[string]struct {
	Key      string
	Name     string
	UnitHint string
}{
	"inflation rate":             {Key: "inflation_rate", Name: "Inflation Rate", UnitHint: "%"},
	"gdp annual growth rate":     {Key: "gdp_growth_yoy", Name: "GDP Annual Growth Rate", UnitHint: "%"},
	"interest rate":              {Key: "policy_rate", Name: "Policy Rate", UnitHint: "%"},
	"manufacturing pmi":          {Key: "manufacturing_pmi", Name: "Manufacturing PMI", UnitHint: "Index"},
	"industrial production":      {Key: "industrial_yoy", Name: "Industrial Production", UnitHint: "%"},
	"retail sales yoy":           {Key: "retail_sales_yoy", Name: "Retail Sales YoY", UnitHint: "%"},
	"unemployment rate":          {Key: "unemployment_rate", Name: "Unemployment Rate", UnitHint: "%"},
	"balance of trade":           {Key: "balance_of_trade", Name: "Balance of Trade", UnitHint: "USD Billion"},
	"current account":            {Key: "current_account", Name: "Current Account", UnitHint: "USD Billion"},
	"foreign exchange reserves":  {Key: "fx_reserves", Name: "FX Reserves", UnitHint: "USD Billion"},
	"exports":                    {Key: "exports", Name: "Exports", UnitHint: "USD Billion"},
	"imports":                    {Key: "imports", Name: "Imports", UnitHint: "USD Billion"},
	"government bond 10y":        {Key: "government_bond_10y", Name: "10Y Bond Yield", UnitHint: "%"},
	"money supply m2":            {Key: "money_supply_m2", Name: "Money Supply M2", UnitHint: "%"},
	"foreign direct investment":  {Key: "foreign_direct_investment", Name: "FDI", UnitHint: "USD Billion"},
	"business confidence":        {Key: "business_confidence", Name: "Business Confidence", UnitHint: "Index"},
	"consumer confidence":        {Key: "consumer_confidence", Name: "Consumer Confidence", UnitHint: "Index"},
}

// TEFetcher pulls Vietnam macro indicators from TradingEconomics.
type TEFetcher struct {
	BaseURL string
	APIKey  string
	Country string
	Client  *http.Client
}

// NewTEFetcher creates a TradingEconomics fetcher for one country.
func NewTEFetcher(baseURL, apiKey, country, proxyURL string) *TEFetcher {
	if baseURL == "" {
		baseURL = teBaseURL
	}
	if country == "" {
		country = "vietnam"
	}
	return &TEFetcher{BaseURL: baseURL, APIKey: apiKey, Country: country, Client: newHTTPClient(proxyURL)}
}

func (f *TEFetcher) Name() string { return "tradingeconomics" }

// teItem tolerates both field spellings TradingEconomics has used.
type teItem struct {
	Category        string   `json:"Category"`
	Indicator       string   `json:"Indicator"`
	Last            *float64 `json:"Last"`
	LatestValue     *float64 `json:"LatestValue"`
	Previous        *float64 `json:"Previous"`
	Prior           *float64 `json:"Prior"`
	Date            string   `json:"Date"`
	LatestValueDate string   `json:"LatestValueDate"`
	Unit            string   `json:"Unit"`
}

// FetchIndicators builds the Vietnam snapshot keyed by canonical
// indicator names. Unknown categories are ignored.
func (f *TEFetcher) FetchIndicators() (model.IndicatorSnapshot, error) {
	if f.APIKey == "" {
		return nil, fmt.Errorf("tradingeconomics: api key not configured")
	}
	u := fmt.Sprintf("%s/indicators/country/%s?c=%s&format=json",
		f.BaseURL, url.PathEscape(f.Country), url.QueryEscape(f.APIKey))

	resp, err := f.Client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("tradingeconomics fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tradingeconomics: status %d, body: %s", resp.StatusCode, string(body))
	}

	var items []teItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("tradingeconomics decode: %w", err)
	}

	snap := model.IndicatorSnapshot{}
	for _, item := range items {
		category := item.Category
		if category == "" {
			category = item.Indicator
		}
		meta, ok := teIndicators[strings.ToLower(category)]
		if !ok {
			continue
		}

		value := firstFloat(item.Last, item.LatestValue)
		previous := firstFloat(item.Previous, item.Prior)
		date := item.Date
		if date == "" {
			date = item.LatestValueDate
		}
		unit := item.Unit
		if unit == "" {
			unit = meta.UnitHint
		}
		snap[meta.Key] = model.NewIndicatorValue(meta.Name, unit, date, value, previous)
	}

	if len(snap) == 0 {
		return nil, fmt.Errorf("tradingeconomics: no recognized indicators returned")
	}
	return snap, nil
}

func firstFloat(vals ...*float64) model.Float {
	for _, v := range vals {
		if v != nil {
			return model.FloatOf(*v)
		}
	}
	return model.Float{}
}
