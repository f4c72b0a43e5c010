package notifier

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tadodev/ecotrack/internal/model"
)

// maxFactors caps the factor lines shown in the digest; the score keeps
// its full list, callers display only the head.
const maxFactors = 5

// FormatDigest renders the per-cycle analysis into a Telegram message.
func FormatDigest(view *model.MarketView, score model.EconomicScore, bundle model.RecommendationBundle) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>ecotrack daily digest</b> | %s\n\n", time.Now().Format("2006-01-02")))

	if view.VNIndex != nil {
		b.WriteString(fmt.Sprintf("VN-Index: %.2f (%+.2f%%)\n", view.VNIndex.Price, view.VNIndex.ChangePct))
	}
	if view.VNTechnical != nil {
		t := view.VNTechnical
		if t.RSI.Valid {
			b.WriteString(fmt.Sprintf("RSI(14): %.1f (%s)\n", t.RSI.Value, t.RSISignal))
		}
		if t.SMA20.Valid && t.SMA50.Valid {
			b.WriteString(fmt.Sprintf("SMA20: %.2f | SMA50: %.2f\n", t.SMA20.Value, t.SMA50.Value))
		}
		if t.Support.Valid && t.Resistance.Valid {
			b.WriteString(fmt.Sprintf("Support: %.2f | Resistance: %.2f\n", t.Support.Value, t.Resistance.Value))
		}
	}
	b.WriteString("\n")

	if g := view.FedGauge; g != nil {
		b.WriteString(fmt.Sprintf("🏛 Fed funds: %.2f%% | 10Y: %.2f%% | curve %+.2f | cut odds ~%d%%\n\n",
			g.FedRate, g.Treasury10Y, g.YieldCurve, g.CutProb))
	}

	b.WriteString(fmt.Sprintf("🩺 <b>Economic score:</b> %.0f/100 (%s)\n", score.Score, score.Rating))
	for i, f := range score.Factors {
		if i >= maxFactors {
			break
		}
		b.WriteString("  " + f + "\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("🧭 <b>Overall:</b> %.1f/100 | %s timing | %s risk\n",
		bundle.OverallScore, bundle.MarketTiming, bundle.RiskLevel))
	for _, r := range bundle.Recommendations {
		b.WriteString("  " + r + "\n")
	}
	if len(bundle.Opportunities) > 0 {
		b.WriteString("\n<b>Opportunities:</b>\n")
		for _, o := range bundle.Opportunities {
			b.WriteString("  " + o + "\n")
		}
	}
	if len(bundle.RiskFactors) > 0 {
		b.WriteString("\n<b>Risk factors:</b>\n")
		for _, r := range bundle.RiskFactors {
			b.WriteString("  " + r + "\n")
		}
	}
	if len(bundle.Currency) > 0 {
		for _, c := range bundle.Currency {
			b.WriteString("  " + c + "\n")
		}
	}

	return b.String()
}

// FormatSectors renders the sector performance table, best first.
func FormatSectors(sectors map[string]model.SectorPerformance) string {
	if len(sectors) == 0 {
		return "No sector data available yet."
	}

	names := make([]string, 0, len(sectors))
	for name := range sectors {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return sectors[names[i]].AvgReturn1D > sectors[names[j]].AvgReturn1D
	})

	var b strings.Builder
	b.WriteString("🏭 <b>Sector performance (1D/1W/1M)</b>\n\n")
	for _, name := range names {
		p := sectors[name]
		b.WriteString(fmt.Sprintf("%s: %+.2f%% / %+.2f%% / %+.2f%% (%d↑ %d↓)\n",
			name, p.AvgReturn1D, p.AvgReturn1W, p.AvgReturn1M, p.Winners, p.Losers))
	}
	return b.String()
}

// FormatGlobal renders the world index quotes.
func FormatGlobal(indices map[string]model.IndexQuote) string {
	if len(indices) == 0 {
		return "No global market data available yet."
	}

	symbols := make([]string, 0, len(indices))
	for s := range indices {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	var b strings.Builder
	b.WriteString("🌍 <b>Global markets</b>\n\n")
	for _, s := range symbols {
		q := indices[s]
		b.WriteString(fmt.Sprintf("%s: %.2f (%+.2f%%)\n", q.Name, q.Price, q.ChangePct))
	}
	return b.String()
}
