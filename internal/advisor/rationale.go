package advisor

import "github.com/tadodev/ecotrack/internal/model"

var baseRationales = map[string]string{
	"Banking":              "Interest rate beneficiary with strong deposit growth",
	"Technology":           "Digital transformation and export growth driver",
	"Real Estate":          "Infrastructure development and urbanization theme",
	"Energy & Utilities":   "Essential services with commodity exposure",
	"Manufacturing":        "Export manufacturing hub with FDI attraction",
	"Aviation & Transport": "Tourism recovery and domestic travel growth",
	"Consumer Goods":       "Domestic demand growth and retail expansion",
}

// SectorRationale returns the investment rationale for one sector,
// extended with momentum and macro context when the data supports it.
func SectorRationale(sector string, perf model.SectorPerformance, vn model.IndicatorSnapshot) string {
	base, ok := baseRationales[sector]
	if !ok {
		base = "Diversification play"
	}

	if perf.StockCount > 0 {
		if perf.AvgReturn1D > 3 {
			base += " - Strong momentum"
		} else if perf.AvgReturn1D < -3 {
			base += " - Value opportunity emerging"
		}
	}

	switch sector {
	case "Banking":
		if change := vn.Change("policy_rate"); change.Valid {
			if change.Value > 0 {
				base += " - Rate hikes support NIM expansion"
			} else if change.Value < 0 {
				base += " - Rate cuts may pressure margins but support lending"
			}
		}
	case "Real Estate":
		if infl := vn.Value("inflation_rate"); infl.Valid && infl.Value > 3 {
			base += " - Real asset inflation hedge"
		}
	case "Manufacturing":
		if trade := vn.Value("balance_of_trade"); trade.Valid && trade.Value > 1 {
			base += " - Export strength supports sector"
		}
	}

	return base
}
