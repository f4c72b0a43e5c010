package advisor

import "github.com/tadodev/ecotrack/internal/model"

// Rotation category keys, in the order the rules fire.
const (
	RotationGrowth         = "growth_favored"
	RotationDefensive      = "defensive_favored"
	RotationInflationHedge = "inflation_hedge"
	RotationManufacturing  = "manufacturing_cycle"
	RotationExport         = "export_beneficiary"
	RotationRateSensitive  = "rate_sensitive"
)

// SectorRotation derives favored-sector categories from the Vietnam
// macro snapshot. Only branches whose indicator is present fire.
func SectorRotation(vn model.IndicatorSnapshot) map[string][]string {
	rotation := map[string][]string{}

	if gdp := vn.Value("gdp_growth_yoy"); gdp.Valid {
		if gdp.Value > 6.5 {
			rotation[RotationGrowth] = []string{"Technology", "Real Estate", "Manufacturing"}
		} else if gdp.Value < 5.0 {
			rotation[RotationDefensive] = []string{"Banking", "Utilities"}
		}
	}
	if infl := vn.Value("inflation_rate"); infl.Valid && infl.Value > 5 {
		rotation[RotationInflationHedge] = []string{"Real Estate", "Energy", "Manufacturing"}
	}
	if pmi := vn.Value("manufacturing_pmi"); pmi.Valid && pmi.Value > 52 {
		rotation[RotationManufacturing] = []string{"Manufacturing", "Technology", "Energy"}
	}
	if trade := vn.Value("balance_of_trade"); trade.Valid && trade.Value > 2 {
		rotation[RotationExport] = []string{"Manufacturing", "Technology"}
	}
	if change := vn.Change("policy_rate"); change.Valid && change.Value < -0.25 {
		rotation[RotationRateSensitive] = []string{"Real Estate", "Banking", "Technology"}
	}

	return rotation
}
