package sentiment

// Climate-specific lexicon adjustments. Each value is an additive modifier
// applied to the base compound score: negative values push sentiment toward
// negative, positive toward positive.

var climateNegativeLexicon = map[string]float64{
	// Extreme weather / disaster language
	"flooding":            -0.15,
	"flood":               -0.15,
	"floods":              -0.15,
	"disaster":            -0.20,
	"disasters":           -0.20,
	"crisis":              -0.15,
	"crises":              -0.15,
	"catastrophe":         -0.20,
	"catastrophic":        -0.20,
	"devastation":         -0.20,
	"devastated":          -0.18,
	"heatwave":            -0.12,
	"heatwaves":           -0.12,
	"drought":             -0.15,
	"droughts":            -0.15,
	"wildfire":            -0.15,
	"wildfires":           -0.15,
	"extinction":          -0.20,
	"collapse":            -0.18,
	"irreversible":        -0.15,
	"tipping point":       -0.15,
	"sea level rise":      -0.12,
	"toxic":               -0.12,
	"pollution":           -0.12,
	"polluted":            -0.12,
	"contaminated":        -0.14,
	"deforestation":       -0.14,
	"emission":            -0.08,
	"emissions":           -0.08,
	"carbon footprint":    -0.06,
	"ocean acidification": -0.14,
	"melting":             -0.10,
	"eroding":             -0.10,
	"erosion":             -0.10,
	"displacement":        -0.12,
	"famine":              -0.18,
	"starvation":          -0.18,
	"uninhabitable":       -0.18,
}

var climatePositiveLexicon = map[string]float64{
	// Solutions / hope language
	"renewable":         0.12,
	"renewables":        0.12,
	"solution":          0.12,
	"solutions":         0.12,
	"community action":  0.15,
	"sustainability":    0.12,
	"sustainable":       0.12,
	"green energy":      0.14,
	"clean energy":      0.14,
	"solar power":       0.12,
	"solar panels":      0.12,
	"wind power":        0.12,
	"wind farm":         0.12,
	"heat pump":         0.10,
	"heat pumps":        0.10,
	"insulation":        0.08,
	"retrofit":          0.08,
	"electric vehicle":  0.10,
	"electric vehicles": 0.10,
	"net zero":          0.10,
	"carbon neutral":    0.12,
	"biodiversity":      0.08,
	"rewilding":         0.12,
	"reforestation":     0.14,
	"restoration":       0.10,
	"adaptation":        0.08,
	"resilience":        0.10,
	"resilient":         0.10,
	"regenerative":      0.12,
	"recycling":         0.08,
	"composting":        0.08,
	"conservation":      0.10,
	"transition":        0.06,
	"innovation":        0.10,
	"breakthrough":      0.12,
	"progress":          0.10,
	"community energy":  0.14,
	"local food":        0.08,
	"volunteering":      0.10,
	"collective action": 0.14,
	"activism":          0.06,
	"empowered":         0.10,
	"hopeful":           0.10,
}
