package themes

// Theme is one taxonomy entry: a display name plus the representative
// keywords that form its pseudo-document.
type Theme struct {
	Name     string
	Keywords []string
}

// taxonomy is the fixed climate-discourse theme set. It ships in code and is
// never loaded from configuration; order is the canonical theme order.
var taxonomy = []Theme{
	{"Energy and Heating", []string{
		"energy", "bills", "bill", "electricity", "gas", "fuel",
		"insulation", "heat pump", "heat pumps", "boiler", "boilers",
		"heating", "solar", "panels", "power", "grid", "tariff",
		"meter", "smart meter", "fuel poverty", "efficiency", "draught",
		"cavity wall", "loft insulation", "radiator", "thermostat",
	}},
	{"Extreme Weather", []string{
		"flooding", "flood", "floods", "storm", "storms", "heatwave",
		"heatwaves", "drought", "droughts", "rain", "rainfall", "snow",
		"ice", "wind", "gale", "lightning", "thunder", "cold snap",
		"freeze", "frost", "wildfire", "extreme", "hurricane", "tornado",
		"hot", "hotter", "record temperatures",
	}},
	{"Transport", []string{
		"electric vehicle", "electric vehicles", "ev", "evs", "cycling",
		"bicycle", "bike", "public transport", "bus", "train", "rail",
		"flight", "flights", "flying", "aviation", "car", "cars",
		"driving", "petrol", "diesel", "emissions", "commute", "commuting",
		"walking", "e-bike", "charging", "charge point", "congestion",
	}},
	{"Food and Agriculture", []string{
		"farming", "farm", "farmer", "farmers", "food", "food prices",
		"agriculture", "crop", "crops", "harvest", "growing season",
		"local food", "organic", "livestock", "meat", "dairy", "vegan",
		"vegetarian", "allotment", "garden", "soil", "fertiliser",
		"pesticide", "supply chain", "supermarket", "import",
	}},
	{"Policy and Governance", []string{
		"net zero", "carbon tax", "regulation", "regulations", "government",
		"policy", "policies", "legislation", "parliament", "council",
		"local authority", "minister", "subsidy", "subsidies", "grant",
		"grants", "target", "targets", "mandate", "ban", "law", "act",
		"strategy", "consultation", "planning permission", "budget",
	}},
	{"Mental Health and Anxiety", []string{
		"eco-anxiety", "eco anxiety", "climate grief", "worry", "worried",
		"anxious", "anxiety", "overwhelm", "overwhelmed", "stress",
		"stressed", "depression", "depressed", "hopeless", "hopelessness",
		"fear", "scared", "panic", "dread", "mental health", "wellbeing",
		"therapy", "cope", "coping", "burnout", "exhaustion",
	}},
	{"Community Action", []string{
		"local group", "local groups", "volunteering", "volunteer",
		"volunteers", "protest", "protests", "activism", "activist",
		"campaign", "campaigning", "community", "neighbourhood",
		"collective", "grassroots", "petition", "march", "rally",
		"mutual aid", "cooperative", "co-op", "organising", "engagement",
		"town hall", "citizens assembly",
	}},
	{"Biodiversity", []string{
		"wildlife", "nature", "species", "habitat", "habitats",
		"biodiversity", "ecosystem", "ecosystems", "bird", "birds",
		"insect", "insects", "bee", "bees", "pollinator", "pollinators",
		"tree", "trees", "woodland", "forest", "hedgehog", "fox",
		"river", "ocean", "marine", "coral", "rewilding", "conservation",
		"endangered", "protected",
	}},
	{"Housing and Buildings", []string{
		"retrofit", "retrofitting", "insulation", "planning", "planning permission",
		"green home", "green homes", "epc", "energy performance",
		"new build", "new builds", "housing", "house", "flat",
		"apartment", "building", "buildings", "construction",
		"developer", "property", "rent", "mortgage", "landlord",
		"tenant", "damp", "mould", "ventilation", "double glazing",
	}},
	{"Water", []string{
		"water", "water shortage", "reservoir", "reservoirs",
		"hosepipe ban", "hosepipe bans", "water quality", "sewage",
		"river", "rivers", "stream", "groundwater", "aquifer",
		"drinking water", "tap water", "water company", "water bill",
		"drought", "dry", "rainfall", "flooding", "surface water",
		"leak", "leaks", "pipe", "infrastructure", "treatment",
	}},
}

// climateStopWords are high-frequency but uninformative terms filtered out
// of extracted keyword lists.
var climateStopWords = map[string]bool{
	"climate": true, "change": true, "global": true, "warming": true,
	"carbon": true, "environment": true, "environmental": true,
	"weather": true, "temperature": true, "planet": true, "earth": true,
	"world": true, "uk": true, "united": true, "kingdom": true,
	"britain": true, "british": true, "england": true, "scotland": true,
	"wales": true, "northern": true, "ireland": true, "said": true,
	"also": true, "would": true, "could": true, "people": true,
	"think": true, "know": true, "just": true, "like": true, "get": true,
	"got": true, "going": true, "really": true, "things": true,
	"thing": true, "lot": true, "way": true, "time": true, "year": true,
	"years": true, "new": true, "one": true, "two": true, "much": true,
	"many": true, "make": true, "made": true, "need": true, "say": true,
	"says": true, "told": true, "will": true, "can": true, "may": true,
	"come": true, "even": true, "well": true, "back": true, "now": true,
	"see": true, "take": true, "still": true, "good": true, "first": true,
	"last": true, "long": true, "great": true, "little": true,
	"right": true, "old": true, "big": true, "use": true, "used": true,
	"using": true,
}
