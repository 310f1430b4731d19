package geo

import "github.com/thermoculture/discourse-engine/internal/models"

// Place is one gazetteer entry. Coordinates are approximate town centres,
// good enough for regional mapping.
type Place struct {
	Name      string
	Region    models.Region
	Latitude  float64
	Longitude float64
}

// ukGazetteer is the curated reference table of UK locations. It ships as
// part of the engine and is never loaded from configuration.
var ukGazetteer = []Place{
	// London
	{"London", models.RegionLondon, 51.5074, -0.1278},
	{"Westminster", models.RegionLondon, 51.4975, -0.1357},
	{"Camden", models.RegionLondon, 51.5290, -0.1255},
	{"Greenwich", models.RegionLondon, 51.4826, -0.0077},
	{"Hackney", models.RegionLondon, 51.5450, -0.0553},
	{"Islington", models.RegionLondon, 51.5416, -0.1022},
	{"Tower Hamlets", models.RegionLondon, 51.5203, -0.0293},
	{"Croydon", models.RegionLondon, 51.3762, -0.0982},
	// South East
	{"Brighton", models.RegionSouthEast, 50.8225, -0.1372},
	{"Oxford", models.RegionSouthEast, 51.7520, -1.2577},
	{"Canterbury", models.RegionSouthEast, 51.2802, 1.0789},
	{"Southampton", models.RegionSouthEast, 50.9097, -1.4044},
	{"Portsmouth", models.RegionSouthEast, 50.8198, -1.0880},
	{"Reading", models.RegionSouthEast, 51.4543, -0.9781},
	{"Guildford", models.RegionSouthEast, 51.2362, -0.5704},
	{"Milton Keynes", models.RegionSouthEast, 52.0406, -0.7594},
	{"Luton", models.RegionSouthEast, 51.8787, -0.4200},
	{"Slough", models.RegionSouthEast, 51.5105, -0.5950},
	{"Maidstone", models.RegionSouthEast, 51.2704, 0.5227},
	{"Hastings", models.RegionSouthEast, 50.8543, 0.5735},
	// South West
	{"Bristol", models.RegionSouthWest, 51.4545, -2.5879},
	{"Bath", models.RegionSouthWest, 51.3811, -2.3590},
	{"Plymouth", models.RegionSouthWest, 50.3755, -4.1427},
	{"Exeter", models.RegionSouthWest, 50.7184, -3.5339},
	{"Gloucester", models.RegionSouthWest, 51.8642, -2.2382},
	{"Bournemouth", models.RegionSouthWest, 50.7192, -1.8808},
	{"Swindon", models.RegionSouthWest, 51.5558, -1.7797},
	{"Cheltenham", models.RegionSouthWest, 51.8994, -2.0783},
	{"Taunton", models.RegionSouthWest, 51.0147, -3.1028},
	{"Torquay", models.RegionSouthWest, 50.4619, -3.5253},
	// East of England
	{"Cambridge", models.RegionEast, 52.2053, 0.1218},
	{"Norwich", models.RegionEast, 52.6309, 1.2974},
	{"Ipswich", models.RegionEast, 52.0567, 1.1482},
	{"Colchester", models.RegionEast, 51.8959, 0.8919},
	{"Peterborough", models.RegionEast, 52.5695, -0.2405},
	{"Chelmsford", models.RegionEast, 51.7356, 0.4685},
	{"Southend-on-Sea", models.RegionEast, 51.5459, 0.7077},
	// West Midlands
	{"Birmingham", models.RegionWestMidlands, 52.4862, -1.8904},
	{"Coventry", models.RegionWestMidlands, 52.4068, -1.5197},
	{"Wolverhampton", models.RegionWestMidlands, 52.5870, -2.1270},
	{"Stoke-on-Trent", models.RegionWestMidlands, 53.0027, -2.1794},
	{"Worcester", models.RegionWestMidlands, 52.1936, -2.2216},
	{"Hereford", models.RegionWestMidlands, 52.0565, -2.7160},
	{"Shrewsbury", models.RegionWestMidlands, 52.7073, -2.7553},
	{"Walsall", models.RegionWestMidlands, 52.5862, -1.9829},
	{"Dudley", models.RegionWestMidlands, 52.5120, -2.0810},
	// East Midlands
	{"Nottingham", models.RegionEastMidlands, 52.9548, -1.1581},
	{"Leicester", models.RegionEastMidlands, 52.6369, -1.1398},
	{"Derby", models.RegionEastMidlands, 52.9225, -1.4746},
	{"Lincoln", models.RegionEastMidlands, 53.2307, -0.5406},
	{"Northampton", models.RegionEastMidlands, 52.2405, -0.9027},
	{"Mansfield", models.RegionEastMidlands, 53.1472, -1.1987},
	// North West
	{"Manchester", models.RegionNorthWest, 53.4808, -2.2426},
	{"Liverpool", models.RegionNorthWest, 53.4084, -2.9916},
	{"Chester", models.RegionNorthWest, 53.1930, -2.8931},
	{"Preston", models.RegionNorthWest, 53.7632, -2.7031},
	{"Blackpool", models.RegionNorthWest, 53.8175, -3.0357},
	{"Bolton", models.RegionNorthWest, 53.5785, -2.4299},
	{"Carlisle", models.RegionNorthWest, 54.8925, -2.9329},
	{"Lancaster", models.RegionNorthWest, 54.0466, -2.8007},
	{"Warrington", models.RegionNorthWest, 53.3900, -2.5970},
	{"Wigan", models.RegionNorthWest, 53.5450, -2.6325},
	{"Stockport", models.RegionNorthWest, 53.4083, -2.1494},
	{"Burnley", models.RegionNorthWest, 53.7890, -2.2480},
	// North East
	{"Newcastle", models.RegionNorthEast, 54.9783, -1.6178},
	{"Sunderland", models.RegionNorthEast, 54.9069, -1.3838},
	{"Durham", models.RegionNorthEast, 54.7761, -1.5733},
	{"Middlesbrough", models.RegionNorthEast, 54.5742, -1.2350},
	{"Darlington", models.RegionNorthEast, 54.5235, -1.5593},
	{"Hartlepool", models.RegionNorthEast, 54.6860, -1.2129},
	{"Gateshead", models.RegionNorthEast, 54.9527, -1.6030},
	// Yorkshire and the Humber
	{"Leeds", models.RegionYorkshire, 53.8008, -1.5491},
	{"Sheffield", models.RegionYorkshire, 53.3811, -1.4701},
	{"York", models.RegionYorkshire, 53.9591, -1.0815},
	{"Bradford", models.RegionYorkshire, 53.7960, -1.7594},
	{"Hull", models.RegionYorkshire, 53.7676, -0.3274},
	{"Huddersfield", models.RegionYorkshire, 53.6458, -1.7850},
	{"Doncaster", models.RegionYorkshire, 53.5228, -1.1285},
	{"Wakefield", models.RegionYorkshire, 53.6833, -1.4977},
	{"Harrogate", models.RegionYorkshire, 53.9921, -1.5418},
	{"Scarborough", models.RegionYorkshire, 54.2830, -0.3998},
	// Scotland
	{"Edinburgh", models.RegionScotland, 55.9533, -3.1883},
	{"Glasgow", models.RegionScotland, 55.8642, -4.2518},
	{"Aberdeen", models.RegionScotland, 57.1497, -2.0943},
	{"Dundee", models.RegionScotland, 56.4620, -2.9707},
	{"Inverness", models.RegionScotland, 57.4778, -4.2247},
	{"Stirling", models.RegionScotland, 56.1166, -3.9369},
	{"Perth", models.RegionScotland, 56.3950, -3.4308},
	{"St Andrews", models.RegionScotland, 56.3398, -2.7967},
	{"Fort William", models.RegionScotland, 56.8198, -5.1052},
	{"Dumfries", models.RegionScotland, 55.0709, -3.6051},
	// Wales
	{"Cardiff", models.RegionWales, 51.4816, -3.1791},
	{"Swansea", models.RegionWales, 51.6214, -3.9436},
	{"Newport", models.RegionWales, 51.5842, -2.9977},
	{"Bangor", models.RegionWales, 53.2274, -4.1293},
	{"Aberystwyth", models.RegionWales, 52.4153, -4.0829},
	{"Wrexham", models.RegionWales, 53.0469, -2.9925},
	{"Llanelli", models.RegionWales, 51.6840, -4.1629},
	{"Carmarthen", models.RegionWales, 51.8576, -4.3121},
	// Northern Ireland
	{"Belfast", models.RegionNorthernIreland, 54.5973, -5.9301},
	{"Derry", models.RegionNorthernIreland, 54.9966, -7.3086},
	{"Londonderry", models.RegionNorthernIreland, 54.9966, -7.3086},
	{"Lisburn", models.RegionNorthernIreland, 54.5162, -6.0580},
	{"Newry", models.RegionNorthernIreland, 54.1751, -6.3402},
	{"Armagh", models.RegionNorthernIreland, 54.3503, -6.6528},
	{"Banbridge", models.RegionNorthernIreland, 54.3494, -6.2700},
}

// ambiguousNames are gazetteer entries that double as ordinary English
// words or well-known non-UK places. These need contextual evidence before
// being accepted as locations. Keys are lowercase.
var ambiguousNames = map[string]bool{
	"reading":    true, // verb / city
	"bath":       true, // noun / city
	"derby":      true, // event / city
	"hull":       true, // noun / city
	"chester":    true, // first name / city
	"lancaster":  true, // surname / city
	"durham":     true,
	"lincoln":    true,
	"bolton":     true,
	"york":       true, // surname / city, plus "New York"
	"preston":    true,
	"newport":    true,
	"bangor":     true,
	"perth":      true, // Australia / Scotland
	"stirling":   true,
	"shrewsbury": true,
	"wigan":      true,
}

// verbCollisionNames are the narrower subset of ambiguous names whose
// non-place sense is a verb form; these get the stricter lowercase and
// trigger-phrase checks.
var verbCollisionNames = map[string]bool{
	"reading": true,
}

// geoContextWords disambiguate an ambiguous name when found near the match.
var geoContextWords = []string{
	"city", "town", "council", "borough", "county", "area", "region",
	"resident", "residents", "constituency", "mp", "mps", "mayor",
	"station", "airport", "university", "hospital", "school",
	"flooding", "flood", "climate",
	"road", "street", "high street", "centre", "center",
	"north", "south", "east", "west", "near", "based in", "living in",
}
