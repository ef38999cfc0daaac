package standings

// teamColors maps a team abbreviation to its display colour.
var teamColors = map[string]string{
	"ATL": "#C8102E", "BKN": "#000000", "BOS": "#007A33", "CHA": "#1D1160", "CHI": "#CE1141",
	"CLE": "#860038", "DAL": "#00538C", "DEN": "#FEC524", "DET": "#C8102E", "GSW": "#1D428A",
	"HOU": "#CE1141", "IND": "#FDBB30", "LAC": "#C8102E", "LAL": "#FFC72C", "MEM": "#5D76A9",
	"MIA": "#98002E", "MIL": "#00471B", "MIN": "#0C2340", "NOP": "#0C2340", "NYK": "#F58426",
	"OKC": "#007AC1", "ORL": "#0077C0", "PHI": "#006BB6", "PHX": "#E56020", "POR": "#E03A3E",
	"SAC": "#5A2D81", "SAS": "#C4CED4", "TOR": "#CE1141", "UTA": "#002B5C", "WAS": "#002B5C",
}

// TeamColor returns the display colour for team, if it has one.
func TeamColor(team string) (string, bool) {
	c, ok := teamColors[team]
	return c, ok
}
