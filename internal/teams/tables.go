package teams

// teamEntry pairs a canonical team with any extra informal aliases that are
// not derivable from its name, city, or abbreviation.
type teamEntry struct {
	info  TeamInfo
	extra []string
}

// League tables. Order matters: within a partition the first team registered
// for an alias keeps it (shared markets like "new york" resolve to the first
// listed franchise), so the tables are append-only at the bottom.

var basketballTeams = []teamEntry{
	{TeamInfo{"Atlanta Hawks", "Atlanta", "ATL", Basketball}, nil},
	{TeamInfo{"Boston Celtics", "Boston", "BOS", Basketball}, nil},
	{TeamInfo{"Brooklyn Nets", "Brooklyn", "BKN", Basketball}, []string{"brk"}},
	{TeamInfo{"Charlotte Hornets", "Charlotte", "CHA", Basketball}, nil},
	{TeamInfo{"Chicago Bulls", "Chicago", "CHI", Basketball}, nil},
	{TeamInfo{"Cleveland Cavaliers", "Cleveland", "CLE", Basketball}, []string{"cavs"}},
	{TeamInfo{"Dallas Mavericks", "Dallas", "DAL", Basketball}, []string{"mavs"}},
	{TeamInfo{"Denver Nuggets", "Denver", "DEN", Basketball}, nil},
	{TeamInfo{"Detroit Pistons", "Detroit", "DET", Basketball}, nil},
	{TeamInfo{"Golden State Warriors", "Golden State", "GSW", Basketball}, []string{"dubs", "san francisco"}},
	{TeamInfo{"Houston Rockets", "Houston", "HOU", Basketball}, nil},
	{TeamInfo{"Indiana Pacers", "Indiana", "IND", Basketball}, nil},
	{TeamInfo{"Los Angeles Lakers", "Los Angeles", "LAL", Basketball}, []string{"la lakers"}},
	{TeamInfo{"Los Angeles Clippers", "Los Angeles", "LAC", Basketball}, []string{"la clippers"}},
	{TeamInfo{"Memphis Grizzlies", "Memphis", "MEM", Basketball}, []string{"grizz"}},
	{TeamInfo{"Miami Heat", "Miami", "MIA", Basketball}, nil},
	{TeamInfo{"Milwaukee Bucks", "Milwaukee", "MIL", Basketball}, nil},
	{TeamInfo{"Minnesota Timberwolves", "Minnesota", "MIN", Basketball}, []string{"wolves"}},
	{TeamInfo{"New Orleans Pelicans", "New Orleans", "NOP", Basketball}, []string{"pels"}},
	{TeamInfo{"New York Knicks", "New York", "NYK", Basketball}, nil},
	{TeamInfo{"Oklahoma City Thunder", "Oklahoma City", "OKC", Basketball}, nil},
	{TeamInfo{"Orlando Magic", "Orlando", "ORL", Basketball}, nil},
	{TeamInfo{"Philadelphia 76ers", "Philadelphia", "PHI", Basketball}, []string{"sixers", "philly"}},
	{TeamInfo{"Phoenix Suns", "Phoenix", "PHX", Basketball}, []string{"pho"}},
	{TeamInfo{"Portland Trail Blazers", "Portland", "POR", Basketball}, []string{"blazers"}},
	{TeamInfo{"Sacramento Kings", "Sacramento", "SAC", Basketball}, nil},
	{TeamInfo{"San Antonio Spurs", "San Antonio", "SAS", Basketball}, nil},
	{TeamInfo{"Toronto Raptors", "Toronto", "TOR", Basketball}, []string{"raps"}},
	{TeamInfo{"Utah Jazz", "Utah", "UTA", Basketball}, nil},
	{TeamInfo{"Washington Wizards", "Washington", "WAS", Basketball}, nil},
}

var footballTeams = []teamEntry{
	{TeamInfo{"Arizona Cardinals", "Arizona", "ARI", Football}, []string{"cards"}},
	{TeamInfo{"Atlanta Falcons", "Atlanta", "ATL", Football}, nil},
	{TeamInfo{"Baltimore Ravens", "Baltimore", "BAL", Football}, nil},
	{TeamInfo{"Buffalo Bills", "Buffalo", "BUF", Football}, nil},
	{TeamInfo{"Carolina Panthers", "Carolina", "CAR", Football}, nil},
	{TeamInfo{"Chicago Bears", "Chicago", "CHI", Football}, nil},
	{TeamInfo{"Cincinnati Bengals", "Cincinnati", "CIN", Football}, nil},
	{TeamInfo{"Cleveland Browns", "Cleveland", "CLE", Football}, nil},
	{TeamInfo{"Dallas Cowboys", "Dallas", "DAL", Football}, nil},
	{TeamInfo{"Denver Broncos", "Denver", "DEN", Football}, nil},
	{TeamInfo{"Detroit Lions", "Detroit", "DET", Football}, nil},
	{TeamInfo{"Green Bay Packers", "Green Bay", "GB", Football}, []string{"pack"}},
	{TeamInfo{"Houston Texans", "Houston", "HOU", Football}, nil},
	{TeamInfo{"Indianapolis Colts", "Indianapolis", "IND", Football}, nil},
	{TeamInfo{"Jacksonville Jaguars", "Jacksonville", "JAX", Football}, []string{"jags"}},
	{TeamInfo{"Kansas City Chiefs", "Kansas City", "KC", Football}, nil},
	{TeamInfo{"Las Vegas Raiders", "Las Vegas", "LV", Football}, []string{"oakland raiders"}},
	{TeamInfo{"Los Angeles Chargers", "Los Angeles", "LAC", Football}, []string{"la chargers", "bolts"}},
	{TeamInfo{"Los Angeles Rams", "Los Angeles", "LAR", Football}, []string{"la rams"}},
	{TeamInfo{"Miami Dolphins", "Miami", "MIA", Football}, []string{"fins"}},
	{TeamInfo{"Minnesota Vikings", "Minnesota", "MIN", Football}, []string{"vikes"}},
	{TeamInfo{"New England Patriots", "New England", "NE", Football}, []string{"pats"}},
	{TeamInfo{"New Orleans Saints", "New Orleans", "NO", Football}, nil},
	{TeamInfo{"New York Giants", "New York", "NYG", Football}, nil},
	{TeamInfo{"New York Jets", "New York", "NYJ", Football}, nil},
	{TeamInfo{"Philadelphia Eagles", "Philadelphia", "PHI", Football}, []string{"birds"}},
	{TeamInfo{"Pittsburgh Steelers", "Pittsburgh", "PIT", Football}, nil},
	{TeamInfo{"San Francisco 49ers", "San Francisco", "SF", Football}, []string{"niners"}},
	{TeamInfo{"Seattle Seahawks", "Seattle", "SEA", Football}, []string{"hawks"}},
	{TeamInfo{"Tampa Bay Buccaneers", "Tampa Bay", "TB", Football}, []string{"bucs"}},
	{TeamInfo{"Tennessee Titans", "Tennessee", "TEN", Football}, nil},
	{TeamInfo{"Washington Commanders", "Washington", "WAS", Football}, nil},
}

var hockeyTeams = []teamEntry{
	{TeamInfo{"Anaheim Ducks", "Anaheim", "ANA", Hockey}, nil},
	{TeamInfo{"Boston Bruins", "Boston", "BOS", Hockey}, nil},
	{TeamInfo{"Buffalo Sabres", "Buffalo", "BUF", Hockey}, nil},
	{TeamInfo{"Calgary Flames", "Calgary", "CGY", Hockey}, nil},
	{TeamInfo{"Carolina Hurricanes", "Carolina", "CAR", Hockey}, []string{"canes"}},
	{TeamInfo{"Chicago Blackhawks", "Chicago", "CHI", Hockey}, nil},
	{TeamInfo{"Colorado Avalanche", "Colorado", "COL", Hockey}, []string{"avs"}},
	{TeamInfo{"Columbus Blue Jackets", "Columbus", "CBJ", Hockey}, []string{"jackets"}},
	{TeamInfo{"Dallas Stars", "Dallas", "DAL", Hockey}, nil},
	{TeamInfo{"Detroit Red Wings", "Detroit", "DET", Hockey}, []string{"wings"}},
	{TeamInfo{"Edmonton Oilers", "Edmonton", "EDM", Hockey}, nil},
	{TeamInfo{"Florida Panthers", "Florida", "FLA", Hockey}, nil},
	{TeamInfo{"Los Angeles Kings", "Los Angeles", "LAK", Hockey}, []string{"la kings"}},
	{TeamInfo{"Minnesota Wild", "Minnesota", "MIN", Hockey}, nil},
	{TeamInfo{"Montreal Canadiens", "Montreal", "MTL", Hockey}, []string{"habs"}},
	{TeamInfo{"Nashville Predators", "Nashville", "NSH", Hockey}, []string{"preds"}},
	{TeamInfo{"New Jersey Devils", "New Jersey", "NJD", Hockey}, nil},
	{TeamInfo{"New York Islanders", "New York", "NYI", Hockey}, []string{"isles"}},
	{TeamInfo{"New York Rangers", "New York", "NYR", Hockey}, nil},
	{TeamInfo{"Ottawa Senators", "Ottawa", "OTT", Hockey}, []string{"sens"}},
	{TeamInfo{"Philadelphia Flyers", "Philadelphia", "PHI", Hockey}, nil},
	{TeamInfo{"Pittsburgh Penguins", "Pittsburgh", "PIT", Hockey}, []string{"pens"}},
	{TeamInfo{"San Jose Sharks", "San Jose", "SJS", Hockey}, nil},
	{TeamInfo{"Seattle Kraken", "Seattle", "SEA", Hockey}, nil},
	{TeamInfo{"St. Louis Blues", "St. Louis", "STL", Hockey}, nil},
	{TeamInfo{"Tampa Bay Lightning", "Tampa Bay", "TBL", Hockey}, []string{"bolts"}},
	{TeamInfo{"Toronto Maple Leafs", "Toronto", "TOR", Hockey}, []string{"leafs"}},
	{TeamInfo{"Utah Mammoth", "Utah", "UTA", Hockey}, nil},
	{TeamInfo{"Vancouver Canucks", "Vancouver", "VAN", Hockey}, []string{"nucks"}},
	{TeamInfo{"Vegas Golden Knights", "Vegas", "VGK", Hockey}, []string{"knights"}},
	{TeamInfo{"Washington Capitals", "Washington", "WSH", Hockey}, []string{"caps"}},
	{TeamInfo{"Winnipeg Jets", "Winnipeg", "WPG", Hockey}, nil},
}

func entriesForSport(sport Sport) []teamEntry {
	switch sport {
	case Basketball:
		return basketballTeams
	case Football:
		return footballTeams
	case Hockey:
		return hockeyTeams
	}
	return nil
}
