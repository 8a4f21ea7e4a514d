package model

// Basketball margin component weights. The four components sum to weight 1.0.
const (
	bballNetPointsWeight = 0.35
	bballShootingScale   = 1.0
	bballShootingWeight  = 0.30
	bballReboundScale    = 0.5
	bballReboundWeight   = 0.20
	bballTurnoverScale   = 1.0
	bballTurnoverWeight  = 0.15
)

// Football margin component weights.
const (
	fbNetPointsWeight    = 0.4
	fbYardsScale         = 25.0
	fbYardsWeight        = 0.25
	fbTurnoverPointValue = 4.0
	fbTurnoverScale      = 0.5
	fbTurnoverWeight     = 0.2

	// leagueAverageYards substitutes for missing yardage stats so the yards
	// component contributes zero instead of erroring. It never fabricates an
	// advantage: both sides of a missing comparison collapse to the average.
	leagueAverageYards = 350.0
)

// BasketballMargin predicts the favorite's scoring margin from weighted stat
// differentials. The turnover term is intentionally inverted (underdog minus
// favorite): a team's own turnover margin already nets opponent takeaways,
// so the non-inverted form would double-count possession advantage.
func BasketballMargin(fav, dog BasketballStats) (float64, error) {
	var missing []MissingStat
	required := []string{"points_per_game", "points_allowed", "field_goal_pct", "rebound_margin", "turnover_margin"}
	checkRequired(fav.Team, map[string]*float64{
		"points_per_game": fav.PointsPerGame,
		"points_allowed":  fav.PointsAllowed,
		"field_goal_pct":  fav.FieldGoalPct,
		"rebound_margin":  fav.ReboundMargin,
		"turnover_margin": fav.TurnoverMargin,
	}, required, &missing)
	checkRequired(dog.Team, map[string]*float64{
		"points_per_game": dog.PointsPerGame,
		"points_allowed":  dog.PointsAllowed,
		"field_goal_pct":  dog.FieldGoalPct,
		"rebound_margin":  dog.ReboundMargin,
		"turnover_margin": dog.TurnoverMargin,
	}, required, &missing)
	if len(missing) > 0 {
		return 0, &InsufficientDataError{Missing: missing}
	}

	netPoints := (*fav.PointsPerGame - *fav.PointsAllowed) - (*dog.PointsPerGame - *dog.PointsAllowed)
	shooting := (*fav.FieldGoalPct - *dog.FieldGoalPct) * bballShootingScale
	rebounds := (*fav.ReboundMargin - *dog.ReboundMargin) * bballReboundScale
	turnovers := (*dog.TurnoverMargin - *fav.TurnoverMargin) * bballTurnoverScale

	margin := netPoints*bballNetPointsWeight +
		shooting*bballShootingWeight +
		rebounds*bballReboundWeight +
		turnovers*bballTurnoverWeight
	return margin, nil
}

// FootballMargin predicts the favorite's scoring margin. Yardage stats fall
// back to the league average; points and turnover differential are required.
func FootballMargin(fav, dog FootballStats) (float64, error) {
	var missing []MissingStat
	required := []string{"points_per_game", "points_allowed", "turnover_diff"}
	checkRequired(fav.Team, map[string]*float64{
		"points_per_game": fav.PointsPerGame,
		"points_allowed":  fav.PointsAllowed,
		"turnover_diff":   fav.TurnoverDiff,
	}, required, &missing)
	checkRequired(dog.Team, map[string]*float64{
		"points_per_game": dog.PointsPerGame,
		"points_allowed":  dog.PointsAllowed,
		"turnover_diff":   dog.TurnoverDiff,
	}, required, &missing)
	if len(missing) > 0 {
		return 0, &InsufficientDataError{Missing: missing}
	}

	netPoints := (*fav.PointsPerGame - *fav.PointsAllowed) - (*dog.PointsPerGame - *dog.PointsAllowed)

	favYards := (yardsOrAverage(fav.OffensiveYards) - yardsOrAverage(fav.DefensiveYards)) / fbYardsScale
	dogYards := (yardsOrAverage(dog.OffensiveYards) - yardsOrAverage(dog.DefensiveYards)) / fbYardsScale

	turnovers := (*fav.TurnoverDiff - *dog.TurnoverDiff) * fbTurnoverPointValue * fbTurnoverScale

	margin := netPoints*fbNetPointsWeight +
		(favYards-dogYards)*fbYardsWeight +
		turnovers*fbTurnoverWeight
	return margin, nil
}

func yardsOrAverage(v *float64) float64 {
	if v == nil {
		return leagueAverageYards
	}
	return *v
}
