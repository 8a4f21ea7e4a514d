// Package engine composes normalization, team resolution, stats lookup, the
// margin/probability models, and Kelly staking into the operations the tool
// layer exposes. Every operation is a pure pipeline over data the collaborators
// loaded at startup; the engine holds no mutable state and is safe for
// concurrent use.
package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"bet-advisor/internal/analysis"
	"bet-advisor/internal/config"
	"bet-advisor/internal/mathutil"
	"bet-advisor/internal/model"
	"bet-advisor/internal/normalize"
	"bet-advisor/internal/parse"
	"bet-advisor/internal/stats"
	"bet-advisor/internal/teams"
)

// Engine orchestrates the analysis pipelines.
type Engine struct {
	provider stats.Provider
	cfg      config.Config
}

// New creates an Engine over the given stats provider and configuration.
func New(provider stats.Provider, cfg config.Config) *Engine {
	return &Engine{provider: provider, cfg: cfg}
}

// SpreadAnalysis is the full result of a point-spread request.
type SpreadAnalysis struct {
	Sport       teams.Sport             `json:"sport"`
	Favorite    *teams.TeamInfo         `json:"favorite"`
	Underdog    *teams.TeamInfo         `json:"underdog"`
	Spread      float64                 `json:"spread"`
	Probability model.ProbabilityResult `json:"probability"`
	Odds        int                     `json:"odds"`
	Kelly       analysis.KellyResult    `json:"kelly"`
}

// AnalyzeSpread runs the spread pipeline on loosely-shaped raw arguments:
// normalize, resolve both teams, look up stats, predict the margin, convert
// to cover probabilities, and size the favorite-side stake.
func (e *Engine) AnalyzeSpread(raw any) (*SpreadAnalysis, error) {
	args, missing := normalize.SpreadRequest(raw)
	if len(missing) > 0 {
		return nil, invalidInput(missing)
	}

	hint := teams.Sport(args.Sport)
	if args.Sport != "" && !teams.ValidSport(hint) {
		return nil, &Error{
			Code:    ErrInvalidInput,
			Message: fmt.Sprintf("unknown sport %q: expected basketball, football, or hockey", args.Sport),
		}
	}

	fav, err := e.resolve(args.TeamFavorite, hint)
	if err != nil {
		return nil, err
	}
	dog, err := e.resolve(args.TeamUnderdog, hint)
	if err != nil {
		return nil, err
	}
	if fav.Team == dog.Team {
		return nil, &Error{
			Code:    ErrInvalidInput,
			Message: "favorite and underdog both resolved to " + fav.Team.Name,
		}
	}
	if fav.Sport != dog.Sport {
		return nil, &Error{
			Code: ErrInvalidInput,
			Message: fmt.Sprintf("%s is a %s team but %s is a %s team; pass a sport to disambiguate",
				fav.Team.Name, fav.Sport, dog.Team.Name, dog.Sport),
		}
	}
	sport := fav.Sport

	if err := model.ValidateSpread(*args.Spread); err != nil {
		return nil, &Error{Code: ErrInvalidInput, Message: err.Error()}
	}

	margin, err := e.predictMargin(sport, fav.Team, dog.Team)
	if err != nil {
		return nil, err
	}

	sigma, err := model.SigmaForSport(sport)
	if err != nil {
		return nil, &Error{Code: ErrInvalidInput, Message: err.Error()}
	}
	favPct, err := model.CoverProbability(margin, *args.Spread, sigma)
	if err != nil {
		return nil, &Error{Code: ErrInvalidInput, Message: err.Error()}
	}

	out := &SpreadAnalysis{
		Sport:       sport,
		Favorite:    fav.Team,
		Underdog:    dog.Team,
		Spread:      *args.Spread,
		Probability: model.NewProbabilityResult(favPct, margin, sigma),
	}

	out.Odds, out.Kelly, err = e.stake(favPct, args.Staking)
	if err != nil {
		return nil, err
	}

	slog.Debug("spread analysis complete",
		"favorite", fav.Team.Name, "underdog", dog.Team.Name,
		"spread", *args.Spread, "margin", margin, "cover_pct", favPct)
	return out, nil
}

// TotalAnalysis is the result of a hockey over/under request.
type TotalAnalysis struct {
	TeamA            *teams.TeamInfo        `json:"team_a"`
	TeamB            *teams.TeamInfo        `json:"team_b"`
	Line             float64                `json:"line"`
	Projection       *model.TotalProjection `json:"projection"`
	OverProbability  float64                `json:"over_probability"`
	UnderProbability float64                `json:"under_probability"`
	Odds             int                    `json:"odds"`
	Kelly            analysis.KellyResult   `json:"kelly"`
}

// AnalyzeHockeyTotal runs the total-goals pipeline: resolve both teams in the
// hockey partition, project the combined score, and price the over.
func (e *Engine) AnalyzeHockeyTotal(raw any) (*TotalAnalysis, error) {
	args, missing := normalize.TotalRequest(raw)
	if len(missing) > 0 {
		return nil, invalidInput(missing)
	}

	a, err := e.resolve(args.TeamA, teams.Hockey)
	if err != nil {
		return nil, err
	}
	b, err := e.resolve(args.TeamB, teams.Hockey)
	if err != nil {
		return nil, err
	}
	if a.Team == b.Team {
		return nil, &Error{Code: ErrInvalidInput, Message: "both teams resolved to " + a.Team.Name}
	}

	statsA, ok := e.provider.Hockey(a.Team.Name)
	if !ok {
		return nil, noStats(a.Team.Name)
	}
	statsB, ok := e.provider.Hockey(b.Team.Name)
	if !ok {
		return nil, noStats(b.Team.Name)
	}

	proj, err := model.HockeyTotal(statsA, statsB)
	if err != nil {
		return nil, wrapModelErr(err)
	}
	overPct, err := proj.OverProbability(*args.Line)
	if err != nil {
		return nil, &Error{Code: ErrInvalidInput, Message: err.Error()}
	}

	out := &TotalAnalysis{
		TeamA:            a.Team,
		TeamB:            b.Team,
		Line:             *args.Line,
		Projection:       proj,
		OverProbability:  mathutil.Round2(overPct / 100.0),
		UnderProbability: mathutil.Round2(1.00 - mathutil.Round2(overPct/100.0)),
	}
	out.Odds, out.Kelly, err = e.stake(overPct, args.Staking)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TextAnalysis is the result of a free-text request: what was understood and
// the spread analysis it produced. The probability and stake are for the
// picked team's side of the line.
type TextAnalysis struct {
	Parsed               *parse.Result        `json:"parsed"`
	Analysis             *SpreadAnalysis      `json:"analysis"`
	PickCoverProbability float64              `json:"pick_cover_probability"`
	Kelly                analysis.KellyResult `json:"kelly"`
}

// AnalyzeText parses a natural-language betting request and runs the spread
// pipeline on what it extracted. Odds default to the configured value
// (conventionally -110) when the text carries none.
func (e *Engine) AnalyzeText(text string) (*TextAnalysis, error) {
	parsed, err := parse.MatchupRequest(text)
	if err != nil {
		var perr *parse.Error
		if errors.As(err, &perr) {
			return nil, &Error{
				Code:                ErrParseFailure,
				Message:             perr.Error(),
				ClarificationNeeded: perr.ClarificationNeeded,
			}
		}
		return nil, err
	}
	if parsed.Sport == teams.Hockey {
		return nil, &Error{
			Code:    ErrInvalidInput,
			Message: "hockey requests use the total-goals model; supply team_a, team_b, and a goal line",
		}
	}

	// Reorient to favorite/underdog: the parsed spread is from the pick's
	// perspective, so a negative spread makes the pick the favorite.
	fav, dog := parsed.Pick, parsed.Opponent
	if parsed.Spread > 0 {
		fav, dog = parsed.Opponent, parsed.Pick
	}
	favSpread := -absFloat(parsed.Spread)

	margin, err := e.predictMargin(parsed.Sport, fav, dog)
	if err != nil {
		return nil, err
	}
	sigma, err := model.SigmaForSport(parsed.Sport)
	if err != nil {
		return nil, &Error{Code: ErrInvalidInput, Message: err.Error()}
	}
	favPct, err := model.CoverProbability(margin, favSpread, sigma)
	if err != nil {
		return nil, &Error{Code: ErrInvalidInput, Message: err.Error()}
	}

	spread := &SpreadAnalysis{
		Sport:       parsed.Sport,
		Favorite:    fav,
		Underdog:    dog,
		Spread:      favSpread,
		Probability: model.NewProbabilityResult(favPct, margin, sigma),
	}

	pickPct := favPct
	if parsed.Pick != fav {
		pickPct = 100.0 - favPct
	}

	staking := normalize.StakingArgs{}
	if parsed.Odds != nil {
		o := float64(*parsed.Odds)
		staking.Odds = &o
	}
	oddsUsed, kelly, err := e.stake(pickPct, staking)
	if err != nil {
		return nil, err
	}
	spread.Odds = oddsUsed
	spread.Kelly = kelly

	return &TextAnalysis{
		Parsed:               parsed,
		Analysis:             spread,
		PickCoverProbability: mathutil.Round2(pickPct / 100.0),
		Kelly:                kelly,
	}, nil
}

// resolve wraps team resolution failures into the typed taxonomy.
func (e *Engine) resolve(text string, hint teams.Sport) (*teams.Resolution, error) {
	r, err := teams.Resolve(text, hint)
	if err != nil {
		var nf *teams.NotFoundError
		if errors.As(err, &nf) {
			return nil, &Error{
				Code:        ErrTeamNotFound,
				Message:     nf.Error(),
				Suggestions: nf.Suggestions,
			}
		}
		return nil, err
	}
	return r, nil
}

// predictMargin looks up both teams' stats and runs the sport's margin model.
func (e *Engine) predictMargin(sport teams.Sport, fav, dog *teams.TeamInfo) (float64, error) {
	switch sport {
	case teams.Basketball:
		favStats, ok := e.provider.Basketball(fav.Name)
		if !ok {
			return 0, noStats(fav.Name)
		}
		dogStats, ok := e.provider.Basketball(dog.Name)
		if !ok {
			return 0, noStats(dog.Name)
		}
		m, err := model.BasketballMargin(favStats, dogStats)
		if err != nil {
			return 0, wrapModelErr(err)
		}
		return m, nil

	case teams.Football:
		favStats, ok := e.provider.Football(fav.Name)
		if !ok {
			return 0, noStats(fav.Name)
		}
		dogStats, ok := e.provider.Football(dog.Name)
		if !ok {
			return 0, noStats(dog.Name)
		}
		m, err := model.FootballMargin(favStats, dogStats)
		if err != nil {
			return 0, wrapModelErr(err)
		}
		return m, nil
	}
	return 0, &Error{
		Code:    ErrInvalidInput,
		Message: fmt.Sprintf("no margin model for sport %q", sport),
	}
}

// stake applies the configured staking defaults, overridden by any request
// fields, and runs the Kelly calculator on the given win probability.
func (e *Engine) stake(probabilityPercent float64, args normalize.StakingArgs) (int, analysis.KellyResult, error) {
	bankroll := e.cfg.Bankroll
	if args.Bankroll != nil {
		bankroll = *args.Bankroll
	}
	oddsUsed := e.cfg.DefaultOdds
	if args.Odds != nil {
		oddsUsed = int(*args.Odds)
	}
	fraction := e.cfg.KellyFraction
	if args.Fraction != nil {
		fraction = *args.Fraction
	}

	kelly, err := analysis.CalculateKellyStake(bankroll, probabilityPercent, oddsUsed, fraction)
	if err != nil {
		return 0, analysis.KellyResult{}, &Error{Code: ErrInvalidInput, Message: err.Error()}
	}
	return oddsUsed, kelly, nil
}

func noStats(team string) *Error {
	return &Error{
		Code:    ErrInsufficientData,
		Message: "no stats available for " + team,
	}
}

func wrapModelErr(err error) error {
	var ins *model.InsufficientDataError
	if errors.As(err, &ins) {
		return &Error{
			Code:         ErrInsufficientData,
			Message:      ins.Error(),
			MissingStats: ins.Missing,
		}
	}
	return err
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
