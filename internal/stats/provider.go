// Package stats supplies team-performance snapshots to the margin models.
// Tables are loaded once (CSV files refreshed out-of-band) and are read-only
// afterwards, so lookups are safe from any goroutine.
package stats

import (
	"bet-advisor/internal/model"
	"bet-advisor/internal/teams"
)

// Provider looks up a team's season snapshot by canonical name or alias.
// A false return means the team has no row loaded, which callers must treat
// as insufficient data, never as zeroes.
type Provider interface {
	Basketball(team string) (model.BasketballStats, bool)
	Football(team string) (model.FootballStats, bool)
	Hockey(team string) (model.HockeyStats, bool)
}

// StaticProvider is an in-memory Provider, used in tests and anywhere the
// stats are assembled programmatically.
type StaticProvider struct {
	BasketballStats map[string]model.BasketballStats
	FootballStats   map[string]model.FootballStats
	HockeyStats     map[string]model.HockeyStats
}

// NewStaticProvider returns an empty provider ready for Put calls.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		BasketballStats: make(map[string]model.BasketballStats),
		FootballStats:   make(map[string]model.FootballStats),
		HockeyStats:     make(map[string]model.HockeyStats),
	}
}

// PutBasketball registers a basketball snapshot under its team name.
func (p *StaticProvider) PutBasketball(s model.BasketballStats) {
	p.BasketballStats[teams.Normalize(s.Team)] = s
}

// PutFootball registers a football snapshot under its team name.
func (p *StaticProvider) PutFootball(s model.FootballStats) {
	p.FootballStats[teams.Normalize(s.Team)] = s
}

// PutHockey registers a hockey snapshot under its team name.
func (p *StaticProvider) PutHockey(s model.HockeyStats) {
	p.HockeyStats[teams.Normalize(s.Team)] = s
}

func (p *StaticProvider) Basketball(team string) (model.BasketballStats, bool) {
	s, ok := p.BasketballStats[teams.Normalize(team)]
	return s, ok
}

func (p *StaticProvider) Football(team string) (model.FootballStats, bool) {
	s, ok := p.FootballStats[teams.Normalize(team)]
	return s, ok
}

func (p *StaticProvider) Hockey(team string) (model.HockeyStats, bool) {
	s, ok := p.HockeyStats[teams.Normalize(team)]
	return s, ok
}
