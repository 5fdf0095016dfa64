// Package navigation describes the screens of the app as typed routes.
package navigation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownRoute      = errors.New("unknown route")
	ErrInvalidRouteParam = errors.New("invalid championship id in route")
)

// Route is one screen. The set of implementations is closed.
type Route interface {
	Path() string
	route()
}

type Home struct{}

type Championships struct{}

type CreateChampionship struct{}

// GroupStages lists the group stage championships to pick one from.
type GroupStages struct{}

type GroupStage struct {
	ChampionshipID uint
}

type RoundRobin struct {
	ChampionshipID uint
}

type Knockout struct {
	ChampionshipID uint
}

func (Home) Path() string               { return "home" }
func (Championships) Path() string      { return "championships" }
func (CreateChampionship) Path() string { return "championships/new" }
func (GroupStages) Path() string        { return "groups" }
func (r GroupStage) Path() string       { return fmt.Sprintf("group/%d", r.ChampionshipID) }
func (r RoundRobin) Path() string       { return fmt.Sprintf("round-robin/%d", r.ChampionshipID) }
func (r Knockout) Path() string         { return fmt.Sprintf("knockout/%d", r.ChampionshipID) }

func (Home) route()               {}
func (Championships) route()      {}
func (CreateChampionship) route() {}
func (GroupStages) route()        {}
func (GroupStage) route()         {}
func (RoundRobin) route()         {}
func (Knockout) route()           {}

// ChampionshipID returns the id carried by r, if any.
func ChampionshipID(r Route) (uint, bool) {
	switch v := r.(type) {
	case GroupStage:
		return v.ChampionshipID, true
	case RoundRobin:
		return v.ChampionshipID, true
	case Knockout:
		return v.ChampionshipID, true
	}
	return 0, false
}

var fixed = map[string]Route{
	"":                  Home{},
	"home":              Home{},
	"championships":     Championships{},
	"championships/new": CreateChampionship{},
	"groups":            GroupStages{},
	// legacy names
	"tela_Inicial":     Home{},
	"tela_CampCriados": Championships{},
	"tela_CriandoCamp": CreateChampionship{},
	"tela_FaseGrupos":  GroupStages{},
}

var withID = map[string]func(uint) Route{
	"group":       func(id uint) Route { return GroupStage{ChampionshipID: id} },
	"round-robin": func(id uint) Route { return RoundRobin{ChampionshipID: id} },
	"knockout":    func(id uint) Route { return Knockout{ChampionshipID: id} },
	// legacy names
	"groupRoute":          func(id uint) Route { return GroupStage{ChampionshipID: id} },
	"roundRobinRoute":     func(id uint) Route { return RoundRobin{ChampionshipID: id} },
	"tela_FaseGrupos":     func(id uint) Route { return GroupStage{ChampionshipID: id} },
	"tela_PontosCorridos": func(id uint) Route { return RoundRobin{ChampionshipID: id} },
	"tela_MataMata":       func(id uint) Route { return Knockout{ChampionshipID: id} },
}

// Parse turns a path such as "round-robin/12" or "roundRobinRoute/12" into
// a Route. Screens that need a championship reject a missing or
// non-numeric id with ErrInvalidRouteParam.
func Parse(path string) (Route, error) {
	path = strings.Trim(path, "/")

	if r, ok := fixed[path]; ok {
		return r, nil
	}

	name, param, _ := strings.Cut(path, "/")
	build, ok := withID[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoute, path)
	}

	id, err := strconv.ParseUint(param, 10, 32)
	if err != nil || id == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRouteParam, path)
	}
	return build(uint(id)), nil
}
