package forms

import (
	"context"

	"futsim-api/packages/core/models"
)

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationFailure NotificationKind = "failure"
)

// Notification is the short-lived message shown after a form action.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
}

const (
	msgTeamAdded   = "Team added"
	msgTeamUpdated = "Team updated"
	msgTeamDeleted = "Team deleted"
	msgInvalidForm = "Fill in every field correctly."
)

// TeamStore is what the editor needs from the persistence layer.
type TeamStore interface {
	Create(ctx context.Context, championshipID uint, in TeamInput) (*models.Team, error)
	Update(ctx context.Context, team models.Team, in TeamInput) (*models.Team, error)
	Delete(ctx context.Context, team models.Team) error
}

// Editor holds the add/edit dialog state of one table screen: the form
// text and the team currently selected for editing or deletion.
type Editor struct {
	ChampionshipID uint
	Form           TeamForm
	Selected       *models.Team

	store TeamStore
}

func NewEditor(championshipID uint, store TeamStore) *Editor {
	return &Editor{ChampionshipID: championshipID, store: store}
}

// Select marks t for editing and loads its values into the form.
func (e *Editor) Select(t models.Team) {
	e.Selected = &t
	e.Form = FromTeam(t)
}

func (e *Editor) Clear() {
	e.Form = TeamForm{}
	e.Selected = nil
}

// Submit validates the form and inserts a new team, or updates the
// selected one. On a validation failure nothing is written and the form and
// selection are kept so the user can correct them. A store error is
// returned as is, with the editor state untouched.
func (e *Editor) Submit(ctx context.Context) (*models.Team, Notification, error) {
	in, err := e.Form.Parse()
	if err != nil {
		return nil, Notification{Kind: NotificationFailure, Message: msgInvalidForm}, err
	}

	var (
		team *models.Team
		msg  string
	)
	if e.Selected == nil {
		team, err = e.store.Create(ctx, e.ChampionshipID, in)
		msg = msgTeamAdded
	} else {
		team, err = e.store.Update(ctx, *e.Selected, in)
		msg = msgTeamUpdated
	}
	if err != nil {
		return nil, Notification{}, err
	}

	e.Clear()
	return team, Notification{Kind: NotificationSuccess, Message: msg}, nil
}

// ConfirmDelete deletes the selected team.
func (e *Editor) ConfirmDelete(ctx context.Context) (Notification, error) {
	if e.Selected == nil {
		return Notification{}, ErrNothingSelected
	}
	if err := e.store.Delete(ctx, *e.Selected); err != nil {
		return Notification{}, err
	}
	e.Clear()
	return Notification{Kind: NotificationSuccess, Message: msgTeamDeleted}, nil
}

// FirstByName returns the first team in slice order whose name equals name.
func FirstByName(teams []models.Team, name string) (models.Team, bool) {
	for _, t := range teams {
		if t.Name == name {
			return t, true
		}
	}
	return models.Team{}, false
}
