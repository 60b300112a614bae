package widget

import (
	"github.com/diogo/cricketai/internal/models"
)

// Control is an action-tagged control on the display surface.
type Control struct {
	// Name identifies the control in the binding registry
	Name   string
	Action models.QuickActionID
	Label  string
}

// ControlName returns the registry name of the control bound to an action.
func ControlName(id models.QuickActionID) string {
	return "action:" + string(id)
}

// ControlSubmit is the registry name of the chat form's submit handler.
const ControlSubmit = "submit:" + string(models.RegionForm)

// Display is the surface the controller renders into. Implementations may be
// called from any goroutine.
type Display interface {
	// HasRegion reports whether a part of the surface exists. Operations
	// that depend on a missing region only log.
	HasRegion(r models.Region) bool
	// Controls enumerates the action-tagged controls.
	Controls() []Control

	MessageAdded(msg models.ChatMessage)
	InputCleared()
	// SendControlChanged disables (busy) or restores the send control.
	SendControlChanged(busy bool)
	// ActionFeedback briefly marks the control bound to id.
	ActionFeedback(id models.QuickActionID)
	// FieldUpdated writes a value into a target and briefly highlights it.
	FieldUpdated(f models.Field, value string)
	// MatchesReplaced rebuilds the match list from scratch.
	MatchesReplaced(matches []models.Match)
}

// NopDisplay has no regions; every render degrades to logging.
type NopDisplay struct{}

var _ Display = NopDisplay{}

func (NopDisplay) HasRegion(models.Region) bool        { return false }
func (NopDisplay) Controls() []Control                 { return nil }
func (NopDisplay) MessageAdded(models.ChatMessage)     {}
func (NopDisplay) InputCleared()                       {}
func (NopDisplay) SendControlChanged(bool)             {}
func (NopDisplay) ActionFeedback(models.QuickActionID) {}
func (NopDisplay) FieldUpdated(models.Field, string)   {}
func (NopDisplay) MatchesReplaced([]models.Match)      {}
