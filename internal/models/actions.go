package models

// QuickActionID names a predefined backend query triggered by a single control.
type QuickActionID string

const (
	ActionBestTeam          QuickActionID = "best-team"
	ActionDifferentialPicks QuickActionID = "differential-picks"
	ActionCaptainOptions    QuickActionID = "captain-options"
	ActionBudgetPicks       QuickActionID = "budget-picks"
	ActionFantasyTips       QuickActionID = "fantasy-tips"
)

// QuickAction is a control bound to an action id, with its display label.
type QuickAction struct {
	ID    QuickActionID
	Label string
}

// DefaultQuickActions returns the controls in display order.
func DefaultQuickActions() []QuickAction {
	return []QuickAction{
		{ID: ActionBestTeam, Label: "Best Team"},
		{ID: ActionDifferentialPicks, Label: "Differential Picks"},
		{ID: ActionCaptainOptions, Label: "Captain Options"},
		{ID: ActionBudgetPicks, Label: "Budget Picks"},
		{ID: ActionFantasyTips, Label: "Fantasy Tips"},
	}
}

// QuickActionByID looks up a default control by id.
func QuickActionByID(id string) (QuickAction, bool) {
	for _, a := range DefaultQuickActions() {
		if string(a.ID) == id {
			return a, true
		}
	}
	return QuickAction{}, false
}

// TeamPick is one record of the best-team payload
type TeamPick struct {
	Name   string
	Team   string
	Role   string
	Price  string
	Form   string
	Reason string
}

// DifferentialPick is one record of the differential-picks payload
type DifferentialPick struct {
	Name      string
	Team      string
	Ownership string
	Price     string
	Potential string
	Reason    string
}

// CaptainOption is one record of the captain-options payload
type CaptainOption struct {
	Name        string
	Team        string
	Captaincy   string
	Consistency string
	Reason      string
}

// BudgetPick is one record of the budget-picks payload
type BudgetPick struct {
	Name       string
	Team       string
	Role       string
	Price      string
	ValueScore string
}

// FantasyTips is the fantasy-tips payload
type FantasyTips struct {
	Tips []string
}
