package api

import (
	"context"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/diogo/cricketai/internal/models"
)

// QuickActionReply is the /quick-actions/{id} answer. Data keeps the raw
// payload because its shape depends on the action id.
type QuickActionReply struct {
	Data   models.Opt[gjson.Result]
	Error  models.Opt[string]
	Status int
}

// QuickAction runs one predefined backend query.
func (c *Client) QuickAction(ctx context.Context, id models.QuickActionID) (*QuickActionReply, error) {
	body, status, err := c.get(ctx, models.PathQuickActions+url.PathEscape(string(id)))
	if err != nil {
		return nil, err
	}

	reply := &QuickActionReply{
		Error:  optTruthyString(body.Get(PathError)),
		Status: status,
	}
	if data := body.Get(PathData); truthy(data) {
		reply.Data = models.Some(data)
	}
	return reply, nil
}

// DecodeTeamPicks reads the best-team payload. A non-array payload yields no records.
func DecodeTeamPicks(data gjson.Result) []models.TeamPick {
	var picks []models.TeamPick
	for _, r := range records(data) {
		picks = append(picks, models.TeamPick{
			Name:   r.Get("name").String(),
			Team:   r.Get("team").String(),
			Role:   r.Get("role").String(),
			Price:  r.Get("price").String(),
			Form:   r.Get("form").String(),
			Reason: r.Get("reason").String(),
		})
	}
	return picks
}

// DecodeDifferentialPicks reads the differential-picks payload
func DecodeDifferentialPicks(data gjson.Result) []models.DifferentialPick {
	var picks []models.DifferentialPick
	for _, r := range records(data) {
		picks = append(picks, models.DifferentialPick{
			Name:      r.Get("name").String(),
			Team:      r.Get("team").String(),
			Ownership: r.Get("ownership").String(),
			Price:     r.Get("price").String(),
			Potential: r.Get("potential").String(),
			Reason:    r.Get("reason").String(),
		})
	}
	return picks
}

// DecodeCaptainOptions reads the captain-options payload
func DecodeCaptainOptions(data gjson.Result) []models.CaptainOption {
	var options []models.CaptainOption
	for _, r := range records(data) {
		options = append(options, models.CaptainOption{
			Name:        r.Get("name").String(),
			Team:        r.Get("team").String(),
			Captaincy:   r.Get("captaincy").String(),
			Consistency: r.Get("consistency").String(),
			Reason:      r.Get("reason").String(),
		})
	}
	return options
}

// DecodeBudgetPicks reads the budget-picks payload
func DecodeBudgetPicks(data gjson.Result) []models.BudgetPick {
	var picks []models.BudgetPick
	for _, r := range records(data) {
		picks = append(picks, models.BudgetPick{
			Name:       r.Get("name").String(),
			Team:       r.Get("team").String(),
			Role:       r.Get("role").String(),
			Price:      r.Get("price").String(),
			ValueScore: r.Get("value_score").String(),
		})
	}
	return picks
}

// DecodeFantasyTips reads the fantasy-tips payload; a missing tips list is empty.
func DecodeFantasyTips(data gjson.Result) models.FantasyTips {
	var tips models.FantasyTips
	for _, t := range records(data.Get(PathTips)) {
		tips.Tips = append(tips.Tips, t.String())
	}
	return tips
}

func records(data gjson.Result) []gjson.Result {
	if !data.IsArray() {
		return nil
	}
	return data.Array()
}
