package widget

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/diogo/cricketai/internal/api"
	"github.com/diogo/cricketai/internal/models"
)

// maxListed caps the best-team and fantasy-tips listings.
const maxListed = 6

// FormatQuickAction renders a quick-action payload as chat text.
func FormatQuickAction(id models.QuickActionID, data gjson.Result) string {
	switch id {
	case models.ActionBestTeam:
		return FormatBestTeam(api.DecodeTeamPicks(data))
	case models.ActionDifferentialPicks:
		return FormatDifferentialPicks(api.DecodeDifferentialPicks(data))
	case models.ActionCaptainOptions:
		return FormatCaptainOptions(api.DecodeCaptainOptions(data))
	case models.ActionBudgetPicks:
		return FormatBudgetPicks(api.DecodeBudgetPicks(data))
	case models.ActionFantasyTips:
		return FormatFantasyTips(api.DecodeFantasyTips(data))
	default:
		return models.QuickActionGenericReply
	}
}

// FormatBestTeam lists at most six picks.
func FormatBestTeam(picks []models.TeamPick) string {
	var b strings.Builder
	b.WriteString("🏏 **Best IPL Team for Today:**\n\n")
	for i, p := range first(picks, maxListed) {
		fmt.Fprintf(&b, "%d. **%s** (%s) - %s\n", i+1, p.Name, p.Team, p.Role)
		// the best-team endpoint sends form as "85%", shown as "85%%"; a bare 85 shows as "85%"
		fmt.Fprintf(&b, "   💰 Price: %s | 📈 Form: %s%%\n", p.Price, p.Form)
		fmt.Fprintf(&b, "   📝 %s\n\n", p.Reason)
	}
	return b.String()
}

func FormatDifferentialPicks(picks []models.DifferentialPick) string {
	var b strings.Builder
	b.WriteString("🎯 **IPL Differential Picks:**\n\n")
	for i, p := range picks {
		fmt.Fprintf(&b, "%d. **%s** (%s) - %s owned\n", i+1, p.Name, p.Team, p.Ownership)
		fmt.Fprintf(&b, "   💰 Price: %s | ⚡ Potential: %s\n", p.Price, p.Potential)
		fmt.Fprintf(&b, "   📝 %s\n\n", p.Reason)
	}
	return b.String()
}

func FormatCaptainOptions(options []models.CaptainOption) string {
	var b strings.Builder
	b.WriteString("👑 **IPL Captain Options:**\n\n")
	for i, c := range options {
		fmt.Fprintf(&b, "%d. **%s** (%s)\n", i+1, c.Name, c.Team)
		fmt.Fprintf(&b, "   📊 Captain Score: %s | 🎯 Consistency: %s\n", c.Captaincy, c.Consistency)
		fmt.Fprintf(&b, "   📝 %s\n\n", c.Reason)
	}
	return b.String()
}

func FormatBudgetPicks(picks []models.BudgetPick) string {
	var b strings.Builder
	b.WriteString("💰 **IPL Budget Picks:**\n\n")
	for i, p := range picks {
		fmt.Fprintf(&b, "%d. **%s** (%s) - %s\n", i+1, p.Name, p.Team, p.Role)
		fmt.Fprintf(&b, "   💰 Price: %s | 📊 Value: %s\n\n", p.Price, p.ValueScore)
	}
	return b.String()
}

// FormatFantasyTips lists at most six tips.
func FormatFantasyTips(tips models.FantasyTips) string {
	var b strings.Builder
	b.WriteString("💡 **IPL Fantasy Tips:**\n\n")
	for i, tip := range first(tips.Tips, maxListed) {
		fmt.Fprintf(&b, "%d. %s\n\n", i+1, tip)
	}
	return b.String()
}

func first[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// numberPrinter groups digits the way the live panel shows counters.
var numberPrinter = message.NewPrinter(language.English)

// GroupDigits formats n with thousands separators and at most three
// fraction digits, e.g. 18234 -> "18,234", 1234.5 -> "1,234.5".
func GroupDigits(n float64) string {
	return numberPrinter.Sprintf("%v", number.Decimal(n, number.MaxFractionDigits(3)))
}

func grouped(v models.Opt[float64]) models.Opt[string] {
	n, ok := v.Get()
	if !ok {
		return models.None[string]()
	}
	return models.Some(GroupDigits(n))
}

func percent(v models.Opt[string]) models.Opt[string] {
	s, ok := v.Get()
	if !ok {
		return models.None[string]()
	}
	return models.Some(s + "%")
}
