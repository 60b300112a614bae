// Package models contains data types and constants for the fantasy-cricket backend.
package models

import "time"

// DefaultBaseURL is the backend the widget talks to unless configured otherwise.
const DefaultBaseURL = "http://localhost:5000/api"

// Endpoint paths, relative to the base URL
const (
	PathChat          = "/chat"
	PathQuickActions  = "/quick-actions/"
	PathLiveStats     = "/live-stats"
	PathMatchAnalysis = "/match-analysis"
	PathMatches       = "/matches"
	PathHealth        = "/health"
)

// DefaultRefreshInterval is the period of the live data refresh.
const DefaultRefreshInterval = 30 * time.Second

// Fixed user-facing strings
const (
	WelcomeMessage = "Hello! I'm your IPL Fantasy Cricket expert! 🏏 Ask me about live matches, player recommendations, or team strategies!"

	ChatFallbackMessage = "Sorry, I had trouble understanding that. Can you try asking about IPL matches or players?"

	// ChatConnectionErrorFormat takes the backend host, e.g. http://localhost:5000
	ChatConnectionErrorFormat = "❌ Connection error! Make sure your backend is running on %s"

	QuickActionConnectionError = "❌ Connection error! Make sure your backend is running."

	// QuickActionPendingFormat takes the lowercased control label
	QuickActionPendingFormat = "⏳ Getting %s..."

	// QuickActionMissingFormat takes the lowercased control label
	QuickActionMissingFormat = "❌ Sorry, couldn't get %s right now."

	QuickActionGenericReply = "✅ Here's your requested information!"
)
