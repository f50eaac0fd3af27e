package catalog

import (
	"time"

	"cityassist/internal/models"
)

// Built-in assistant catalogs. These are read-only: they are never
// persisted, and edit/delete operations on them are ignored at the
// controller boundary.

func builtinTime(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// Recommended returns the city-curated assistant personas.
func Recommended() []models.Assistant {
	return []models.Assistant{
		{
			ID:               "rec-buergerservice",
			Name:             "Bürgerservice Guide",
			Description:      "Answers questions about citizen services, opening hours, required documents and appointment booking.",
			Icon:             "🏛️",
			SystemPrompt:     "You are a friendly guide for the city's citizen services. Answer questions about registration, passports, and appointments clearly and point to the responsible office.",
			ResponseBehavior: models.BehaviorPrecise,
			AllowedTools:     []string{string(models.ToolSearch), string(models.ToolWebBrowser)},
			CreatedBy:        models.CreatedBySystem,
			IsPublic:         true,
			QuickPrompts: []string{
				"Which documents do I need to renew my passport?",
				"How do I register a new address?",
				"Book an appointment at the Bürgerbüro",
			},
			UpdatedAt:         builtinTime("2025-06-12"),
			SubscriptionCount: 1843,
		},
		{
			ID:               "rec-protokoll",
			Name:             "Meeting Minutes Writer",
			Description:      "Turns rough meeting notes into structured minutes with decisions and action items.",
			Icon:             "📝",
			SystemPrompt:     "You write concise meeting minutes for municipal committees. Structure output into attendees, discussion, decisions and action items.",
			ResponseBehavior: models.BehaviorBalanced,
			AllowedTools:     []string{string(models.ToolFileUpload)},
			CreatedBy:        models.CreatedBySystem,
			IsPublic:         true,
			QuickPrompts: []string{
				"Summarize these notes into formal minutes",
				"Extract all action items with owners",
			},
			UpdatedAt:         builtinTime("2025-05-28"),
			SubscriptionCount: 921,
		},
		{
			ID:               "rec-amtsdeutsch",
			Name:             "Plain Language Editor",
			Description:      "Rewrites administrative German into plain, citizen-friendly language.",
			Icon:             "✍️",
			SystemPrompt:     "You rewrite bureaucratic text into plain language while preserving legal meaning. Offer a short and a detailed variant.",
			ResponseBehavior: models.BehaviorCreative,
			AllowedTools:     []string{},
			CreatedBy:        models.CreatedBySystem,
			IsPublic:         true,
			QuickPrompts: []string{
				"Simplify this official letter",
				"Explain this form in simple words",
			},
			UpdatedAt:         builtinTime("2025-07-03"),
			SubscriptionCount: 1290,
		},
		{
			ID:               "rec-data",
			Name:             "Data Analyst",
			Description:      "Helps analyze municipal statistics, build reports and interpret open data sets.",
			Icon:             "📊",
			SystemPrompt:     "You are a data analyst for city departments. Help interpret statistics, suggest visualizations and draft report sections.",
			ResponseBehavior: models.BehaviorPrecise,
			AllowedTools:     []string{string(models.ToolDataAnalysis), string(models.ToolCodeInterpreter)},
			CreatedBy:        models.CreatedBySystem,
			IsPublic:         true,
			QuickPrompts: []string{
				"Explain this population statistic",
				"Draft a chart description for my report",
			},
			UpdatedAt:         builtinTime("2025-04-17"),
			SubscriptionCount: 567,
		},
	}
}

// Community returns assistants shared by other departments.
func Community() []models.Assistant {
	return []models.Assistant{
		{
			ID:               "com-sap",
			Name:             "SAP Helpdesk",
			Description:      "First-level support for the city's SAP systems: transactions, roles and common errors.",
			Icon:             "💼",
			SystemPrompt:     "You provide first-level SAP support for municipal staff. Ask for the transaction code and error message before proposing solutions.",
			ResponseBehavior: models.BehaviorPrecise,
			AllowedTools:     []string{string(models.ToolSearch)},
			CreatedBy:        models.CreatedBySystem,
			IsPublic:         true,
			PublishedDepartments: []string{"rit-apps-sap"},
			QuickPrompts: []string{
				"I can't post an invoice in FI",
				"Request a new SAP role",
			},
			UpdatedAt:         builtinTime("2025-03-09"),
			SubscriptionCount: 438,
		},
		{
			ID:               "com-onboarding",
			Name:             "Onboarding Buddy",
			Description:      "Guides new employees through their first weeks: accounts, equipment, training.",
			Icon:             "🎓",
			SystemPrompt:     "You help new municipal employees get productive. Answer questions about accounts, equipment and mandatory trainings.",
			ResponseBehavior: models.BehaviorBalanced,
			AllowedTools:     []string{string(models.ToolSearch), string(models.ToolFileUpload)},
			CreatedBy:        models.CreatedBySystem,
			IsPublic:         true,
			PublishedDepartments: []string{"rit-infra-workplace"},
			QuickPrompts: []string{
				"How do I get VPN access?",
				"Which trainings are mandatory in my first month?",
			},
			UpdatedAt:         builtinTime("2025-02-21"),
			SubscriptionCount: 312,
		},
		{
			ID:               "com-gruen",
			Name:             "Green Spaces FAQ",
			Description:      "Answers questions about parks, tree maintenance and allotment gardens.",
			Icon:             "🌳",
			SystemPrompt:     "You answer citizen and staff questions about the city's parks and green spaces, including responsibilities and reporting channels.",
			ResponseBehavior: models.BehaviorBalanced,
			AllowedTools:     []string{string(models.ToolWebBrowser)},
			CreatedBy:        models.CreatedBySystem,
			IsPublic:         true,
			QuickPrompts: []string{
				"Who maintains the trees on my street?",
				"How do I apply for an allotment garden?",
			},
			UpdatedAt:         builtinTime("2025-01-30"),
			SubscriptionCount: 188,
		},
	}
}
