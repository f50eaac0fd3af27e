package catalog

import "cityassist/internal/models"

// Departments returns the static organizational tree assistants can be
// published to. The tree is external reference data; selection state is
// tracked by the editor only.
func Departments() []models.Department {
	return []models.Department{
		{
			ID:   "rit",
			Name: "IT-Referat (RIT)",
			Children: []models.Department{
				{
					ID:   "rit-strat",
					Name: "IT-Strategie & Governance",
					Children: []models.Department{
						{ID: "rit-strat-arch", Name: "Enterprise Architecture"},
						{ID: "rit-strat-sec", Name: "Information Security (CISO)"},
						{ID: "rit-strat-portfolio", Name: "IT-Portfolio Management"},
					},
				},
				{
					ID:   "rit-infra",
					Name: "IT-Infrastruktur",
					Children: []models.Department{
						{
							ID:   "rit-infra-dc",
							Name: "Rechenzentrumsbetrieb",
							Children: []models.Department{
								{ID: "rit-infra-dc-ops", Name: "Server Operations"},
								{ID: "rit-infra-dc-net", Name: "Network Engineering"},
							},
						},
						{
							ID:   "rit-infra-workplace",
							Name: "Digital Workplace",
							Children: []models.Department{
								{ID: "rit-infra-wp-clients", Name: "Client Management"},
								{ID: "rit-infra-wp-collab", Name: "Collaboration Tools"},
							},
						},
					},
				},
				{
					ID:   "rit-apps",
					Name: "Anwendungen & Verfahren",
					Children: []models.Department{
						{ID: "rit-apps-citizen", Name: "Bürgerservices (Online)"},
						{ID: "rit-apps-internal", Name: "Interne Verwaltungsprozesse"},
						{ID: "rit-apps-sap", Name: "SAP Competence Center"},
					},
				},
				{
					ID:   "rit-data",
					Name: "Data & AI",
					Children: []models.Department{
						{ID: "rit-data-lake", Name: "Municipal Data Lake"},
						{ID: "rit-data-ai", Name: "AI Competence Center"},
					},
				},
			},
		},
		{
			ID:   "kvr",
			Name: "Kreisverwaltungsreferat (KVR)",
			Children: []models.Department{
				{
					ID:   "kvr-ha2",
					Name: "HA II - Einwohnerwesen",
					Children: []models.Department{
						{
							ID:   "kvr-buerger",
							Name: "Bürgerbüro",
							Children: []models.Department{
								{ID: "kvr-buerger-pass", Name: "Pass- und Ausweiswesen"},
								{ID: "kvr-buerger-melde", Name: "Meldeangelegenheiten"},
							},
						},
						{
							ID:   "kvr-auslaender",
							Name: "Ausländerangelegenheiten",
							Children: []models.Department{
								{ID: "kvr-auslaender-aufenthalt", Name: "Aufenthaltserlaubnis"},
								{ID: "kvr-auslaender-studenten", Name: "Studierende & Fachkräfte"},
							},
						},
					},
				},
				{
					ID:   "kvr-ha3",
					Name: "HA III - Straßenverkehr",
					Children: []models.Department{
						{
							ID:   "kvr-kfz",
							Name: "Kraftfahrzeugzulassung",
							Children: []models.Department{
								{ID: "kvr-kfz-privat", Name: "Privatkunden"},
								{ID: "kvr-kfz-gewerbe", Name: "Gewerbekunden/Händler"},
							},
						},
						{
							ID:   "kvr-fuehrer",
							Name: "Fahrerlaubnisbehörde",
						},
					},
				},
			},
		},
		{
			ID:   "sor",
			Name: "Sozialreferat (SOR)",
			Children: []models.Department{
				{ID: "sor-wohnen", Name: "Amt für Wohnen und Migration"},
				{ID: "sor-jugend", Name: "Stadtjugendamt"},
				{ID: "sor-soziales", Name: "Amt für Soziale Sicherung"},
			},
		},
	}
}
