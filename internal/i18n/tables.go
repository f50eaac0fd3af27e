package i18n

// Known translation keys. Spanish, French, Italian and Portuguese have no
// tables yet and resolve through the English fallback.
const (
	// Home
	KeyStartConversation Key = "startConversation"
	KeyRecommendedForYou Key = "recommendedForYou"
	KeyDiscoverAll       Key = "discoverAll"

	// Sidebar
	KeyHome            Key = "home"
	KeyAssistants      Key = "assistants"
	KeyNewChat         Key = "newChat"
	KeyChatHistory     Key = "chatHistory"
	KeyDeleteChat      Key = "deleteChat"
	KeyRenameChat      Key = "renameChat"
	KeyNoChatsYet      Key = "noChatsYet"
	KeySecureMode      Key = "secureMode"
	KeyChangeLanguage  Key = "changeLanguage"
	KeyShowVersion     Key = "showVersion"
	KeyShowTerms       Key = "showTerms"
	KeyConfirmDeletion Key = "confirmDeletion"

	// Chat window
	KeyChat                          Key = "chat"
	KeySelectAIModel                 Key = "selectAIModel"
	KeyChooseAIForChat               Key = "chooseAIForChat"
	KeyChatSettings                  Key = "chatSettings"
	KeyCustomizeAIResponses          Key = "customizeAIResponses"
	KeyResponseStyle                 Key = "responseStyle"
	KeyChooseResponseCreativity      Key = "chooseResponseCreativity"
	KeyPrecise                       Key = "precise"
	KeyBalanced                      Key = "balanced"
	KeyCreative                      Key = "creative"
	KeyPreciseDescription            Key = "preciseDescription"
	KeyBalancedDescription           Key = "balancedDescription"
	KeyCreativeDescription           Key = "creativeDescription"
	KeyCustomInstructions            Key = "customInstructions"
	KeyTellAIHowToBehave             Key = "tellAIHowToBehave"
	KeyCustomInstructionsPlaceholder Key = "customInstructionsPlaceholder"
	KeySaveChanges                   Key = "saveChanges"
	KeyCancel                        Key = "cancel"
	KeyReadyToChat                   Key = "readyToChat"
	KeyStartConversationBelow       Key = "startConversationBelow"
	KeyQuickPrompts                  Key = "quickPrompts"
	KeyTypeYourMessage               Key = "typeYourMessage"
	KeySend                          Key = "send"
	KeyReplyFailed                   Key = "replyFailed"

	// Discovery
	KeyDiscoverAssistants  Key = "discoverAssistants"
	KeyBrowseAndUse        Key = "browseAndUse"
	KeyImport              Key = "import"
	KeyCreateNew           Key = "createNew"
	KeySearchAssistants    Key = "searchAssistants"
	KeyAll                 Key = "all"
	KeyRecommended         Key = "recommended"
	KeyYours               Key = "yours"
	KeyFavorites           Key = "favorites"
	KeyNoAssistantsFound   Key = "noAssistantsFound"
	KeyTryAdjusting        Key = "tryAdjusting"
	KeyStartChat           Key = "startChat"
	KeyEdit                Key = "edit"
	KeyDeleteAssistant     Key = "deleteAssistant"
	KeyAddToFavorites      Key = "addToFavorites"
	KeyRemoveFromFavorites Key = "removeFromFavorites"
	KeySortSubscriptions   Key = "sortSubscriptions"
	KeySortTitle           Key = "sortTitle"
	KeySortUpdated         Key = "sortUpdated"
	KeyImported            Key = "imported"
	KeyImportFailed        Key = "importFailed"
	KeyExported            Key = "exported"
	KeyExportFailed        Key = "exportFailed"

	// Editor
	KeyEditAssistantTitle     Key = "editAssistantTitle"
	KeyCreateNewAssistant     Key = "createNewAssistant"
	KeyBasicInformation       Key = "basicInformation"
	KeyIcon                   Key = "icon"
	KeyName                   Key = "name"
	KeyNamePlaceholder        Key = "namePlaceholder"
	KeyDescriptionLabel       Key = "descriptionLabel"
	KeyDescriptionPlaceholder Key = "descriptionPlaceholder"
	KeySystemPromptLabel      Key = "systemPromptLabel"
	KeyGenerateWithAI         Key = "generateWithAI"
	KeyGenerating             Key = "generating"
	KeyAddDescriptionFirst    Key = "addDescriptionFirst"
	KeyResponseBehavior       Key = "responseBehavior"
	KeyAllowedTools           Key = "allowedTools"
	KeyQuickPromptsLabel      Key = "quickPromptsLabel"
	KeyPublishDepartments     Key = "publishDepartments"
	KeySave                   Key = "save"
	KeyExport                 Key = "export"
	KeyFillRequiredFields     Key = "fillRequiredFields"

	// Modals
	KeyTermsTitle              Key = "termsTitle"
	KeyTermsBody               Key = "termsBody"
	KeyAcceptTerms             Key = "acceptTerms"
	KeyClose                   Key = "close"
	KeySecureIntroTitle        Key = "secureIntroTitle"
	KeySecureIntroSubtitle     Key = "secureIntroSubtitle"
	KeySecureIntroPrivacy      Key = "secureIntroPrivacy"
	KeySecureIntroPrivacyBody  Key = "secureIntroPrivacyBody"
	KeySecureIntroModels       Key = "secureIntroModels"
	KeySecureIntroModelsBody   Key = "secureIntroModelsBody"
	KeySecureIntroConfirm      Key = "secureIntroConfirm"

	// Version notes
	KeyVersionNotes Key = "versionNotes"
	KeyBack         Key = "back"

	// Simulated replies. These are format strings; the structured
	// parameters (assistant name, description, behavior label) are the
	// only assumptions the reply generator may make.
	KeySimulatedGreeting      Key = "simulatedGreeting"
	KeySimulatedGreetingNamed Key = "simulatedGreetingNamed"
	KeySimulatedReply         Key = "simulatedReply"
	KeyTheAssistant           Key = "theAssistant"
)

var translations = map[Language]map[Key]string{
	English: {
		KeyStartConversation: "Start a conversation...",
		KeyRecommendedForYou: "Recommended for you",
		KeyDiscoverAll:       "Discover all",

		KeyHome:            "Home",
		KeyAssistants:      "Assistants",
		KeyNewChat:         "New Chat",
		KeyChatHistory:     "Chat History",
		KeyDeleteChat:      "Delete Chat",
		KeyRenameChat:      "Rename Chat",
		KeyNoChatsYet:      "No chats yet",
		KeySecureMode:      "Secure Mode",
		KeyChangeLanguage:  "Change language",
		KeyShowVersion:     "Version notes",
		KeyShowTerms:       "Terms of Use",
		KeyConfirmDeletion: "Press again to delete",

		KeyChat:                          "Chat",
		KeySelectAIModel:                 "Select AI Model",
		KeyChooseAIForChat:               "Choose AI for this chat",
		KeyChatSettings:                  "Chat Settings",
		KeyCustomizeAIResponses:          "Customize AI responses for this chat",
		KeyResponseStyle:                 "Response Style",
		KeyChooseResponseCreativity:      "Choose how creative or focused the responses should be",
		KeyPrecise:                       "Precise",
		KeyBalanced:                      "Balanced",
		KeyCreative:                      "Creative",
		KeyPreciseDescription:            "Focused and accurate responses with minimal creativity",
		KeyBalancedDescription:           "A good mix of accuracy and creativity",
		KeyCreativeDescription:           "More varied and imaginative responses",
		KeyCustomInstructions:            "Custom Instructions",
		KeyTellAIHowToBehave:             "Tell the AI how to behave or what to focus on",
		KeyCustomInstructionsPlaceholder: "Example: You are a helpful assistant who explains things simply and clearly...",
		KeySaveChanges:                   "Save Changes",
		KeyCancel:                        "Cancel",
		KeyReadyToChat:                   "Ready to chat?",
		KeyStartConversationBelow:        "Start the conversation by typing a message below!",
		KeyQuickPrompts:                  "Quick Prompts:",
		KeyTypeYourMessage:               "Type your message...",
		KeySend:                          "Send",
		KeyReplyFailed:                   "The assistant could not answer: %s",

		KeyDiscoverAssistants:  "Discover Assistants",
		KeyBrowseAndUse:        "Browse and use AI assistants for your workflows",
		KeyImport:              "Import",
		KeyCreateNew:           "Create New",
		KeySearchAssistants:    "Search assistants by name, description, or tools...",
		KeyAll:                 "All",
		KeyRecommended:         "Recommended",
		KeyYours:               "Yours",
		KeyFavorites:           "Favorites",
		KeyNoAssistantsFound:   "No assistants found",
		KeyTryAdjusting:        "Try adjusting your search or filters",
		KeyStartChat:           "Start Chat",
		KeyEdit:                "Edit",
		KeyDeleteAssistant:     "Delete assistant",
		KeyAddToFavorites:      "Add to favorites",
		KeyRemoveFromFavorites: "Remove from favorites",
		KeySortSubscriptions:   "Subscriptions",
		KeySortTitle:           "Title",
		KeySortUpdated:         "Last updated",
		KeyImported:            "Imported: %s",
		KeyImportFailed:        "Failed to import.",
		KeyExported:            "Exported to %s",
		KeyExportFailed:        "Failed to export: %s",

		KeyEditAssistantTitle:     "Edit Assistant",
		KeyCreateNewAssistant:     "Create New Assistant",
		KeyBasicInformation:       "Basic Information",
		KeyIcon:                   "Icon",
		KeyName:                   "Name",
		KeyNamePlaceholder:        "e.g., Code Assistant",
		KeyDescriptionLabel:       "Description",
		KeyDescriptionPlaceholder: "Brief description of what this assistant does",
		KeySystemPromptLabel:      "System Prompt",
		KeyGenerateWithAI:         "Generate with AI",
		KeyGenerating:             "Generating...",
		KeyAddDescriptionFirst:    "Add a description first",
		KeyResponseBehavior:       "Response Behavior",
		KeyAllowedTools:           "Allowed Tools",
		KeyQuickPromptsLabel:      "Quick Prompts",
		KeyPublishDepartments:     "Publish to Departments",
		KeySave:                   "Save",
		KeyExport:                 "Export",
		KeyFillRequiredFields:     "Please fill in all required fields",

		KeyTermsTitle: "Terms of Use",
		KeyTermsBody: "This is a placeholder Terms of Use text for the demo. By using this " +
			"application, you agree to use it responsibly and acknowledge that responses " +
			"are generated by AI and may be inaccurate. Do not share sensitive data. The " +
			"application is provided as-is for demo purposes only.",
		KeyAcceptTerms:            "Accept Terms",
		KeyClose:                  "Close",
		KeySecureIntroTitle:       "Welcome to Secure Workspace",
		KeySecureIntroSubtitle:    "Your dedicated environment for sensitive data",
		KeySecureIntroPrivacy:     "Data Privacy First",
		KeySecureIntroPrivacyBody: "Your conversations and files are processed in a secure environment. No data is used for training public models.",
		KeySecureIntroModels:      "City-Hosted Models",
		KeySecureIntroModelsBody:  "Access powerful internal LLMs that run on the city's private infrastructure.",
		KeySecureIntroConfirm:     "Got it",

		KeyVersionNotes: "Version Notes",
		KeyBack:         "Back",

		KeySimulatedGreeting:      "Hello! How can I help you today?",
		KeySimulatedGreetingNamed: "Hello! I'm %s. %s How can I help you today?",
		KeySimulatedReply: "This is a simulated response from %s.%s In a real application, " +
			"this would connect to your hosted LLM with the configured settings (response behavior: %s).",
		KeyTheAssistant: "the assistant",
	},

	German: {
		KeyStartConversation: "Unterhaltung beginnen...",
		KeyRecommendedForYou: "Für Sie empfohlen",
		KeyDiscoverAll:       "Alle entdecken",

		KeyHome:            "Startseite",
		KeyAssistants:      "Assistenten",
		KeyNewChat:         "Neuer Chat",
		KeyChatHistory:     "Chat-Verlauf",
		KeyDeleteChat:      "Chat löschen",
		KeyRenameChat:      "Chat umbenennen",
		KeyNoChatsYet:      "Noch keine Chats",
		KeySecureMode:      "Sicherer Modus",
		KeyChangeLanguage:  "Sprache ändern",
		KeyShowVersion:     "Versionshinweise",
		KeyShowTerms:       "Nutzungsbedingungen",
		KeyConfirmDeletion: "Zum Löschen erneut drücken",

		KeyChat:                          "Chat",
		KeySelectAIModel:                 "KI-Modell auswählen",
		KeyChooseAIForChat:               "KI für diesen Chat wählen",
		KeyChatSettings:                  "Chat-Einstellungen",
		KeyCustomizeAIResponses:          "KI-Antworten für diesen Chat anpassen",
		KeyResponseStyle:                 "Antwortstil",
		KeyChooseResponseCreativity:      "Wählen Sie, wie kreativ oder fokussiert die Antworten sein sollen",
		KeyPrecise:                       "Präzise",
		KeyBalanced:                      "Ausgewogen",
		KeyCreative:                      "Kreativ",
		KeyPreciseDescription:            "Fokussierte und genaue Antworten mit minimaler Kreativität",
		KeyBalancedDescription:           "Eine gute Mischung aus Genauigkeit und Kreativität",
		KeyCreativeDescription:           "Abwechslungsreichere und fantasievollere Antworten",
		KeyCustomInstructions:            "Eigene Anweisungen",
		KeyTellAIHowToBehave:             "Sagen Sie der KI, wie sie sich verhalten soll",
		KeyCustomInstructionsPlaceholder: "Beispiel: Du bist ein hilfreicher Assistent, der Dinge einfach und klar erklärt...",
		KeySaveChanges:                   "Änderungen speichern",
		KeyCancel:                        "Abbrechen",
		KeyReadyToChat:                   "Bereit zum Chatten?",
		KeyStartConversationBelow:        "Beginnen Sie die Unterhaltung mit einer Nachricht unten!",
		KeyQuickPrompts:                  "Schnell-Anfragen:",
		KeyTypeYourMessage:               "Nachricht eingeben...",
		KeySend:                          "Senden",
		KeyReplyFailed:                   "Der Assistent konnte nicht antworten: %s",

		KeyDiscoverAssistants:  "Assistenten entdecken",
		KeyBrowseAndUse:        "KI-Assistenten für Ihre Arbeitsabläufe durchsuchen und nutzen",
		KeyImport:              "Importieren",
		KeyCreateNew:           "Neu erstellen",
		KeySearchAssistants:    "Assistenten nach Name, Beschreibung oder Werkzeugen suchen...",
		KeyAll:                 "Alle",
		KeyRecommended:         "Empfohlen",
		KeyYours:               "Eigene",
		KeyFavorites:           "Favoriten",
		KeyNoAssistantsFound:   "Keine Assistenten gefunden",
		KeyTryAdjusting:        "Passen Sie Ihre Suche oder Filter an",
		KeyStartChat:           "Chat starten",
		KeyEdit:                "Bearbeiten",
		KeyDeleteAssistant:     "Assistent löschen",
		KeyAddToFavorites:      "Zu Favoriten hinzufügen",
		KeyRemoveFromFavorites: "Aus Favoriten entfernen",
		KeySortSubscriptions:   "Abonnements",
		KeySortTitle:           "Titel",
		KeySortUpdated:         "Zuletzt aktualisiert",
		KeyImported:            "Importiert: %s",
		KeyImportFailed:        "Import fehlgeschlagen.",
		KeyExported:            "Exportiert nach %s",
		KeyExportFailed:        "Export fehlgeschlagen: %s",

		KeyEditAssistantTitle:     "Assistent bearbeiten",
		KeyCreateNewAssistant:     "Neuen Assistenten erstellen",
		KeyBasicInformation:       "Grundinformationen",
		KeyIcon:                   "Symbol",
		KeyName:                   "Name",
		KeyNamePlaceholder:        "z. B. Code-Assistent",
		KeyDescriptionLabel:       "Beschreibung",
		KeyDescriptionPlaceholder: "Kurze Beschreibung, was dieser Assistent tut",
		KeySystemPromptLabel:      "System-Prompt",
		KeyGenerateWithAI:         "Mit KI generieren",
		KeyGenerating:             "Wird generiert...",
		KeyAddDescriptionFirst:    "Fügen Sie zuerst eine Beschreibung hinzu",
		KeyResponseBehavior:       "Antwortverhalten",
		KeyAllowedTools:           "Erlaubte Werkzeuge",
		KeyQuickPromptsLabel:      "Schnell-Anfragen",
		KeyPublishDepartments:     "In Referaten veröffentlichen",
		KeySave:                   "Speichern",
		KeyExport:                 "Exportieren",
		KeyFillRequiredFields:     "Bitte füllen Sie alle Pflichtfelder aus",

		KeyTermsTitle: "Nutzungsbedingungen",
		KeyTermsBody: "Dies ist ein Platzhaltertext für die Nutzungsbedingungen der Demo. Mit der " +
			"Nutzung dieser Anwendung erklären Sie sich bereit, sie verantwortungsvoll zu verwenden. " +
			"Antworten werden von einer KI erzeugt und können ungenau sein. Geben Sie keine " +
			"sensiblen Daten ein. Die Anwendung wird ohne Gewähr und nur zu Demozwecken bereitgestellt.",
		KeyAcceptTerms:            "Bedingungen akzeptieren",
		KeyClose:                  "Schließen",
		KeySecureIntroTitle:       "Willkommen im sicheren Arbeitsbereich",
		KeySecureIntroSubtitle:    "Ihre Umgebung für sensible Daten",
		KeySecureIntroPrivacy:     "Datenschutz zuerst",
		KeySecureIntroPrivacyBody: "Ihre Unterhaltungen werden in einer sicheren Umgebung verarbeitet. Es werden keine Daten zum Training öffentlicher Modelle verwendet.",
		KeySecureIntroModels:      "Städtisch gehostete Modelle",
		KeySecureIntroModelsBody:  "Nutzen Sie leistungsfähige interne LLMs auf der privaten Infrastruktur der Stadt.",
		KeySecureIntroConfirm:     "Verstanden",

		KeyVersionNotes: "Versionshinweise",
		KeyBack:         "Zurück",

		KeySimulatedGreeting:      "Hallo! Wie kann ich Ihnen heute helfen?",
		KeySimulatedGreetingNamed: "Hallo! Ich bin %s. %s Wie kann ich Ihnen heute helfen?",
		KeySimulatedReply: "Dies ist eine simulierte Antwort von %s.%s In einer echten Anwendung " +
			"würde hier Ihr gehostetes LLM mit den konfigurierten Einstellungen antworten (Antwortverhalten: %s).",
		KeyTheAssistant: "dem Assistenten",
	},
}
