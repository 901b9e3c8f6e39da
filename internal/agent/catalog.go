package agent

// Category identifies which specialized agent should handle a message.
type Category string

const (
	CategorySales     Category = "SALES"
	CategorySupport   Category = "SUPPORT"
	CategoryFAQ       Category = "FAQ"
	CategorySmalltalk Category = "SMALLTALK"
	CategoryGeneral   Category = "GENERAL"
)

// Priority levels used in the agent catalog.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Info describes an agent category: what it handles and how urgent its
// traffic typically is.
type Info struct {
	Description    string   `json:"description"`
	Priority       string   `json:"priority"`
	TypicalIntents []string `json:"typical_intents"`
}

// catalog is the static, read-only category metadata table.
var catalog = map[Category]Info{
	CategorySales: {
		Description:    "Handles pricing, plans, and purchase inquiries",
		Priority:       PriorityHigh,
		TypicalIntents: []string{"pricing", "purchase", "upgrade"},
	},
	CategorySupport: {
		Description:    "Handles technical issues and help requests",
		Priority:       PriorityHigh,
		TypicalIntents: []string{"error", "help", "configuration"},
	},
	CategoryFAQ: {
		Description:    "Handles frequently asked questions",
		Priority:       PriorityMedium,
		TypicalIntents: []string{"information", "how-to", "capabilities"},
	},
	CategorySmalltalk: {
		Description:    "Handles greetings and casual conversation",
		Priority:       PriorityLow,
		TypicalIntents: []string{"greeting", "farewell", "acknowledgment"},
	},
	CategoryGeneral: {
		Description:    "Default handler for unclassified queries",
		Priority:       PriorityMedium,
		TypicalIntents: []string{"general", "unclassified"},
	},
}

// InfoFor returns the catalog entry for a category. Unrecognized
// categories get the GENERAL entry, so a lookup never fails.
func InfoFor(category Category) Info {
	if info, ok := catalog[category]; ok {
		return info
	}
	return catalog[CategoryGeneral]
}

// Categories returns the closed set of known agent categories.
func Categories() []Category {
	return []Category{
		CategorySales,
		CategorySupport,
		CategoryFAQ,
		CategorySmalltalk,
		CategoryGeneral,
	}
}
