package risk

// RuleCategory groups rules in the library view.
type RuleCategory string

const (
	Capital    RuleCategory = "Capital"
	Strategy   RuleCategory = "Strategy"
	Psychology RuleCategory = "Psychology"
)

// Rule is a static educational entry. The catalog is fixed and
// read-only.
type Rule struct {
	ID       string       `json:"id"`
	Category RuleCategory `json:"category"`
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Icon     string       `json:"icon"`
}

// Rules is the built-in risk-management library.
var Rules = []Rule{
	{
		ID:       "1",
		Category: Capital,
		Title:    "The 1% Rule",
		Content:  "Never risk more than 1% of your total account equity on a single trade. This ensures survival during losing streaks.",
		Icon:     "🛡️",
	},
	{
		ID:       "2",
		Category: Strategy,
		Title:    "Stop Loss Always",
		Content:  "Trading without a stop loss is gambling. Set it the moment you enter a trade.",
		Icon:     "🛑",
	},
	{
		ID:       "3",
		Category: Psychology,
		Title:    "No Revenge Trading",
		Content:  "Lost a trade? Step away. The market doesn't owe you anything. Revenge trading leads to account blown.",
		Icon:     "💆",
	},
	{
		ID:       "4",
		Category: Strategy,
		Title:    "Trade with Trend",
		Content:  "The trend is your friend. Counter-trend trading requires high precision and experience.",
		Icon:     "📈",
	},
}

// PreFlightChecklist is the short self-audit shown before entering a
// position.
var PreFlightChecklist = []string{
	"Logic check: Is this FOMO or verified Strategy?",
	"Risk check: Am I mentally prepared for this loss?",
	"Market check: High-impact news expected soon?",
	"Physical check: Am I tired, impulsive, or emotional?",
}
