package entities

// BudgetStatus classifies the current total against the declared budget.
type BudgetStatus string

const (
	BudgetUnder BudgetStatus = "under"
	BudgetNear  BudgetStatus = "near"
	BudgetOver  BudgetStatus = "over"
)

type Budget struct {
	Target float64 `json:"target"`
}

// Pricing is always derived from Components; it is never set by hand.
type Pricing struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Configuration is the in-progress custom build record.
//
// Ownership:
//   - ID is assigned by the remote configuration service on create.
//   - Components is replaced wholesale from each authoritative response.
//   - Pricing is recomputed locally from Components.
//   - Compatibility is the latest remote verdict, kept apart from snapshots.
type Configuration struct {
	ID            string     `json:"id"`
	ConfigName    string     `json:"configName,omitempty"`
	Platform      Platform   `json:"platform"`
	UseCase       string     `json:"useCase,omitempty"`
	Budget        Budget     `json:"budget"`
	Components    Components `json:"components"`
	Pricing       Pricing    `json:"pricing"`
	Compatibility Verdict    `json:"compatibility"`
	SessionID     string     `json:"sessionId,omitempty"`
}

func (c Configuration) Clone() Configuration {
	out := c
	out.Components = c.Components.Clone()
	out.Compatibility.Issues = append([]Issue(nil), c.Compatibility.Issues...)
	out.Compatibility.Warnings = append([]Warning(nil), c.Compatibility.Warnings...)
	return out
}
