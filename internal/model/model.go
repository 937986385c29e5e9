package model

type Stage string

const (
	StageNew         Stage = "new"
	StageContacted   Stage = "contacted"
	StageQualified   Stage = "qualified"
	StageProposal    Stage = "proposal"
	StageNegotiation Stage = "negotiation"
	StageWon         Stage = "won"
)

// Stages returns the pipeline stages in board order.
func Stages() []Stage {
	return []Stage{
		StageNew,
		StageContacted,
		StageQualified,
		StageProposal,
		StageNegotiation,
		StageWon,
	}
}

func (s Stage) Label() string {
	switch s {
	case StageNew:
		return "New Lead"
	case StageContacted:
		return "Contacted"
	case StageQualified:
		return "Qualified"
	case StageProposal:
		return "Proposal"
	case StageNegotiation:
		return "Negotiation"
	case StageWon:
		return "Closed Won"
	default:
		return string(s)
	}
}

func (s Stage) Valid() bool {
	switch s {
	case StageNew, StageContacted, StageQualified, StageProposal, StageNegotiation, StageWon:
		return true
	default:
		return false
	}
}

type Lead struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Company string  `json:"company"`
	Value   float64 `json:"value"`
	Stage   Stage   `json:"stageId"`
	// LastActivity is a free-text label ("Just now", "2h ago"); it is display
	// metadata, not a timestamp.
	LastActivity string   `json:"lastActivity"`
	Tags         []string `json:"tags,omitempty"`
	Email        string   `json:"email,omitempty"`
	Phone        string   `json:"phone,omitempty"`
}

type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	DueDate   string `json:"dueDate"` // YYYY-MM-DD
	Completed bool   `json:"completed"`

	// Optional link to a lead. LeadName is denormalized at link time and is
	// intentionally left stale when the lead is deleted.
	LeadID   string `json:"leadId,omitempty"`
	LeadName string `json:"leadName,omitempty"`
}

type Notifications struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
}

type UserProfile struct {
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Notifications Notifications `json:"notifications"`
	// Theme is "light" or "dark"; only "light" is functional for now.
	Theme string `json:"theme"`
}

type Plan string

const (
	PlanStarter  Plan = "starter"
	PlanPro      Plan = "pro"
	PlanBusiness Plan = "business"
)

func Plans() []Plan {
	return []Plan{PlanStarter, PlanPro, PlanBusiness}
}

func (p Plan) Label() string {
	switch p {
	case PlanStarter:
		return "Starter"
	case PlanPro:
		return "Pro"
	case PlanBusiness:
		return "Business"
	default:
		return string(p)
	}
}

func (p Plan) Valid() bool {
	switch p {
	case PlanStarter, PlanPro, PlanBusiness:
		return true
	default:
		return false
	}
}
