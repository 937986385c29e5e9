package store

import (
	"time"

	"clario/internal/model"
)

// Built-in sample dataset used when a slot has never been written (or its
// stored data is unreadable). Ids are fixed so the seed tasks can link to
// seed leads.
func SeedLeads() []model.Lead {
	return []model.Lead{
		{ID: "lead-alice", Name: "Alice Freeman", Company: "TechNova", Value: 12000, Stage: model.StageNew, LastActivity: "2h ago", Tags: []string{"Enterprise", "SaaS"}},
		{ID: "lead-bob", Name: "Bob Smith", Company: "GreenLeaf", Value: 5500, Stage: model.StageContacted, LastActivity: "1d ago", Tags: []string{"SMB"}},
		{ID: "lead-charlie", Name: "Charlie Davis", Company: "OpticInc", Value: 24000, Stage: model.StageQualified, LastActivity: "4h ago", Tags: []string{"High Priority"}},
		{ID: "lead-diana", Name: "Diana Prince", Company: "Themyscira", Value: 8500, Stage: model.StageProposal, LastActivity: "3d ago", Tags: []string{"Referral"}},
		{ID: "lead-evan", Name: "Evan Wright", Company: "Wright Logic", Value: 3100, Stage: model.StageNew, LastActivity: "1w ago", Tags: []string{"Cold"}},
		{ID: "lead-fiona", Name: "Fiona Gallagher", Company: "Northside", Value: 15000, Stage: model.StageNegotiation, LastActivity: "12m ago", Tags: []string{"Urgent"}},
		{ID: "lead-george", Name: "George Miller", Company: "Fury Road LLC", Value: 45000, Stage: model.StageWon, LastActivity: "2d ago", Tags: []string{"Enterprise"}},
	}
}

func SeedTasks() []model.Task {
	today := time.Now()
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format("2006-01-02")
	}
	return []model.Task{
		{ID: "task-followup", Title: "Follow up with Alice", DueDate: day(0), LeadID: "lead-alice", LeadName: "Alice Freeman"},
		{ID: "task-proposal", Title: "Prepare proposal for Diana", DueDate: day(1), LeadID: "lead-diana", LeadName: "Diana Prince"},
		{ID: "task-review", Title: "Quarterly Review", DueDate: day(2)},
		{ID: "task-billing", Title: "Update billing info", DueDate: "2023-10-01", Completed: true},
	}
}

func DefaultProfile() model.UserProfile {
	return model.UserProfile{
		Name:          "Alex Morgan",
		Email:         "alex@clario.com",
		Notifications: model.Notifications{Email: true, Push: false},
		Theme:         "light",
	}
}

func DefaultPlan() model.Plan {
	return model.PlanBusiness
}
