package store

import (
	"math"
	"strings"

	"clario/internal/model"
)

// Derived read-only projections. All are pure functions of the snapshot and
// recomputed on every render; nothing here is cached or persisted.

type Metrics struct {
	TotalPipelineValue float64 `json:"totalPipelineValue"`
	NewLeads           int     `json:"newLeads"`
	WonLeads           int     `json:"wonLeads"`
	// ConversionRate is won/total in percent, rounded to one decimal.
	// Exactly 0 when there are no leads.
	ConversionRate float64 `json:"conversionRate"`
	OpenTasks      int     `json:"openTasks"`
}

func (db *DB) Metrics() Metrics {
	var m Metrics
	for _, l := range db.Leads {
		m.TotalPipelineValue += l.Value
		switch l.Stage {
		case model.StageNew:
			m.NewLeads++
		case model.StageWon:
			m.WonLeads++
		}
	}
	if n := len(db.Leads); n > 0 {
		m.ConversionRate = math.Round(float64(m.WonLeads)/float64(n)*1000) / 10
	}
	for _, t := range db.Tasks {
		if !t.Completed {
			m.OpenTasks++
		}
	}
	return m
}

// LeadMatches reports whether the query is a case-insensitive substring of the
// lead's name, company, or any tag. The empty query matches everything.
func LeadMatches(l model.Lead, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(l.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(l.Company), q) {
		return true
	}
	for _, tag := range l.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// FilterLeads returns the leads matching the query, preserving snapshot order.
func (db *DB) FilterLeads(query string) []model.Lead {
	out := make([]model.Lead, 0, len(db.Leads))
	for _, l := range db.Leads {
		if LeadMatches(l, query) {
			out = append(out, l)
		}
	}
	return out
}

type StageBucket struct {
	Stage      model.Stage
	Leads      []model.Lead
	TotalValue float64
}

func (b StageBucket) Count() int { return len(b.Leads) }

// StageBuckets partitions the search-filtered leads into board columns, one
// per stage in board order.
func (db *DB) StageBuckets(query string) []StageBucket {
	stages := model.Stages()
	buckets := make([]StageBucket, len(stages))
	for i, st := range stages {
		buckets[i].Stage = st
	}
	byStage := map[model.Stage]int{}
	for i, st := range stages {
		byStage[st] = i
	}
	for _, l := range db.FilterLeads(query) {
		i, ok := byStage[l.Stage]
		if !ok {
			continue
		}
		buckets[i].Leads = append(buckets[i].Leads, l)
		buckets[i].TotalValue += l.Value
	}
	return buckets
}
