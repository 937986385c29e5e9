package model

import (
	"reflect"
	"testing"
)

func TestParseTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"  ,  , ", nil},
		{"Enterprise", []string{"Enterprise"}},
		{"Enterprise, SaaS", []string{"Enterprise", "SaaS"}},
		{" vip ,, VIP ", []string{"vip", "VIP"}},
		{"a,a,a", []string{"a", "a", "a"}},
	}
	for _, tc := range cases {
		if got := ParseTags(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseTags(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseValue(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"abc", 0},
		{"-50", 0},
		{"0", 0},
		{"1500", 1500},
		{" 1500.5 ", 1500.5},
	}
	for _, tc := range cases {
		if got := ParseValue(tc.in); got != tc.want {
			t.Errorf("ParseValue(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestStageLabelAndOrder(t *testing.T) {
	stages := Stages()
	if len(stages) != 6 {
		t.Fatalf("expected 6 stages, got %d", len(stages))
	}
	if stages[0] != StageNew || stages[5] != StageWon {
		t.Fatalf("unexpected stage order: %v", stages)
	}
	if got := StageWon.Label(); got != "Closed Won" {
		t.Fatalf("label: got %q", got)
	}
	if Stage("bogus").Valid() {
		t.Fatalf("bogus stage must not be valid")
	}
}

func TestPlanValid(t *testing.T) {
	for _, p := range Plans() {
		if !p.Valid() {
			t.Fatalf("plan %q should be valid", p)
		}
	}
	if Plan("enterprise").Valid() {
		t.Fatalf("unknown plan must not be valid")
	}
}
