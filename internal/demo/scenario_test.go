package demo

import (
	"errors"
	"testing"
	"time"
)

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name      string
		scenario  Scenario
		wantField string
	}{
		{name: "valid", scenario: Scenario{Name: "ok", Steps: []Step{Key("1"), Drag("sheet", 0, 3)}}},
		{name: "missing name", scenario: Scenario{}, wantField: "Name"},
		{name: "drag without tag", scenario: Scenario{Name: "x", Steps: []Step{Key("1"), {Type: StepDrag}}}, wantField: "Steps[1]"},
		{name: "empty resize", scenario: Scenario{Name: "x", Steps: []Step{Resize(0, 10)}}, wantField: "Steps[0]"},
		{name: "negative wait", scenario: Scenario{Name: "x", Steps: []Step{Wait(-time.Second)}}, wantField: "Steps[0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestScenarioValidate_Defaults(t *testing.T) {
	s := &Scenario{Name: "defaults"}
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
	if s.Width != 100 || s.Height != 30 {
		t.Errorf("size = %dx%d, want 100x30", s.Width, s.Height)
	}
}

func TestStepBuilders(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want Step
	}{
		{"Wait", Wait(time.Second), Step{Type: StepWait, Duration: time.Second}},
		{"Key", Key("1"), Step{Type: StepKey, Key: "1"}},
		{"KeyWithDesc", KeyWithDesc("2", "sheet"), Step{Type: StepKey, Key: "2", Description: "sheet"}},
		{"Type", Type("ab"), Step{Type: StepTypeText, Text: "ab"}},
		{"Click", Click(3, 4), Step{Type: StepClick, X: 3, Y: 4}},
		{"Drag", Drag("sheet", 0, 5), Step{Type: StepDrag, Tag: "sheet", Y: 5}},
		{"Resize", Resize(80, 24), Step{Type: StepResize, Width: 80, Height: 24}},
		{"Settle", Settle(), Step{Type: StepSettle}},
		{"Annotate", Annotate("hi"), Step{Type: StepAnnotate, Annotation: "hi"}},
		{"Capture", Capture(), Step{Type: StepCapture}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.step != tt.want {
				t.Errorf("got %+v, want %+v", tt.step, tt.want)
			}
		})
	}
}
