package prompts_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/JaimeStill/freightdesk/internal/category"
	"github.com/JaimeStill/freightdesk/internal/prompts"
	"github.com/JaimeStill/freightdesk/pkg/query"
)

func ptr[T any](v T) *T { return &v }

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", prompts.ErrNotFound, http.StatusNotFound},
		{"duplicate", prompts.ErrDuplicate, http.StatusConflict},
		{"invalid stage", prompts.ErrInvalidStage, http.StatusBadRequest},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("find failed: %w", prompts.ErrNotFound), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := prompts.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestStagesCoverCategories(t *testing.T) {
	stages := prompts.Stages()
	if len(stages) != 6 || stages[0] != prompts.StageClassify {
		t.Fatalf("Stages() = %v", stages)
	}

	for _, c := range category.All() {
		stage := prompts.StageFor(c)
		if _, err := prompts.ParseStage(string(stage)); err != nil {
			t.Errorf("no stage for category %s", c)
		}
	}
}

func TestStageUnmarshalJSON(t *testing.T) {
	var s prompts.Stage
	if err := json.Unmarshal([]byte(`"documents"`), &s); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if s != prompts.StageDocuments {
		t.Errorf("stage = %q, want documents", s)
	}

	if err := json.Unmarshal([]byte(`"enhance"`), &s); !errors.Is(err, prompts.ErrInvalidStage) {
		t.Errorf("Unmarshal(enhance) error = %v, want ErrInvalidStage", err)
	}
}

func TestDefaults(t *testing.T) {
	for _, stage := range prompts.Stages() {
		t.Run(string(stage), func(t *testing.T) {
			inst, err := prompts.Instructions(stage)
			if err != nil || inst == "" {
				t.Errorf("Instructions(%s) = %q, %v", stage, inst, err)
			}
			spec, err := prompts.Spec(stage)
			if err != nil || spec == "" {
				t.Errorf("Spec(%s) = %q, %v", stage, spec, err)
			}
		})
	}

	if _, err := prompts.Instructions("enhance"); !errors.Is(err, prompts.ErrInvalidStage) {
		t.Errorf("expected ErrInvalidStage, got %v", err)
	}
	if _, err := prompts.Spec("enhance"); !errors.Is(err, prompts.ErrInvalidStage) {
		t.Errorf("expected ErrInvalidStage, got %v", err)
	}
}

func TestClassifyInstructionsListCategories(t *testing.T) {
	inst, _ := prompts.Instructions(prompts.StageClassify)

	for _, c := range category.All() {
		line := fmt.Sprintf("- %s: %s", c, c.Description())
		if !strings.Contains(inst, line) {
			t.Errorf("classify instructions missing %q", line)
		}
	}
}

func TestFiltersFromQuery(t *testing.T) {
	tests := []struct {
		name       string
		values     url.Values
		wantStage  *prompts.Stage
		wantName   *string
		wantActive *bool
	}{
		{"empty", url.Values{}, nil, nil, nil},
		{"stage", url.Values{"stage": {"booking"}}, ptr(prompts.StageBooking), nil, nil},
		{"unknown stage dropped", url.Values{"stage": {"enhance"}}, nil, nil, nil},
		{"name and active", url.Values{"name": {"terse"}, "active": {"true"}}, nil, ptr("terse"), ptr(true)},
		{"bad active dropped", url.Values{"active": {"maybe"}}, nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := prompts.FiltersFromQuery(tt.values)
			if !eq(f.Stage, tt.wantStage) {
				t.Errorf("stage = %v, want %v", f.Stage, tt.wantStage)
			}
			if !eq(f.Name, tt.wantName) {
				t.Errorf("name = %v, want %v", f.Name, tt.wantName)
			}
			if !eq(f.Active, tt.wantActive) {
				t.Errorf("active = %v, want %v", f.Active, tt.wantActive)
			}
		})
	}
}

func TestFiltersApply(t *testing.T) {
	p := query.NewProjectionMap("public", "prompts", "p").
		Project("stage", "Stage").
		Project("name", "Name").
		Project("active", "Active")

	f := prompts.Filters{Stage: ptr(prompts.StageCustomer), Active: ptr(true)}
	sql, args := f.Apply(query.NewBuilder(p)).BuildCount()

	want := "SELECT COUNT(*) FROM public.prompts p WHERE p.stage = $1 AND p.active = $2"
	if sql != want {
		t.Errorf("sql = %q\nwant  %q", sql, want)
	}
	if len(args) != 2 {
		t.Errorf("args = %v", args)
	}
}

func TestFiltersApplySearch(t *testing.T) {
	p := query.NewProjectionMap("public", "prompts", "p").
		Project("name", "Name").
		Project("description", "Description")

	f := prompts.FiltersFromQuery(url.Values{"search": {"hazmat"}})
	sql, args := f.Apply(query.NewBuilder(p)).BuildCount()

	want := "SELECT COUNT(*) FROM public.prompts p WHERE (p.name ILIKE $1 OR p.description ILIKE $2)"
	if sql != want {
		t.Errorf("sql = %q\nwant  %q", sql, want)
	}
	if len(args) != 2 || args[0] != "%hazmat%" {
		t.Errorf("args = %v", args)
	}
}

func eq[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
