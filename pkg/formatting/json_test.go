package formatting_test

import (
	"errors"
	"testing"

	"github.com/JaimeStill/freightdesk/pkg/formatting"
)

type booking struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Quantity    *int   `json:"quantity"`
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr error
	}{
		{
			name:    "bare object",
			content: `{"origin":"Shanghai"}`,
			want:    `{"origin":"Shanghai"}`,
		},
		{
			name:    "surrounded by prose",
			content: "Here you go:\n{\"origin\":\"Shanghai\"}\nLet me know.",
			want:    `{"origin":"Shanghai"}`,
		},
		{
			name:    "markdown fence",
			content: "```json\n{\"origin\":\"Rotterdam\"}\n```",
			want:    `{"origin":"Rotterdam"}`,
		},
		{
			name:    "greedy across nested objects",
			content: `x {"a":{"b":1}} y`,
			want:    `{"a":{"b":1}}`,
		},
		{
			name:    "greedy includes trailing brace in commentary",
			content: `{"a":1} note: use } carefully`,
			want:    `{"a":1} note: use }`,
		},
		{
			name:    "no braces",
			content: "I could not find any booking details.",
			wantErr: formatting.ErrNoJSON,
		},
		{
			name:    "closing before opening",
			content: "} nothing {",
			wantErr: formatting.ErrNoJSON,
		},
		{
			name:    "empty",
			content: "",
			wantErr: formatting.ErrNoJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatting.ExtractJSON(tt.content)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractJSON error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractJSON = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("object with prose", func(t *testing.T) {
		got, err := formatting.Parse[booking]("Sure!\n{\"origin\":\"Shanghai\",\"destination\":\"LA\",\"quantity\":20}")
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Origin != "Shanghai" || got.Destination != "LA" {
			t.Errorf("Parse = %+v", got)
		}
		if got.Quantity == nil || *got.Quantity != 20 {
			t.Errorf("Quantity = %v, want 20", got.Quantity)
		}
	})

	t.Run("null optional field", func(t *testing.T) {
		got, err := formatting.Parse[booking](`{"origin":"A","destination":"B","quantity":null}`)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got.Quantity != nil {
			t.Errorf("Quantity = %v, want nil", *got.Quantity)
		}
	})

	t.Run("no object returns ErrNoJSON", func(t *testing.T) {
		_, err := formatting.Parse[booking]("no json here")
		if !errors.Is(err, formatting.ErrNoJSON) {
			t.Errorf("error = %v, want ErrNoJSON", err)
		}
	})

	t.Run("invalid span returns ErrParseFailed", func(t *testing.T) {
		_, err := formatting.Parse[booking](`{"origin": Shanghai}`)
		if !errors.Is(err, formatting.ErrParseFailed) {
			t.Errorf("error = %v, want ErrParseFailed", err)
		}
	})
}
