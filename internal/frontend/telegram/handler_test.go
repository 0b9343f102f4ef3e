package telegram

import (
	"testing"

	"github.com/reelgrid/reelgrid/internal/browse"
)

func TestPageKeyboard(t *testing.T) {
	tests := []struct {
		name        string
		page, total int
		wantButtons []string
	}{
		{"first_of_many", 1, 5, []string{callbackNext}},
		{"middle", 3, 5, []string{callbackPrev, callbackNext}},
		{"last", 5, 5, []string{callbackPrev}},
		{"single_page", 1, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := browse.NewState()
			s.Page = tt.page
			s.TotalPages = tt.total

			kb := pageKeyboard(s)
			if tt.wantButtons == nil {
				if kb != nil {
					t.Fatalf("expected no keyboard, got %+v", kb)
				}
				return
			}
			if kb == nil {
				t.Fatal("expected keyboard, got nil")
			}

			var got []string
			for _, btn := range kb.InlineKeyboard[0] {
				got = append(got, *btn.CallbackData)
			}
			if len(got) != len(tt.wantButtons) {
				t.Fatalf("expected %d buttons, got %d", len(tt.wantButtons), len(got))
			}
			for i, want := range tt.wantButtons {
				if got[i] != want {
					t.Errorf("button %d = %q, want %q", i, got[i], want)
				}
			}
		})
	}
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantCmd  string
		wantArgs string
	}{
		{"bare_command", "/trending", "/trending", ""},
		{"command_with_args", "/search blade runner", "/search", "blade runner"},
		{"args_trimmed", "/genre   Drama  ", "/genre", "Drama"},
		{"case_insensitive_command", "/Search dune", "/search", "dune"},
		{"plain_text_splits_on_first_space", "blade runner", "blade", "runner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args := splitCommand(tt.in)
			if cmd != tt.wantCmd || args != tt.wantArgs {
				t.Errorf("splitCommand(%q) = (%q, %q), want (%q, %q)",
					tt.in, cmd, args, tt.wantCmd, tt.wantArgs)
			}
		})
	}
}
