package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vlkors/hydrobot/internal/session"
)

func TestParseIncoming(t *testing.T) {
	cases := []struct {
		name string
		text string
		want session.Incoming
	}{
		{
			name: "команда с аргументом",
			text: "/log_water 500",
			want: session.Incoming{IsCommand: true, Command: "log_water", Args: []string{"500"}, Text: "/log_water 500"},
		},
		{
			name: "команда без аргументов",
			text: "/check_progress",
			want: session.Incoming{IsCommand: true, Command: "check_progress", Args: []string{}, Text: "/check_progress"},
		},
		{
			name: "команда с упоминанием бота",
			text: "/log_food@hydrobot apple",
			want: session.Incoming{IsCommand: true, Command: "log_food", Args: []string{"apple"}, Text: "/log_food@hydrobot apple"},
		},
		{
			name: "несколько аргументов",
			text: "/log_workout бег 30",
			want: session.Incoming{IsCommand: true, Command: "log_workout", Args: []string{"бег", "30"}, Text: "/log_workout бег 30"},
		},
		{
			name: "обычный текст",
			text: "70",
			want: session.Incoming{Text: "70"},
		},
		{
			name: "текст с пробелами по краям",
			text: "  Казань  ",
			want: session.Incoming{Text: "Казань"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, session.ParseIncoming(tc.text))
		})
	}
}
