package bot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farcloser/grammarify/internal/bot"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		text     string
		username string
		command  string
		args     string
		ok       bool
	}{
		{text: "hello there", ok: false},
		{text: "/check", command: "check", ok: true},
		{text: "/check some text", command: "check", args: "some text", ok: true},
		{text: "/check\nline one\nline two ", command: "check", args: "line one\nline two", ok: true},
		{text: "/check@mybot text", username: "mybot", command: "check", args: "text", ok: true},
		{text: "/check@MyBot text", username: "@mybot", command: "check", args: "text", ok: true},
		{text: "/check@otherbot text", username: "mybot", ok: false},
		{text: "/check@anybot text", command: "check", args: "text", ok: true},
		{text: "/ check", ok: false},
		{text: "/start", command: "start", ok: true},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			command, args, ok := bot.ParseCommand(tc.text, tc.username)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.command, command)
			assert.Equal(t, tc.args, args)
		})
	}
}
