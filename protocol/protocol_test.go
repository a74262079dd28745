package protocol_test

import (
	"testing"

	"github.com/abrishk26/rlox/protocol"
	"github.com/stretchr/testify/assert"
)

func TestURI(t *testing.T) {
	assert := assert.New(t)
	type TestCase struct {
		Filepath string
		Want     string
	}
	testCases := []TestCase{
		{
			Filepath: "/foo/bar/baz.rlox",
			Want:     "file:///foo/bar/baz.rlox",
		},
		{
			Filepath: "C:\\Users\\foo\\scripts\\fib.rlox",
			Want:     "file:///C:/Users/foo/scripts/fib.rlox",
		},
	}
	for _, testCase := range testCases {
		assert.Equal(testCase.Want, protocol.URI(testCase.Filepath))
	}
}

func TestCreateDocMarkdownString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("just a description", protocol.CreateDocMarkdownString("", "just a description"))
	assert.Equal("```rlox\nclock()\n```", protocol.CreateDocMarkdownString("clock()", ""))
	assert.Equal(
		"```rlox\ninput(prompt?)\n```\n---\nReads a \\\"line\\\".",
		protocol.CreateDocMarkdownString("input(prompt?)", `Reads a "line".`),
	)
}
