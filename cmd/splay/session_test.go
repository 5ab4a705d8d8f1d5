package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() (*session, *bytes.Buffer) {
	var out bytes.Buffer
	return newSession(&out, slog.New(slog.NewTextHandler(io.Discard, nil))), &out
}

func TestSession_Demo(t *testing.T) {
	s, out := testSession()
	require.NoError(t, s.runScript(strings.NewReader(demoScript)))
	o := out.String()
	assert.Contains(t, o, "inorder: 5 10 20 30 40 50\n")
	assert.Contains(t, o, "preorder: 50 40 30 5 20 10\n")
	assert.Contains(t, o, "postorder: 10 20 5 30 40 50\n")
	assert.Contains(t, o, "remove 10: true\n")
	assert.Contains(t, o, "inorder: 5 20 30 40 50\n")
	assert.Contains(t, o, "contains 60: false\n")
	assert.Contains(t, o, "height")
	assert.True(t, strings.HasSuffix(o, "ok\n"))
}

func TestSession_Commands(t *testing.T) {
	s, out := testSession()
	script := `
# comment
insert 3 1 2
insert 2
clone
remove 7
equals
undo
undo
levelorder
clear
inorder
`
	require.NoError(t, s.runScript(strings.NewReader(script)))
	o := out.String()
	assert.Contains(t, o, "2 already present\n")
	assert.Contains(t, o, "remove 7: false\n")
	assert.Contains(t, o, "undone\n")
	assert.Contains(t, o, "nothing to undo\n")
	assert.Contains(t, o, "inorder: \n")
}

func TestSession_Errors(t *testing.T) {
	s, _ := testSession()
	err := s.runScript(strings.NewReader("insert 1\nfrobnicate\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Error(t, s.exec("insert x"))
	assert.Error(t, s.exec("remove"))
}
