package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_CampusContent(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run("../../content/campus/scenario.yaml", &out))
	assert.Contains(t, out.String(), "scenario:   Exam Day")
	assert.Contains(t, out.String(), "locations:  13 (2 restricted)")
	assert.Contains(t, out.String(), "items:      3 (3 essential)")
	assert.Contains(t, out.String(), "home:       location 1 at (0, 0)")
	assert.Contains(t, out.String(), "key item:   T-card (starts at location 3)")
	assert.Contains(t, out.String(), "ok")
}

func TestRun_MissingManifest(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run("does-not-exist.yaml", &out))
}
