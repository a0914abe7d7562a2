package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_Failed_AllOK(t *testing.T) {
	r := &Run{Outcomes: []FileOutcome{
		{Path: "a.pdb", Status: OutcomeOK},
		{Path: "b.pdb", Status: OutcomeOK},
	}}

	assert.False(t, r.Failed())
	assert.Empty(t, r.FailedPaths())
}

func TestRun_Failed_MixedOutcomes(t *testing.T) {
	r := &Run{Outcomes: []FileOutcome{
		{Path: "a.pdb", Status: OutcomeOK},
		{Path: "bad.pdb", Status: OutcomeFailed, Detail: "no chains"},
		{Path: "c.pdb", Status: OutcomeOK},
		{Path: "worse.pdb", Status: OutcomeFailed},
	}}

	assert.True(t, r.Failed())
	assert.Equal(t, []string{"bad.pdb", "worse.pdb"}, r.FailedPaths())
}

func TestRunCommand_IsValid(t *testing.T) {
	assert.True(t, RunCommandFetch.IsValid())
	assert.True(t, RunCommandSplit.IsValid())
	assert.True(t, RunCommandRenumber.IsValid())
	assert.False(t, RunCommand("compare").IsValid())
}

func TestSettings_Normalise_FillsDefaults(t *testing.T) {
	s := Settings{}.Normalise()

	assert.Equal(t, DefaultWindowSize, s.WindowSize)
	assert.Equal(t, DefaultFilePattern, s.FilePattern)
	assert.Equal(t, DefaultDownloadURL, s.DownloadURL)
	assert.Zero(t, s.Workers)
}

func TestSettings_Normalise_KeepsExplicitValues(t *testing.T) {
	s := Settings{WindowSize: 7, FilePattern: "*.ent", Workers: 2}.Normalise()

	assert.Equal(t, 7, s.WindowSize)
	assert.Equal(t, "*.ent", s.FilePattern)
	assert.Equal(t, 2, s.Workers)
}
