package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/manav03panchal/healthdash/internal/errors"
	"github.com/manav03panchal/healthdash/internal/model"
	"github.com/manav03panchal/healthdash/internal/parser"
)

func TestStretchSlug(t *testing.T) {
	assert.Equal(t, "neck-shoulders", stretchSlug("Neck & Shoulders"))
	assert.Equal(t, "full-body", stretchSlug("Full Body"))
	assert.Equal(t, "eye-rest", stretchSlug("Eye Rest"))
}

func TestStretchSlugsResolve(t *testing.T) {
	for _, s := range model.StretchTypes() {
		found, ok := model.FindStretchType(stretchSlug(s.Name))
		require.True(t, ok, s.Name)
		assert.Equal(t, s.Name, found.Name)
	}
}

func TestCompleteStretchTypes(t *testing.T) {
	got, directive := completeStretchTypes(&cobra.Command{}, nil, "e")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "eye-rest\t")

	got, _ = completeStretchTypes(&cobra.Command{}, []string{"neck"}, "")
	assert.Empty(t, got)
}

func TestCompleteSettingKeys(t *testing.T) {
	got, _ := completeSettingKeys(&cobra.Command{}, nil, "hydration_")
	assert.Len(t, got, 4)

	got, _ = completeSettingKeys(&cobra.Command{}, nil, "wake")
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "wake_time")
}

func TestLookupStretch(t *testing.T) {
	t.Cleanup(func() { flagStretchMinutes = 0 })

	s, minutes, err := lookupStretch([]string{"full", "body"})
	require.NoError(t, err)
	assert.Equal(t, "Full Body", s.Name)
	assert.Equal(t, 10, minutes)

	flagStretchMinutes = 3
	_, minutes, err = lookupStretch([]string{"eye"})
	require.NoError(t, err)
	assert.Equal(t, 3, minutes)

	flagStretchMinutes = 0
	_, _, err = lookupStretch([]string{"yoga"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrUnknownStretch))
	assert.True(t, apperrors.IsUserError(err))
}

func TestSettingRows(t *testing.T) {
	prefs := *model.DefaultPreferences()

	rows, err := settingRows(prefs, "")
	require.NoError(t, err)
	assert.Len(t, rows, 7)

	rows, err = settingRows(prefs, "sleep-time")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "sleep_time", rows[0].Key)
	assert.Equal(t, prefs.SleepTime, rows[0].Value)

	_, err = settingRows(prefs, "volume")
	assert.True(t, apperrors.Is(err, apperrors.ErrUnknownSetting))
}

func TestUserError(t *testing.T) {
	_, err := parser.ParseAmount("a bucket")
	require.Error(t, err)

	converted := userError(err)
	assert.True(t, apperrors.IsUserError(converted))

	plain := apperrors.New("boom")
	assert.Same(t, plain, userError(plain))
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"dashboard", "weather", "drink", "stretch", "sleep", "today", "config", "version", "completion"} {
		assert.True(t, names[want], want)
	}
}
