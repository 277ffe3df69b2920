package roles

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_LoadsEveryRole(t *testing.T) {
	all := All()
	require.Len(t, all, 4)
	assert.Equal(t, []string{CoconutClimber, PaniPuriSeller, ToddyTapper, AutoRickshawDriver}, Keys())

	for _, r := range all {
		t.Run(r.Key, func(t *testing.T) {
			assert.NotEmpty(t, r.Title)
			assert.NotEmpty(t, r.Description)
			assert.Regexp(t, `^#[0-9a-f]{6}$`, r.Color)
			assert.NotEmpty(t, r.ThemeTitle)
			assert.NotEmpty(t, r.Nickname)
			assert.NotEmpty(t, r.Summary)
			assert.NotEmpty(t, r.Greeting)
			assert.NotEmpty(t, r.Closing)
			assert.Len(t, r.TechMappings, 13)
			assert.NotEmpty(t, r.SkillMappings)
			assert.NotEmpty(t, r.ProjectMappings)
			assert.NotEmpty(t, r.GenericTechMappings)
			assert.Len(t, r.ToneInstructions, 5)
		})
	}
}

func TestInfos(t *testing.T) {
	infos := Infos()
	require.Len(t, infos, 4)
	assert.Equal(t, Info{
		Key:         CoconutClimber,
		Title:       "Coconut Climber",
		Description: "React-ive coconut balancing skills",
		Color:       "#0d9488",
	}, infos[0])
	assert.Equal(t, "Auto Rickshaw Driver", infos[3].Title)
}

func TestGet(t *testing.T) {
	r, err := Get(PaniPuriSeller)
	require.NoError(t, err)
	assert.Equal(t, "Pani Puri Seller", r.Title)
	assert.Equal(t, "PuriStack", r.Nickname)

	_, err = Get("software-engineer")
	require.Error(t, err)
	var unknown *UnknownRoleError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "software-engineer", unknown.Key)
	assert.Contains(t, err.Error(), "coconut-climber")
}

func TestGetOrDefault(t *testing.T) {
	assert.Equal(t, ToddyTapper, GetOrDefault(ToddyTapper).Key)
	assert.Equal(t, DefaultKey, GetOrDefault("nope").Key)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(CoconutClimber))
	assert.True(t, Valid(AutoRickshawDriver))
	assert.False(t, Valid(""))
	assert.False(t, Valid("Coconut-Climber"))
}

func TestMapTerm(t *testing.T) {
	r, err := Get(CoconutClimber)
	require.NoError(t, err)

	tests := []struct {
		name string
		term string
		want string
	}{
		{"skill mapping", "React", "React-ive Tree Climbing"},
		{"skill mapping with dots", "Node.js", "Node Branch Engineering"},
		{"generic tech mapping", "Frontend", "Tree Top Development"},
		{"project mapping", "api", "Arboreal REST Service"},
		{"surrounding space", "  git ", "Git Good at Climbing"},
		{"unknown term unchanged", "Haskell", "Haskell"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.MapTerm(tt.term))
		})
	}
}

func TestTechMappingLines_Sorted(t *testing.T) {
	r, err := Get(AutoRickshawDriver)
	require.NoError(t, err)

	lines := r.TechMappingLines()
	require.Len(t, lines, 13)
	assert.Equal(t, "- CSS -> Complete Street Styling", lines[0])
	assert.Contains(t, lines, "- JavaScript -> Route-Planning Script")
}

func TestNicknameFor(t *testing.T) {
	r, err := Get(ToddyTapper)
	require.NoError(t, err)

	assert.Equal(t, "Jane 'ToddyStack' Smith", r.NicknameFor("Jane Smith"))
	assert.Equal(t, "Mary 'ToddyStack' Ann Lee", r.NicknameFor("Mary Ann Lee"))
	assert.Equal(t, "Cher 'ToddyStack' Expert", r.NicknameFor("Cher"))
	assert.Equal(t, "Professional 'ToddyStack' Expert", r.NicknameFor("  "))
}
