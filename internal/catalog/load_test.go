package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWithoutOverridesReturnsDefaults(t *testing.T) {
	cat, err := Load("", "")
	require.NoError(t, err)

	assert.Equal(t, len(DefaultQuestions()), len(cat.Questions))
	assert.Equal(t, len(DefaultRules()), len(cat.Rules))
}

func TestLoadQuestionsOverride(t *testing.T) {
	path := writeTempJSON(t, "questions.json", `[
		{
			"id": "custom_question",
			"text": "Do you prefer written instructions?",
			"domain": "boolean",
			"contributions": [{"dimension": "structure_preference", "weight": 4}]
		}
	]`)

	cat, err := Load(path, "")
	require.NoError(t, err)

	require.Len(t, cat.Questions, 1)
	assert.Equal(t, "custom_question", cat.Questions[0].ID)
	assert.Equal(t, DomainBoolean, cat.Questions[0].Domain)

	// rules stay at defaults when only questions are overridden
	assert.Equal(t, len(DefaultRules()), len(cat.Rules))
}

func TestLoadRulesOverride(t *testing.T) {
	path := writeTempJSON(t, "rules.json", `[
		{
			"id": "custom_role",
			"title": "Custom Role",
			"description": "A role defined at deploy time.",
			"rationale": "Suits a {primary} profile.",
			"conditions": [
				{"dimension": "focus_depth", "comparator": "gte", "threshold": 65, "weight": 2, "required": true}
			]
		}
	]`)

	cat, err := Load("", path)
	require.NoError(t, err)

	require.Len(t, cat.Rules, 1)
	assert.Equal(t, "custom_role", cat.Rules[0].ID)
	assert.True(t, cat.Rules[0].Conditions[0].Required)

	assert.Equal(t, len(DefaultQuestions()), len(cat.Questions))
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read question catalog file")
}

func TestLoadMalformedJSONFails(t *testing.T) {
	path := writeTempJSON(t, "rules.json", `{"not": "an array"`)

	_, err := Load("", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse rule catalog file")
}

func TestLoadRejectsInvalidOverride(t *testing.T) {
	// well-formed JSON, but the catalog fails validation
	path := writeTempJSON(t, "questions.json", `[
		{
			"id": "bad_question",
			"text": "References a dimension that does not exist",
			"domain": "boolean",
			"contributions": [{"dimension": "charisma", "weight": 2}]
		}
	]`)

	_, err := Load(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined dimension")
}
