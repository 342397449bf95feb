package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCatalog() *Catalog {
	return &Catalog{
		Questions: []QuestionSpec{
			{
				ID:     "q_enum",
				Text:   "An enumerated question",
				Domain: DomainEnum,
				Options: []Option{
					{Key: "yes", Label: "Yes", Score: 1},
					{Key: "no", Label: "No", Score: -1},
				},
				Contributions: []Contribution{{Dimension: DimAttentionToDetail, Weight: 5}},
			},
			{
				ID:            "q_numeric",
				Text:          "A numeric question",
				Domain:        DomainNumeric,
				Min:           0,
				Max:           10,
				Contributions: []Contribution{{Dimension: DimPatternRecognition, Weight: 1}},
			},
		},
		Rules: []RecommendationRule{
			{
				ID:    "sample_role",
				Title: "Sample Role",
				Conditions: []Condition{
					{Dimension: DimAttentionToDetail, Comparator: CompGTE, Threshold: 70, Weight: 2, Required: true},
				},
			},
		},
		SignificantThreshold: 60,
		MaxRecommendations:   10,
	}
}

func TestValidateAcceptsWellFormedCatalog(t *testing.T) {
	assert.NoError(t, validCatalog().Validate())
}

func TestValidateAcceptsEmptyRuleSet(t *testing.T) {
	cat := validCatalog()
	cat.Rules = nil
	assert.NoError(t, cat.Validate())
}

func TestValidateRejectsMalformedCatalogs(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Catalog)
		wantMsg string
	}{
		{
			"empty question set",
			func(c *Catalog) { c.Questions = nil },
			"question catalog is empty",
		},
		{
			"threshold above 100",
			func(c *Catalog) { c.SignificantThreshold = 101 },
			"outside [0, 100]",
		},
		{
			"negative recommendation cap",
			func(c *Catalog) { c.MaxRecommendations = -1 },
			"must not be negative",
		},
		{
			"question with empty id",
			func(c *Catalog) { c.Questions[0].ID = "" },
			"empty id",
		},
		{
			"duplicate question id",
			func(c *Catalog) { c.Questions[1].ID = c.Questions[0].ID },
			"duplicate question id",
		},
		{
			"enum question without options",
			func(c *Catalog) { c.Questions[0].Options = nil },
			"has no options",
		},
		{
			"duplicate option key",
			func(c *Catalog) { c.Questions[0].Options[1].Key = "yes" },
			"duplicate option",
		},
		{
			"numeric question with inverted range",
			func(c *Catalog) { c.Questions[1].Min = 10; c.Questions[1].Max = 0 },
			"invalid range",
		},
		{
			"free-text question with contributions",
			func(c *Catalog) {
				c.Questions[1].Domain = DomainFreeText
				c.Questions[1].Contributions = []Contribution{{Dimension: DimFocusDepth, Weight: 1}}
			},
			"must not have contributions",
		},
		{
			"unknown answer domain",
			func(c *Catalog) { c.Questions[0].Domain = "multiple_choice" },
			"unknown answer domain",
		},
		{
			"contribution to undefined dimension",
			func(c *Catalog) { c.Questions[0].Contributions[0].Dimension = "charisma" },
			"undefined dimension",
		},
		{
			"zero-weight contribution",
			func(c *Catalog) { c.Questions[0].Contributions[0].Weight = 0 },
			"zero-weight contribution",
		},
		{
			"rule with empty id",
			func(c *Catalog) { c.Rules[0].ID = "" },
			"rule with empty id",
		},
		{
			"rule without title",
			func(c *Catalog) { c.Rules[0].Title = "" },
			"has no title",
		},
		{
			"rule without conditions",
			func(c *Catalog) { c.Rules[0].Conditions = nil },
			"has no conditions",
		},
		{
			"condition on undefined dimension",
			func(c *Catalog) { c.Rules[0].Conditions[0].Dimension = "charisma" },
			"undefined dimension",
		},
		{
			"unknown comparator",
			func(c *Catalog) { c.Rules[0].Conditions[0].Comparator = "eq" },
			"unknown comparator",
		},
		{
			"non-positive condition weight",
			func(c *Catalog) { c.Rules[0].Conditions[0].Weight = 0 },
			"non-positive condition weight",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := validCatalog()
			tt.mutate(cat)

			err := cat.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestQuestionLookup(t *testing.T) {
	cat := validCatalog()

	q, ok := cat.Question("q_numeric")
	require.True(t, ok)
	assert.Equal(t, DomainNumeric, q.Domain)

	_, ok = cat.Question("no_such_question")
	assert.False(t, ok)
}

func TestMaxWeightSumsConditionWeights(t *testing.T) {
	rule := RecommendationRule{
		Conditions: []Condition{
			{Dimension: DimAttentionToDetail, Comparator: CompGTE, Threshold: 70, Weight: 3},
			{Dimension: DimStructurePrefer, Comparator: CompGTE, Threshold: 60, Weight: 2},
			{Dimension: DimSocialPreference, Comparator: CompLTE, Threshold: 40, Weight: 1},
		},
	}
	assert.Equal(t, 6.0, rule.MaxWeight())
}

func TestDefaultCatalogIsValid(t *testing.T) {
	cat := Default()
	require.NoError(t, cat.Validate())

	assert.Equal(t, 60.0, cat.SignificantThreshold)
	assert.Equal(t, 10, cat.MaxRecommendations)
	assert.NotEmpty(t, cat.Questions)
	assert.NotEmpty(t, cat.Rules)
}

func TestDefaultQuestionScoresStayInRange(t *testing.T) {
	for _, q := range DefaultQuestions() {
		for _, opt := range q.Options {
			assert.GreaterOrEqual(t, opt.Score, -1.0, "question %s option %s", q.ID, opt.Key)
			assert.LessOrEqual(t, opt.Score, 1.0, "question %s option %s", q.ID, opt.Key)
		}
	}
}

func TestDimensionPriorityIsStableAndComplete(t *testing.T) {
	require.Len(t, DimensionPriority, 6)
	assert.Equal(t, DimAttentionToDetail, DimensionPriority[0])

	seen := make(map[string]bool)
	for i, dim := range DimensionPriority {
		assert.False(t, seen[dim], "duplicate dimension %s", dim)
		seen[dim] = true

		assert.True(t, IsKnownDimension(dim))
		assert.Equal(t, i, PriorityIndex(dim))
		assert.NotEmpty(t, DimensionLabels[dim].Label)
		assert.NotEmpty(t, DimensionLabels[dim].Description)
	}

	assert.False(t, IsKnownDimension("charisma"))
	assert.Equal(t, len(DimensionPriority), PriorityIndex("charisma"))
}
