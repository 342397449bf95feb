package catalog

// likertOptions is the standard five-point agreement scale. Scores span
// [-1, 1] so disagreement pulls a dimension down instead of contributing
// nothing.
func likertOptions() []Option {
	return []Option{
		{Key: "strongly_agree", Label: "Strongly agree", Score: 1.0},
		{Key: "agree", Label: "Agree", Score: 0.5},
		{Key: "neutral", Label: "Neutral", Score: 0.0},
		{Key: "disagree", Label: "Disagree", Score: -0.5},
		{Key: "strongly_disagree", Label: "Strongly disagree", Score: -1.0},
	}
}

// DefaultQuestions returns the built-in questionnaire
func DefaultQuestions() []QuestionSpec {
	return []QuestionSpec{
		{
			ID:      "detail_checking",
			Text:    "I notice small errors and inconsistencies that other people tend to miss.",
			Domain:  DomainEnum,
			Options: likertOptions(),
			Contributions: []Contribution{
				{Dimension: DimAttentionToDetail, Weight: 8},
				{Dimension: DimPatternRecognition, Weight: 2},
			},
		},
		{
			ID:      "routine_comfort",
			Text:    "I do my best work when my day follows a predictable routine.",
			Domain:  DomainEnum,
			Options: likertOptions(),
			Contributions: []Contribution{
				{Dimension: DimStructurePrefer, Weight: 8},
			},
		},
		{
			ID:     "focus_hours",
			Text:   "On a typical day, how many hours can you spend in uninterrupted deep focus?",
			Domain: DomainNumeric,
			Min:    0,
			Max:    8,
			Contributions: []Contribution{
				{Dimension: DimFocusDepth, Weight: 2},
			},
		},
		{
			ID:      "group_energy",
			Text:    "Working in group settings energizes me rather than draining me.",
			Domain:  DomainEnum,
			Options: likertOptions(),
			Contributions: []Contribution{
				{Dimension: DimSocialPreference, Weight: 8},
				{Dimension: DimFocusDepth, Weight: -2},
			},
		},
		{
			ID:      "pattern_spotting",
			Text:    "I quickly see patterns and connections in data or information.",
			Domain:  DomainEnum,
			Options: likertOptions(),
			Contributions: []Contribution{
				{Dimension: DimPatternRecognition, Weight: 8},
			},
		},
		{
			ID:      "plan_changes",
			Text:    "Sudden changes to an agreed plan do not bother me.",
			Domain:  DomainEnum,
			Options: likertOptions(),
			Contributions: []Contribution{
				{Dimension: DimStructurePrefer, Weight: -6},
				{Dimension: DimCreativeThinking, Weight: 3},
			},
		},
		{
			ID:     "checklist_use",
			Text:   "Do you keep written checklists or task lists for your work?",
			Domain: DomainBoolean,
			Contributions: []Contribution{
				{Dimension: DimAttentionToDetail, Weight: 3},
				{Dimension: DimStructurePrefer, Weight: 3},
			},
		},
		{
			ID:      "open_ended_projects",
			Text:    "I prefer open-ended creative projects over tasks with a fixed procedure.",
			Domain:  DomainEnum,
			Options: likertOptions(),
			Contributions: []Contribution{
				{Dimension: DimCreativeThinking, Weight: 8},
				{Dimension: DimStructurePrefer, Weight: -3},
			},
		},
		{
			ID:     "team_size",
			Text:   "What team size do you find most comfortable to work in? (1 = alone, 10 = large team)",
			Domain: DomainNumeric,
			Min:    1,
			Max:    10,
			Contributions: []Contribution{
				{Dimension: DimSocialPreference, Weight: 0.5},
			},
		},
		{
			ID:      "noise_sensitivity",
			Text:    "Noisy or busy environments make it hard for me to concentrate.",
			Domain:  DomainEnum,
			Options: likertOptions(),
			Contributions: []Contribution{
				{Dimension: DimFocusDepth, Weight: 4},
				{Dimension: DimSocialPreference, Weight: -3},
			},
		},
		{
			ID:     "solo_work",
			Text:   "Given the choice, do you prefer to work alone?",
			Domain: DomainBoolean,
			Contributions: []Contribution{
				{Dimension: DimFocusDepth, Weight: 3},
				{Dimension: DimSocialPreference, Weight: -5},
			},
		},
		{
			ID:     "ideal_environment",
			Text:   "In a few sentences, describe your ideal working environment.",
			Domain: DomainFreeText,
		},
	}
}
