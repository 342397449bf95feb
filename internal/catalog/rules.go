package catalog

// DefaultRules returns the built-in job-fit recommendation catalog.
// Thresholds apply to normalized dimension scores in [0, 100]. Rationale
// templates may use {primary} (primary dimension label) and {match_pct}
// (match score as a whole percentage).
func DefaultRules() []RecommendationRule {
	return []RecommendationRule{
		{
			ID:          "software_test_engineer",
			Title:       "Software Test Engineer",
			Description: "Designs and runs systematic tests to find defects before users do.",
			Rationale:   "Your {primary} profile suits work built around spotting what others overlook ({match_pct}% match).",
			Conditions: []Condition{
				{Dimension: DimAttentionToDetail, Comparator: CompGTE, Threshold: 70, Weight: 3, Required: true},
				{Dimension: DimStructurePrefer, Comparator: CompGTE, Threshold: 60, Weight: 2},
				{Dimension: DimPatternRecognition, Comparator: CompGTE, Threshold: 50, Weight: 1},
			},
		},
		{
			ID:          "data_analyst",
			Title:       "Data Analyst",
			Description: "Finds trends and anomalies in large datasets and turns them into decisions.",
			Rationale:   "Strong pattern recognition is the core of analytical work, and yours stands out ({match_pct}% match).",
			Conditions: []Condition{
				{Dimension: DimPatternRecognition, Comparator: CompGTE, Threshold: 70, Weight: 3, Required: true},
				{Dimension: DimAttentionToDetail, Comparator: CompGTE, Threshold: 60, Weight: 2},
				{Dimension: DimFocusDepth, Comparator: CompGTE, Threshold: 50, Weight: 1},
			},
		},
		{
			ID:          "records_manager",
			Title:       "Records & Archives Manager",
			Description: "Keeps complex filing, archival and compliance systems accurate and current.",
			Rationale:   "A {primary} working style fits roles that reward consistent, well-ordered processes ({match_pct}% match).",
			Conditions: []Condition{
				{Dimension: DimStructurePrefer, Comparator: CompGTE, Threshold: 70, Weight: 3, Required: true},
				{Dimension: DimAttentionToDetail, Comparator: CompGTE, Threshold: 60, Weight: 2},
			},
		},
		{
			ID:          "research_scientist",
			Title:       "Research Scientist",
			Description: "Investigates deep technical questions over long, self-directed work cycles.",
			Rationale:   "Sustained deep focus is the rarest asset in research work, and it anchors your profile ({match_pct}% match).",
			Conditions: []Condition{
				{Dimension: DimFocusDepth, Comparator: CompGTE, Threshold: 70, Weight: 3, Required: true},
				{Dimension: DimPatternRecognition, Comparator: CompGTE, Threshold: 60, Weight: 2},
				{Dimension: DimSocialPreference, Comparator: CompLTE, Threshold: 40, Weight: 1},
			},
		},
		{
			ID:          "technical_writer",
			Title:       "Technical Writer",
			Description: "Turns complex systems into precise, readable documentation.",
			Rationale:   "Your {primary} strengths map onto work where precision and clarity carry the job ({match_pct}% match).",
			Conditions: []Condition{
				{Dimension: DimAttentionToDetail, Comparator: CompGTE, Threshold: 60, Weight: 2, Required: true},
				{Dimension: DimStructurePrefer, Comparator: CompGTE, Threshold: 50, Weight: 1},
				{Dimension: DimCreativeThinking, Comparator: CompGTE, Threshold: 40, Weight: 1},
			},
		},
		{
			ID:          "ux_designer",
			Title:       "UX Designer",
			Description: "Shapes how products feel through research-driven, original design work.",
			Rationale:   "Creative problem framing drives design work, and it leads your profile ({match_pct}% match).",
			Conditions: []Condition{
				{Dimension: DimCreativeThinking, Comparator: CompGTE, Threshold: 70, Weight: 3, Required: true},
				{Dimension: DimSocialPreference, Comparator: CompGTE, Threshold: 50, Weight: 1},
				{Dimension: DimPatternRecognition, Comparator: CompGTE, Threshold: 40, Weight: 1},
			},
		},
		{
			ID:          "customer_success",
			Title:       "Customer Success Specialist",
			Description: "Builds ongoing relationships that keep customers productive and retained.",
			Rationale:   "You draw energy from people, which is the engine of customer-facing roles ({match_pct}% match).",
			Conditions: []Condition{
				{Dimension: DimSocialPreference, Comparator: CompGTE, Threshold: 70, Weight: 3, Required: true},
				{Dimension: DimStructurePrefer, Comparator: CompGTE, Threshold: 40, Weight: 1},
			},
		},
		{
			ID:          "graphic_designer",
			Title:       "Graphic Designer",
			Description: "Produces visual work that balances originality with craft discipline.",
			Rationale:   "Your {primary} profile supports original visual work done to a high standard ({match_pct}% match).",
			Conditions: []Condition{
				{Dimension: DimCreativeThinking, Comparator: CompGTE, Threshold: 60, Weight: 2, Required: true},
				{Dimension: DimFocusDepth, Comparator: CompGTE, Threshold: 50, Weight: 1},
			},
		},
		{
			ID:          "laboratory_technician",
			Title:       "Laboratory Technician",
			Description: "Runs controlled procedures where accuracy and repeatability are everything.",
			Rationale:   "Methodical, detail-driven work is where your profile is strongest ({match_pct}% match).",
			Conditions: []Condition{
				{Dimension: DimAttentionToDetail, Comparator: CompGTE, Threshold: 60, Weight: 2, Required: true},
				{Dimension: DimStructurePrefer, Comparator: CompGTE, Threshold: 60, Weight: 2, Required: true},
				{Dimension: DimSocialPreference, Comparator: CompLTE, Threshold: 50, Weight: 1},
			},
		},
		{
			ID:          "workshop_facilitator",
			Title:       "Workshop Facilitator",
			Description: "Designs and leads interactive sessions for groups of varying sizes.",
			Rationale:   "Roles that mix people energy with inventive formats play to your profile ({match_pct}% match).",
			Conditions: []Condition{
				{Dimension: DimSocialPreference, Comparator: CompGTE, Threshold: 60, Weight: 2, Required: true},
				{Dimension: DimCreativeThinking, Comparator: CompGTE, Threshold: 50, Weight: 1},
			},
		},
	}
}
