package catalog

// Dimension names for the fixed scoring set
const (
	DimAttentionToDetail  = "attention_to_detail"
	DimPatternRecognition = "pattern_recognition"
	DimStructurePrefer    = "structure_preference"
	DimFocusDepth         = "focus_depth"
	DimCreativeThinking   = "creative_thinking"
	DimSocialPreference   = "social_preference"
)

// DimensionPriority is the documented tie-break ordering for profile
// classification. When two dimensions score equal, the one earlier in this
// list wins. Also the canonical iteration order for score maps, so results
// never depend on Go map ordering.
var DimensionPriority = []string{
	DimAttentionToDetail,
	DimPatternRecognition,
	DimStructurePrefer,
	DimFocusDepth,
	DimCreativeThinking,
	DimSocialPreference,
}

// Label carries the human-readable presentation of a dimension
type Label struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// DimensionLabels maps every dimension to its display label. A dimension
// missing here is a configuration error, caught at startup.
var DimensionLabels = map[string]Label{
	DimAttentionToDetail: {
		Label:       "Detail-Focused",
		Description: "Notices small errors and inconsistencies others miss; thrives in precision work.",
	},
	DimPatternRecognition: {
		Label:       "Pattern Thinker",
		Description: "Quickly spots trends, structures and anomalies in complex information.",
	},
	DimStructurePrefer: {
		Label:       "Structure-Oriented",
		Description: "Works best with clear routines, defined processes and predictable environments.",
	},
	DimFocusDepth: {
		Label:       "Deep Focus",
		Description: "Sustains long periods of concentrated work on a single demanding task.",
	},
	DimCreativeThinking: {
		Label:       "Creative Thinker",
		Description: "Generates original ideas and prefers open-ended problems over fixed procedures.",
	},
	DimSocialPreference: {
		Label:       "Socially Energized",
		Description: "Draws energy from collaboration and frequent interaction with others.",
	},
}

// IsKnownDimension reports whether name is in the fixed dimension set
func IsKnownDimension(name string) bool {
	_, ok := DimensionLabels[name]
	return ok
}

// PriorityIndex returns the tie-break rank of a dimension; unknown names
// sort last.
func PriorityIndex(name string) int {
	for i, dim := range DimensionPriority {
		if dim == name {
			return i
		}
	}
	return len(DimensionPriority)
}
