package bodyzone

// Label is a bilingual display label. Both languages are always populated.
type Label struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}

// Category groups zones by major body region.
type Category string

const (
	CategoryHead      Category = "head"
	CategoryNeck      Category = "neck"
	CategoryChest     Category = "chest"
	CategoryAbdomen   Category = "abdomen"
	CategoryBack      Category = "back"
	CategoryPelvis    Category = "pelvis"
	CategoryUpperLimb Category = "upper_limb"
	CategoryLowerLimb Category = "lower_limb"
)

// ClinicalMetadata carries the knowledge-base payload attached to a zone.
type ClinicalMetadata struct {
	CommonDiagnoses []string `json:"common_diagnoses,omitempty"`
	RedFlags        []string `json:"red_flags,omitempty"`
	CodingRefs      []string `json:"coding_refs,omitempty"`
}

// Definition describes one anatomical zone. IDs are hierarchical and dotted
// (e.g. "chest.left_parasternal"); only Terminal zones may be selected by a
// patient, non-terminal zones exist as category nodes in the tree.
type Definition struct {
	ID       string           `json:"id"`
	Label    Label            `json:"label"`
	Category Category         `json:"category"`
	Priority int              `json:"priority"` // 1 (lowest) .. 10 (highest clinical priority)
	Terminal bool             `json:"terminal"`
	Clinical ClinicalMetadata `json:"clinical_metadata"`
	ParentID string           `json:"parent_id,omitempty"`
	ChildIDs []string         `json:"child_ids,omitempty"`
}

// HasRedFlagMetadata reports whether the zone carries red-flag descriptors.
// Red-flag findings are only ever produced for zones where this is true.
func (d *Definition) HasRedFlagMetadata() bool {
	return len(d.Clinical.RedFlags) > 0
}
