package diag

// Rule identifies the configurable severity bucket a diagnostic reports
// under. The evaluator maps rules to severities; this core only selects
// them.
type Rule string

const (
	// RuleGeneral covers structural and shape errors.
	RuleGeneral Rule = "general"
	// RuleRecordNotRequiredAccess is the softer advisory rule used when
	// every contributing error stems from accessing a not-required field.
	RuleRecordNotRequiredAccess Rule = "recordNotRequiredAccess"
)

// AccessMethod distinguishes the three subscript access paths of a
// record type; each reports under its own message category.
type AccessMethod int

const (
	AccessGet AccessMethod = iota
	AccessSet
	AccessDel
)

func (m AccessMethod) String() string {
	switch m {
	case AccessGet:
		return "recordAccess"
	case AccessSet:
		return "recordSet"
	case AccessDel:
		return "recordDelete"
	default:
		panic("unreachable")
	}
}
