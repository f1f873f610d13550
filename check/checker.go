package check

// Checker is the structural record core of the type checker. It holds no
// state of its own beyond the evaluator collaborator; all memoization
// lives on the canonical type objects.
type Checker struct {
	Eval Evaluator
}

func NewChecker(eval Evaluator) *Checker {
	return &Checker{Eval: eval}
}
