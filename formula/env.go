package formula

// EvalEnv resolves the named variables (GenApi's pVariable bindings) a
// formula references. Backed by a plain map rather than value.Store: a
// formula's variables are resolved fresh for each evaluation call by the
// owning SwissKnife/Converter node, which reads its pVariable nodes' current
// values and assembles the Env just before calling Eval.
type EvalEnv struct {
	vars map[string]float64
}

// NewEvalEnv constructs an empty EvalEnv.
func NewEvalEnv() *EvalEnv {
	return &EvalEnv{vars: make(map[string]float64)}
}

// Set binds name to v.
func (e *EvalEnv) Set(name string, v float64) {
	e.vars[name] = v
}

// Get resolves name, or ok=false if unbound.
func (e *EvalEnv) Get(name string) (float64, bool) {
	v, ok := e.vars[name]
	return v, ok
}
