package engine

// Result is the outcome of one evaluation: the expression text plus either a
// numeric value or an error, never both. Text is what the display shows.
type Result struct {
	Expression string
	Value      float64
	Err        error
	Text       string
}

// Failed reports whether the evaluation produced an error.
func (r Result) Failed() bool { return r.Err != nil }

// Options configures an Engine. Zero values select the defaults: degrees,
// 10 significant digits, history capped at 100 entries.
type Options struct {
	Unit         AngleUnit
	Precision    int
	HistoryLimit int
}

// Engine owns the evaluator environment, the memory register, and the
// append-only calculation history. It is not safe for concurrent use; every
// front end drives it from a single loop.
type Engine struct {
	env   *Env
	prec  int
	limit int

	mem  float64
	ans  float64
	hist []Result
}

// New returns an Engine with memory cleared and an empty history.
func New(o Options) *Engine {
	if o.Precision <= 0 {
		o.Precision = 10
	}
	if o.HistoryLimit <= 0 {
		o.HistoryLimit = 100
	}
	return &Engine{
		env:   NewEnv(o.Unit),
		prec:  o.Precision,
		limit: o.HistoryLimit,
	}
}

// Env exposes the evaluation environment, mainly for graphing.
func (g *Engine) Env() *Env { return g.env }

// Precision returns the configured display precision.
func (g *Engine) Precision() int { return g.prec }

// Evaluate compiles and evaluates input with Ans and M bound, records the
// outcome (including failures) in history, and updates Ans on success.
func (g *Engine) Evaluate(input string) Result {
	g.env.Set("Ans", g.ans)
	g.env.Set("M", g.mem)

	r := Result{Expression: input}
	ex, err := Compile(input)
	if err == nil {
		r.Value, err = ex.Eval(g.env)
	}
	if err != nil {
		r.Err = err
		r.Value = 0
		r.Text = ErrorText(err)
	} else {
		r.Text = Format(r.Value, g.prec)
		g.ans = r.Value
	}
	g.Record(r)
	return r
}

// Record appends r to the history. It never fails; failed evaluations are
// recorded too so the display can scroll back through them. The oldest
// entries are dropped once the configured limit is reached.
func (g *Engine) Record(r Result) {
	if len(g.hist) >= g.limit {
		copy(g.hist, g.hist[1:])
		g.hist[len(g.hist)-1] = r
		return
	}
	g.hist = append(g.hist, r)
}

// History returns the recorded results, oldest first. The returned slice is
// a copy; entries are never mutated after append.
func (g *Engine) History() []Result {
	out := make([]Result, len(g.hist))
	copy(out, g.hist)
	return out
}

// ClearHistory empties the log. The memory register is unaffected.
func (g *Engine) ClearHistory() { g.hist = nil }

// Ans returns the value of the most recent successful evaluation, 0 if none.
func (g *Engine) Ans() float64 { return g.ans }

// StoreMemory overwrites the memory register.
func (g *Engine) StoreMemory(v float64) { g.mem = v }

// AddMemory implements the M+ key.
func (g *Engine) AddMemory(v float64) { g.mem += v }

// SubtractMemory implements the M- key.
func (g *Engine) SubtractMemory(v float64) { g.mem -= v }

// RecallMemory returns the memory register.
func (g *Engine) RecallMemory() float64 { return g.mem }

// ClearMemory resets the memory register to zero.
func (g *Engine) ClearMemory() { g.mem = 0 }
