package automation

// outcome is the tri-state result of one fallback strategy.
type outcome int

const (
	// outcomeOK: the strategy succeeded; stop the chain.
	outcomeOK outcome = iota
	// outcomeSkip: the strategy does not apply to this element; try the next
	// without counting it as a failure.
	outcomeSkip
	// outcomeFail: the strategy applied but did not work; try the next.
	outcomeFail
)

// strategy is one step in an ordered fallback chain.
type strategy struct {
	name string
	run  func() outcome
}

// runChain executes strategies in order and returns the name of the first
// one that succeeds.
func runChain(chain []strategy) (string, bool) {
	for _, st := range chain {
		if st.run() == outcomeOK {
			return st.name, true
		}
	}
	return "", false
}
