package scan

// Stats is the diagnostic record a scan can return alongside its
// result. An earlier incarnation of this tool kept such counters in
// process globals; here they are an explicit value the caller owns.
type Stats struct {
	// PixelsVisited counts pixel samples taken, including run
	// extensions and border probes.
	PixelsVisited uint64

	// RunsExamined counts the candidate runs a line scan compared
	// against its best.
	RunsExamined uint64

	// AnchorsProbed counts the filled anchors the square scan probed
	// diagonally.
	AnchorsProbed uint64

	// BordersVerified counts full four-side verification attempts.
	BordersVerified uint64

	// ShrinkSteps counts candidate squares retried at a smaller size
	// after a failed verification.
	ShrinkSteps uint64

	// PrunedEarly is set when the square scan terminated before
	// exhausting its anchors because no remaining anchor could beat
	// the best square.
	PrunedEarly bool
}

// addPixels accumulates n pixel visits. All counters are safe on a nil
// receiver so the scanners can run statless without branching at every
// sample site.
func (s *Stats) addPixels(n uint64) {
	if s != nil {
		s.PixelsVisited += n
	}
}

func (s *Stats) addRun() {
	if s != nil {
		s.RunsExamined++
	}
}

func (s *Stats) addAnchor() {
	if s != nil {
		s.AnchorsProbed++
	}
}

func (s *Stats) addVerification() {
	if s != nil {
		s.BordersVerified++
	}
}

func (s *Stats) addShrink() {
	if s != nil {
		s.ShrinkSteps++
	}
}

func (s *Stats) markPruned() {
	if s != nil {
		s.PrunedEarly = true
	}
}
