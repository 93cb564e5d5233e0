package enums

// TestStatus is the lifecycle state of a candidate rule.
// Transitions: draft → testing → tested. Tested is terminal; re-testing
// creates a new TestRun instead of reopening the candidate.
type TestStatus string

const (
	TestStatusDraft   TestStatus = "draft"
	TestStatusTesting TestStatus = "testing"
	TestStatusTested  TestStatus = "tested"
)

// CanTransitionTo enforces the forward-only candidate lifecycle.
func (s TestStatus) CanTransitionTo(next TestStatus) bool {
	switch s {
	case TestStatusDraft:
		return next == TestStatusTesting
	case TestStatusTesting:
		return next == TestStatusTested
	}
	return false
}

// String returns string representation
func (s TestStatus) String() string {
	return string(s)
}

// Recommendation is the sandbox verdict for a candidate rule.
type Recommendation string

const (
	RecommendApprove          Recommendation = "approve"
	RecommendNeedsTuning      Recommendation = "needs_tuning"
	RecommendReject           Recommendation = "reject"
	RecommendInsufficientData Recommendation = "insufficient_data"
)

// String returns string representation
func (r Recommendation) String() string {
	return string(r)
}

// BaselineMode selects what a candidate rule is compared against.
type BaselineMode string

const (
	BaselineNone         BaselineMode = "no_rules"
	BaselineGoldenRules  BaselineMode = "golden_rules"
	BaselineSpecificRule BaselineMode = "specific_rule"
)

// String returns string representation
func (b BaselineMode) String() string {
	return string(b)
}
