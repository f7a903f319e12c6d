package product

import "context"

// Severity captures rule outcomes.
type Severity string

// Rule evaluation severities determine commit behavior.
const (
	// SeverityBlock blocks transaction commit.
	SeverityBlock Severity = "block"
	// SeverityWarn records a warning but allows commit.
	SeverityWarn Severity = "warn"
	SeverityLog  Severity = "log"
)

// Action indicates the type of modification performed.
type Action string

// Change actions captured during store transactions.
const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Change describes a mutation applied to a product during a transaction.
type Change struct {
	Action Action
	Token  string
	Before *BaseProduct
	After  *BaseProduct
}

// Violation reports a failed rule evaluation.
type Violation struct {
	Rule     string
	Severity Severity
	Message  string
	Token    string
}

// Result aggregates violations from the rules engine.
type Result struct {
	Violations []Violation
}

// Merge appends violations from another result.
func (r *Result) Merge(other Result) {
	if len(other.Violations) == 0 {
		return
	}
	r.Violations = append(r.Violations, other.Violations...)
}

// HasBlocking returns true if the result contains blocking violations.
func (r Result) HasBlocking() bool {
	for _, v := range r.Violations {
		if v.Severity == SeverityBlock {
			return true
		}
	}
	return false
}

// RuleViolationError is returned when blocking violations are present.
type RuleViolationError struct {
	Result Result
}

func (e RuleViolationError) Error() string {
	return "transaction blocked by rules"
}

// RuleView provides read-only access to stored products for rule
// evaluation.
type RuleView interface {
	ListProducts() []BaseProduct
	FindProduct(token string) (BaseProduct, bool)
}

// Rule defines an evaluation executed within a transaction boundary.
type Rule interface {
	Name() string
	Evaluate(ctx context.Context, view RuleView, changes []Change) (Result, error)
}

// RulesEngine orchestrates rule evaluation.
type RulesEngine struct {
	rules []Rule
}

// NewRulesEngine constructs an engine with the standard product rules
// registered.
func NewRulesEngine() *RulesEngine {
	e := &RulesEngine{}
	e.Register(VocabularyRule{})
	e.Register(PredefinedThermalRule{})
	return e
}

// Register appends a rule to the engine.
func (e *RulesEngine) Register(rule Rule) {
	e.rules = append(e.rules, rule)
}

// Evaluate executes all registered rules and aggregates their results.
func (e *RulesEngine) Evaluate(ctx context.Context, view RuleView, changes []Change) (Result, error) {
	var combined Result
	for _, rule := range e.rules {
		res, err := rule.Evaluate(ctx, view, changes)
		if err != nil {
			return Result{}, err
		}
		combined.Merge(res)
	}
	return combined, nil
}

// VocabularyRule blocks products whose enum fields fall outside their
// vocabularies. The deserialization boundary already rejects bad strings;
// this rule guards products assembled programmatically.
type VocabularyRule struct{}

// Name identifies the rule.
func (VocabularyRule) Name() string { return "product_vocabulary" }

// Evaluate checks the enum fields of every created or updated product.
func (VocabularyRule) Evaluate(_ context.Context, _ RuleView, changes []Change) (Result, error) {
	var res Result
	for _, change := range changes {
		if change.Action == ActionDelete || change.After == nil {
			continue
		}
		p := change.After
		check := func(field, value string, valid bool) {
			if value == "" || valid {
				return
			}
			res.Violations = append(res.Violations, Violation{
				Rule:     VocabularyRule{}.Name(),
				Severity: SeverityBlock,
				Message:  InvalidEnumValueError{Field: field, Value: value}.Error(),
				Token:    change.Token,
			})
		}
		check("type", string(p.Type), p.Type.Valid())
		check("subtype", string(p.Subtype), p.Subtype.Valid())
		check("token_type", string(p.TokenType), p.TokenType.Valid())
		check("coated_side", string(p.CoatedSide), p.CoatedSide.Valid())
		check("data_file_type", string(p.DataFileType), p.DataFileType.Valid())
	}
	return res, nil
}

// PredefinedThermalRule blocks predefined TIR/emissivity overrides on
// products that may not carry them: anything other than MONOLITHIC or an
// uncoated LAMINATE.
type PredefinedThermalRule struct{}

// Name identifies the rule.
func (PredefinedThermalRule) Name() string { return "predefined_thermal_values" }

// Evaluate checks created and updated products for disallowed overrides.
func (PredefinedThermalRule) Evaluate(_ context.Context, _ RuleView, changes []Change) (Result, error) {
	var res Result
	for _, change := range changes {
		if change.Action == ActionDelete || change.After == nil {
			continue
		}
		p := change.After
		if !hasPredefinedThermalValues(p) || p.CanHavePredefinedThermalValues() {
			continue
		}
		res.Violations = append(res.Violations, Violation{
			Rule:     PredefinedThermalRule{}.Name(),
			Severity: SeverityBlock,
			Message:  "predefined thermal values only allowed on MONOLITHIC or uncoated LAMINATE products",
			Token:    change.Token,
		})
	}
	return res, nil
}

func hasPredefinedThermalValues(p *BaseProduct) bool {
	phys := p.PhysicalProperties
	if phys == nil {
		return false
	}
	return phys.PredefinedTIRFront != nil ||
		phys.PredefinedTIRBack != nil ||
		phys.PredefinedEmissivityFront != nil ||
		phys.PredefinedEmissivityBack != nil
}
