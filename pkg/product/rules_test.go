package product

import (
	"context"
	"testing"
)

type staticView struct{ products []BaseProduct }

func (v staticView) ListProducts() []BaseProduct { return v.products }
func (v staticView) FindProduct(token string) (BaseProduct, bool) {
	for _, p := range v.products {
		if p.Token != nil && *p.Token == token {
			return p, true
		}
	}
	return BaseProduct{}, false
}

func TestVocabularyRuleBlocksInvalidEnums(t *testing.T) {
	engine := NewRulesEngine()
	bad := &BaseProduct{Type: "WINDOW", Subtype: SubtypeMonolithic}
	res, err := engine.Evaluate(context.Background(), staticView{}, []Change{
		{Action: ActionCreate, Token: "t1", After: bad},
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !res.HasBlocking() {
		t.Fatalf("expected blocking violation for invalid type")
	}
	if res.Violations[0].Rule != "product_vocabulary" || res.Violations[0].Token != "t1" {
		t.Fatalf("unexpected violation: %+v", res.Violations[0])
	}
}

func TestVocabularyRuleAllowsEmptyAndValidEnums(t *testing.T) {
	engine := NewRulesEngine()
	ok, err := NewBaseProduct("GLAZING", "MONOLITHIC", "PROPOSED")
	if err != nil {
		t.Fatalf("new product: %v", err)
	}
	empty := &BaseProduct{}
	res, err := engine.Evaluate(context.Background(), staticView{}, []Change{
		{Action: ActionCreate, Token: "a", After: ok},
		{Action: ActionCreate, Token: "b", After: empty},
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(res.Violations) != 0 {
		t.Fatalf("unexpected violations: %+v", res.Violations)
	}
}

func TestVocabularyRuleSkipsDeletes(t *testing.T) {
	engine := NewRulesEngine()
	bad := &BaseProduct{Type: "WINDOW"}
	res, err := engine.Evaluate(context.Background(), staticView{}, []Change{
		{Action: ActionDelete, Token: "gone", Before: bad},
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(res.Violations) != 0 {
		t.Fatalf("deletes must not be vocabulary checked: %+v", res.Violations)
	}
}

func TestPredefinedThermalRule(t *testing.T) {
	engine := NewRulesEngine()

	coated, _ := NewBaseProduct("GLAZING", "COATED", "PROPOSED")
	coated.PhysicalProperties = &PhysicalProperties{PredefinedEmissivityFront: f64(0.84)}
	res, err := engine.Evaluate(context.Background(), staticView{}, []Change{
		{Action: ActionCreate, Token: "c", After: coated},
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !res.HasBlocking() {
		t.Fatalf("coated glass with predefined emissivity must be blocked")
	}

	mono, _ := NewBaseProduct("GLAZING", "MONOLITHIC", "PROPOSED")
	mono.PhysicalProperties = &PhysicalProperties{PredefinedEmissivityFront: f64(0.84)}
	res, err = engine.Evaluate(context.Background(), staticView{}, []Change{
		{Action: ActionCreate, Token: "m", After: mono},
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(res.Violations) != 0 {
		t.Fatalf("monolithic products may carry predefined values: %+v", res.Violations)
	}

	// No predefined values present means nothing to block regardless of subtype.
	bare, _ := NewBaseProduct("GLAZING", "COATED", "PROPOSED")
	res, err = engine.Evaluate(context.Background(), staticView{}, []Change{
		{Action: ActionCreate, Token: "n", After: bare},
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(res.Violations) != 0 {
		t.Fatalf("unexpected violations: %+v", res.Violations)
	}
}

func TestResultMergeAndHasBlocking(t *testing.T) {
	var r Result
	if r.HasBlocking() {
		t.Fatalf("empty result must not block")
	}
	r.Merge(Result{Violations: []Violation{{Rule: "x", Severity: SeverityWarn}}})
	if r.HasBlocking() {
		t.Fatalf("warn severity must not block")
	}
	r.Merge(Result{Violations: []Violation{{Rule: "y", Severity: SeverityBlock}}})
	if !r.HasBlocking() || len(r.Violations) != 2 {
		t.Fatalf("merge lost violations: %+v", r.Violations)
	}
}
