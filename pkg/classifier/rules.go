package classifier

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/transitzone/transitzone/pkg/ctm"
	"github.com/transitzone/transitzone/pkg/feeds"
)

// RuleEnv is the environment a per-agency rail rule expression is evaluated
// against, one evaluation per stop.
type RuleEnv struct {
	LocationType string
	IsStation    bool
	IsEntrance   bool
	HasParent    bool

	Latitude  float64
	Longitude float64

	AgencyRailOnly bool

	HasRailService  bool
	HasFerryService bool

	// HasConnection is true when at least two distinct routes call at the
	// stop over the whole service day, which is what makes a ferry terminal a
	// "terminal with a connection".
	HasConnection bool
}

// DefaultRailRule covers the statute's always-qualifying branches: anything
// belonging to a rail-only operator, a rail-served station or child platform,
// or a ferry terminal with a connection.
const DefaultRailRule = `AgencyRailOnly || (HasRailService && (IsStation || HasParent)) || (HasFerryService && HasConnection)`

// RailIdentifier evaluates the configured rail rule for a stop's agency,
// falling back to DefaultRailRule for agencies without one.
type RailIdentifier struct {
	programs map[string]*vm.Program
	fallback *vm.Program
}

// NewRailIdentifier compiles every configured rule up front so a malformed
// rule fails the run before any data is processed.
func NewRailIdentifier(definitions []feeds.Definition) (*RailIdentifier, error) {
	fallback, err := expr.Compile(DefaultRailRule, expr.Env(RuleEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("failed to compile default rail rule: %w", err)
	}

	identifier := &RailIdentifier{
		programs: map[string]*vm.Program{},
		fallback: fallback,
	}

	for _, definition := range definitions {
		if definition.RailRule == "" {
			continue
		}

		program, err := expr.Compile(definition.RailRule, expr.Env(RuleEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("agency %s: failed to compile rail rule: %w", definition.Identifier, err)
		}

		identifier.programs[definition.Identifier] = program
	}

	return identifier, nil
}

func (r *RailIdentifier) IsRail(env RuleEnv, agencyRef string) (bool, error) {
	program := r.programs[agencyRef]
	if program == nil {
		program = r.fallback
	}

	output, err := expr.Run(program, env)
	if err != nil {
		return false, fmt.Errorf("agency %s: rail rule failed: %w", agencyRef, err)
	}

	return output.(bool), nil
}

func buildRuleEnv(stop ctm.Stop, served []ctm.TransportType, connections int, railOnly bool) RuleEnv {
	env := RuleEnv{
		LocationType:   string(stop.LocationType),
		IsStation:      stop.LocationType == ctm.LocationTypeStation,
		IsEntrance:     stop.LocationType == ctm.LocationTypeEntrance,
		HasParent:      stop.HasParentStation(),
		Latitude:       stop.Location.Latitude,
		Longitude:      stop.Location.Longitude,
		AgencyRailOnly: railOnly,
		HasConnection:  connections >= 2,
	}

	for _, transportType := range served {
		if transportType.IsRailLike() {
			env.HasRailService = true
		}
		if transportType.IsFerry() {
			env.HasFerryService = true
		}
	}

	return env
}
