// Package generator wires the ingredient table, effect evaluator, and MCTS
// driver into the public recipe-discovery entry point (spec §4.7).
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pokemon-sandwich/suggester/internal/effect"
	"github.com/pokemon-sandwich/suggester/internal/ingredient"
	"github.com/pokemon-sandwich/suggester/internal/mcts"
	"github.com/pokemon-sandwich/suggester/internal/metrics"
	"github.com/pokemon-sandwich/suggester/internal/sandwicherrors"
	"github.com/pokemon-sandwich/suggester/internal/sandwichlog"
)

// Options carries the construction bounds and MCTS parameters a Generator
// needs (spec §4.7 / §6).
type Options struct {
	NumPlayers    int
	MinFillings   int
	MaxFillings   int
	MaxCondiments int

	Driver *mcts.Driver
}

// InvalidFillingBoundsError reports MaxFillings < MinFillings.
type InvalidFillingBoundsError struct {
	MinFillings, MaxFillings int
}

func (e *InvalidFillingBoundsError) Error() string {
	return fmt.Sprintf("invalid filling bounds: max_fillings (%d) < min_fillings (%d)", e.MaxFillings, e.MinFillings)
}

func (e *InvalidFillingBoundsError) ErrorKind() sandwicherrors.Kind {
	return sandwicherrors.KindConfiguration
}

// InvalidPlayerCountError reports a player count outside 1-4.
type InvalidPlayerCountError struct {
	NumPlayers int
}

func (e *InvalidPlayerCountError) Error() string {
	return fmt.Sprintf("invalid player count: %d (must be 1-4)", e.NumPlayers)
}

func (e *InvalidPlayerCountError) ErrorKind() sandwicherrors.Kind {
	return sandwicherrors.KindConfiguration
}

// Generator is the public recipe-discovery entry point: repeatedly runs
// MCTS searches against one target set and surfaces newly discovered
// terminal recipes (spec §4.7).
type Generator struct {
	table     *ingredient.Table
	evaluator *effect.Evaluator
	targets   *effect.TargetSet
	opts      Options
	seen      *mcts.DuplicateSet
	root      *mcts.Node
	log       *sandwichlog.Logger
	sessionID string
}

// New validates opts and constructs a Generator ready to Run.
func New(table *ingredient.Table, targets *effect.TargetSet, opts Options, log *sandwichlog.Logger) (*Generator, error) {
	if opts.MaxFillings < opts.MinFillings {
		return nil, &InvalidFillingBoundsError{MinFillings: opts.MinFillings, MaxFillings: opts.MaxFillings}
	}
	if opts.NumPlayers < 1 || opts.NumPlayers > 4 {
		return nil, &InvalidPlayerCountError{NumPlayers: opts.NumPlayers}
	}
	if log == nil {
		log = sandwichlog.Nop()
	}

	evaluator := effect.NewEvaluator(table)
	seen := mcts.NewDuplicateSet()
	initial := mcts.NewSandwichState(table, evaluator, targets,
		opts.NumPlayers, opts.MinFillings, opts.MaxFillings, opts.MaxCondiments, seen)

	return &Generator{
		table:     table,
		evaluator: evaluator,
		targets:   targets,
		opts:      opts,
		seen:      seen,
		root:      mcts.NewNode(initial, nil, nil),
		log:       log,
		sessionID: uuid.New().String(),
	}, nil
}

// Result is one newly discovered terminal recipe.
type Result struct {
	State *mcts.SandwichState
	Node  *mcts.Node
}

// Run performs numIter generator iterations (spec §4.7), returning every
// newly discovered terminal recipe across all of them.
func (g *Generator) Run(ctx context.Context, numIter int) ([]Result, error) {
	var discovered []Result
	emitted := make(map[string]struct{})

	g.log.Info("generator session starting",
		zap.String("session_id", g.sessionID),
		zap.Int("num_iter", numIter),
	)

	for iter := 0; iter < numIter; iter++ {
		select {
		case <-ctx.Done():
			return discovered, ctx.Err()
		default:
		}

		if g.root.Visits > 0 {
			g.root.Reset()
		}

		current := g.root
		for !current.IsTerminal() {
			next, err := g.opts.Driver.Search(ctx, current)
			if err != nil {
				return discovered, err
			}
			current = next
		}

		g.log.Debug("generator iteration complete",
			zap.Int("iteration", iter),
			zap.Int("tree_visits", g.root.Visits),
		)
		metrics.GeneratorIterations.Inc()

		for _, leaf := range g.terminalLeaves(g.root) {
			ss := leaf.State.(*mcts.SandwichState)
			key := ss.Recipe.Key()
			if _, ok := emitted[key]; ok {
				continue
			}
			emitted[key] = struct{}{}
			metrics.RecipesDiscoveredTotal.Inc()
			discovered = append(discovered, Result{State: ss, Node: leaf})
		}
	}
	return discovered, nil
}

// terminalLeaves walks the tree collecting every node whose state is
// terminal (spec §4.7 step 3).
func (g *Generator) terminalLeaves(n *mcts.Node) []*mcts.Node {
	if n.IsTerminal() {
		return []*mcts.Node{n}
	}
	var out []*mcts.Node
	for _, child := range n.Children {
		out = append(out, g.terminalLeaves(child)...)
	}
	return out
}

// NewDriver builds an *mcts.Driver from the named rollout policy (spec §6's
// --rollout-policy flag).
func NewDriver(policyName string, p float64, explorationConstant float64, maxWalltimeMS int64, seed int64) (*mcts.Driver, error) {
	var policy mcts.Policy
	switch policyName {
	case "uniform", "":
		policy = mcts.UniformPolicy{}
	case "stop-biased":
		sb, err := mcts.NewStopBiasedPolicy(p)
		if err != nil {
			return nil, err
		}
		policy = sb
	case "slot-weighted":
		sw, err := mcts.NewSlotWeightedPolicy(p)
		if err != nil {
			return nil, err
		}
		policy = sw
	default:
		return nil, fmt.Errorf("unknown rollout policy %q", policyName)
	}

	return &mcts.Driver{
		ExplorationConstant: explorationConstant,
		MaxWalltime:         msToDuration(maxWalltimeMS),
		RolloutPolicy:       policy,
		RNG:                 rand.New(rand.NewSource(seed)),
	}, nil
}

func msToDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
