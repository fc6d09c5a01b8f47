package mcts

import (
	"context"
	"math/rand"
	"time"

	"github.com/pokemon-sandwich/suggester/internal/metrics"
)

// Driver runs the select-expand-rollout-backpropagate loop (spec §4.5).
type Driver struct {
	ExplorationConstant float64
	MaxWalltime         time.Duration
	RolloutPolicy       Policy
	RNG                 *rand.Rand
}

// Search grows root's subtree until ctx is canceled or MaxWalltime
// elapses, then returns the child of root with the largest mean reward,
// breaking ties uniformly at random (spec §4.5's best-child selection,
// the same UCT rule used during descent with its exploration term
// zeroed out) — or root itself if it has no children yet.
func (d *Driver) Search(ctx context.Context, root *Node) (*Node, error) {
	start := time.Now()
	defer func() { metrics.SearchWalltime.Observe(time.Since(start).Seconds()) }()

	deadline := start.Add(d.MaxWalltime)
	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return d.bestChildOrRoot(root), ctx.Err()
		default:
		}

		leaf := d.selectAndExpand(root)
		reward := d.rollout(leaf.State)
		leaf.Backpropagate(reward)
	}
	return d.bestChildOrRoot(root), nil
}

// selectAndExpand descends the tree by UCT until it finds a node that is
// terminal or not yet fully expanded, expanding the latter by one child.
func (d *Driver) selectAndExpand(root *Node) *Node {
	node := root
	for !node.IsTerminal() {
		if !node.IsFullyExpanded() {
			return node.Expand(d.RNG)
		}
		node = node.BestChild(d.ExplorationConstant, d.RNG)
	}
	return node
}

// rollout plays out state to a terminal position using RolloutPolicy and
// returns the terminal reward.
func (d *Driver) rollout(state State) float64 {
	depth := 0
	for !state.IsTerminal() {
		actions := state.PossibleActions()
		action := d.RolloutPolicy.Select(state, actions, d.RNG)
		next, err := state.Move(action)
		if err != nil {
			panic("mcts: invariant violation: legal action rejected by Move: " + err.Error())
		}
		state = next
		depth++
	}
	metrics.RolloutDepth.Observe(float64(depth))
	return state.Reward()
}

func (d *Driver) bestChildOrRoot(root *Node) *Node {
	if len(root.Children) == 0 {
		return root
	}
	return root.BestChild(0, d.RNG)
}
