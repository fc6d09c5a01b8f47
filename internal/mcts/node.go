package mcts

import (
	"math"
	"math/rand"
)

// resetEpsilon is the near-zero reward/visit seed Reset leaves a node at,
// matching the reference's "never truly empty" node bookkeeping so a UCT
// exploration term never divides by zero.
const resetEpsilon = 1e-6

// Node is one position in the search tree: the state it represents, its
// parent edge, and the set of actions not yet expanded into children.
type Node struct {
	State        State
	Parent       *Node
	ParentAction Action

	Children map[Action]*Node
	Untried  []Action

	Visits      int
	TotalReward float64
}

// NewNode wraps state as a fresh, unexpanded tree node.
func NewNode(state State, parent *Node, parentAction Action) *Node {
	var untried []Action
	if !state.IsTerminal() {
		untried = state.PossibleActions()
	}
	return &Node{
		State:        state,
		Parent:       parent,
		ParentAction: parentAction,
		Children:     make(map[Action]*Node),
		Untried:      untried,
		Visits:       0,
		TotalReward: 0,
	}
}

// IsTerminal reports whether the wrapped state has no legal moves left.
func (n *Node) IsTerminal() bool { return n.State.IsTerminal() }

// IsFullyExpanded reports whether every possible action from this node
// already has a child.
func (n *Node) IsFullyExpanded() bool {
	return len(n.Untried) == 0
}

// Expand materializes one uniformly random untried action into a new
// child, removing it from Untried (spec §4.5's "pick a uniformly random
// untried action"). The caller must check IsFullyExpanded first.
func (n *Node) Expand(rng *rand.Rand) *Node {
	idx := rng.Intn(len(n.Untried))
	action := n.Untried[idx]
	last := len(n.Untried) - 1
	n.Untried[idx] = n.Untried[last]
	n.Untried = n.Untried[:last]

	nextState, err := n.State.Move(action)
	if err != nil {
		panic("mcts: invariant violation: legal action rejected by Move: " + err.Error())
	}
	child := NewNode(nextState, n, action)
	n.Children[action] = child
	return child
}

// meanReward returns TotalReward/Visits, or 0 for an unvisited node.
func (n *Node) meanReward() float64 {
	if n.Visits == 0 {
		return 0
	}
	return n.TotalReward / float64(n.Visits)
}

// BestChild selects a child by the UCT formula — exploitation (mean
// reward) plus explorationConstant times the exploration term — breaking
// ties uniformly at random via rng (spec §4.5).
func (n *Node) BestChild(explorationConstant float64, rng *rand.Rand) *Node {
	var best []*Node
	bestScore := math.Inf(-1)
	logParent := math.Log(float64(n.Visits))

	for _, child := range n.Children {
		exploration := explorationConstant * math.Sqrt(2*logParent/float64(child.Visits))
		score := child.meanReward() + exploration
		switch {
		case score > bestScore:
			bestScore = score
			best = []*Node{child}
		case score == bestScore:
			best = append(best, child)
		}
	}
	if len(best) == 1 {
		return best[0]
	}
	return best[rng.Intn(len(best))]
}

// Backpropagate adds reward to this node's statistics and recurses up to
// the root.
func (n *Node) Backpropagate(reward float64) {
	n.Visits++
	n.TotalReward += reward
	if n.Parent != nil {
		n.Parent.Backpropagate(reward)
	}
}

// Reset restores the node (and, recursively, its children) to a
// freshly-visited state with a near-zero reward, without discarding the
// tree shape — spec §4.7's reuse-the-tree-across-generator-rounds
// behavior.
func (n *Node) Reset() {
	n.Visits = 1
	n.TotalReward = resetEpsilon
	for _, child := range n.Children {
		child.Reset()
	}
}
