package engine

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	dx := from.X - to.X
	if dx < 0 {
		dx = -dx
	}
	dy := from.Y - to.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// ReachableCells returns every cell reachable from start through
// non-obstacle cells, including start itself.
func ReachableCells(b *Board, start Position) map[Position]bool {
	seen := map[Position]bool{}
	if !b.CanMoveTo(start) {
		return seen
	}

	queue := []Position{start}
	seen[start] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			next, _ := cur.Step(d)
			if seen[next] || !b.CanMoveTo(next) {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}
	return seen
}

// UnreachableGems lists gems that no player starting from starts can reach
func UnreachableGems(b *Board, starts ...Position) []Position {
	reachable := map[Position]bool{}
	for _, s := range starts {
		for pos := range ReachableCells(b, s) {
			reachable[pos] = true
		}
	}

	var out []Position
	for _, gem := range b.Positions(Gem) {
		if !reachable[gem] {
			out = append(out, gem)
		}
	}
	return out
}

// FindNearestGem finds the closest remaining gem by Manhattan distance
func FindNearestGem(b *Board, from Position) (Position, int, bool) {
	minDistance := -1
	var nearest Position
	for _, gem := range b.Positions(Gem) {
		if d := ManhattanDistance(from, gem); minDistance == -1 || d < minDistance {
			minDistance = d
			nearest = gem
		}
	}
	return nearest, minDistance, minDistance != -1
}
