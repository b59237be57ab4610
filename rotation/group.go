package rotation

import (
	"errors"
	"fmt"
	"sort"
)

// Order is the number of proper cube rotations.
const Order = 24

// Sentinel errors for group construction and lookup.
var (
	// ErrOpRange indicates an op id outside [0, Order).
	ErrOpRange = errors.New("rotation: op id out of range")
	// ErrGroupInvariant indicates group construction failed a
	// structural check (member count, inverse totality, closure).
	ErrGroupInvariant = errors.New("rotation: group invariant violated")
)

// Group holds the 24 proper cube rotations with stable ids and
// precomputed inverse/composition tables. It is immutable once built
// and safe for concurrent read-only sharing.
type Group struct {
	mats     [Order]Matrix
	index    map[Matrix]int
	inverse  [Order]int
	compose  [Order][Order]int
	identity int
}

// NewGroup enumerates all signed basis-permutation matrices, keeps
// those with determinant +1, deduplicates, and sorts them
// lexicographically over rows to assign ids 0..23. Inverse and
// composition tables are built and verified.
// Returns ErrGroupInvariant if any structural check fails.
func NewGroup() (*Group, error) {
	mats, err := generate()
	if err != nil {
		return nil, err
	}

	g := &Group{index: make(map[Matrix]int, Order), identity: -1}
	copy(g.mats[:], mats)
	for i, m := range g.mats {
		g.index[m] = i
		if m == Identity3 {
			g.identity = i
		}
	}
	if g.identity < 0 {
		return nil, fmt.Errorf("identity matrix missing: %w", ErrGroupInvariant)
	}

	// Inverse table: transpose must map back into the group.
	for i, m := range g.mats {
		j, ok := g.index[m.Transpose()]
		if !ok {
			return nil, fmt.Errorf("inverse of op %d not in group: %w", i, ErrGroupInvariant)
		}
		g.inverse[i] = j
	}

	// Composition table: closure is a checked invariant.
	for a := 0; a < Order; a++ {
		for b := 0; b < Order; b++ {
			c, ok := g.index[g.mats[a].Mul(g.mats[b])]
			if !ok {
				return nil, fmt.Errorf("compose(%d,%d) escapes group: %w", a, b, ErrGroupInvariant)
			}
			g.compose[a][b] = c
		}
	}

	return g, nil
}

// generate produces the sorted 24-member matrix list.
func generate() ([]Matrix, error) {
	basis := [3][3]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	perms := [][3]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	signs := []int{1, -1}

	seen := make(map[Matrix]bool, Order)
	mats := make([]Matrix, 0, Order)
	for _, p := range perms {
		for _, sx := range signs {
			for _, sy := range signs {
				for _, sz := range signs {
					var m Matrix
					s := [3]int{sx, sy, sz}
					for r := 0; r < 3; r++ {
						for c := 0; c < 3; c++ {
							m[r][c] = s[r] * basis[p[r]][c]
						}
					}
					if m.Det() != 1 || seen[m] {
						continue
					}
					seen[m] = true
					mats = append(mats, m)
				}
			}
		}
	}
	if len(mats) != Order {
		return nil, fmt.Errorf("expected %d proper rotations, got %d: %w", Order, len(mats), ErrGroupInvariant)
	}

	sort.Slice(mats, func(i, j int) bool { return less(mats[i], mats[j]) })
	return mats, nil
}

// Matrix returns the rotation matrix assigned to op.
// Returns ErrOpRange for ids outside [0, Order).
func (g *Group) Matrix(op int) (Matrix, error) {
	if op < 0 || op >= Order {
		return Matrix{}, fmt.Errorf("op %d: %w", op, ErrOpRange)
	}
	return g.mats[op], nil
}

// Inverse returns the id of the group inverse of op. Total for every
// valid id since the group is closed under inverse.
func (g *Group) Inverse(op int) (int, error) {
	if op < 0 || op >= Order {
		return 0, fmt.Errorf("op %d: %w", op, ErrOpRange)
	}
	return g.inverse[op], nil
}

// Compose returns the id of mats[a]·mats[b] (apply b, then a).
func (g *Group) Compose(a, b int) (int, error) {
	if a < 0 || a >= Order {
		return 0, fmt.Errorf("op %d: %w", a, ErrOpRange)
	}
	if b < 0 || b >= Order {
		return 0, fmt.Errorf("op %d: %w", b, ErrOpRange)
	}
	return g.compose[a][b], nil
}

// Identity returns the id of the identity rotation.
func (g *Group) Identity() int {
	return g.identity
}
