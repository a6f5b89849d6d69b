package connectivity

// Background returns the dual (background) connectivity B(n,k) required to
// keep the discrete Jordan property well-defined for a foreground
// connectivity (n,k):
//
//	B(2,1) = (2,0)                (fixed exception)
//	B(3,2) = (3,0)                (fixed exception)
//	B(n,k) = (n, n-1)            otherwise (including k == 0 and k == n-1)
//
// Behavior for n >= 4 follows the generic rule above; it reproduces the
// original source's generic BackgroundConnectivity template, which is only
// separately verified for n in {2,3} (see DESIGN.md, Open Question 1).
func Background(c *Connectivity) *Connectivity {
	n, k := backgroundNK(c.n, c.k)
	return build(n, k)
}

func backgroundNK(n, k int) (int, int) {
	switch {
	case n == 2 && k == 1:
		return 2, 0
	case n == 3 && k == 2:
		return 3, 0
	default:
		return n, n - 1
	}
}

// Neighborhood returns the neighborhood connectivity N(C) paired with a
// foreground connectivity C when traversing the unit cube for topological
// number computation (Malandain's (n, n') pairing):
//
//	N(2,1) = (2,0)    (fixed exception)
//	N(3,2) = (3,1)    (fixed exception)
//	N(n,k) = (n,k)     otherwise (the connectivity is its own neighborhood
//	                     connectivity)
func Neighborhood(c *Connectivity) *Connectivity {
	n, k := neighborhoodNK(c.n, c.k)
	return build(n, k)
}

func neighborhoodNK(n, k int) (int, int) {
	switch {
	case n == 2 && k == 1:
		return 2, 0
	case n == 3 && k == 2:
		return 3, 1
	default:
		return n, k
	}
}
