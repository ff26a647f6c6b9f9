package mesh

// Standard test meshes shared by the package tests and by downstream solver
// tests. All builders return fully connected meshes with the boundary
// surface already extracted.

// SingleTetMesh returns the unit reference tetrahedron. All four vertices lie
// on the boundary.
func SingleTetMesh() *Mesh {
	vertices := [][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	etov := [][]int{{0, 1, 2, 3}}
	return NewMesh(vertices, etov)
}

// OctahedronMesh returns a regular octahedron of the given circumradius split
// into eight tets around a center vertex. Vertex 0 is the only interior node,
// which makes the mesh the smallest useful Dirichlet test case.
func OctahedronMesh(radius float64) *Mesh {
	vertices := [][]float64{
		{0, 0, 0},        // 0: center, interior
		{radius, 0, 0},   // 1: +x
		{-radius, 0, 0},  // 2: -x
		{0, radius, 0},   // 3: +y
		{0, -radius, 0},  // 4: -y
		{0, 0, radius},   // 5: +z
		{0, 0, -radius},  // 6: -z
	}
	// one tet per octant face
	etov := [][]int{
		{0, 1, 3, 5},
		{0, 3, 2, 5},
		{0, 2, 4, 5},
		{0, 4, 1, 5},
		{0, 3, 1, 6},
		{0, 2, 3, 6},
		{0, 4, 2, 6},
		{0, 1, 4, 6},
	}
	return NewMesh(vertices, etov)
}

// BoxMesh returns a structured nx x ny x nz vertex grid spanning the given
// extents, with each hex cell split into six tets (Kuhn subdivision). Vertex
// count is nx*ny*nz; every grid dimension must be at least 2.
func BoxMesh(nx, ny, nz int, lx, ly, lz float64) *Mesh {
	if nx < 2 || ny < 2 || nz < 2 {
		panic("BoxMesh requires at least 2 vertices per dimension")
	}
	vertices := make([][]float64, 0, nx*ny*nz)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				vertices = append(vertices, []float64{
					lx * float64(i) / float64(nx-1),
					ly * float64(j) / float64(ny-1),
					lz * float64(k) / float64(nz-1),
				})
			}
		}
	}
	vid := func(i, j, k int) int { return i + nx*(j+ny*k) }

	// Kuhn subdivision: six tets per hex cell, all sharing the main diagonal
	kuhn := [6][4][3]int{
		{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}},
		{{0, 0, 0}, {1, 1, 0}, {0, 1, 0}, {1, 1, 1}},
		{{0, 0, 0}, {0, 1, 0}, {0, 1, 1}, {1, 1, 1}},
		{{0, 0, 0}, {0, 1, 1}, {0, 0, 1}, {1, 1, 1}},
		{{0, 0, 0}, {0, 0, 1}, {1, 0, 1}, {1, 1, 1}},
		{{0, 0, 0}, {1, 0, 1}, {1, 0, 0}, {1, 1, 1}},
	}

	etov := make([][]int, 0, 6*(nx-1)*(ny-1)*(nz-1))
	for k := 0; k < nz-1; k++ {
		for j := 0; j < ny-1; j++ {
			for i := 0; i < nx-1; i++ {
				for _, tet := range kuhn {
					elem := make([]int, 4)
					for v, off := range tet {
						elem[v] = vid(i+off[0], j+off[1], k+off[2])
					}
					etov = append(etov, elem)
				}
			}
		}
	}
	return NewMesh(vertices, etov)
}
