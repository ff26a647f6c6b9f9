package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// VTK legacy cell type IDs for the cells we accept
const (
	vtkTriangle = 5
	vtkTetra    = 10
	vtkTetra10  = 24
)

// ReadVTKLegacy reads a legacy-ASCII VTK unstructured grid file and returns
// its tetrahedral mesh. Quadratic tets are reduced to their four corner
// nodes. Triangle cells (an explicit surface, when present) are ignored; the
// boundary surface is re-derived from tet connectivity by ExtractSurface.
func ReadVTKLegacy(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return readVTKLegacy(file, filename)
}

func readVTKLegacy(r io.Reader, filename string) (*Mesh, error) {
	br := bufio.NewReader(r)

	header, err := br.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("%s: cannot read VTK header: %v", filename, err)
	}
	if !strings.HasPrefix(strings.TrimSpace(header), "# vtk DataFile Version") {
		return nil, fmt.Errorf("%s: not a legacy VTK file (missing header)", filename)
	}

	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	tok := &tokenScanner{s: scanner, name: filename}

	var (
		vertices  [][]float64
		cells     [][]int
		cellTypes []int
	)

	for tok.scan() {
		switch strings.ToUpper(tok.text()) {
		case "ASCII":
			// expected format
		case "BINARY":
			return nil, fmt.Errorf("%s: binary VTK files are not supported", filename)
		case "DATASET":
			kind, err := tok.nextWord()
			if err != nil {
				return nil, err
			}
			if strings.ToUpper(kind) != "UNSTRUCTURED_GRID" {
				return nil, fmt.Errorf("%s: unsupported VTK dataset %q", filename, kind)
			}
		case "POINTS":
			n, err := tok.nextInt()
			if err != nil {
				return nil, err
			}
			if _, err = tok.nextWord(); err != nil { // data type, e.g. float/double
				return nil, err
			}
			vertices = make([][]float64, n)
			for i := 0; i < n; i++ {
				coord := make([]float64, 3)
				for d := 0; d < 3; d++ {
					if coord[d], err = tok.nextFloat(); err != nil {
						return nil, fmt.Errorf("%s: point %d: %v", filename, i, err)
					}
				}
				vertices[i] = coord
			}
		case "CELLS":
			n, err := tok.nextInt()
			if err != nil {
				return nil, err
			}
			if _, err = tok.nextInt(); err != nil { // total index count, unused
				return nil, err
			}
			cells = make([][]int, n)
			for i := 0; i < n; i++ {
				nv, err := tok.nextInt()
				if err != nil {
					return nil, fmt.Errorf("%s: cell %d: %v", filename, i, err)
				}
				cell := make([]int, nv)
				for j := 0; j < nv; j++ {
					if cell[j], err = tok.nextInt(); err != nil {
						return nil, fmt.Errorf("%s: cell %d: %v", filename, i, err)
					}
				}
				cells[i] = cell
			}
		case "CELL_TYPES":
			n, err := tok.nextInt()
			if err != nil {
				return nil, err
			}
			cellTypes = make([]int, n)
			for i := 0; i < n; i++ {
				if cellTypes[i], err = tok.nextInt(); err != nil {
					return nil, fmt.Errorf("%s: cell type %d: %v", filename, i, err)
				}
			}
		case "POINT_DATA", "CELL_DATA":
			// attribute sections follow the geometry; nothing further to read
			goto done
		}
	}
done:

	if len(vertices) == 0 {
		return nil, fmt.Errorf("%s: VTK file contains no points", filename)
	}
	if len(cellTypes) != len(cells) {
		return nil, fmt.Errorf("%s: CELL_TYPES count %d does not match CELLS count %d",
			filename, len(cellTypes), len(cells))
	}

	var etov [][]int
	for i, cell := range cells {
		switch cellTypes[i] {
		case vtkTetra:
			if len(cell) != 4 {
				return nil, fmt.Errorf("%s: tetra cell %d has %d vertices", filename, i, len(cell))
			}
			etov = append(etov, cell)
		case vtkTetra10:
			if len(cell) != 10 {
				return nil, fmt.Errorf("%s: quadratic tetra cell %d has %d vertices", filename, i, len(cell))
			}
			etov = append(etov, cell[:4])
		case vtkTriangle:
			// explicit surface triangles, re-derived from tets instead
		default:
			return nil, fmt.Errorf("%s: unsupported VTK cell type %d", filename, cellTypes[i])
		}
	}
	if len(etov) == 0 {
		return nil, fmt.Errorf("%s: VTK file contains no tetrahedral cells", filename)
	}

	m := NewMesh(vertices, etov)
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %v", filename, err)
	}
	return m, nil
}

// tokenScanner walks whitespace-separated tokens, since legacy VTK wraps
// point and cell data across lines freely
type tokenScanner struct {
	s    *bufio.Scanner
	name string
}

func (t *tokenScanner) scan() bool   { return t.s.Scan() }
func (t *tokenScanner) text() string { return t.s.Text() }

func (t *tokenScanner) nextWord() (string, error) {
	if !t.s.Scan() {
		return "", fmt.Errorf("%s: unexpected end of file", t.name)
	}
	return t.s.Text(), nil
}

func (t *tokenScanner) nextInt() (int, error) {
	w, err := t.nextWord()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(w)
	if err != nil {
		return 0, fmt.Errorf("%s: expected integer, got %q", t.name, w)
	}
	return v, nil
}

func (t *tokenScanner) nextFloat() (float64, error) {
	w, err := t.nextWord()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: expected float, got %q", t.name, w)
	}
	return v, nil
}
