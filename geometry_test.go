package prism

import (
	"testing"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

func TestVertexLayout(t *testing.T) {
	layout := vertexLayout()
	if want := uint64(unsafe.Sizeof(Vertex{})); layout.ArrayStride != want {
		t.Errorf("ArrayStride = %d, want %d", layout.ArrayStride, want)
	}
	if layout.ArrayStride != 20 {
		t.Errorf("ArrayStride = %d, want 20 (3+2 float32)", layout.ArrayStride)
	}
	if len(layout.Attributes) != 2 {
		t.Fatalf("len(Attributes) = %d, want 2", len(layout.Attributes))
	}
	pos := layout.Attributes[0]
	if pos.Offset != 0 || pos.ShaderLocation != 0 || pos.Format != wgpu.VertexFormatFloat32x3 {
		t.Errorf("position attribute = %+v, want Float32x3 at offset 0 location 0", pos)
	}
	uv := layout.Attributes[1]
	if uv.Offset != 12 || uv.ShaderLocation != 1 || uv.Format != wgpu.VertexFormatFloat32x2 {
		t.Errorf("uv attribute = %+v, want Float32x2 at offset 12 location 1", uv)
	}
}

func TestPentagonIndicesInRange(t *testing.T) {
	if len(PentagonIndices) != 9 {
		t.Fatalf("len(PentagonIndices) = %d, want 9", len(PentagonIndices))
	}
	for i, idx := range PentagonIndices {
		if int(idx) >= len(PentagonVertices) {
			t.Errorf("index %d = %d, out of range for %d vertices", i, idx, len(PentagonVertices))
		}
	}
}

func TestPentagonIndicesFormFan(t *testing.T) {
	// Every triangle of the fan shares vertex 4.
	for tri := 0; tri < len(PentagonIndices)/3; tri++ {
		a, b, c := PentagonIndices[3*tri], PentagonIndices[3*tri+1], PentagonIndices[3*tri+2]
		if a != 4 && b != 4 && c != 4 {
			t.Errorf("triangle %d (%d,%d,%d) does not include fan center 4", tri, a, b, c)
		}
	}
}

// signedArea2 returns twice the signed area of the triangle; positive
// means counter-clockwise in the XY plane.
func signedArea2(a, b, c Vertex) float32 {
	return (b.Position[0]-a.Position[0])*(c.Position[1]-a.Position[1]) -
		(b.Position[1]-a.Position[1])*(c.Position[0]-a.Position[0])
}

func TestPentagonTrianglesWindCCW(t *testing.T) {
	for tri := 0; tri < len(PentagonIndices)/3; tri++ {
		a := PentagonVertices[PentagonIndices[3*tri]]
		b := PentagonVertices[PentagonIndices[3*tri+1]]
		c := PentagonVertices[PentagonIndices[3*tri+2]]
		if area := signedArea2(a, b, c); area <= 0 {
			t.Errorf("triangle %d winds clockwise (signed area %v), would be culled", tri, area)
		}
	}
}

func TestPentagonUVsInUnitSquare(t *testing.T) {
	for i, v := range PentagonVertices {
		for axis, u := range v.UV {
			if u < 0 || u > 1 {
				t.Errorf("vertex %d uv[%d] = %v, want within [0,1]", i, axis, u)
			}
		}
	}
}
