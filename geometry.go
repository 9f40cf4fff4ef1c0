package prism

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// Vertex is one entry of the static vertex buffer: a position in
// normalized device space and a texture coordinate with Y growing
// downward (image convention).
type Vertex struct {
	Position [3]float32
	UV       [2]float32
}

// PentagonVertices is the fixed five-vertex pentagon drawn by the
// textured variant.
var PentagonVertices = [5]Vertex{
	{Position: [3]float32{-0.0868241, 0.49240386, 0.0}, UV: [2]float32{0.4131759, 0.00759614}},
	{Position: [3]float32{-0.49513406, 0.06958647, 0.0}, UV: [2]float32{0.0048659444, 0.43041354}},
	{Position: [3]float32{-0.21918549, -0.44939706, 0.0}, UV: [2]float32{0.28081453, 0.949397}},
	{Position: [3]float32{0.35966998, -0.3473291, 0.0}, UV: [2]float32{0.85967, 0.84732914}},
	{Position: [3]float32{0.44147372, 0.2347359, 0.0}, UV: [2]float32{0.9414737, 0.2652641}},
}

// PentagonIndices triangulates the pentagon as a fan around vertex 4.
// Every triangle winds counter-clockwise to survive back-face culling.
var PentagonIndices = [9]uint16{
	0, 1, 4,
	1, 2, 4,
	2, 3, 4,
}

// ProceduralVertexCount is the vertex count of the non-indexed
// procedural triangle, whose geometry lives entirely in the shader.
const ProceduralVertexCount = 3

// vertexLayout describes Vertex to the vertex fetch stage: Float32x3
// position at shader location 0, Float32x2 UV at location 1.
func vertexLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(Vertex{})),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{
				Offset:         0,
				ShaderLocation: 0,
				Format:         wgpu.VertexFormatFloat32x3,
			},
			{
				Offset:         uint64(unsafe.Offsetof(Vertex{}.UV)),
				ShaderLocation: 1,
				Format:         wgpu.VertexFormatFloat32x2,
			},
		},
	}
}

// Mesh owns the immutable vertex and index buffers for the pentagon.
// Both buffers are uploaded once at construction and never written
// again.
type Mesh struct {
	vertexBuf  *wgpu.Buffer
	indexBuf   *wgpu.Buffer
	indexCount uint32
}

// NewMesh uploads the pentagon geometry to the device.
func NewMesh(device *wgpu.Device) (*Mesh, error) {
	vertices := PentagonVertices
	vbuf, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "prism vertex buffer",
		Contents: wgpu.ToBytes(vertices[:]),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return nil, err
	}

	indices := PentagonIndices
	ibuf, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "prism index buffer",
		Contents: wgpu.ToBytes(indices[:]),
		Usage:    wgpu.BufferUsageIndex,
	})
	if err != nil {
		vbuf.Release()
		return nil, err
	}

	Logger().Debug("mesh uploaded",
		"vertices", len(vertices),
		"indices", len(indices))

	return &Mesh{
		vertexBuf:  vbuf,
		indexBuf:   ibuf,
		indexCount: uint32(len(indices)),
	}, nil
}

// IndexCount returns the number of indices the textured draw consumes.
func (m *Mesh) IndexCount() uint32 { return m.indexCount }

// Release frees the GPU buffers.
func (m *Mesh) Release() {
	if m.indexBuf != nil {
		m.indexBuf.Release()
		m.indexBuf = nil
	}
	if m.vertexBuf != nil {
		m.vertexBuf.Release()
		m.vertexBuf = nil
	}
}
