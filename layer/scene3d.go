package layer

import (
	"errors"
	"fmt"
	"slices"

	"github.com/chewxy/math32"
)

// Errors reported by Mesh.Validate.
var (
	// ErrIndexCount is returned when a mesh index list is not a multiple of 3.
	ErrIndexCount = errors.New("layer: mesh index count is not a multiple of 3")

	// ErrIndexRange is returned when a mesh index refers to a missing vertex.
	ErrIndexRange = errors.New("layer: mesh index out of range")
)

// Vertex is one mesh vertex.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	UV       [2]float32
}

// Material describes the surface of a mesh.
type Material struct {
	Diffuse   [4]float32
	Specular  [4]float32
	Shininess float32
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Material Material
}

// TriangleCount returns the number of complete triangles in the index list.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks that the index list describes whole triangles and only
// refers to existing vertices.
func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return ErrIndexCount
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("%w: indices[%d] = %d, %d vertices", ErrIndexRange, i, idx, len(m.Vertices))
		}
	}
	return nil
}

// Camera is a look-at camera.
type Camera struct {
	Position [3]float32
	Target   [3]float32
	Up       [3]float32
}

// Forward returns the unit vector from Position towards Target.
// It returns the zero vector when the two points coincide.
func (c Camera) Forward() [3]float32 {
	d := [3]float32{
		c.Target[0] - c.Position[0],
		c.Target[1] - c.Position[1],
		c.Target[2] - c.Position[2],
	}
	n := math32.Sqrt(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])
	if n == 0 {
		return [3]float32{}
	}
	return [3]float32{d[0] / n, d[1] / n, d[2] / n}
}

// Scene3D is a layer holding 3D meshes and a camera.
//
// Scene layers are data only: the compositor does not rasterize them yet.
type Scene3D struct {
	Properties
	meshes []Mesh
	camera Camera
}

// NewScene3D creates an empty scene with the camera at (0, 0, 5) looking at
// the origin.
func NewScene3D() *Scene3D {
	return &Scene3D{
		Properties: newProperties("New 3D Scene"),
		camera: Camera{
			Position: [3]float32{0, 0, 5},
			Target:   [3]float32{0, 0, 0},
			Up:       [3]float32{0, 1, 0},
		},
	}
}

// Kind returns KindScene3D.
func (s *Scene3D) Kind() Kind {
	return KindScene3D
}

// AddMesh appends a mesh to the scene.
func (s *Scene3D) AddMesh(m Mesh) {
	s.meshes = append(s.meshes, m)
}

// RemoveMesh removes and returns the mesh at index i.
// It reports false, and changes nothing, if i is out of range.
func (s *Scene3D) RemoveMesh(i int) (Mesh, bool) {
	if i < 0 || i >= len(s.meshes) {
		return Mesh{}, false
	}
	m := s.meshes[i]
	s.meshes = slices.Delete(s.meshes, i, i+1)
	return m, true
}

// Meshes returns the scene meshes. The returned slice must not be modified.
func (s *Scene3D) Meshes() []Mesh {
	return s.meshes
}

// Mesh returns a pointer to the mesh at index i for in-place editing.
// The pointer is invalidated by AddMesh and RemoveMesh.
func (s *Scene3D) Mesh(i int) (*Mesh, bool) {
	if i < 0 || i >= len(s.meshes) {
		return nil, false
	}
	return &s.meshes[i], true
}

// Camera returns the current camera.
func (s *Scene3D) Camera() Camera {
	return s.camera
}

// SetCameraPosition moves the camera.
func (s *Scene3D) SetCameraPosition(p [3]float32) {
	s.camera.Position = p
}

// SetCameraTarget sets the point the camera looks at.
func (s *Scene3D) SetCameraTarget(t [3]float32) {
	s.camera.Target = t
}

// SetCameraUp sets the camera up vector.
func (s *Scene3D) SetCameraUp(up [3]float32) {
	s.camera.Up = up
}
