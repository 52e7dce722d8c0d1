package assets

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

var (
	ErrSceneIndex = errors.New("scene index out of range")
	ErrEmptyScene = errors.New("scene has no triangles")
)

// maxNodeDepth guards against cyclic node graphs in malformed files.
const maxNodeDepth = 64

var identity16 = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// LoadScene reads a .gltf or .glb file and flattens one of its scenes into a
// single mesh.
func LoadScene(path string, sceneIndex int) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	mesh, err := BuildScene(doc, sceneIndex)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	mesh.Name = path
	return mesh, nil
}

// BuildScene flattens scene sceneIndex of doc. Only triangle primitives are
// kept; missing normals are replaced by face normals.
func BuildScene(doc *gltf.Document, sceneIndex int) (*Mesh, error) {
	if sceneIndex < 0 || sceneIndex >= len(doc.Scenes) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrSceneIndex, sceneIndex, len(doc.Scenes))
	}

	mesh := &Mesh{}
	for _, n := range doc.Scenes[sceneIndex].Nodes {
		if err := appendNode(doc, mesh, n, mgl64.Ident4(), 0); err != nil {
			return nil, err
		}
	}
	if len(mesh.Indices) == 0 {
		return nil, ErrEmptyScene
	}
	mesh.computeBounds()
	return mesh, nil
}

func appendNode(doc *gltf.Document, mesh *Mesh, index uint32, parent mgl64.Mat4, depth int) error {
	if depth > maxNodeDepth {
		return fmt.Errorf("node %d: hierarchy deeper than %d", index, maxNodeDepth)
	}
	if int(index) >= len(doc.Nodes) {
		return fmt.Errorf("node %d: out of range", index)
	}
	node := doc.Nodes[index]
	world := parent.Mul4(nodeMatrix(node))

	if node.Mesh != nil {
		if int(*node.Mesh) >= len(doc.Meshes) {
			return fmt.Errorf("node %d: mesh %d out of range", index, *node.Mesh)
		}
		for i, prim := range doc.Meshes[*node.Mesh].Primitives {
			if err := appendPrimitive(doc, mesh, prim, world); err != nil {
				return fmt.Errorf("node %d primitive %d: %w", index, i, err)
			}
		}
	}

	for _, child := range node.Children {
		if err := appendNode(doc, mesh, child, world, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func appendPrimitive(doc *gltf.Document, mesh *Mesh, prim *gltf.Primitive, world mgl64.Mat4) error {
	if prim.Mode != gltf.PrimitiveTriangles {
		return nil
	}
	posIndex, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil
	}

	posAccessor, err := accessor(doc, posIndex)
	if err != nil {
		return err
	}
	positions, err := modeler.ReadPosition(doc, posAccessor, nil)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}

	var normals [][3]float32
	if normIndex, ok := prim.Attributes[gltf.NORMAL]; ok {
		normAccessor, err := accessor(doc, normIndex)
		if err != nil {
			return err
		}
		normals, err = modeler.ReadNormal(doc, normAccessor, nil)
		if err != nil {
			return fmt.Errorf("read normals: %w", err)
		}
	}

	var indices []uint32
	if prim.Indices != nil {
		idxAccessor, err := accessor(doc, *prim.Indices)
		if err != nil {
			return err
		}
		indices, err = modeler.ReadIndices(doc, idxAccessor, nil)
		if err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	normalMat := world.Mat3().Inv().Transpose()
	base := uint32(len(mesh.Positions))
	for i, p := range positions {
		v := mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
		mesh.Positions = append(mesh.Positions, mgl64.TransformCoordinate(v, world))
		if len(normals) == len(positions) {
			n := normals[i]
			wn := normalMat.Mul3x1(mgl64.Vec3{float64(n[0]), float64(n[1]), float64(n[2])})
			mesh.Normals = append(mesh.Normals, safeNormalize(wn))
		} else {
			mesh.Normals = append(mesh.Normals, mgl64.Vec3{})
		}
	}

	tris := len(indices) - len(indices)%3
	for i := 0; i < tris; i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		if int(a) >= len(positions) || int(b) >= len(positions) || int(c) >= len(positions) {
			return fmt.Errorf("index out of range at triangle %d", i/3)
		}
		mesh.Indices = append(mesh.Indices, base+a, base+b, base+c)
	}

	if len(normals) != len(positions) {
		fillFaceNormals(mesh, base)
	}
	return nil
}

func accessor(doc *gltf.Document, index uint32) (*gltf.Accessor, error) {
	if int(index) >= len(doc.Accessors) || doc.Accessors[index] == nil {
		return nil, fmt.Errorf("accessor %d out of range", index)
	}
	return doc.Accessors[index], nil
}

// fillFaceNormals assigns each vertex from base onward the normal of the
// last triangle that references it.
func fillFaceNormals(mesh *Mesh, base uint32) {
	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
		if a < base {
			continue
		}
		pa, pb, pc := mesh.Positions[a], mesh.Positions[b], mesh.Positions[c]
		n := safeNormalize(pb.Sub(pa).Cross(pc.Sub(pa)))
		mesh.Normals[a], mesh.Normals[b], mesh.Normals[c] = n, n, n
	}
}

func nodeMatrix(node *gltf.Node) mgl64.Mat4 {
	if node.Matrix != [16]float64{} && node.Matrix != identity16 {
		return mgl64.Mat4(node.Matrix)
	}

	t := node.Translation
	r := node.Rotation
	s := node.Scale
	if s == [3]float64{} {
		s = [3]float64{1, 1, 1}
	}
	rot := mgl64.QuatIdent()
	if r != [4]float64{} {
		rot = mgl64.Quat{W: r[3], V: mgl64.Vec3{r[0], r[1], r[2]}}.Normalize()
	}
	return mgl64.Translate3D(t[0], t[1], t[2]).
		Mul4(rot.Mat4()).
		Mul4(mgl64.Scale3D(s[0], s[1], s[2]))
}

func safeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	if v.Dot(v) < 1e-24 {
		return mgl64.Vec3{}
	}
	return v.Normalize()
}
