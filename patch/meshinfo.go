package patch

// MeshInfo holds the vertex and index counts a mesh generator needs for a patch.
type MeshInfo struct {
	VertexCountX uint16
	VertexCountY uint16
	VertexCount  int
	IndexCount   int
}

func NewMeshInfo(vertexCountX uint16, vertexCountY uint16, vertexCount int, indexCount int) MeshInfo {
	return MeshInfo{
		VertexCountX: vertexCountX,
		VertexCountY: vertexCountY,
		VertexCount:  vertexCount,
		IndexCount:   indexCount,
	}
}
