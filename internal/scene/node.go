package scene

// Handle addresses a node inside a Graph. The zero graph has no nodes,
// so handles are only valid for the graph that issued them.
type Handle int

// None is the empty handle, used for "no parent" and "no selection".
const None Handle = -1

// Kind tags what a node contributes to the scene.
type Kind uint8

const (
	KindRoot  Kind = iota // scene origin
	KindOrbit             // revolution pivot, owns exactly one body
	KindBody              // renderable sphere (sun, planet, or moon)
	KindStars             // star-field pivot
)

// Node is one transform in the hierarchy. Offset places the node in its
// parent's rotated frame; Rotation turns the node's own frame around +Y,
// carrying all children with it.
type Node struct {
	Name     string
	Kind     Kind
	Parent   Handle
	Children []Handle

	Offset   Vec3
	Rotation float64 // radians around +Y
	Rate     float64 // radians per second added to Rotation each frame
	Scaled   bool    // Rate is multiplied by the global time scale

	// Body appearance; meaningful for KindBody only.
	Radius   float64
	Color    [3]uint8
	Pickable bool
}

// Graph is an arena of nodes with explicit parent/children links.
// Node 0 is always the root.
type Graph struct {
	nodes []Node
}

// NewGraph returns a graph containing only the root node.
func NewGraph() *Graph {
	g := &Graph{nodes: make([]Node, 0, 32)}
	g.nodes = append(g.nodes, Node{Name: "root", Kind: KindRoot, Parent: None})
	return g
}

// Root returns the handle of the scene root.
func (g *Graph) Root() Handle { return 0 }

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

// Add inserts n as a child of parent and returns its handle.
func (g *Graph) Add(parent Handle, n Node) Handle {
	h := Handle(len(g.nodes))
	n.Parent = parent
	g.nodes = append(g.nodes, n)
	g.nodes[parent].Children = append(g.nodes[parent].Children, h)
	return h
}

// Node returns a pointer into the arena. The pointer is invalidated by
// the next Add.
func (g *Graph) Node(h Handle) *Node { return &g.nodes[h] }

// Valid reports whether h addresses a node in this graph.
func (g *Graph) Valid(h Handle) bool { return h >= 0 && int(h) < len(g.nodes) }

// WorldPosition computes the node's position in world space by composing
// ancestor rotations and offsets from the node up to the root.
func (g *Graph) WorldPosition(h Handle) Vec3 {
	pos := g.nodes[h].Offset
	for p := g.nodes[h].Parent; p != None; p = g.nodes[p].Parent {
		n := &g.nodes[p]
		pos = pos.RotateY(n.Rotation).Add(n.Offset)
	}
	return pos
}

// Pickables returns every pickable body handle, in insertion order.
func (g *Graph) Pickables() []Handle {
	var out []Handle
	for i := range g.nodes {
		if g.nodes[i].Pickable {
			out = append(out, Handle(i))
		}
	}
	return out
}

// Walk visits every node reachable from h in depth-first order.
func (g *Graph) Walk(h Handle, fn func(Handle, *Node)) {
	fn(h, &g.nodes[h])
	for _, c := range g.nodes[h].Children {
		g.Walk(c, fn)
	}
}
