// Package surface defines the visual tree every renderer produces.
// Host environments (browser, terminal) map it onto their own primitives.
package surface

// SizeClass is the relative text size of a block.
type SizeClass int

const (
	Body SizeClass = iota
	Caption
	Title
	Icon
)

// ColorRole names the palette slot a block is drawn with.
type ColorRole int

const (
	Primary ColorRole = iota
	Secondary
	Muted
	Accent
	Warning
)

// Block is one text element of a surface.
type Block struct {
	Content   string
	Size      SizeClass
	Role      ColorRole
	LineLimit int // 0 means unlimited
}

// ActionKind identifies what an action does.
type ActionKind int

const (
	CopyHighlight ActionKind = iota
	CopyTitle
)

// Action is an interactive binding. Payload is always the untruncated
// source text, never the string shown on screen.
type Action struct {
	Kind    ActionKind
	Label   string
	Payload string
}

// Tap is a tap target that opens a location.
type Tap struct {
	URL string
}

// Tree is the rendered result of one surface cycle.
type Tree struct {
	// Header blocks are laid out on one row.
	Header []Block
	// Body blocks are stacked vertically.
	Body []Block
	// Footer renders its first block on the left and the rest on the right.
	Footer  []Block
	Tap     *Tap
	Actions []Action
}

// Interactive reports whether the tree exposes any action or tap target.
func (t Tree) Interactive() bool {
	return t.Tap != nil || len(t.Actions) > 0
}

// Message builds a tree holding a single message block and nothing else.
func Message(text string, role ColorRole) Tree {
	return Tree{Body: []Block{{Content: text, Size: Body, Role: role}}}
}

// Dialog is a modal confirmation presented instead of a tree.
type Dialog struct {
	Title   string
	Message string
	Failed  bool
}
