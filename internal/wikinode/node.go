// Package wikinode defines the tagged-variant tree produced by the
// wikitext parser. The node set is closed: a single Node struct
// carries a Kind discriminant, the fields relevant to that kind, and
// an ordered list of children. Nodes are immutable once built and are
// owned exclusively by their parent.
package wikinode

// Kind identifies which variant a Node holds.
type Kind int

const (
	Text Kind = iota
	Bold
	Italic
	Header
	Link
	Category
	File
	InterlangLink
	Template
	HTMLTag
	Comment
	Nowiki
	Ref
	ListItem
	Table
	TableRow
	TableCell
)

// String returns the lowercase tag name used in tests and debug output.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Header:
		return "header"
	case Link:
		return "link"
	case Category:
		return "category"
	case File:
		return "file"
	case InterlangLink:
		return "interlang_link"
	case Template:
		return "template"
	case HTMLTag:
		return "html_tag"
	case Comment:
		return "comment"
	case Nowiki:
		return "nowiki"
	case Ref:
		return "ref"
	case ListItem:
		return "list_item"
	case Table:
		return "table"
	case TableRow:
		return "table_row"
	case TableCell:
		return "table_cell"
	default:
		return "unknown"
	}
}

// ListKind distinguishes ordered from unordered list items.
type ListKind int

const (
	Unordered ListKind = iota
	Ordered
)

// CellKind distinguishes table header cells from data cells.
type CellKind int

const (
	DataCell CellKind = iota
	HeaderCell
)

// ArgKind distinguishes positional from named template arguments.
type ArgKind int

const (
	Positional ArgKind = iota
	Named
)

// Part is one element of a mixed-content template argument value:
// either a literal text fragment or a parsed child node.
type Part struct {
	Text string
	Node *Node // nil when Text holds the fragment
}

// Value is a template argument value. Str is set when the value
// collapsed to a single plain string; otherwise Parts holds the mixed
// sequence of text fragments and nodes. Exactly one of Str/Parts is
// meaningful at a time, selected by IsString.
type Value struct {
	IsString bool
	Str      string
	Parts    []Part
}

// PlainString returns (s, true) when the value is a single string,
// and the concatenation of all text parts (ignoring nodes) plus false
// otherwise. Useful for callers that only care about literal text.
func (v Value) PlainString() (string, bool) {
	if v.IsString {
		return v.Str, true
	}
	out := ""
	for _, p := range v.Parts {
		if p.Node == nil {
			out += p.Text
		}
	}
	return out, false
}

// Arg is one template argument: Positional(value) or Named(key, value).
type Arg struct {
	Kind  ArgKind
	Key   string // Named only
	Value Value
}

// Node is the single tagged-variant tree node. Fields are grouped by
// the Kind(s) that use them; fields unused by the current Kind are
// left zero.
type Node struct {
	Kind     Kind
	Children []*Node

	// Text, Comment, Nowiki
	Content string

	// Header
	Level int

	// Link
	Target  string
	Display string

	// Category, File (Ref uses RefName below)
	Name string

	// File
	Parameters []string

	// InterlangLink
	Lang  string
	Title string

	// Template
	TemplateName string
	Args         []Arg

	// HTMLTag
	Tag        string
	Attributes map[string]string

	// Ref
	RefName     string
	HasRefName  bool
	RefGroup    string
	HasRefGroup bool

	// ListItem
	ListKind  ListKind
	ListLevel int

	// TableCell
	CellKind CellKind
}

// NewText builds a text leaf. Content must be non-empty per invariant 1.
func NewText(content string) *Node {
	return &Node{Kind: Text, Content: content}
}

// NewBold wraps children in a bold node.
func NewBold(children []*Node) *Node {
	return &Node{Kind: Bold, Children: children}
}

// NewItalic wraps children in an italic node.
func NewItalic(children []*Node) *Node {
	return &Node{Kind: Italic, Children: children}
}

// NewHeader builds a header node of the given level (1..6).
func NewHeader(level int, children []*Node) *Node {
	return &Node{Kind: Header, Level: level, Children: children}
}

// NewLink builds a plain link node.
func NewLink(target, display string) *Node {
	return &Node{Kind: Link, Target: target, Display: display}
}

// NewCategory builds a category node.
func NewCategory(name string) *Node {
	return &Node{Kind: Category, Name: name}
}

// NewFile builds a file node with ordered pipe-separated parameters.
func NewFile(name string, parameters []string) *Node {
	return &Node{Kind: File, Name: name, Parameters: parameters}
}

// NewInterlangLink builds an interlanguage link node.
func NewInterlangLink(lang, title string) *Node {
	return &Node{Kind: InterlangLink, Lang: lang, Title: title}
}

// NewTemplate builds a template invocation node.
func NewTemplate(name string, args []Arg) *Node {
	return &Node{Kind: Template, TemplateName: name, Args: args}
}

// NewHTMLTag builds an HTML-like tag node; children are empty for the
// self-closing form.
func NewHTMLTag(tag string, attrs map[string]string, children []*Node) *Node {
	return &Node{Kind: HTMLTag, Tag: tag, Attributes: attrs, Children: children}
}

// NewComment builds a verbatim HTML comment node.
func NewComment(content string) *Node {
	return &Node{Kind: Comment, Content: content}
}

// NewNowiki builds a verbatim nowiki node.
func NewNowiki(content string) *Node {
	return &Node{Kind: Nowiki, Content: content}
}

// NewRef builds a <ref> node. hasName/hasGroup record whether the
// corresponding attribute was present at all, distinct from present-
// but-empty.
func NewRef(name string, hasName bool, group string, hasGroup bool, children []*Node) *Node {
	return &Node{
		Kind: Ref, RefName: name, HasRefName: hasName,
		RefGroup: group, HasRefGroup: hasGroup, Children: children,
	}
}

// NewListItem builds a single list-item line.
func NewListItem(kind ListKind, level int, children []*Node) *Node {
	return &Node{Kind: ListItem, ListKind: kind, ListLevel: level, Children: children}
}

// NewTable builds a table node from its row children.
func NewTable(rows []*Node) *Node {
	return &Node{Kind: Table, Children: rows}
}

// NewTableRow builds a table row node from its cell children.
func NewTableRow(cells []*Node) *Node {
	return &Node{Kind: TableRow, Children: cells}
}

// NewTableCell builds a table cell node.
func NewTableCell(kind CellKind, children []*Node) *Node {
	return &Node{Kind: TableCell, CellKind: kind, Children: children}
}
