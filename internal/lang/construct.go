package lang

// Construct is a named kind of structural unit a plugin can extract.
type Construct string

const (
	ConstructClass     Construct = "class"
	ConstructInterface Construct = "interface"
	ConstructEnum      Construct = "enum"
	ConstructStruct    Construct = "struct"
	ConstructTrait     Construct = "trait"
	ConstructModule    Construct = "module"
	ConstructImpl      Construct = "impl"
	ConstructMethod    Construct = "method"
	ConstructFunction  Construct = "function"
	ConstructField     Construct = "field"
	ConstructType      Construct = "type"
	ConstructImport    Construct = "import"
	ConstructElement   Construct = "element"
	ConstructRule      Construct = "rule"
	ConstructMedia     Construct = "media"
	ConstructHeading   Construct = "heading"
	ConstructCodeBlock Construct = "codeblock"
)

// containerConstructs are kinds that structurally enclose members. Used
// to break ties when two matches share an identical span.
var containerConstructs = map[Construct]bool{
	ConstructClass:     true,
	ConstructInterface: true,
	ConstructEnum:      true,
	ConstructStruct:    true,
	ConstructTrait:     true,
	ConstructModule:    true,
	ConstructImpl:      true,
	ConstructElement:   true,
	ConstructMedia:     true,
}

// IsContainer reports whether the construct encloses members by
// convention of the grammar queries.
func (c Construct) IsContainer() bool {
	return containerConstructs[c]
}
