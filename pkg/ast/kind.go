package ast

// Kind discriminates the node variants.
type Kind int

// Kind constants for every node variant.
const (
	KindNum Kind = iota
	KindVar
	KindVarDecl
	KindAssign
	KindBinOp
	KindIf
	KindWhile
	KindBlock
)

var kindNames = [...]string{
	KindNum:     "Num",
	KindVar:     "Var",
	KindVarDecl: "VarDecl",
	KindAssign:  "Assign",
	KindBinOp:   "BinOp",
	KindIf:      "If",
	KindWhile:   "While",
	KindBlock:   "Block",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// HasName reports whether nodes of this kind carry an identifier.
func (k Kind) HasName() bool {
	return k == KindVar || k == KindVarDecl || k == KindAssign
}
