package ast

// ValueType represents the variant of a Value
type ValueType uint8

// Value types
const (
	ValueTypeNil ValueType = iota
	ValueTypeTrue
	ValueTypeFalse
	ValueTypeSymbol
	ValueTypeNumber
	ValueTypeProc
	ValueTypeClosure
	ValueTypeList
)

func (vt ValueType) String() string {
	s, ok := valueTypeName[vt]
	if ok {
		return s
	}
	return ""
}

var valueTypeName = map[ValueType]string{
	ValueTypeNil:     "nil",
	ValueTypeTrue:    "true",
	ValueTypeFalse:   "false",
	ValueTypeSymbol:  "symbol",
	ValueTypeNumber:  "number",
	ValueTypeProc:    "proc",
	ValueTypeClosure: "closure",
	ValueTypeList:    "list",
}
