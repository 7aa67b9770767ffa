package cpp

// Type is a C++ type expression as it appears in declarations
type Type string

const (
	Int    Type = "int"
	Double Type = "double"
	String Type = "std::string"
	Void   Type = "void"
	Auto   Type = "auto"
)

// Vector returns std::vector<elem>
func Vector(elem Type) Type {
	return Type("std::vector<" + string(elem) + ">")
}

func (t Type) String() string {
	return string(t)
}
