package native

const (
	systemNamespace      = "System"
	collectionsNamespace = "System.Collections.Generic"
)

// Built-in descriptors named the way the host runtime names them.
var (
	String   = NewDescriptor(systemNamespace, "String")
	Object   = NewDescriptor(systemNamespace, "Object")
	Uri      = NewDescriptor(systemNamespace, "Uri")
	Boolean  = NewDescriptor(systemNamespace, "Boolean", Primitive())
	Byte     = NewDescriptor(systemNamespace, "Byte", Primitive())
	Int16    = NewDescriptor(systemNamespace, "Int16", Primitive())
	Int32    = NewDescriptor(systemNamespace, "Int32", Primitive())
	Int64    = NewDescriptor(systemNamespace, "Int64", Primitive())
	Single   = NewDescriptor(systemNamespace, "Single", Primitive())
	Double   = NewDescriptor(systemNamespace, "Double", Primitive())
	Char     = NewDescriptor(systemNamespace, "Char", Primitive())
	Decimal  = NewDescriptor(systemNamespace, "Decimal", ValueType())
	Guid     = NewDescriptor(systemNamespace, "Guid", ValueType())
	DateTime = NewDescriptor(systemNamespace, "DateTime", ValueType())
	TimeSpan = NewDescriptor(systemNamespace, "TimeSpan", ValueType())

	Nullable    = NewDescriptor(systemNamespace, "Nullable`1", ValueType(), GenericDefinition(1))
	List        = NewDescriptor(collectionsNamespace, "List`1", GenericDefinition(1))
	Dictionary  = NewDescriptor(collectionsNamespace, "Dictionary`2", GenericDefinition(2))
	IEnumerable = NewDescriptor(collectionsNamespace, "IEnumerable`1", GenericDefinition(1))
)

// Builtins returns every built-in descriptor.
func Builtins() []Type {
	return []Type{
		String, Object, Uri, Boolean, Byte, Int16, Int32, Int64, Single, Double,
		Char, Decimal, Guid, DateTime, TimeSpan,
		Nullable, List, Dictionary, IEnumerable,
	}
}
