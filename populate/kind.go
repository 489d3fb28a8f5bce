package populate

type DispatcherEnum int

const (
	DispatcherUnknown DispatcherEnum = iota
	DispatcherPrimitive
	DispatcherEnumeration
	DispatcherInterface
	DispatcherSlice
	DispatcherMap
	DispatcherCollection
	DispatcherStruct

	// DispatcherTotal is a constant that represents the total number of kinds defined
	DispatcherTotal = int(iota)
)
