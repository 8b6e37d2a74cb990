package value

// PrototypeOf resolves v's prototype object. Every value's prototype is the
// per-type prototype object held by the runtime, except Object, whose
// prototype is the value of its own "__proto__" property if present (and
// itself an object), else the shared object prototype.
func PrototypeOf(v Value, protos Prototypes) *Object {
	if obj, ok := v.(*Object); ok {
		if proto, ok := obj.OwnProto(); ok {
			return proto
		}
		return protos.PrototypeFor(KindObject)
	}
	return protos.PrototypeFor(v.Kind())
}
