package ir

func Truth(node *Node) bool {
	switch node.Type {
	case ObjectType:
		return node.Object.Len() != 0
	case ArrayType:
		return len(node.Values) != 0
	case StringType, DateType, DateTimeType:
		return node.String != ""
	case IntType:
		return node.Int64 != 0
	case FloatType:
		return node.Float64 != 0.0
	case VersionType:
		for _, p := range node.Version {
			if p != 0 {
				return true
			}
		}
		return false
	case BoolType:
		return node.Bool
	case NullType:
		return false
	default:
		panic("type")
	}
}
