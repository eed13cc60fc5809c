package component

// Transform is an entity's world-space center position.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
