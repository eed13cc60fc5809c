package component

import "github.com/jakecoffman/cp"

// Body links an entity to its Chipmunk body so the physics system can sync
// the transform after each step.
type Body struct {
	Body *cp.Body
}

var BodyComponent = NewComponent[Body]()
