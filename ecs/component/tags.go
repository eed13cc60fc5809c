package component

type VictimTag struct{}

var VictimTagComponent = NewComponent[VictimTag]()

// DeadTag marks a target whose health reached zero. The health system adds
// it exactly once, alongside the death event.
type DeadTag struct{}

var DeadTagComponent = NewComponent[DeadTag]()
