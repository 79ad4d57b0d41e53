package actor

// Listener receives the contact lifecycle of the entity it is attached to.
// Hooks run synchronously inside the collision tick and must not call back
// into the collision system.
type Listener interface {
	OnCollisionEnter(self, other *BoxCollider)
	OnCollisionStay(self, other *BoxCollider)
	OnCollisionExit(self, other *BoxCollider)
}

// ListenerFuncs adapts plain functions to a Listener; nil fields are skipped.
type ListenerFuncs struct {
	Enter func(self, other *BoxCollider)
	Stay  func(self, other *BoxCollider)
	Exit  func(self, other *BoxCollider)
}

func (l ListenerFuncs) OnCollisionEnter(self, other *BoxCollider) {
	if l.Enter != nil {
		l.Enter(self, other)
	}
}

func (l ListenerFuncs) OnCollisionStay(self, other *BoxCollider) {
	if l.Stay != nil {
		l.Stay(self, other)
	}
}

func (l ListenerFuncs) OnCollisionExit(self, other *BoxCollider) {
	if l.Exit != nil {
		l.Exit(self, other)
	}
}
