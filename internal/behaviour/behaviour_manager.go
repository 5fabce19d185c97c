package behaviour

// Behaviour is ticked once per frame with the frame delta in seconds.
type Behaviour interface {
	Start()
	Update(dt float64)
}

// FixedBehaviour is implemented by behaviours that also want the fixed-rate tick.
type FixedBehaviour interface {
	UpdateFixed()
}

type BehaviourWrapper struct {
	Behaviour Behaviour
	started   bool
}

type BehaviourManager struct {
	behaviours []BehaviourWrapper
}

func NewBehaviourManager() *BehaviourManager {
	return &BehaviourManager{}
}

func (m *BehaviourManager) Add(behaviour Behaviour) {
	m.behaviours = append(m.behaviours, BehaviourWrapper{Behaviour: behaviour, started: false})
}

// Remove drops behaviour. Order of the remaining behaviours is kept.
func (m *BehaviourManager) Remove(behaviour Behaviour) {
	for i := range m.behaviours {
		if m.behaviours[i].Behaviour == behaviour {
			m.behaviours = append(m.behaviours[:i], m.behaviours[i+1:]...)
			return
		}
	}
}

// Clear removes all behaviours from the manager
func (m *BehaviourManager) Clear() {
	m.behaviours = m.behaviours[:0]
}

func (m *BehaviourManager) Len() int {
	return len(m.behaviours)
}

// UpdateAll starts any behaviour that has not run yet, then updates every
// behaviour in insertion order.
func (m *BehaviourManager) UpdateAll(dt float64) {
	for i := range m.behaviours {
		m.start(i)
		m.behaviours[i].Behaviour.Update(dt)
	}
}

func (m *BehaviourManager) UpdateAllFixed() {
	for i := range m.behaviours {
		m.start(i)
		if fb, ok := m.behaviours[i].Behaviour.(FixedBehaviour); ok {
			fb.UpdateFixed()
		}
	}
}

func (m *BehaviourManager) start(i int) {
	if !m.behaviours[i].started {
		m.behaviours[i].Behaviour.Start()
		m.behaviours[i].started = true
	}
}
