package skybox

// TimelineTag names a span of the cycle (or a single instant when IsTrigger)
// that external systems listen to.
type TimelineTag struct {
	Tag       string
	StartTime float32
	EndTime   float32
	IsTrigger bool

	// Set once the start event has fired, cleared by the end event or by ResetCycle.
	StartEventExecuted bool
}

// TimelineEvent is emitted when a tag starts, ends or triggers.
type TimelineEvent struct {
	Tag     string
	Enable  bool
	Trigger bool
}

// CheckTimelineEvents compares each tag against dayTime and returns the
// events whose edge was crossed since the previous call.
//
// Triggers fire once per cycle as soon as dayTime passes their start. Ranged
// tags fire a start event on entering [start, end) and an end event once
// dayTime reaches the end. Wrapping ranges are unrolled like layer windows.
func CheckTimelineEvents(tags []*TimelineTag, dayTime, cycleLength float32) []TimelineEvent {
	var events []TimelineEvent
	for _, tag := range tags {
		if tag == nil {
			continue
		}

		if tag.IsTrigger {
			if dayTime > tag.StartTime && !tag.StartEventExecuted {
				events = append(events, TimelineEvent{Tag: tag.Tag, Enable: true, Trigger: true})
				tag.StartEventExecuted = true
			}
			continue
		}

		end, t := tag.EndTime, dayTime
		if tag.EndTime < tag.StartTime {
			end += cycleLength
			if dayTime < tag.StartTime {
				t += cycleLength
			}
		}

		if t >= tag.StartTime && t < end && !tag.StartEventExecuted {
			events = append(events, TimelineEvent{Tag: tag.Tag, Enable: true})
			tag.StartEventExecuted = true
		}

		if t >= end && tag.StartEventExecuted {
			events = append(events, TimelineEvent{Tag: tag.Tag, Enable: false})
			tag.StartEventExecuted = false
		}
	}
	return events
}

// ResetCycle rearms triggers and non-wrapping ranges at the start of a new
// cycle. Wrapping ranges keep their state so the end event still fires after
// midnight.
func ResetCycle(tags []*TimelineTag) {
	for _, tag := range tags {
		if tag == nil {
			continue
		}
		if tag.IsTrigger || tag.EndTime > tag.StartTime {
			tag.StartEventExecuted = false
		}
	}
}
