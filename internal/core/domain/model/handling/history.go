package handling

import (
	"fmt"
	"sort"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
)

// History is a snapshot of the ordered handling event log of one cargo.
// It is a value object: constructing it copies the event slice, and all
// accessors return copies, so a History handed to the delivery derivation is
// stable even if more events are registered concurrently.
//
// Ordering is by completion time (when the action physically happened), with
// registration time as the tie-break: a correction registered later wins over
// a stale duplicate with the same completion time.
type History struct {
	events []*HandlingEvent
}

// NewHistory creates a history snapshot from the given events. All events
// must belong to the same cargo. A nil or empty slice produces a valid,
// empty history (a freshly booked cargo has one).
func NewHistory(events []*HandlingEvent) (History, error) {
	for _, event := range events {
		if err := event.Validate(); err != nil {
			return History{}, err
		}
	}

	for i := 1; i < len(events); i++ {
		if !events[i].TrackingID().IsEqual(events[0].TrackingID()) {
			return History{}, errs.NewValueIsInvalidErrorWithCause(
				"events",
				fmt.Errorf("event %s belongs to cargo %s, expected %s",
					events[i].ID(), events[i].TrackingID(), events[0].TrackingID()),
			)
		}
	}

	return History{
		events: append([]*HandlingEvent(nil), events...),
	}, nil
}

// EmptyHistory returns the history of a cargo nothing has happened to yet.
func EmptyHistory() History {
	return History{}
}

// IsEmpty reports whether no events have been recorded.
func (h History) IsEmpty() bool {
	return len(h.events) == 0
}

// TrackingID returns the id of the cargo the history belongs to and true,
// or a zero id and false for an empty history.
func (h History) TrackingID() (kernel.TrackingID, bool) {
	if len(h.events) == 0 {
		return kernel.TrackingID{}, false
	}
	return h.events[0].TrackingID(), true
}

// DistinctEventsByCompletionTime returns the events ordered by completion
// time ascending, ties broken by registration time ascending. Events that
// describe the same report (type, location, voyage and completion time) are
// collapsed to one, keeping the latest registration: a replayed or corrected
// report supersedes the record it duplicates. The order the events were
// supplied in does not matter; two histories holding the same events in
// different insertion orders produce identical results.
func (h History) DistinctEventsByCompletionTime() []*HandlingEvent {
	ordered := append([]*HandlingEvent(nil), h.events...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].CompletionTime().Equal(ordered[j].CompletionTime()) {
			return ordered[i].CompletionTime().Before(ordered[j].CompletionTime())
		}
		return ordered[i].RegistrationTime().Before(ordered[j].RegistrationTime())
	})

	distinct := make([]*HandlingEvent, 0, len(ordered))
	seen := make(map[string]int, len(ordered))
	for _, event := range ordered {
		key := reportKey(event)
		if i, ok := seen[key]; ok {
			// Same report registered again: the ascending registration
			// order guarantees this one is the later registration.
			distinct[i] = event
			continue
		}
		seen[key] = len(distinct)
		distinct = append(distinct, event)
	}

	return distinct
}

func reportKey(event *HandlingEvent) string {
	voyageNumber := ""
	if number := event.VoyageNumber(); number != nil {
		voyageNumber = number.String()
	}
	return fmt.Sprintf("%s|%s|%s|%d",
		event.Type(), event.Location(), voyageNumber,
		event.CompletionTime().UnixNano(),
	)
}

// MostRecentlyCompletedEvent returns the event with the latest completion
// time, or nil for an empty history. When two events share a completion time
// the one registered last wins, so a late correction supersedes the record it
// corrects.
func (h History) MostRecentlyCompletedEvent() *HandlingEvent {
	ordered := h.DistinctEventsByCompletionTime()
	if len(ordered) == 0 {
		return nil
	}
	return ordered[len(ordered)-1]
}

// MostRecentNonCustomsEvent returns the latest completed event that is not a
// customs clearance, or nil if no such event exists. Customs does not advance
// the cargo along its itinerary, so expectation calculations look through it
// to the last event that did.
func (h History) MostRecentNonCustomsEvent() *HandlingEvent {
	ordered := h.DistinctEventsByCompletionTime()
	for i := len(ordered) - 1; i >= 0; i-- {
		if ordered[i].Type() != Customs {
			return ordered[i]
		}
	}
	return nil
}
