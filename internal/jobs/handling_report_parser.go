package jobs

import (
	"fmt"
	"strings"
	"time"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
)

// handlingReportFieldCount is the number of comma-separated fields in one
// report line: completion time, tracking id, voyage number, location,
// event type. The voyage number field may be empty for events ashore.
const handlingReportFieldCount = 5

// parseHandlingReportLine parses one line of a handling report file into a
// registration command. Lines look like:
//
//	2024-03-01T12:00:00Z,ABC123,V0100,USCHI,LOAD
//	2024-03-01T09:00:00Z,ABC123,,USCHI,RECEIVE
func parseHandlingReportLine(line string) (commands.RegisterHandlingEventCommand, error) {
	fields := strings.Split(line, ",")
	if len(fields) != handlingReportFieldCount {
		return commands.RegisterHandlingEventCommand{},
			fmt.Errorf("expected %d fields, got %d", handlingReportFieldCount, len(fields))
	}

	completionTime, err := time.Parse(time.RFC3339, strings.TrimSpace(fields[0]))
	if err != nil {
		return commands.RegisterHandlingEventCommand{}, fmt.Errorf("completion time: %w", err)
	}

	trackingID, err := kernel.NewTrackingID(fields[1])
	if err != nil {
		return commands.RegisterHandlingEventCommand{}, fmt.Errorf("tracking id: %w", err)
	}

	var voyageNumber *voyage.Number
	if raw := strings.TrimSpace(fields[2]); raw != "" {
		number, numberErr := voyage.NewNumber(raw)
		if numberErr != nil {
			return commands.RegisterHandlingEventCommand{}, fmt.Errorf("voyage number: %w", numberErr)
		}
		voyageNumber = &number
	}

	unLocode, err := kernel.NewUnLocode(fields[3])
	if err != nil {
		return commands.RegisterHandlingEventCommand{}, fmt.Errorf("location: %w", err)
	}

	eventType, err := handling.EventTypeFromString(strings.TrimSpace(fields[4]))
	if err != nil {
		return commands.RegisterHandlingEventCommand{}, fmt.Errorf("event type: %w", err)
	}

	return commands.NewRegisterHandlingEventCommand(
		completionTime, trackingID, voyageNumber, unLocode, eventType)
}
