package commands

import (
	"encoding/json"
	"time"

	"ignite/contexts/competition/voting-service/ports"
)

func newVotingEnvelope(
	eventID string,
	eventType string,
	nominationID string,
	occurredAt time.Time,
	data map[string]any,
) (ports.EventEnvelope, error) {
	// Vote events are partitioned by nomination for stable ordering on
	// nomination-scoped consumers.
	payload, err := json.Marshal(data)
	if err != nil {
		return ports.EventEnvelope{}, err
	}
	return ports.EventEnvelope{
		EventID:       eventID,
		EventType:     eventType,
		OccurredAt:    occurredAt.UTC(),
		SourceService: "voting-service",
		TraceID:       eventID,
		SchemaVersion: 1,
		PartitionKey:  nominationID,
		Data:          payload,
	}, nil
}
