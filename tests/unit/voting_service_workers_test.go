package unit

import (
	"context"
	"testing"
	"time"

	votingservice "ignite/contexts/competition/voting-service"
	"ignite/contexts/competition/voting-service/application/workers"
	"ignite/contexts/competition/voting-service/domain/entities"
	"ignite/contexts/competition/voting-service/ports"
	httptransport "ignite/contexts/competition/voting-service/transport/http"
)

type capturingPublisher struct {
	topics []string
	events []ports.EventEnvelope
}

func (p *capturingPublisher) Publish(_ context.Context, topic string, event ports.EventEnvelope) error {
	p.topics = append(p.topics, topic)
	p.events = append(p.events, event)
	return nil
}

func TestOutboxRelayPublishesCastVoteEvents(t *testing.T) {
	future := time.Now().UTC().Add(24 * time.Hour)
	module := votingservice.NewInMemoryModule([]entities.VotingToken{
		seedVotingToken("RELAY001", future),
	}, nil)
	module.Store.SetNomination(openNomination("nomination-1", 0))

	if _, err := module.Handler.CastVoteHandler(context.Background(), "10.0.0.3", "worker-test", httptransport.CastVoteRequest{
		Code:         "RELAY001",
		NominationID: "nomination-1",
	}); err != nil {
		t.Fatalf("cast vote failed: %v", err)
	}

	pending, err := module.Store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list pending failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected 1 pending outbox row, got %d", len(pending))
	}

	publisher := &capturingPublisher{}
	relay := workers.OutboxRelay{
		Outbox:    module.Store,
		Publisher: publisher,
		Clock:     module.Store,
		BatchSize: 10,
	}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("relay run failed: %v", err)
	}
	if len(publisher.events) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(publisher.events))
	}
	if publisher.topics[0] != "vote.cast" {
		t.Fatalf("expected topic vote.cast, got %s", publisher.topics[0])
	}
	if publisher.events[0].EventType != "vote.cast" {
		t.Fatalf("expected event type vote.cast, got %s", publisher.events[0].EventType)
	}

	remaining, err := module.Store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("list pending after relay failed: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected outbox drained, got %d rows", len(remaining))
	}

	// A second cycle with nothing pending is a no-op.
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("idle relay run failed: %v", err)
	}
	if len(publisher.events) != 1 {
		t.Fatalf("idle cycle must not republish, got %d events", len(publisher.events))
	}
}

func TestTallyReconcilerRepairsDrift(t *testing.T) {
	future := time.Now().UTC().Add(24 * time.Hour)
	module := votingservice.NewInMemoryModule([]entities.VotingToken{
		seedVotingToken("DRIFT001", future),
		seedVotingToken("DRIFT002", future),
	}, nil)
	module.Store.SetNomination(openNomination("nomination-1", 0))

	for _, code := range []string{"DRIFT001", "DRIFT002"} {
		if _, err := module.Handler.CastVoteHandler(context.Background(), "", "", httptransport.CastVoteRequest{
			Code:         code,
			NominationID: "nomination-1",
		}); err != nil {
			t.Fatalf("cast vote %s failed: %v", code, err)
		}
	}

	// Force counter drift; the ledger still holds two votes.
	if err := module.Store.SetPublicVotes(context.Background(), "nomination-1", 7); err != nil {
		t.Fatalf("set public votes failed: %v", err)
	}

	reconciler := workers.TallyReconciler{
		Ledger:      module.Store,
		Nominations: module.Store,
	}
	if err := reconciler.RunOnce(context.Background()); err != nil {
		t.Fatalf("reconciler run failed: %v", err)
	}

	tally, err := module.Handler.VotingResultsHandler(context.Background(), "nomination-1")
	if err != nil {
		t.Fatalf("results failed: %v", err)
	}
	if tally.PublicVotes != 2 {
		t.Fatalf("expected reconciled tally 2, got %d", tally.PublicVotes)
	}
}
