package message

import (
	"errors"
	"testing"
	"time"

	"github.com/woosuta/woosuta-backend/internal/apierror"
	"github.com/woosuta/woosuta-backend/internal/instantevent"
)

var testNow = time.Date(2023, 3, 15, 12, 0, 0, 0, time.UTC)

func TestPostGate(t *testing.T) {
	tests := []struct {
		name          string
		event         instantevent.InstantEvent
		wantAutoClose bool
		wantErr       error
	}{
		{
			name:  "OpenWindow",
			event: instantevent.InstantEvent{EndDate: "2023-03-15T13:00:00Z"},
		},
		{
			name:    "Closed",
			event:   instantevent.InstantEvent{Closed: true, EndDate: "2023-03-15T13:00:00Z"},
			wantErr: errEventClosed,
		},
		{
			name:    "Locked",
			event:   instantevent.InstantEvent{Locked: true, EndDate: "2023-03-15T13:00:00Z"},
			wantErr: errEventLocked,
		},
		{
			name:          "ExpiredWindow",
			event:         instantevent.InstantEvent{EndDate: "2023-03-15T11:00:00Z"},
			wantAutoClose: true,
			wantErr:       errEventClosed,
		},
		{
			name:          "ExactlyAtEnd",
			event:         instantevent.InstantEvent{EndDate: "2023-03-15T12:00:00Z"},
			wantAutoClose: true,
			wantErr:       errEventClosed,
		},
		{
			// closed flag wins even when the window also lapsed: no
			// redundant close write
			name:    "ClosedAndExpired",
			event:   instantevent.InstantEvent{Closed: true, EndDate: "2023-03-15T11:00:00Z"},
			wantErr: errEventClosed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			autoClose, err := postGate(&tt.event, testNow)
			if autoClose != tt.wantAutoClose {
				t.Errorf("autoClose = %v, want %v", autoClose, tt.wantAutoClose)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMutationGate(t *testing.T) {
	if err := mutationGate(&instantevent.InstantEvent{}); err != nil {
		t.Fatalf("open event: %v", err)
	}
	var apiErr *apierror.Error
	if err := mutationGate(&instantevent.InstantEvent{Closed: true}); !errors.As(err, &apiErr) {
		t.Fatal("closed event should be rejected with an api error")
	}
	if err := mutationGate(&instantevent.InstantEvent{Locked: true}); !errors.As(err, &apiErr) {
		t.Fatal("locked event should be rejected with an api error")
	}
}

func TestReplyGateAllowsLocked(t *testing.T) {
	// replies land during the locked collection phase
	if err := replyGate(&instantevent.InstantEvent{Locked: true}); err != nil {
		t.Fatalf("locked event should accept replies: %v", err)
	}
	if err := replyGate(&instantevent.InstantEvent{Closed: true}); err == nil {
		t.Fatal("closed event should reject replies")
	}
}

func TestToggleReactionInvolution(t *testing.T) {
	start := []ReactionItem{{Type: ReactionLike, Voter: "a"}}

	once := toggleReaction(start, "b", ReactionHaha)
	if len(once) != 2 {
		t.Fatalf("after add: %d items, want 2", len(once))
	}
	twice := toggleReaction(once, "b", ReactionHaha)
	if len(twice) != 1 || twice[0].Voter != "a" {
		t.Fatalf("toggle twice should restore the original set, got %v", twice)
	}
}

func TestToggleReactionSameVoterDifferentTypes(t *testing.T) {
	r := toggleReaction(nil, "a", ReactionLike)
	r = toggleReaction(r, "a", ReactionEye)
	if len(r) != 2 {
		t.Fatalf("one voter may hold several reaction types, got %v", r)
	}
	r = toggleReaction(r, "a", ReactionLike)
	if len(r) != 1 || r[0].Type != ReactionEye {
		t.Fatalf("removing LIKE must keep EYE, got %v", r)
	}
}

func TestToggleVoter(t *testing.T) {
	v := toggleVoter([]string{"a", "b"}, "c")
	if len(v) != 3 {
		t.Fatalf("add: got %v", v)
	}
	v = toggleVoter(v, "b")
	if len(v) != 2 {
		t.Fatalf("remove: got %v", v)
	}
}

func TestVoteDelta(t *testing.T) {
	if voteDelta(true) != 1 || voteDelta(false) != -1 {
		t.Fatal("vote delta mismatch")
	}
}
