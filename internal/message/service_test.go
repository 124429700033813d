package message

import (
	"context"
	"testing"
)

// fakeRepo captures the arguments of the calls the service forwards.
type fakeRepo struct {
	Repository

	deniedValue  bool
	reactionType string
}

func (f *fakeRepo) Deny(_ context.Context, _, _, _ string, deny bool) error {
	f.deniedValue = deny
	return nil
}

func (f *fakeRepo) React(_ context.Context, _, _, _, reactionType string) error {
	f.reactionType = reactionType
	return nil
}

func TestServiceDenyDefaultsToTrue(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	if err := svc.Deny(context.Background(), "ev1", "m1", "o1", &DenyRequest{}); err != nil {
		t.Fatal(err)
	}
	if !repo.deniedValue {
		t.Fatal("missing deny field must default to hiding the message")
	}

	f := false
	if err := svc.Deny(context.Background(), "ev1", "m1", "o1", &DenyRequest{Deny: &f}); err != nil {
		t.Fatal(err)
	}
	if repo.deniedValue {
		t.Fatal("explicit deny=false must un-hide")
	}
}

func TestServiceReactValidatesType(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	if err := svc.React(context.Background(), "ev1", "m1", "u1", &ReactionRequest{Type: "WAT"}); err == nil {
		t.Fatal("unknown reaction type must be rejected")
	}
	if repo.reactionType != "" {
		t.Fatal("repository must not be reached for invalid types")
	}

	if err := svc.React(context.Background(), "ev1", "m1", "u1", &ReactionRequest{Type: ReactionCheerUp}); err != nil {
		t.Fatal(err)
	}
	if repo.reactionType != ReactionCheerUp {
		t.Fatalf("forwarded type = %q", repo.reactionType)
	}
}
