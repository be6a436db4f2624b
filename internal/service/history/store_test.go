package history_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/hliu742/minichat/internal/model/chat"
	"github.com/hliu742/minichat/internal/service/history"
)

func TestUpdateCreatesConversationOnFirstContact(t *testing.T) {
	store := history.NewStore()
	ctx := context.Background()

	err := store.Update(ctx, "alice", func(turns []chat.Turn) ([]chat.Turn, error) {
		if len(turns) != 0 {
			t.Fatalf("expected empty conversation, got %d turns", len(turns))
		}
		return append(turns, chat.UserTurn("hello")), nil
	})
	if err != nil {
		t.Fatalf("Update err: %v", err)
	}

	got := store.Snapshot(ctx, "alice")
	if len(got) != 1 {
		t.Fatalf("expected 1 turn, got %d", len(got))
	}
	if got[0].Role != chat.RoleUser || got[0].Content != "hello" {
		t.Fatalf("unexpected turn: %+v", got[0])
	}
}

func TestUpdateErrorLeavesConversationUntouched(t *testing.T) {
	store := history.NewStore()
	ctx := context.Background()

	if err := store.Update(ctx, "alice", func(turns []chat.Turn) ([]chat.Turn, error) {
		return append(turns, chat.UserTurn("first")), nil
	}); err != nil {
		t.Fatalf("Update err: %v", err)
	}

	boom := errors.New("boom")
	err := store.Update(ctx, "alice", func(turns []chat.Turn) ([]chat.Turn, error) {
		return append(turns, chat.UserTurn("second")), boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	got := store.Snapshot(ctx, "alice")
	if len(got) != 1 || got[0].Content != "first" {
		t.Fatalf("conversation changed on failed update: %+v", got)
	}
}

func TestSnapshotDoesNotCreateEntry(t *testing.T) {
	store := history.NewStore()
	ctx := context.Background()

	if got := store.Snapshot(ctx, "ghost"); len(got) != 0 {
		t.Fatalf("expected empty snapshot, got %d turns", len(got))
	}
	if n := store.Len(ctx, "ghost"); n != 0 {
		t.Fatalf("expected 0 turns, got %d", n)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	store := history.NewStore()
	ctx := context.Background()

	_ = store.Update(ctx, "alice", func(turns []chat.Turn) ([]chat.Turn, error) {
		return append(turns, chat.UserTurn("hello")), nil
	})

	snap := store.Snapshot(ctx, "alice")
	snap[0].Content = "mutated"

	got := store.Snapshot(ctx, "alice")
	if got[0].Content != "hello" {
		t.Fatalf("snapshot mutation leaked into store: %q", got[0].Content)
	}
}

func TestReset(t *testing.T) {
	store := history.NewStore()
	ctx := context.Background()

	_ = store.Update(ctx, "alice", func(turns []chat.Turn) ([]chat.Turn, error) {
		return append(turns, chat.UserTurn("hello"), chat.AssistantTurn("hi")), nil
	})

	store.Reset(ctx, "alice")

	if n := store.Len(ctx, "alice"); n != 0 {
		t.Fatalf("expected cleared conversation, got %d turns", n)
	}

	// Resetting an unknown user is a no-op.
	store.Reset(ctx, "ghost")
}

func TestConcurrentUpdatesSameUserLoseNothing(t *testing.T) {
	store := history.NewStore()
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = store.Update(ctx, "alice", func(turns []chat.Turn) ([]chat.Turn, error) {
				turns = append(turns, chat.UserTurn("ping"))
				turns = append(turns, chat.AssistantTurn("pong"))
				return turns, nil
			})
		}()
	}
	wg.Wait()

	if n := store.Len(ctx, "alice"); n != workers*2 {
		t.Fatalf("lost update: expected %d turns, got %d", workers*2, n)
	}
}

func TestConversationsAreIsolatedPerUser(t *testing.T) {
	store := history.NewStore()
	ctx := context.Background()

	_ = store.Update(ctx, "alice", func(turns []chat.Turn) ([]chat.Turn, error) {
		return append(turns, chat.UserTurn("from alice")), nil
	})
	_ = store.Update(ctx, "bob", func(turns []chat.Turn) ([]chat.Turn, error) {
		return append(turns, chat.UserTurn("from bob")), nil
	})

	alice := store.Snapshot(ctx, "alice")
	if len(alice) != 1 || alice[0].Content != "from alice" {
		t.Fatalf("unexpected alice conversation: %+v", alice)
	}
	bob := store.Snapshot(ctx, "bob")
	if len(bob) != 1 || bob[0].Content != "from bob" {
		t.Fatalf("unexpected bob conversation: %+v", bob)
	}
}
