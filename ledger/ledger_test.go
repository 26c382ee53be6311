// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/daily-pick/models"
	"github.com/danielhkuo/daily-pick/testutil"
)

func TestAddItemAndList(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := NewEngine(conn)
	ctx := context.Background()

	item, err := engine.AddItem(ctx, "Pizza")
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if item.Name != "Pizza" {
		t.Errorf("AddItem() name = %q, want %q", item.Name, "Pizza")
	}
	if item.Votes != 0 {
		t.Errorf("AddItem() votes = %d, want 0", item.Votes)
	}
	if item.ID == "" {
		t.Error("AddItem() returned empty id")
	}

	views, err := engine.ListItems(ctx, "some-voter")
	if err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("ListItems() returned %d items, want 1", len(views))
	}
	if views[0].Name != "Pizza" || views[0].Votes != 0 || views[0].VotedByMe {
		t.Errorf("ListItems()[0] = %+v, want Pizza/0/false", views[0])
	}
}

func TestAddItem_TrimsWhitespace(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := NewEngine(conn)

	item, err := engine.AddItem(context.Background(), "  Tacos  ")
	if err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}
	if item.Name != "Tacos" {
		t.Errorf("AddItem() name = %q, want trimmed %q", item.Name, "Tacos")
	}
}

func TestAddItem_EmptyName(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := NewEngine(conn)

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := engine.AddItem(context.Background(), name)
		if !errors.Is(err, models.ErrEmptyName) {
			t.Errorf("AddItem(%q) error = %v, want ErrEmptyName", name, err)
		}
	}

	if n := testutil.CountRows(t, conn, "item"); n != 0 {
		t.Errorf("expected 0 items after rejected adds, got %d", n)
	}
}

func TestAddItem_CaseInsensitiveDuplicate(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := NewEngine(conn)
	ctx := context.Background()

	if _, err := engine.AddItem(ctx, "Pizza"); err != nil {
		t.Fatalf("AddItem() error = %v", err)
	}

	_, err := engine.AddItem(ctx, "pizza")
	if !errors.Is(err, models.ErrDuplicateName) {
		t.Errorf("AddItem(duplicate) error = %v, want ErrDuplicateName", err)
	}

	if n := testutil.CountRows(t, conn, "item"); n != 1 {
		t.Errorf("expected exactly 1 item, got %d", n)
	}
}

func TestCastVote_NotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := NewEngine(conn)

	_, err := engine.CastVote(context.Background(), "no-such-item", "voter-a")
	if !errors.Is(err, models.ErrItemNotFound) {
		t.Errorf("CastVote() error = %v, want ErrItemNotFound", err)
	}
}

func TestCastVote_Success(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := NewEngine(conn)
	ctx := context.Background()

	itemID := testutil.CreateTestItem(t, conn, "Sushi")

	votes, err := engine.CastVote(ctx, itemID, "voter-a")
	if err != nil {
		t.Fatalf("CastVote() error = %v", err)
	}
	if votes != 1 {
		t.Errorf("CastVote() votes = %d, want 1", votes)
	}

	// Counter and vote rows must agree
	var stored int
	if err := conn.QueryRow("SELECT votes FROM item WHERE id = $1", itemID).Scan(&stored); err != nil {
		t.Fatal(err)
	}
	if stored != 1 {
		t.Errorf("stored votes = %d, want 1", stored)
	}
	if n := testutil.CountRows(t, conn, "vote"); n != 1 {
		t.Errorf("vote rows = %d, want 1", n)
	}
}

func TestCastVote_DoubleVote(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := NewEngine(conn)
	ctx := context.Background()

	itemID := testutil.CreateTestItem(t, conn, "Ramen")

	if _, err := engine.CastVote(ctx, itemID, "voter-a"); err != nil {
		t.Fatalf("first CastVote() error = %v", err)
	}

	_, err := engine.CastVote(ctx, itemID, "voter-a")
	if !errors.Is(err, models.ErrAlreadyVoted) {
		t.Errorf("second CastVote() error = %v, want ErrAlreadyVoted", err)
	}

	// The rejected vote must not change the tally or leave a row
	var stored int
	if err := conn.QueryRow("SELECT votes FROM item WHERE id = $1", itemID).Scan(&stored); err != nil {
		t.Fatal(err)
	}
	if stored != 1 {
		t.Errorf("stored votes = %d after double vote, want 1", stored)
	}
	if n := testutil.CountRows(t, conn, "vote"); n != 1 {
		t.Errorf("vote rows = %d after double vote, want 1", n)
	}
}

func TestCastVote_DifferentItemsSameVoter(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := NewEngine(conn)
	ctx := context.Background()

	a := testutil.CreateTestItem(t, conn, "A")
	b := testutil.CreateTestItem(t, conn, "B")

	if _, err := engine.CastVote(ctx, a, "voter-a"); err != nil {
		t.Fatalf("CastVote(a) error = %v", err)
	}
	if _, err := engine.CastVote(ctx, b, "voter-a"); err != nil {
		t.Errorf("CastVote(b) error = %v, one voter may vote on many items", err)
	}
}

func TestListItems_Ordering(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := NewEngine(conn)
	ctx := context.Background()

	// Two items tied on votes with distinct creation times, one ahead
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	insert := func(name string, votes int, createdAt time.Time) {
		_, err := conn.Exec(`
			INSERT INTO item (id, name, votes, created_at)
			VALUES ($1, $2, $3, $4)
		`, uuid.NewString(), name, votes, createdAt)
		if err != nil {
			t.Fatal(err)
		}
	}
	insert("older-tie", 2, base)
	insert("newer-tie", 2, base.Add(time.Minute))
	insert("leader", 5, base.Add(2*time.Minute))
	insert("trailer", 0, base.Add(3*time.Minute))

	views, err := engine.ListItems(ctx, "voter-a")
	if err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}

	want := []string{"leader", "older-tie", "newer-tie", "trailer"}
	if len(views) != len(want) {
		t.Fatalf("ListItems() returned %d items, want %d", len(views), len(want))
	}
	for i, name := range want {
		if views[i].Name != name {
			t.Errorf("ListItems()[%d] = %q, want %q", i, views[i].Name, name)
		}
	}
}

func TestListItems_VotedByMe(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	engine := NewEngine(conn)
	ctx := context.Background()

	mine := testutil.CreateTestItem(t, conn, "Mine")
	theirs := testutil.CreateTestItem(t, conn, "Theirs")
	testutil.CastTestVote(t, conn, mine, "voter-a")
	testutil.CastTestVote(t, conn, theirs, "voter-b")

	views, err := engine.ListItems(ctx, "voter-a")
	if err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}

	byName := map[string]bool{}
	for _, v := range views {
		byName[v.Name] = v.VotedByMe
	}
	if !byName["Mine"] {
		t.Error("voted_by_me should be true for the item voter-a voted on")
	}
	if byName["Theirs"] {
		t.Error("voted_by_me should be false for another voter's item")
	}
}
