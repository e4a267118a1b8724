package seating

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/arnavshah/office-dashboard/pkg/shuffle"
)

func roster(n int) []Member {
	members := make([]Member, n)
	for i := range members {
		members[i] = NewMember(uint(i+1), fmt.Sprintf("Dev%d Person", i+1), "", "", "Backend Developer")
	}
	return members
}

func noWait(ctx context.Context, d time.Duration) error { return ctx.Err() }

func TestAssign_FillsFixedRowsWithoutDuplicates(t *testing.T) {
	for size := 7; size <= 15; size++ {
		for seed := int64(0); seed < 50; seed++ {
			board := Assign(roster(size), seed*2654435761, DefaultLayout)

			if len(board.Top) != 3 || len(board.Bottom) != 4 {
				t.Fatalf("size %d seed %d: rows %d/%d, want 3/4", size, seed, len(board.Top), len(board.Bottom))
			}

			seen := make(map[uint]bool)
			for _, m := range board.members() {
				if seen[m.ID] {
					t.Fatalf("size %d seed %d: member %d seated twice", size, seed, m.ID)
				}
				seen[m.ID] = true
			}
			if len(seen) != 7 {
				t.Fatalf("size %d seed %d: %d seated, want 7", size, seed, len(seen))
			}
		}
	}
}

func TestAssign_FollowsShuffleOrder(t *testing.T) {
	members := roster(10)
	board := Assign(members, 42, DefaultLayout)

	want := shuffle.Seeded(members, 42)[:7]
	if got := board.members(); !reflect.DeepEqual(got, want) {
		t.Errorf("seated order %v, want %v", got, want)
	}
	if !reflect.DeepEqual(Assign(members, 42, DefaultLayout), board) {
		t.Errorf("expected the same seed to give the same board")
	}
	if board.Phase != PhaseSettled || board.Seed != 42 {
		t.Errorf("unexpected phase/seed %s/%d", board.Phase, board.Seed)
	}
}

func TestAssign_SmallRosterLeavesEmptySeats(t *testing.T) {
	board := Assign(roster(4), 9, DefaultLayout)

	for i, s := range board.Top {
		if s.Member == nil || s.State != StateSeated {
			t.Errorf("top seat %d should be occupied", i)
		}
	}
	if board.Bottom[0].Member == nil {
		t.Errorf("first bottom seat should be occupied")
	}
	for i, s := range board.Bottom[1:] {
		if s.Member != nil || s.State != StateEmpty {
			t.Errorf("bottom seat %d should be empty", i+1)
		}
	}
}

func TestFilterRoles(t *testing.T) {
	members := []Member{
		NewMember(1, "Ana Lima", "", "", "Tech Lead"),
		NewMember(2, "Bo Chen", "", "", "Designer"),
		NewMember(3, "Cy Diaz", "", "", "Junior Developer"),
	}

	got := FilterRoles(members, DefaultRoles)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("FilterRoles kept %v", got)
	}
	if all := FilterRoles(members, nil); len(all) != 3 {
		t.Errorf("empty allow-list should keep everyone, got %d", len(all))
	}
}

func TestNewMember_Defaults(t *testing.T) {
	m := NewMember(1, "  Ana Lima ", "", "avatar.png", "Tech Lead")
	if m.Nickname != "Ana" || m.Initial != "A" || m.Name != "Ana Lima" {
		t.Errorf("unexpected derived fields: %+v", m)
	}
	if n := NewMember(2, "Ana Lima", "Nana", "", ""); n.Nickname != "Nana" {
		t.Errorf("explicit nickname should win, got %q", n.Nickname)
	}
}

func TestPlan_Offsets(t *testing.T) {
	members := roster(9)
	prev := Assign(members, 1, DefaultLayout)
	next := Assign(members, 2, DefaultLayout)

	tl := Plan(prev, next, DefaultTiming)

	want := []time.Duration{0, 600, 700, 820, 940, 1060, 1180, 1300, 1420, 1720}
	if len(tl) != len(want) {
		t.Fatalf("timeline has %d steps, want %d", len(tl), len(want))
	}
	for i, step := range tl {
		if step.At != want[i]*time.Millisecond {
			t.Errorf("step %d at %s, want %s", i, step.At, want[i]*time.Millisecond)
		}
	}

	first := tl[0].Board
	if first.Phase != PhaseShuffling || !reflect.DeepEqual(first.members(), prev.members()) {
		t.Errorf("first step should show the previous members exiting")
	}
	for _, s := range first.Top {
		if s.State != StateExiting {
			t.Errorf("expected exiting seat, got %s", s.State)
		}
	}

	swap := tl[1].Board
	if !reflect.DeepEqual(swap.members(), next.members()) || swap.Top[0].State != StateEntering {
		t.Errorf("second step should show the new members entering")
	}

	landed := tl[3].Board
	if landed.Top[0].State != StateLanded || landed.Top[1].State != StateLanded || landed.Top[2].State != StateEntering {
		t.Errorf("landings should accumulate seat by seat, got %s %s %s",
			landed.Top[0].State, landed.Top[1].State, landed.Top[2].State)
	}

	final, _ := tl.Final()
	if final.Phase != PhaseSettled || final.Seed != 2 || final.Bottom[3].State != StateSeated {
		t.Errorf("final step should settle on the new board")
	}
	if tl.Duration() != 1720*time.Millisecond {
		t.Errorf("Duration() = %s", tl.Duration())
	}
}

func TestAssigner_EmptyRosterIsNoop(t *testing.T) {
	a := NewAssigner(DefaultLayout, WithWait(noWait))

	if a.Load(nil, 5) {
		t.Errorf("Load with empty roster should report false")
	}
	if a.shuffle(context.Background(), nil, 6, nil) {
		t.Errorf("Shuffle with empty roster should report false")
	}
	if len(a.Board().members()) != 0 || a.Phase() != PhaseSettled {
		t.Errorf("board should remain empty and settled")
	}
}

func TestAssigner_ShuffleRendersEveryStep(t *testing.T) {
	var waits []time.Duration
	a := NewAssigner(DefaultLayout, WithWait(func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}))
	a.Load(roster(8), 1)

	var frames []Board
	if !a.shuffle(context.Background(), roster(8), 99, func(b Board) { frames = append(frames, b) }) {
		t.Fatalf("expected shuffle to be accepted")
	}

	if len(frames) != 10 {
		t.Fatalf("rendered %d frames, want 10", len(frames))
	}
	wantWaits := []time.Duration{0, 600, 100, 120, 120, 120, 120, 120, 120, 300}
	for i, w := range wantWaits {
		if waits[i] != w*time.Millisecond {
			t.Errorf("wait %d = %s, want %s", i, waits[i], w*time.Millisecond)
		}
	}
	if got := a.Board(); got.Phase != PhaseSettled || got.Seed != 99 {
		t.Errorf("expected settled board for seed 99, got %s/%d", got.Phase, got.Seed)
	}
	if !reflect.DeepEqual(a.Board().members(), Assign(roster(8), 99, DefaultLayout).members()) {
		t.Errorf("final board does not match the seed 99 arrangement")
	}
}

func TestAssigner_RejectsConcurrentShuffle(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	a := NewAssigner(DefaultLayout, WithWait(func(ctx context.Context, d time.Duration) error {
		if d > 0 {
			once.Do(func() { close(started) })
			<-release
		}
		return nil
	}))
	a.Load(roster(7), 1)

	done := make(chan bool)
	go func() { done <- a.shuffle(context.Background(), roster(7), 2, nil) }()

	<-started
	if a.Phase() != PhaseShuffling {
		t.Fatalf("expected shuffling phase while the timeline plays")
	}
	if a.shuffle(context.Background(), roster(7), 3, nil) {
		t.Errorf("second shuffle should be rejected while the first is playing")
	}
	if a.Load(roster(7), 4) {
		t.Errorf("load should be rejected while a shuffle is playing")
	}

	close(release)
	if !<-done {
		t.Fatalf("first shuffle should have been accepted")
	}
	if got := a.Board(); got.Phase != PhaseSettled || got.Seed != 2 {
		t.Errorf("expected settled board for seed 2, got %s/%d", got.Phase, got.Seed)
	}
	if !a.shuffle(context.Background(), roster(7), 3, nil) {
		t.Errorf("shuffle should be accepted again once settled")
	}
}

func TestAssigner_InterruptedShuffleSettles(t *testing.T) {
	a := NewAssigner(DefaultLayout, WithWait(noWait))
	a.Load(roster(7), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var last Board
	a.shuffle(ctx, roster(7), 5, func(b Board) { last = b })

	if a.Phase() != PhaseSettled || last.Phase != PhaseSettled || last.Seed != 5 {
		t.Errorf("interrupted shuffle should jump to the settled seed 5 board, got %s/%d", last.Phase, last.Seed)
	}
}

func TestAssigner_RejectedLoadKeepsBoard(t *testing.T) {
	a := NewAssigner(DefaultLayout, WithWait(noWait))
	if !a.Load(roster(8), 11) {
		t.Fatalf("initial load should be accepted")
	}
	before := a.Board()

	if a.Load(nil, 12) {
		t.Errorf("Load with empty roster should report false")
	}
	if !reflect.DeepEqual(a.Board(), before) {
		t.Errorf("rejected load changed the board")
	}
	if seed, ok := a.Loaded(); !ok || seed != 11 {
		t.Errorf("Loaded() = %d, %v; want 11, true", seed, ok)
	}

	if !a.shuffle(context.Background(), roster(8), 13, nil) {
		t.Errorf("shuffle after a rejected load should still be accepted")
	}
	if seed, _ := a.Loaded(); seed != 11 {
		t.Errorf("shuffle should not move the loaded seed, got %d", seed)
	}
}

func TestAssigner_ShuffleUsesGivenRoster(t *testing.T) {
	a := NewAssigner(DefaultLayout, WithWait(noWait))
	a.Load(roster(8), 1)

	smaller := roster(2)
	if !a.shuffle(context.Background(), smaller, 5, nil) {
		t.Fatalf("expected shuffle to be accepted")
	}

	got := a.Board()
	if len(got.members()) != 2 {
		t.Fatalf("seated %d members, want 2", len(got.members()))
	}
	if len(got.Top) != 3 || len(got.Bottom) != 4 {
		t.Errorf("rows should keep their fixed size, got %d/%d", len(got.Top), len(got.Bottom))
	}
	if !reflect.DeepEqual(got.members(), Assign(smaller, 5, DefaultLayout).members()) {
		t.Errorf("board does not match the arrangement of the new roster")
	}
}
