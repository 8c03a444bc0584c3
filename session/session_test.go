package session

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/screw-puzzle/coverage"
	"github.com/lixenwraith/screw-puzzle/generator"
	"github.com/lixenwraith/screw-puzzle/parameter"
	"github.com/lixenwraith/screw-puzzle/plate"
	"github.com/lixenwraith/screw-puzzle/vmath"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSession(t *testing.T) *Session {
	t.Helper()
	gen := generator.New(&generator.Options{Seed: 31, Logger: quietLogger()})
	return New(gen, Config{Width: 600, Height: 600, Logger: quietLogger()})
}

// twoPlateStage: base (z0) has a covered screw at 100,100 and a free screw
// at 150,100; lid (z1) has one screw at 100,110
func twoPlateStage(number int) *plate.Stage {
	base := &plate.Plate{ID: 1, ZOrder: 0, Shape: vmath.Circle{C: vmath.Pt(100, 100), R: 80}}
	base.Screws = []*plate.Screw{
		{ID: 1, PlateID: 1, Pos: vmath.Pt(100, 100)},
		{ID: 2, PlateID: 1, Pos: vmath.Pt(150, 100)},
	}
	lid := &plate.Plate{ID: 2, ZOrder: 1, Shape: vmath.Circle{C: vmath.Pt(100, 100), R: 40}}
	lid.Screws = []*plate.Screw{{ID: 3, PlateID: 2, Pos: vmath.Pt(100, 110)}}
	return &plate.Stage{Number: number, Plates: []*plate.Plate{base, lid}}
}

func restored(t *testing.T, number int) (*Session, *plate.Stage) {
	t.Helper()
	s := newSession(t)
	st := twoPlateStage(number)
	require.NoError(t, s.Restore(st))
	return s, st
}

func TestNew_Defaults(t *testing.T) {
	s := newSession(t)
	require.NotNil(t, s.Stage())
	assert.Equal(t, parameter.StartingStage, s.StageNumber())
	assert.Equal(t, 0, s.Points())
	for _, it := range Items {
		assert.Equal(t, parameter.StartingItems, s.Count(it))
	}
	assert.False(t, s.MaybeUnsolvable())
	assert.False(t, s.Stuck())
}

func TestNew_CustomInventory(t *testing.T) {
	gen := generator.New(&generator.Options{Seed: 5, Logger: quietLogger()})
	s := New(gen, Config{StartStage: 12, Items: Inventory{ItemDrill: 7}, Logger: quietLogger()})
	assert.Equal(t, 12, s.StageNumber())
	assert.Equal(t, 7, s.Count(ItemDrill))
	assert.Equal(t, 0, s.Count(ItemHint))
}

func TestTryRemove_Policy(t *testing.T) {
	s, st := restored(t, 1)
	base, lid := st.Plates[0], st.Plates[1]

	res := s.TryRemove(base.Screws[0], base)
	assert.Equal(t, OutcomeBlocked, res.Outcome)
	assert.Equal(t, []*plate.Plate{lid}, res.Covering)
	assert.False(t, base.Screws[0].Removed)

	res = s.TryRemove(base.Screws[1], base)
	assert.Equal(t, OutcomeRemoved, res.Outcome)
	assert.False(t, res.PlateCleared)

	res = s.TryRemove(base.Screws[1], base)
	assert.Equal(t, OutcomeAlreadyRemoved, res.Outcome)
	assert.Equal(t, 1, s.Stats().ScrewsRemoved)
}

func TestTryRemove_FallenPlateUncovers(t *testing.T) {
	s, st := restored(t, 1)
	base, lid := st.Plates[0], st.Plates[1]

	res := s.TryRemove(lid.Screws[0], lid)
	require.Equal(t, OutcomeRemoved, res.Outcome)
	assert.True(t, res.PlateCleared)
	assert.False(t, res.StageCleared)

	// Core query still sees the lid geometrically
	assert.True(t, coverage.IsCovered(base.Screws[0], st.Plates).Covered)

	res = s.TryRemove(base.Screws[0], base)
	assert.Equal(t, OutcomeRemoved, res.Outcome)
}

func TestStageClear_GrantsRewards(t *testing.T) {
	s, st := restored(t, 10)
	base, lid := st.Plates[0], st.Plates[1]

	s.TryRemove(lid.Screws[0], lid)
	s.TryRemove(base.Screws[1], base)
	res := s.TryRemove(base.Screws[0], base)

	require.True(t, res.StageCleared)
	assert.True(t, res.PlateCleared)
	assert.Equal(t, 120, res.Reward)
	assert.Equal(t, 120, s.Points())
	assert.Equal(t, Stats{StagesCleared: 1, ScrewsRemoved: 3}, s.Stats())
	for _, it := range Items {
		assert.Equal(t, parameter.StartingItems+1, s.Count(it))
	}
	assert.False(t, s.Stuck())

	next := s.NextStage()
	assert.Equal(t, 11, s.StageNumber())
	assert.Same(t, next.Stage, s.Stage())
	assert.Equal(t, 11, s.Stage().Number)
}

func TestTap_PlainAndMiss(t *testing.T) {
	s, st := restored(t, 1)

	_, err := s.Tap(vmath.Pt(500, 500))
	assert.ErrorIs(t, err, ErrNoScrew)

	// Lid screw is on top even though the base screw is closer
	out, err := s.Tap(vmath.Pt(100, 101))
	require.NoError(t, err)
	assert.Same(t, st.Plates[1].Screws[0], out.Hit.Screw)
	assert.Equal(t, OutcomeRemoved, out.Remove.Outcome)
	assert.Equal(t, Item(""), out.Item)
}

func TestTap_ArmedExposeAndDrill(t *testing.T) {
	s, st := restored(t, 1)
	base, lid := st.Plates[0], st.Plates[1]

	require.NoError(t, s.Arm(ItemExpose))
	assert.Equal(t, ItemExpose, s.Armed())
	out, err := s.Tap(vmath.Pt(100, 95))
	require.NoError(t, err)
	// 100,95 is 5 from the base screw and 15 from the lid screw; lid wins
	assert.Same(t, lid.Screws[0], out.Hit.Screw)
	assert.Empty(t, out.Covering)
	assert.Equal(t, parameter.StartingItems-1, s.Count(ItemExpose))
	assert.Equal(t, Item(""), s.Armed())

	require.NoError(t, s.Arm(ItemDrill))
	out, err = s.Tap(vmath.Pt(150, 100))
	require.NoError(t, err)
	assert.Equal(t, ItemDrill, out.Item)
	assert.Same(t, base.Screws[1], out.Remove.Screw)
	assert.Equal(t, OutcomeRemoved, out.Remove.Outcome)
	assert.Equal(t, parameter.StartingItems-1, s.Count(ItemDrill))
}

func TestDrill_IgnoresCoverage(t *testing.T) {
	s, st := restored(t, 1)
	base := st.Plates[0]

	res, err := s.Drill(base.Screws[0], base)
	require.NoError(t, err)
	assert.Equal(t, OutcomeRemoved, res.Outcome)
	assert.True(t, base.Screws[0].Removed)

	res, err = s.Drill(base.Screws[0], base)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyRemoved, res.Outcome)
	assert.Equal(t, parameter.StartingItems-1, s.Count(ItemDrill), "drilling a removed screw is free")
}

func TestExpose_ListsCovering(t *testing.T) {
	s, st := restored(t, 1)
	base, lid := st.Plates[0], st.Plates[1]

	covering, err := s.Expose(base.Screws[0], base)
	require.NoError(t, err)
	assert.Equal(t, []*plate.Plate{lid}, covering)
}

func TestHint_ConsumesAndLists(t *testing.T) {
	s, st := restored(t, 1)

	hits, err := s.Hint()
	require.NoError(t, err)
	require.Len(t, hits, 2)
	assert.Same(t, st.Plates[0].Screws[1], hits[0].Screw)
	assert.Same(t, st.Plates[1].Screws[0], hits[1].Screw)

	_, err = s.Hint()
	require.NoError(t, err)
	_, err = s.Hint()
	assert.True(t, errors.Is(err, ErrNoItem))
}

func TestShuffle_RegeneratesSameStage(t *testing.T) {
	s := newSession(t)
	before := s.Stage()

	res, err := s.Shuffle()
	require.NoError(t, err)
	assert.NotSame(t, before, s.Stage())
	assert.Same(t, res.Stage, s.Stage())
	assert.Equal(t, before.Number, s.Stage().Number)
	assert.Equal(t, parameter.StartingItems-1, s.Count(ItemShuffle))
}

func TestArm_Errors(t *testing.T) {
	s := newSession(t)

	assert.ErrorIs(t, s.Arm(ItemHint), ErrNotTargeted)
	assert.ErrorIs(t, s.Arm(Item("wrench")), ErrUnknownItem)

	require.NoError(t, s.Arm(ItemDrill))
	require.NoError(t, s.Arm(ItemDrill))
	assert.Equal(t, Item(""), s.Armed(), "arming twice toggles off")

	gen := generator.New(&generator.Options{Seed: 2, Logger: quietLogger()})
	empty := New(gen, Config{Items: Inventory{}, Logger: quietLogger()})
	assert.ErrorIs(t, empty.Arm(ItemExpose), ErrNoItem)
}

func TestPurchase(t *testing.T) {
	s, st := restored(t, 1)
	assert.ErrorIs(t, s.Purchase(ItemHint), ErrInsufficientPoints)

	base, lid := st.Plates[0], st.Plates[1]
	s.TryRemove(lid.Screws[0], lid)
	s.TryRemove(base.Screws[1], base)
	s.TryRemove(base.Screws[0], base)
	require.Equal(t, 100, s.Points())

	require.NoError(t, s.Purchase(ItemHint))
	assert.Equal(t, 50, s.Points())
	assert.ErrorIs(t, s.Purchase(ItemShuffle), ErrInsufficientPoints)
	assert.ErrorIs(t, s.Purchase(Item("glue")), ErrUnknownItem)
}

func TestRestore_RejectsBrokenStage(t *testing.T) {
	s := newSession(t)
	st := twoPlateStage(3)
	st.Plates[1].ZOrder = 0

	err := s.Restore(st)
	assert.ErrorIs(t, err, plate.ErrDuplicateZOrder)
	assert.NotSame(t, st, s.Stage())
}

func TestNextStage_UsesResizedBounds(t *testing.T) {
	s := newSession(t)
	s.Resize(200, 300)
	s.Resize(-1, 0) // ignored

	res := s.NextStage()
	assert.Equal(t, 2, s.StageNumber())
	assert.Same(t, res.Stage, s.Stage())
	assert.Equal(t, 2, s.Stage().Number)
	for _, p := range s.Stage().Plates {
		c := p.Shape.Center()
		assert.True(t, c.X >= 0 && c.X <= 200, "x=%v", c.X)
		assert.True(t, c.Y >= 0 && c.Y <= 300, "y=%v", c.Y)
	}
}

func TestStuck(t *testing.T) {
	s := newSession(t)
	base := &plate.Plate{ID: 1, ZOrder: 0, Shape: vmath.Circle{C: vmath.Pt(0, 0), R: 50}}
	base.Screws = []*plate.Screw{{ID: 1, PlateID: 1, Pos: vmath.Pt(0, 0)}}
	cover := &plate.Plate{ID: 2, ZOrder: 1, Shape: vmath.Circle{C: vmath.Pt(0, 0), R: 50}}
	require.NoError(t, s.Restore(&plate.Stage{Number: 4, Plates: []*plate.Plate{base, cover}}))

	assert.True(t, s.Stuck())
}

func TestStageReward(t *testing.T) {
	assert.Equal(t, 100, StageReward(1))
	assert.Equal(t, 110, StageReward(5))
	assert.Equal(t, 120, StageReward(14))
	assert.Equal(t, 100, StageReward(-3))
}

func TestItemCost(t *testing.T) {
	want := map[Item]int{ItemHint: 50, ItemExpose: 50, ItemDrill: 100, ItemShuffle: 150}
	for it, cost := range want {
		got, err := it.Cost()
		require.NoError(t, err)
		assert.Equal(t, cost, got)
	}
}
