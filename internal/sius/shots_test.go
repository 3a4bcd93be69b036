package sius

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shotsTable() *Table {
	headers := []string{"Start NR", "Relay", "Time", "Primary score", "Secondary score", "X", "Y"}
	rows := [][]string{
		{"101", "1", "12.5", "10.4", "0", "-1.2", "0.4"},
		{"102", "1", "13.0", "9.8", "0", "2.0", "-0.1"},
		{"101", "1", "bad", "9.0", "3", "0.0", "0.0"},
		{"101", "2", "20.0", "10.9", "0", "1.1", "1.0"},
	}
	return NewTable(headers, rows)
}

func TestShotFilter_Relay(t *testing.T) {
	table := shotsTable()
	relay := "1"

	rows := ShotFilter{Relay: &relay}.Apply(table)
	assert.Len(t, rows, 3)

	// Empty relay string means no filtering.
	empty := ""
	rows = ShotFilter{Relay: &empty}.Apply(table)
	assert.Len(t, rows, 4)
}

func TestShotFilter_StartNRAllowList(t *testing.T) {
	table := shotsTable()

	// Nil allow-list: no filtering.
	assert.Len(t, ShotFilter{}.Apply(table), 4)

	// Empty allow-list matches nothing.
	assert.Empty(t, ShotFilter{StartNRs: []string{}}.Apply(table))

	rows := ShotFilter{StartNRs: []string{"102"}}.Apply(table)
	require.Len(t, rows, 1)
	assert.Equal(t, "102", rows[0][0])
}

func TestShotFilter_ExcludedIndices(t *testing.T) {
	table := shotsTable()
	relay := "1"

	// Exclusions apply to positions within the already-filtered sequence.
	rows := ShotFilter{
		Relay:           &relay,
		ExcludedIndices: map[int]bool{0: true},
	}.Apply(table)

	require.Len(t, rows, 2)
	assert.Equal(t, "102", rows[0][0])
}

func TestShotsForStartNR_TimeOrdering(t *testing.T) {
	table := shotsTable()

	shots, err := ShotsForStartNR(table, table.Rows, "Start NR", "Primary score", "Secondary score", "Time", "101")
	require.NoError(t, err)
	require.Len(t, shots, 3)

	// Numeric times first, descending; non-numeric after.
	times := []string{shots[0].Time, shots[1].Time, shots[2].Time}
	assert.Equal(t, []string{"20.0", "12.5", "bad"}, times)
}

func TestShotsForStartNR_DerivedScores(t *testing.T) {
	table := shotsTable()

	shots, err := ShotsForStartNR(table, table.Rows, "Start NR", "Primary score", "Secondary score", "Time", "101")
	require.NoError(t, err)

	// First shot (time 20.0): primary 10.9, secondary 0 -> integer floor.
	shot := shots[0]
	assert.Equal(t, 3, shot.Index)
	assert.Equal(t, "10.9", shot.Primary)
	require.NotNil(t, shot.Decimal)
	assert.Equal(t, 10.9, *shot.Decimal)
	require.NotNil(t, shot.Integer)
	assert.Equal(t, int64(10), *shot.Integer)

	// Shot with secondary 3 keeps it as the integer score.
	for _, s := range shots {
		if s.Time == "bad" {
			require.NotNil(t, s.Integer)
			assert.Equal(t, int64(3), *s.Integer)
		}
	}
}

func TestShotsForStartNR_TrimsIdentifier(t *testing.T) {
	table := NewTable(
		[]string{"Start NR", "Primary score"},
		[][]string{{" 101 ", "10.4"}},
	)

	shots, err := ShotsForStartNR(table, table.Rows, "Start NR", "Primary score", "", "", " 101")
	require.NoError(t, err)
	assert.Len(t, shots, 1)
}

func TestShotsForStartNR_MissingColumns(t *testing.T) {
	table := shotsTable()

	_, err := ShotsForStartNR(table, table.Rows, "Nope", "Primary score", "", "Time", "101")
	assert.Error(t, err)

	_, err = ShotsForStartNR(table, table.Rows, "Start NR", "Nope", "", "Time", "101")
	assert.Error(t, err)
}

func TestTargetShots(t *testing.T) {
	table := shotsTable()

	shots, err := TargetShots(table, table.Rows, "Start NR", "Primary score", "Secondary score", "101")
	require.NoError(t, err)
	require.Len(t, shots, 3)

	// Shots are numbered in display (time-descending) order.
	first := shots[0]
	assert.Equal(t, 1, first.ShotNum)
	require.NotNil(t, first.X)
	assert.Equal(t, 1.1, *first.X)
	require.NotNil(t, first.Y)
	assert.Equal(t, 1.0, *first.Y)
	require.NotNil(t, first.DecimalScore)
	assert.Equal(t, 10.9, *first.DecimalScore)
}

func TestTargetShots_RequiresCoordinates(t *testing.T) {
	table := NewTable([]string{"Start NR", "Primary score"}, [][]string{{"101", "10.4"}})

	_, err := TargetShots(table, table.Rows, "Start NR", "Primary score", "", "101")
	assert.Error(t, err)
}

func TestTimeLess_Boundary(t *testing.T) {
	// Ascending: non-numeric before numeric, so the descending view shows
	// numeric timestamps first regardless of magnitude.
	assert.True(t, timeLess("bad", "0.1"))
	assert.False(t, timeLess("99999", "zzz"))
	assert.True(t, timeLess("12.5", "20.0"))
	assert.True(t, timeLess("abc", "abd"))
}
