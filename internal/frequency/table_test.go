package frequency

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestBuild_GroceryScenario(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	lines := []string{"Apple", "apple", "BANANA", "banana", "banana"}

	// --- Act ---
	table := Build(lines)

	// --- Assert ---
	require.Equal(t, 2, table.Lookup("APPLE"))
	require.Equal(t, 3, table.Lookup("banana"))

	entries, ok := table.ListAll()
	require.True(t, ok)
	want := []Entry{{Name: "Apple", Count: 2}, {Name: "BANANA", Count: 3}}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("ListAll mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		lines []string
	}{
		{name: "nil", lines: nil},
		{name: "only blank lines", lines: []string{"", "   ", "\t", " \t "}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			table := Build(tc.lines)

			entries, ok := table.ListAll()
			require.False(t, ok, "empty table must report no entries")
			require.Empty(t, entries)
			require.Empty(t, table.HistogramLines())
			require.Empty(t, table.Serialize())
			require.Equal(t, 0, table.Len())
			require.Equal(t, 0, table.Lookup("anything"))
			require.Equal(t, 0, table.Lookup(""))
		})
	}
}

func TestBuild_FirstOccurrenceWinsDisplayName(t *testing.T) {
	t.Parallel()

	table := Build([]string{"  peas ", "PEAS", "Peas", "Zucchini", "zucchini"})

	entries, ok := table.ListAll()
	require.True(t, ok)
	want := []Entry{{Name: "peas", Count: 3}, {Name: "Zucchini", Count: 2}}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Errorf("ListAll mismatch (-want +got):\n%s", diff)
	}
}

func TestListAll_OrdersByNormalizedKey(t *testing.T) {
	t.Parallel()

	// Uppercase sorts before lowercase byte-wise; normalized order must ignore that.
	table := Build([]string{"zucchini", "Cranberries", "apples", "Beets", "cranberries"})

	entries, ok := table.ListAll()
	require.True(t, ok)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	require.Equal(t, []string{"apples", "Beets", "Cranberries", "zucchini"}, names)
}

func TestBuild_IsDeterministic(t *testing.T) {
	t.Parallel()

	lines := []string{"Onions", "Garlic", "onions", "Spinach", "garlic", "ONIONS", "Radishes"}

	first, _ := Build(lines).ListAll()
	second, _ := Build(lines).ListAll()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("rebuild mismatch (-first +second):\n%s", diff)
	}
}

func TestLookup_NormalizesQuery(t *testing.T) {
	t.Parallel()

	table := Build([]string{"Cantaloupe", "cantaloupe", "Pumpkin"})

	testCases := []struct {
		query string
		want  int
	}{
		{query: "Cantaloupe", want: 2},
		{query: "CANTALOUPE", want: 2},
		{query: "  cantaloupe\t", want: 2},
		{query: "pumpkin", want: 1},
		{query: "Pumpkins", want: 0},
		{query: "pump", want: 0},
		{query: "", want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, table.Lookup(tc.query))
		})
	}
}

func TestLookup_MatchesLineCount(t *testing.T) {
	t.Parallel()

	lines := []string{"Pears", " pears", "PEARS ", "Pear", "", "Yams", "pears"}
	table := Build(lines)

	for _, line := range lines {
		want := 0
		for _, other := range lines {
			if Normalize(other) != "" && Normalize(other) == Normalize(line) {
				want++
			}
		}
		require.Equal(t, want, table.Lookup(line), "lookup(%q)", line)
	}
}

func TestBuild_KeySetMatchesDistinctLines(t *testing.T) {
	t.Parallel()

	lines := []string{"Limes", "limes ", "", "Potatoes", "   ", "Celery", "CELERY"}
	table := Build(lines)

	distinct := map[string]struct{}{}
	for _, line := range lines {
		if key := Normalize(line); key != "" {
			distinct[key] = struct{}{}
		}
	}

	entries, _ := table.ListAll()
	require.Len(t, entries, len(distinct))
	require.Equal(t, len(distinct), table.Len())
	for _, e := range entries {
		require.Contains(t, distinct, Normalize(e.Name))
		require.GreaterOrEqual(t, e.Count, 1)
	}
	require.Equal(t, 5, table.Total())
}

func TestRead_SplitsLines(t *testing.T) {
	t.Parallel()

	table, err := Read(strings.NewReader("Spinach\r\nspinach\n\nBroccoli"))

	require.NoError(t, err)
	require.Equal(t, 2, table.Lookup("SPINACH"))
	require.Equal(t, 1, table.Lookup("broccoli"))
}

func TestRead_LongLines(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 70*1024)
	input := "Apple\n" + long + "\napple\n" + strings.ToUpper(long)

	table, err := Read(strings.NewReader(input))

	require.NoError(t, err)
	require.Equal(t, 2, table.Lookup("apple"))
	require.Equal(t, 2, table.Lookup(long))
	entries, ok := table.ListAll()
	require.True(t, ok)
	require.Len(t, entries, 2)
	require.Equal(t, long, entries[1].Name)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in   string
		want string
	}{
		{in: "  Green Beans ", want: "green beans"},
		{in: "ÉCLAIR", want: "éclair"},
		{in: " \t ", want: ""},
		{in: "", want: ""},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.want, Normalize(tc.in), "Normalize(%q)", tc.in)
	}
}
