package content

import (
	"reflect"
	"testing"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 0, 20)
	for i := 1; i <= 20; i++ {
		items = append(items, i)
	}

	tests := []struct {
		name     string
		page     int
		pageSize int
		want     []int
	}{
		{"first page", 1, 8, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"second page", 2, 8, []int{9, 10, 11, 12, 13, 14, 15, 16}},
		{"partial last page", 3, 8, []int{17, 18, 19, 20}},
		{"page beyond range is empty", 4, 8, nil},
		{"far beyond range", 99, 8, nil},
		{"page below one treated as one", 0, 8, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"negative page treated as one", -3, 8, []int{1, 2, 3, 4, 5, 6, 7, 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.page, tt.pageSize)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Paginate(page=%d, size=%d) = %v, want %v", tt.page, tt.pageSize, got, tt.want)
			}
		})
	}

	t.Run("empty input", func(t *testing.T) {
		if got := Paginate([]int{}, 1, 8); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})

	t.Run("zero page size", func(t *testing.T) {
		if got := Paginate(items, 1, 0); got != nil {
			t.Errorf("got %v, want nil", got)
		}
	})
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n, pageSize, want int
	}{
		{0, 8, 0},
		{1, 8, 1},
		{8, 8, 1},
		{9, 8, 2},
		{16, 8, 2},
		{17, 8, 3},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.n, tt.pageSize); got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.n, tt.pageSize, got, tt.want)
		}
	}
}

func TestUniqueFold(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{
			name:   "case-insensitive dedup keeps first casing",
			values: []string{"Roman", "roman", "Iron Age", "ROMAN", "Medieval", "iron age"},
			want:   []string{"Roman", "Iron Age", "Medieval"},
		},
		{
			name:   "insertion order, not alphabetical",
			values: []string{"Neolithic", "Bronze Age", "Anglo-Saxon"},
			want:   []string{"Neolithic", "Bronze Age", "Anglo-Saxon"},
		},
		{
			name:   "blank values dropped",
			values: []string{"", "  ", "Roman", ""},
			want:   []string{"Roman"},
		},
		{
			name:   "empty input",
			values: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UniqueFold(tt.values)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("UniqueFold(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

type featuredItem struct {
	name     string
	featured bool
}

func TestFeaturedFirst(t *testing.T) {
	isFeatured := func(i featuredItem) bool { return i.featured }

	t.Run("explicit featured wins", func(t *testing.T) {
		items := []featuredItem{{"a", false}, {"b", true}, {"c", true}}
		first, rest, ok := FeaturedFirst(items, isFeatured)
		if !ok || first.name != "b" {
			t.Fatalf("first = %+v, ok = %v", first, ok)
		}
		if len(rest) != 2 || rest[0].name != "a" || rest[1].name != "c" {
			t.Errorf("rest = %+v", rest)
		}
	})

	t.Run("falls back to first item", func(t *testing.T) {
		items := []featuredItem{{"a", false}, {"b", false}}
		first, rest, ok := FeaturedFirst(items, isFeatured)
		if !ok || first.name != "a" {
			t.Fatalf("first = %+v, ok = %v", first, ok)
		}
		if len(rest) != 1 || rest[0].name != "b" {
			t.Errorf("rest = %+v", rest)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		_, rest, ok := FeaturedFirst(nil, isFeatured)
		if ok || rest != nil {
			t.Errorf("ok = %v, rest = %v, want false/nil", ok, rest)
		}
	})
}
