package docs

import (
	"reflect"
	"testing"
)

func names(documents []Document) []string {
	out := make([]string, len(documents))
	for i, d := range documents {
		out[i] = d.Name
	}
	return out
}

func TestFilter_Apply_Search(t *testing.T) {
	input := []Document{
		{ID: "1", Name: "Onboarding Guide", Content: "VPN setup and accounts"},
		{ID: "2", Name: "Q3 Report", Content: "revenue numbers"},
		{ID: "3", Name: "notes", Content: "vpn troubleshooting"},
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{
			name:   "empty search passes everything through in order",
			search: "",
			want:   []string{"Onboarding Guide", "Q3 Report", "notes"},
		},
		{
			name:   "matches name case-insensitively",
			search: "onboarding",
			want:   []string{"Onboarding Guide"},
		},
		{
			name:   "matches content case-insensitively",
			search: "VPN",
			want:   []string{"Onboarding Guide", "notes"},
		},
		{
			name:   "no match yields empty",
			search: "payroll",
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Filter{Search: tt.search, Type: "all"}
			got := names(f.Apply(input))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_Apply_SortByName(t *testing.T) {
	input := []Document{
		{ID: "1", Name: "Banana"},
		{ID: "2", Name: "apple"},
		{ID: "3", Name: "Cherry"},
	}

	asc := Filter{Type: "all", SortBy: SortByName, SortOrder: OrderAsc}
	if got := names(asc.Apply(input)); !reflect.DeepEqual(got, []string{"apple", "Banana", "Cherry"}) {
		t.Errorf("asc = %v", got)
	}

	desc := Filter{Type: "all", SortBy: SortByName, SortOrder: OrderDesc}
	if got := names(desc.Apply(input)); !reflect.DeepEqual(got, []string{"Cherry", "Banana", "apple"}) {
		t.Errorf("desc = %v", got)
	}

	// Input order untouched.
	if input[0].Name != "Banana" {
		t.Errorf("Apply() mutated its input")
	}
}

func TestFilter_Apply_SortByDateComparesContent(t *testing.T) {
	// There is no date field on the client shape, so the date key falls
	// back to comparing content.
	input := []Document{
		{ID: "1", Name: "first", Content: "zebra"},
		{ID: "2", Name: "second", Content: "Alpha"},
	}

	f := Filter{Type: "all", SortBy: SortByDate, SortOrder: OrderAsc}
	if got := names(f.Apply(input)); !reflect.DeepEqual(got, []string{"second", "first"}) {
		t.Errorf("Apply() = %v, want content order", got)
	}
}

func TestFilter_Apply_UnorderedKeysKeepInputOrder(t *testing.T) {
	input := []Document{
		{ID: "1", Name: "c"},
		{ID: "2", Name: "a"},
		{ID: "3", Name: "b"},
	}

	for _, key := range []SortKey{SortBySize, SortByType} {
		f := Filter{Type: "all", SortBy: key, SortOrder: OrderAsc}
		if got := names(f.Apply(input)); !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
			t.Errorf("sort by %s reordered to %v", key, got)
		}
	}
}

func TestDefaultFilter(t *testing.T) {
	f := DefaultFilter()
	if f.Type != "all" || f.SortBy != SortByDate || f.SortOrder != OrderDesc || f.Search != "" {
		t.Errorf("DefaultFilter() = %+v", f)
	}
}
