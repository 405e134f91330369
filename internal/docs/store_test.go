package docs

import "testing"

func TestStore_ReplaceAndRemove(t *testing.T) {
	st := NewStore()
	st.Replace([]Document{{ID: "1"}, {ID: "2"}, {ID: "3"}})

	if st.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", st.Len())
	}

	st.Remove("2")
	if st.Len() != 2 {
		t.Errorf("Len() = %d after remove, want 2", st.Len())
	}
	st.Remove("missing")
	if st.Len() != 2 {
		t.Errorf("removing an unknown id changed the collection")
	}
}

func TestStore_RemoveMany(t *testing.T) {
	st := NewStore()
	st.Replace([]Document{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}})

	st.RemoveMany(map[string]bool{"1": true, "3": true, "nope": true})

	got := st.Documents()
	if len(got) != 2 || got[0].ID != "2" || got[1].ID != "4" {
		t.Errorf("RemoveMany() left %v", got)
	}
}

func TestStore_Upsert(t *testing.T) {
	st := NewStore()
	st.Replace([]Document{{ID: "1", Name: "old"}})

	// Existing id replaced in place.
	st.Upsert(Document{ID: "1", Name: "new"})
	if got := st.Documents(); len(got) != 1 || got[0].Name != "new" {
		t.Errorf("Upsert() existing = %v", got)
	}

	// New id prepended.
	st.Upsert(Document{ID: "2", Name: "fresh"})
	if got := st.Documents(); len(got) != 2 || got[0].ID != "2" {
		t.Errorf("Upsert() new = %v", got)
	}
}

func TestStore_DocumentsReturnsCopy(t *testing.T) {
	st := NewStore()
	st.Replace([]Document{{ID: "1", Name: "a"}})

	view := st.Documents()
	view[0].Name = "mutated"

	if st.Documents()[0].Name != "a" {
		t.Errorf("Documents() exposed internal state")
	}
}
