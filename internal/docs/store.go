package docs

// Store is the in-memory document collection mirroring the backend's list.
// Like the session store it is event-loop state, not a concurrent structure.
type Store struct {
	documents []Document
}

// NewStore creates an empty document store.
func NewStore() *Store {
	return &Store{}
}

// Documents returns a copy of the collection in its current order.
func (st *Store) Documents() []Document {
	out := make([]Document, len(st.documents))
	copy(out, st.documents)
	return out
}

// Len returns the collection size.
func (st *Store) Len() int {
	return len(st.documents)
}

// Replace swaps in a freshly fetched collection.
func (st *Store) Replace(documents []Document) {
	st.documents = make([]Document, len(documents))
	copy(st.documents, documents)
}

// Remove drops the document with the given id, if present.
func (st *Store) Remove(id string) {
	for i, d := range st.documents {
		if d.ID == id {
			st.documents = append(st.documents[:i], st.documents[i+1:]...)
			return
		}
	}
}

// RemoveMany drops every document whose id is in ids.
func (st *Store) RemoveMany(ids map[string]bool) {
	kept := st.documents[:0]
	for _, d := range st.documents {
		if !ids[d.ID] {
			kept = append(kept, d)
		}
	}
	st.documents = kept
}

// Prepend puts a newly created document at the head of the collection.
func (st *Store) Prepend(doc Document) {
	st.documents = append([]Document{doc}, st.documents...)
}

// Upsert replaces the document with the same id, or prepends when the id is
// new. The server-returned entity is authoritative; callers never refetch
// the whole list after an ingest.
func (st *Store) Upsert(doc Document) {
	for i, d := range st.documents {
		if d.ID == doc.ID {
			st.documents[i] = doc
			return
		}
	}
	st.Prepend(doc)
}
