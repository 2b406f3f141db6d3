package buffer

// Snapshot provides a read-only view of a buffer at a specific point in
// time. It will not change even if the original buffer is modified.
type Snapshot struct {
	content    string
	revisionID RevisionID
}

// String returns the full snapshot content.
func (s *Snapshot) String() string {
	return s.content
}

// Len returns the total byte length of the snapshot.
func (s *Snapshot) Len() ByteOffset {
	return ByteOffset(len(s.content))
}

// RevisionID returns the revision the snapshot was taken at.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}
