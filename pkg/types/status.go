package types

// Status is the outcome tag of a reconciliation or a generation run
type Status string

const (
	// StatusNoFile means no manifest existed; the content is a fresh manifest
	StatusNoFile Status = "no-file"

	// StatusAlreadyPerfect means every candidate is already covered
	StatusAlreadyPerfect Status = "already-perfect"

	// StatusNeedsUpdate means additions are pending confirmation
	StatusNeedsUpdate Status = "needs-update"

	// StatusCanceled means the pending update was declined
	StatusCanceled Status = "canceled"

	// StatusSaved means the computed content was (or is to be) written
	StatusSaved Status = "saved"
)

// String returns the tag text
func (s Status) String() string {
	return string(s)
}

// IsFinal reports whether no further confirmation step is needed
func (s Status) IsFinal() bool {
	return s != StatusNeedsUpdate
}
