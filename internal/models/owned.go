package models

// Owned is implemented by every personal record.
type Owned interface {
	OwnerID() uint
}
