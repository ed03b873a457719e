package gostamp

// AuditOwner is implemented by entities that carry the ModifiedBy audit attribute.
type AuditOwner interface {
	SetModifiedBy(id int64)
}

// Audited can be embedded into a model to make it an AuditOwner.
type Audited struct {
	ModifiedBy int64
}

// SetModifiedBy implements AuditOwner.
func (a *Audited) SetModifiedBy(id int64) {
	a.ModifiedBy = id
}
