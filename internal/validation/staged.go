package validation

// Field stages one field assignment: Check runs the rule against the incoming
// value, Assign writes it to a staged copy of the entity. Assign only runs
// when Check passed.
type Field struct {
	Check  func() error
	Assign func()
}

// Apply walks the staged fields in declaration order and stops at the first
// rule violation. Callers stage all assignments on a copy and persist the copy
// only when Apply returns nil, so a failure on a later field never commits the
// earlier ones.
func Apply(fields ...Field) error {
	for _, f := range fields {
		if f.Check != nil {
			if err := f.Check(); err != nil {
				return err
			}
		}
		if f.Assign != nil {
			f.Assign()
		}
	}
	return nil
}
