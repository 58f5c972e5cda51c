package looks

// Like checks target against spec and returns the first violation, or nil.
//
// Tags are visited in spec order and properties in list order. A property
// that cannot be found yields a *MissingPropertyError; one whose type tag
// differs yields a *WrongTypeError. Nothing after the first violation is
// inspected. An empty spec passes for any target; otherwise a nil target
// returns an error wrapping ErrInvalidTarget.
func Like(target any, spec *Spec) error {
	if spec.Len() == 0 {
		return nil
	}
	if err := checkTarget(target); err != nil {
		return err
	}
	if errs := violations(target, spec, 1); len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// All is Like without the short-circuit: it returns every violation, in
// the same order, as a *Violations.
func All(target any, spec *Spec) error {
	if spec.Len() == 0 {
		return nil
	}
	if err := checkTarget(target); err != nil {
		return err
	}
	if errs := violations(target, spec, -1); len(errs) > 0 {
		return &Violations{Errors: errs}
	}
	return nil
}

// violations collects up to limit violations; a negative limit means all.
func violations(target any, spec *Spec, limit int) []error {
	var errs []error
	it := spec.groups.Iterator()
	for it.Next() {
		tag := it.Key()
		for _, property := range it.Value() {
			value, ok := lookup(target, property)
			switch {
			case !ok:
				errs = append(errs, &MissingPropertyError{Property: property})
			case typeOfValue(value) != tag:
				errs = append(errs, &WrongTypeError{Property: property, Expected: tag, Actual: typeOfValue(value)})
			default:
				continue
			}
			if len(errs) == limit {
				return errs
			}
		}
	}
	return errs
}
