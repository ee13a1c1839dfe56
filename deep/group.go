package deep

import "fmt"

// GroupBy indexes records into a nested tree. For each record, in input
// order, the values of fields form a path and the record is accumulated
// at that path, so the tree is fields deep and every leaf is a sequence
// of the records sharing that combination of field values.
//
// Leaf sequences hold records newest-first: accumulation prepends, so
// the last record processed for a combination sits at the head.
//
// Every record must carry every grouping field; a record that lacks one
// fails the whole call with ErrMissingGroupField. fields must be
// non-empty (ErrInvalidPath).
func GroupBy(records []Container, fields Path) (Container, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no group fields", ErrInvalidPath)
	}

	out := Container{}

	for i, rec := range records {
		p := make(Path, len(fields))

		for j, f := range fields {
			v, ok := rec[f]
			if !ok {
				return nil, fmt.Errorf("%w: record %d has no field %v", ErrMissingGroupField, i, f)
			}

			p[j] = v
		}

		var err error

		out, err = Put(out, p, rec, ModeAccumulate)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}
