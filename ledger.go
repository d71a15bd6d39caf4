package hostfolio

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"sort"

	"github.com/etnz/hostfolio/date"
)

// Ledger represents a list of records.
//
// In a Ledger records are always in chronological order.
type Ledger struct {
	records    []Record
	properties map[string]Property // index properties by name
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		records:    make([]Record, 0),
		properties: make(map[string]Property),
	}
}

// Len returns the number of records.
func (l *Ledger) Len() int { return len(l.records) }

// Property returns the property declared with this name.
func (l *Ledger) Property(name string) (Property, bool) {
	p, ok := l.properties[name]
	return p, ok
}

// Properties iterates over declared properties, by name.
func (l *Ledger) Properties() iter.Seq[Property] {
	return func(yield func(Property) bool) {
		names := slices.Sorted(maps.Keys(l.properties))
		for _, name := range names {
			if !yield(l.properties[name]) {
				return
			}
		}
	}
}

// Validate checks a record against the current state of the ledger and returns
// it with defaults filled in, or an error detailing the validation failures.
func (l *Ledger) Validate(rec Record) (Record, error) {
	v, err := rec.Validate(l)
	if err != nil {
		return v, fmt.Errorf("invalid %s record on %v: %w", rec.What(), v.When(), err)
	}
	return v, nil
}

// Append appends records to this ledger and maintains the chronological order.
func (l *Ledger) Append(recs ...Record) {
	l.records = append(l.records, recs...)
	for _, rec := range recs {
		if p, ok := rec.(Property); ok {
			l.properties[p.Name] = p
		}
	}
	l.stableSort()
}

// Records returns an iterator over the records accepted by any of the filters,
// or all of them when there is no filter.
func (l *Ledger) Records(filters ...func(Record) bool) iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, rec := range l.records {
			if len(filters) > 0 && !slices.ContainsFunc(filters, func(f func(Record) bool) bool { return f(rec) }) {
				continue
			}
			if !yield(i, rec) {
				return
			}
		}
	}
}

// Loans iterates over the loans of a property, or of all properties if property is "".
func (l *Ledger) Loans(property string) iter.Seq[Loan] {
	return func(yield func(Loan) bool) {
		for _, rec := range l.records {
			if loan, ok := rec.(Loan); ok && (property == "" || loan.Property == property) {
				if !yield(loan) {
					return
				}
			}
		}
	}
}

// stableSort sorts the ledger by record date. Records on the same day keep
// their relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.records, func(i, j int) bool {
		return l.records[i].When().Before(l.records[j].When())
	})
}

// OldestRecordDate returns the date of the earliest record, or the zero date.
func (l *Ledger) OldestRecordDate() date.Date {
	if len(l.records) == 0 {
		return date.Date{}
	}
	return l.records[0].When()
}

// NewestRecordDate returns the date of the latest record, or the zero date.
func (l *Ledger) NewestRecordDate() date.Date {
	if len(l.records) == 0 {
		return date.Date{}
	}
	return l.records[len(l.records)-1].When()
}

// Fmt validates every record in chronological order and returns a new ledger
// with defaults filled in. All validation failures are reported together.
func (l *Ledger) Fmt() (*Ledger, error) {
	out := NewLedger()
	var errs []error
	for _, rec := range l.records {
		v, err := out.Validate(rec)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out.Append(v)
	}
	return out, errors.Join(errs...)
}

// ByProperty returns a predicate that filters records by property.
func ByProperty(name string) func(Record) bool {
	return func(rec Record) bool {
		switch v := rec.(type) {
		case Property:
			return v.Name == name
		case Loan:
			return v.Property == name
		case Booking:
			return v.Property == name
		case Expense:
			return v.Property == name
		case Renovation:
			return v.Property == name
		case Appraise:
			return v.Property == name
		default:
			return false
		}
	}
}

// ByCommand returns a predicate that filters records by command type.
func ByCommand(cmd CommandType) func(Record) bool {
	return func(rec Record) bool { return rec.What() == cmd }
}

// InRange returns a predicate that filters records dated within r.
func InRange(r date.Range) func(Record) bool {
	return func(rec Record) bool { return r.Contains(rec.When()) }
}
