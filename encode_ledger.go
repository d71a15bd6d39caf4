package hostfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeLedger decodes records from a stream of JSONL data and returns a sorted
// Ledger. Records are not validated, see Ledger.Fmt.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		rec, err := DecodeRecord(lineBytes)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ledger.Append(rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, nil
}

// DecodeRecord decodes a single JSON record, the "command" key selects its type.
func DecodeRecord(data []byte) (Record, error) {
	var identifier struct {
		Command CommandType `json:"command"`
	}
	if err := json.Unmarshal(data, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify command in %q: %w", string(data), err)
	}

	switch identifier.Command {
	case CmdProperty:
		return decodeAs[Property](data)
	case CmdLoan:
		return decodeAs[Loan](data)
	case CmdBooking:
		return decodeAs[Booking](data)
	case CmdExpense:
		return decodeAs[Expense](data)
	case CmdIncome:
		return decodeAs[Income](data)
	case CmdRenovation:
		return decodeAs[Renovation](data)
	case CmdAppraise:
		return decodeAs[Appraise](data)
	case CmdContribute:
		return decodeAs[Contribute](data)
	case CmdDistribute:
		return decodeAs[Distribute](data)
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownRecord, identifier.Command)
	}
}

func decodeAs[T Record](data []byte) (Record, error) {
	var rec T
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", rec.What(), err)
	}
	return rec, nil
}

// EncodeRecord marshals a single record to JSON and writes it, followed by a
// newline, in JSONL format.
func EncodeRecord(w io.Writer, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal %s record: %w", rec.What(), err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// EncodeLedger writes records in chronological order to w in JSONL format.
// Records on the same day keep their relative order.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	ledger.stableSort()
	for _, rec := range ledger.records {
		if err := EncodeRecord(w, rec); err != nil {
			return err
		}
	}
	return nil
}
