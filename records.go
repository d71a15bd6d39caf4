package hostfolio

import (
	"errors"
	"fmt"

	"github.com/etnz/hostfolio/date"
	"github.com/etnz/hostfolio/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommandType is a typed string for identifying ledger records.
type CommandType string

// Command types used for identifying records.
const (
	CmdProperty   CommandType = "property"
	CmdLoan       CommandType = "loan"
	CmdBooking    CommandType = "booking"
	CmdExpense    CommandType = "expense"
	CmdIncome     CommandType = "income"
	CmdRenovation CommandType = "renovation"
	CmdAppraise   CommandType = "appraise"
	CmdContribute CommandType = "contribute"
	CmdDistribute CommandType = "distribute"
)

// Defaults applied by Validate to records that leave them out.
const (
	DefaultBuildingLife   = 25 // years
	DefaultRenovationLife = 10 // years
	DefaultLoanSystem     = "price"
)

// Expense categories.
const (
	Variable  = "variable"  // cleaning, laundry, amenities: varies with bookings
	Fixed     = "fixed"     // condo fees, property tax, internet, insurance
	Financial = "financial" // bank fees, other financial expenses
	Tax       = "tax"       // payment of taxes due (ISS, IR, CSLL)
	Other     = "other"     // counted as a fixed expense
)

// Record defines the common interface of every entry of the ledger.
type Record interface {
	What() CommandType // What returns the command type of the record (e.g., "booking").
	When() date.Date   // When returns the date on which the record occurred.
	Identifier() string
	// Validate checks the record against the ledger and returns a copy with
	// defaults filled in.
	Validate(ledger *Ledger) (Record, error)
}

type baseCmd struct {
	Command CommandType `json:"command" validate:"required"`
	Date    date.Date   `json:"date"`
	ID      string      `json:"id,omitempty"`
	Memo    string      `json:"memo,omitempty"`
}

func (t baseCmd) What() CommandType  { return t.Command }
func (t baseCmd) When() date.Date    { return t.Date }
func (t baseCmd) Identifier() string { return t.ID }

// MarshalJSON implements the json.Marshaler interface for baseCmd.
func (t baseCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.Command)
	w.Append("date", t.Date)
	w.Optional("id", t.ID)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// fill sets the date to today and assigns an id when missing.
func (t *baseCmd) fill() {
	if t.Date.IsZero() {
		t.Date = date.Today()
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
}

// propertyCmd is a component for records that belong to a property.
type propertyCmd struct {
	baseCmd
	Property string `json:"property" validate:"required"`
}

// check verifies that the property exists on the record date.
func (t propertyCmd) check(ledger *Ledger) error {
	p, ok := ledger.Property(t.Property)
	if !ok {
		return fmt.Errorf("property %q is not declared in the ledger", t.Property)
	}
	if t.Date.Before(p.Date) {
		return fmt.Errorf("property %q is only acquired on %s", t.Property, p.Date)
	}
	return nil
}

// Property records the acquisition of a rental property.
type Property struct {
	baseCmd
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price" validate:"gt=0"` // acquisition cost, land included
	Land  decimal.Decimal `json:"land" validate:"gte=0"` // part of the price that is not depreciated
	Life  int             `json:"life" validate:"gte=0"` // useful life of the building in years
	Units int             `json:"units" validate:"gte=0"`
}

// NewProperty creates a new Property record.
func NewProperty(day date.Date, memo, name string, price, land float64, life, units int) Property {
	return Property{
		baseCmd: baseCmd{Command: CmdProperty, Date: day, Memo: memo},
		Name:    name,
		Price:   decimal.NewFromFloat(price),
		Land:    decimal.NewFromFloat(land),
		Life:    life,
		Units:   units,
	}
}

// Building is the depreciable part of the price.
func (t Property) Building() decimal.Decimal { return t.Price.Sub(t.Land) }

// MarshalJSON implements the json.Marshaler interface for Property.
func (t Property) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("name", t.Name)
	w.Append("price", t.Price)
	w.Optional("land", t.Land)
	w.Optional("life", t.Life)
	w.Optional("units", t.Units)
	return w.MarshalJSON()
}

// Validate implements Record.
func (t Property) Validate(ledger *Ledger) (Record, error) {
	t.fill()
	if t.Life == 0 {
		t.Life = DefaultBuildingLife
	}
	if t.Units == 0 {
		t.Units = 1
	}
	if err := validateStruct(t); err != nil {
		return t, err
	}
	if t.Land.GreaterThan(t.Price) {
		return t, fmt.Errorf("land value %s exceeds the price %s", t.Land, t.Price)
	}
	if _, exists := ledger.Property(t.Name); exists {
		return t, fmt.Errorf("property %q is already declared", t.Name)
	}
	return t, nil
}

// Loan records a loan taken to finance a property. The principal is received on the record date.
type Loan struct {
	propertyCmd
	Principal decimal.Decimal `json:"principal" validate:"gt=0"`
	Rate      float64         `json:"rate" validate:"gt=-1"` // nominal annual rate, as a fraction
	Months    int             `json:"months" validate:"gte=1"`
	Start     date.Date       `json:"start"` // due date of the first installment
	System    string          `json:"system" validate:"oneof=sac price"`
}

// NewLoan creates a new Loan record, the first installment is due one month later.
func NewLoan(day date.Date, memo, property string, principal, rate float64, months int, system string) Loan {
	return Loan{
		propertyCmd: propertyCmd{baseCmd: baseCmd{Command: CmdLoan, Date: day, Memo: memo}, Property: property},
		Principal:   decimal.NewFromFloat(principal),
		Rate:        rate,
		Months:      months,
		Start:       day.AddMonths(1),
		System:      system,
	}
}

// Terms returns the amortization terms of this loan.
func (t Loan) Terms() finance.LoanTerms {
	return finance.LoanTerms{
		Principal:  t.Principal.InexactFloat64(),
		AnnualRate: t.Rate,
		TermMonths: t.Months,
		StartDate:  t.Start,
	}
}

// Amortization returns the amortization system and the validated terms of this loan.
func (t Loan) Amortization() (finance.AmortizationSystem, finance.LoanTerms, error) {
	system, err := finance.ParseAmortizationSystem(t.System)
	if err != nil {
		return nil, finance.LoanTerms{}, err
	}
	terms := t.Terms()
	if err := terms.Validate(); err != nil {
		return nil, terms, err
	}
	return system, terms, nil
}

// Schedule returns the installments of this loan.
func (t Loan) Schedule() ([]finance.AmortizationRow, error) {
	system, terms, err := t.Amortization()
	if err != nil {
		return nil, err
	}
	return system.Schedule(terms), nil
}

// MarshalJSON implements the json.Marshaler interface for Loan.
func (t Loan) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("property", t.Property)
	w.Append("principal", t.Principal)
	w.Append("rate", t.Rate)
	w.Append("months", t.Months)
	w.Append("start", t.Start)
	w.Append("system", t.System)
	return w.MarshalJSON()
}

// Validate implements Record.
func (t Loan) Validate(ledger *Ledger) (Record, error) {
	t.fill()
	if t.System == "" {
		t.System = DefaultLoanSystem
	}
	if t.Start.IsZero() {
		t.Start = t.Date.AddMonths(1)
	}
	if err := validateStruct(t); err != nil {
		return t, err
	}
	if !t.Start.After(t.Date) {
		return t, fmt.Errorf("first installment on %s must be after the loan date %s", t.Start, t.Date)
	}
	return t, t.check(ledger)
}

// Booking records a stay: the guest nights and what the guest paid.
type Booking struct {
	propertyCmd
	Nights int             `json:"nights" validate:"gte=1"`
	Amount decimal.Decimal `json:"amount" validate:"gt=0"` // gross amount paid by the guest
	Fees   decimal.Decimal `json:"fees" validate:"gte=0"`  // platform commission
}

// NewBooking creates a new Booking record.
func NewBooking(day date.Date, memo, property string, nights int, amount, fees float64) Booking {
	return Booking{
		propertyCmd: propertyCmd{baseCmd: baseCmd{Command: CmdBooking, Date: day, Memo: memo}, Property: property},
		Nights:      nights,
		Amount:      decimal.NewFromFloat(amount),
		Fees:        decimal.NewFromFloat(fees),
	}
}

// MarshalJSON implements the json.Marshaler interface for Booking.
func (t Booking) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("property", t.Property)
	w.Append("nights", t.Nights)
	w.Append("amount", t.Amount)
	w.Optional("fees", t.Fees)
	return w.MarshalJSON()
}

// Validate implements Record.
func (t Booking) Validate(ledger *Ledger) (Record, error) {
	t.fill()
	if err := validateStruct(t); err != nil {
		return t, err
	}
	if t.Fees.GreaterThan(t.Amount) {
		return t, fmt.Errorf("fees %s exceed the booking amount %s", t.Fees, t.Amount)
	}
	return t, t.check(ledger)
}

// Expense records a payment. The property is optional for portfolio wide expenses.
type Expense struct {
	baseCmd
	Property string          `json:"property,omitempty"`
	Category string          `json:"category" validate:"oneof=variable fixed financial tax other"`
	Amount   decimal.Decimal `json:"amount" validate:"gt=0"`
}

// NewExpense creates a new Expense record.
func NewExpense(day date.Date, memo, property, category string, amount float64) Expense {
	return Expense{
		baseCmd:  baseCmd{Command: CmdExpense, Date: day, Memo: memo},
		Property: property,
		Category: category,
		Amount:   decimal.NewFromFloat(amount),
	}
}

// MarshalJSON implements the json.Marshaler interface for Expense.
func (t Expense) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Optional("property", t.Property)
	w.Append("category", t.Category)
	w.Append("amount", t.Amount)
	return w.MarshalJSON()
}

// Validate implements Record.
func (t Expense) Validate(ledger *Ledger) (Record, error) {
	t.fill()
	if t.Category == "" {
		t.Category = Other
	}
	if err := validateStruct(t); err != nil {
		return t, err
	}
	if t.Property == "" {
		return t, nil
	}
	return t, propertyCmd{baseCmd: t.baseCmd, Property: t.Property}.check(ledger)
}

// Income records a financial income, like the interest earned on cash.
type Income struct {
	baseCmd
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
}

// NewIncome creates a new Income record.
func NewIncome(day date.Date, memo string, amount float64) Income {
	return Income{
		baseCmd: baseCmd{Command: CmdIncome, Date: day, Memo: memo},
		Amount:  decimal.NewFromFloat(amount),
	}
}

// MarshalJSON implements the json.Marshaler interface for Income.
func (t Income) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("amount", t.Amount)
	return w.MarshalJSON()
}

// Validate implements Record.
func (t Income) Validate(ledger *Ledger) (Record, error) {
	t.fill()
	return t, validateStruct(t)
}

// Renovation records a capitalized improvement of a property.
type Renovation struct {
	propertyCmd
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
	Life   int             `json:"life" validate:"gte=0"` // in years
}

// NewRenovation creates a new Renovation record.
func NewRenovation(day date.Date, memo, property string, amount float64, life int) Renovation {
	return Renovation{
		propertyCmd: propertyCmd{baseCmd: baseCmd{Command: CmdRenovation, Date: day, Memo: memo}, Property: property},
		Amount:      decimal.NewFromFloat(amount),
		Life:        life,
	}
}

// MarshalJSON implements the json.Marshaler interface for Renovation.
func (t Renovation) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("property", t.Property)
	w.Append("amount", t.Amount)
	w.Optional("life", t.Life)
	return w.MarshalJSON()
}

// Validate implements Record.
func (t Renovation) Validate(ledger *Ledger) (Record, error) {
	t.fill()
	if t.Life == 0 {
		t.Life = DefaultRenovationLife
	}
	if err := validateStruct(t); err != nil {
		return t, err
	}
	return t, t.check(ledger)
}

// Appraise records the market value of a property on a date.
type Appraise struct {
	propertyCmd
	Value decimal.Decimal `json:"value" validate:"gt=0"`
}

// NewAppraise creates a new Appraise record.
func NewAppraise(day date.Date, memo, property string, value float64) Appraise {
	return Appraise{
		propertyCmd: propertyCmd{baseCmd: baseCmd{Command: CmdAppraise, Date: day, Memo: memo}, Property: property},
		Value:       decimal.NewFromFloat(value),
	}
}

// MarshalJSON implements the json.Marshaler interface for Appraise.
func (t Appraise) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("property", t.Property)
	w.Append("value", t.Value)
	return w.MarshalJSON()
}

// Validate implements Record.
func (t Appraise) Validate(ledger *Ledger) (Record, error) {
	t.fill()
	if err := validateStruct(t); err != nil {
		return t, err
	}
	return t, t.check(ledger)
}

// Contribute records capital brought in by the owners.
type Contribute struct {
	baseCmd
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
}

// NewContribute creates a new Contribute record.
func NewContribute(day date.Date, memo string, amount float64) Contribute {
	return Contribute{
		baseCmd: baseCmd{Command: CmdContribute, Date: day, Memo: memo},
		Amount:  decimal.NewFromFloat(amount),
	}
}

// MarshalJSON implements the json.Marshaler interface for Contribute.
func (t Contribute) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("amount", t.Amount)
	return w.MarshalJSON()
}

// Validate implements Record.
func (t Contribute) Validate(ledger *Ledger) (Record, error) {
	t.fill()
	return t, validateStruct(t)
}

// Distribute records a distribution of profits, or a return of capital, to the owners.
type Distribute struct {
	baseCmd
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
}

// NewDistribute creates a new Distribute record.
func NewDistribute(day date.Date, memo string, amount float64) Distribute {
	return Distribute{
		baseCmd: baseCmd{Command: CmdDistribute, Date: day, Memo: memo},
		Amount:  decimal.NewFromFloat(amount),
	}
}

// MarshalJSON implements the json.Marshaler interface for Distribute.
func (t Distribute) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("amount", t.Amount)
	return w.MarshalJSON()
}

// Validate implements Record.
func (t Distribute) Validate(ledger *Ledger) (Record, error) {
	t.fill()
	return t, validateStruct(t)
}

// errUnknownRecord is returned for records of an unsupported type.
var errUnknownRecord = errors.New("unknown record type")
