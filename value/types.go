package value

// ID is an opaque, typed handle over a 32-bit index into a Store.
type ID uint32

// IntegerID, FloatID, and StringID are newtype handles distinct from ID at
// the type level but freely convertible to/from it.
type (
	IntegerID uint32
	FloatID   uint32
	StringID  uint32
)

// AsID converts a typed id to the untyped ID used by Store.
func (i IntegerID) AsID() ID { return ID(i) }

// AsID converts a typed id to the untyped ID used by Store.
func (f FloatID) AsID() ID { return ID(f) }

// AsID converts a typed id to the untyped ID used by Store.
func (s StringID) AsID() ID { return ID(s) }

// AsInteger reinterprets an untyped ID as an IntegerID.
func (id ID) AsInteger() IntegerID { return IntegerID(id) }

// AsFloat reinterprets an untyped ID as a FloatID.
func (id ID) AsFloat() FloatID { return FloatID(id) }

// AsString reinterprets an untyped ID as a StringID.
func (id ID) AsString() StringID { return StringID(id) }

// Kind tags which arm of Data is populated.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindStr
	KindBoolean
)

// Data is the tagged union of primitive values a Store can hold: exactly
// one of Integer(i64) | Float(f64) | Str(String) | Boolean(bool).
//
// Modelled as a small tagged struct rather than an `any`/interface{} union:
// every value.Store entry is one of four fixed, small, unboxed shapes, and
// the typed accessors (IntegerValue, FloatValue, StrValue) need to report a
// clean "not present" on arm mismatch without a type assertion on `any`.
type Data struct {
	kind Kind
	i    int64
	f    float64
	s    string
	b    bool
}

// Integer constructs an integer Data value.
func Integer(v int64) Data { return Data{kind: KindInteger, i: v} }

// Float constructs a float Data value.
func Float(v float64) Data { return Data{kind: KindFloat, f: v} }

// Str constructs a string Data value.
func Str(v string) Data { return Data{kind: KindStr, s: v} }

// Boolean constructs a boolean Data value.
func Boolean(v bool) Data { return Data{kind: KindBoolean, b: v} }

// Kind reports which arm is populated.
func (d Data) Kind() Kind { return d.kind }

// Integer returns the integer arm and whether d holds one.
func (d Data) Integer() (int64, bool) { return d.i, d.kind == KindInteger }

// Float returns the float arm and whether d holds one.
func (d Data) Float() (float64, bool) { return d.f, d.kind == KindFloat }

// Str returns the string arm and whether d holds one.
func (d Data) Str() (string, bool) { return d.s, d.kind == KindStr }

// Boolean returns the boolean arm and whether d holds one.
func (d Data) Boolean() (bool, bool) { return d.b, d.kind == KindBoolean }
