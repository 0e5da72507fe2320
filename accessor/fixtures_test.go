package accessor

import "strings"

type Address struct {
	City string
	Zip  uint16
}

type Shape interface {
	Area() int
}

type Square struct{ Side int }

func (s Square) Area() int { return s.Side * s.Side }

type Level int8

type Base struct {
	Extra float64
}

type Person struct {
	Base
	Address Address
	Shape   Shape
	Home    *Address
	Attrs   map[string]string
	Name    string
	secret  string
	Tags    []string
	Age     int32
	Level   Level
	Active  bool
}

func samplePerson() *Person {
	return &Person{
		Base:    Base{Extra: 1.25},
		Address: Address{City: "Oslo", Zip: 150},
		Shape:   Square{Side: 3},
		Home:    &Address{City: "Bergen", Zip: 5003},
		Attrs:   map[string]string{"k": "v"},
		Name:    "Ada",
		secret:  "s3cr3t",
		Tags:    []string{"a", "b"},
		Age:     36,
		Level:   2,
		Active:  true,
	}
}

type (
	E8   int8
	EU8  uint8
	E16  int16
	EU16 uint16
	E32  int32
	EU32 uint32
	E64  int64
	EU64 uint64
)

const (
	E8Max   E8   = -128
	EU8Max  EU8  = 255
	E16Max  E16  = -32768
	EU16Max EU16 = 65535
	E32Max  E32  = -2147483648
	EU32Max EU32 = 4294967295
	E64Max  E64  = -9223372036854775808
	EU64Max EU64 = 18446744073709551615
)

type Mode string

const ModeFast Mode = "fast"

type Ratio float64

const Half Ratio = 0.5

const MaxRetries = 5

var DefaultTimeout int64 = 30

type Account struct {
	owner   string
	id      string
	balance int64
}

func (a *Account) Balance() int64 { return a.balance }
func (a *Account) SetBalance(v int64) { a.balance = v }
func (a *Account) GetOwner() string { return a.owner }
func (a *Account) SetOwner(v string) { a.owner = v }
func (a *Account) ID() string { return a.id }
func (a *Account) SetLimit(v int, _ bool) {}

type Named interface {
	Name() string
	SetName(string)
}

type Dog struct{ name string }

func (d *Dog) Name() string { return "dog:" + d.name }
func (d *Dog) SetName(v string) { d.name = strings.ToLower(v) }

type Cat struct{ name string }

func (c *Cat) Name() string { return "cat:" + c.name }
func (c *Cat) SetName(v string) { c.name = strings.ToUpper(v) }

var counter int

func Counter() int { return counter }
func SetCounter(v int) { counter = v }

type Widget struct {
	Label string
	Size  int
	Flag  bool
}

func newWidget() *Widget { return &Widget{Label: "default"} }
func newWidgetSized(size int) *Widget { return &Widget{Size: size} }
func NewWidget(size int, label string) *Widget { return &Widget{Size: size, Label: label} }

type Point struct{ X, Y int }

func MakePoint(x, y int) Point { return Point{X: x, Y: y} }

type Gadget struct{ Parts []string }
