package populate_test

import (
	"iter"
	"time"

	"github.com/google/uuid"
)

type Scalars struct {
	Bool     bool
	Int      int
	Int8     int8
	Int16    int16
	Int32    int32
	Int64    int64
	Uint     uint
	Uint8    uint8
	Uint16   uint16
	Uint32   uint32
	Uint64   uint64
	Float32  float32
	Float64  float64
	String   string
	Time     time.Time
	Duration time.Duration
	ID       uuid.UUID

	OptionalInt  *int
	OptionalName **string
	OptionalList *[]int
	OptionalAt   *time.Time
}

type Customer struct {
	Name   string
	Orders []*Order
	Best   *Order
}

type Order struct {
	ID       int
	Customer *Customer
	Items    []Item
}

type Item struct {
	SKU      string
	Quantity int
	Price    Money
}

type Money struct {
	Cents    int64
	Currency string
}

type Node struct {
	Label    string
	Parent   *Node
	Children []*Node
	Values   []Node
	Siblings map[string]*Node
	ByNode   map[*Node]int
}

type A struct {
	Name string
	B    *B
}

type B struct {
	Name string
	C    *C
}

type C struct {
	Name string
	A    *A
	As   []A
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

type Level int

type Audit struct {
	CreatedBy string
	Revision  int
}

type Meta struct {
	Tags []string
}

type Document struct {
	Audit
	*Meta
	Title string
}

type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Len() int { return len(s.items) }

// Queue is registered by pointer, the way container/list is used.
type Queue struct {
	items []string
}

type Backlog struct {
	Owner   string
	Pending *Queue
	Parked  **Queue
}

type Shapes struct {
	Grid     [3]int
	Bytes    []byte
	Queue    chan string
	Inbox    <-chan int
	Outbox   chan<- int
	Names    iter.Seq[string]
	Pairs    iter.Seq2[string, int]
	Stack    *Stack[int]
	Lookup   map[string][]int
	Set      map[int]struct{}
	Any      any
	Anys     []any
	Callback func()
	Complex  complex128
}

type Tagged struct {
	Email    string    `populate:"email"`
	Phone    *string   `populate:"phone"`
	Card     string    `populate:"creditcard"`
	Guid     uuid.UUID `populate:"guid"`
	First    string    `populate:"firstname"`
	Greeting string    `populate:"Hello {firstname}!"`
	Emails   []string  `populate:"email"`
	Secret   string    `populate:"-"`
}

type BadTag struct {
	Value string `populate:"emial"`
}

type Labels struct {
	Status   Status
	Level    Level
	Statuses []Status
}

type Settings struct {
	Country string
	Age     int
	Email   string
	Notes   string
	Timeout time.Duration
}

type Counts struct {
	Label string
	ByID  map[int]int
}
