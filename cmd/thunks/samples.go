package main

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/tgedikli/jsonfx/accessor"
)

type Status uint8

const (
	StatusIdle Status = iota
	StatusBusy
	StatusDown
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusBusy:
		return "busy"
	case StatusDown:
		return "down"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

type Endpoint struct {
	Host string
	Port uint16
}

type Server struct {
	Endpoint
	Name    string
	Tags    []string
	Weight  float64
	Status  Status
	Enabled bool
	retries int
}

func NewServer(name string, port uint16) *Server {
	return &Server{
		Endpoint: Endpoint{Host: "localhost", Port: port},
		Name:     name,
		Enabled:  true,
		retries:  3,
	}
}

func (s *Server) Retries() int { return s.retries }
func (s *Server) SetRetries(n int) { s.retries = n }
func (s *Server) Addr() string { return fmt.Sprintf("%s:%d", s.Host, s.Port) }

// Labeled is implemented by everything that carries a display label.
type Labeled interface {
	Label() string
	SetLabel(string)
}

type Pool struct {
	label   string
	Servers []*Server
}

func (p *Pool) Label() string { return p.label }
func (p *Pool) SetLabel(v string) { p.label = strings.TrimSpace(v) }

var DefaultPort uint16 = 8080

const MaxServers = 64

var poolCount int

func PoolCount() int { return poolCount }
func SetPoolCount(n int) { poolCount = n }

// sample is one inspectable type: a live instance, its member descriptors
// and the constructors registered for it.
type sample struct {
	instance any
	name     string
	members  []accessor.Member
	ctors    []*accessor.Constructor
}

func catalog(registry *accessor.Registry) ([]*sample, error) {
	if err := registry.Register(NewServer, func() *Pool { return &Pool{label: "pool"} }); err != nil {
		return nil, err
	}

	server, err := serverSample(registry)
	if err != nil {
		return nil, err
	}
	pool, err := poolSample(registry)
	if err != nil {
		return nil, err
	}
	return []*sample{server, pool}, nil
}

func serverSample(registry *accessor.Registry) (*sample, error) {
	t := reflect.TypeFor[Server]()
	s := &sample{
		name:     "Server",
		instance: NewServer("api", 9000),
		ctors:    registry.Constructors(t),
	}

	fields, err := accessor.FieldsOf(t)
	if err != nil {
		return nil, err
	}
	for _, f := range fields {
		s.members = append(s.members, f)
	}

	props, err := accessor.PropertiesOf(t)
	if err != nil {
		return nil, err
	}
	for _, p := range props {
		s.members = append(s.members, p)
	}

	port, err := accessor.StaticField(t, "DefaultPort", &DefaultPort)
	if err != nil {
		return nil, err
	}
	s.members = append(s.members,
		port,
		accessor.ConstField(t, "MaxServers", MaxServers),
		accessor.ConstField(t, "StatusDown", StatusDown),
	)
	return s, nil
}

func poolSample(registry *accessor.Registry) (*sample, error) {
	pool := &Pool{label: "primary", Servers: []*Server{NewServer("a", 9001), NewServer("b", 9002)}}
	s := &sample{
		name:     "Pool",
		instance: pool,
		ctors:    registry.Constructors(reflect.TypeFor[Pool]()),
	}

	servers, err := accessor.FieldOf(reflect.TypeFor[Pool](), "Servers")
	if err != nil {
		return nil, err
	}
	label, err := accessor.PropertyOf(reflect.TypeFor[Labeled](), "Label")
	if err != nil {
		return nil, err
	}
	count, err := accessor.StaticProperty(reflect.TypeFor[Pool](), "Count", PoolCount, SetPoolCount)
	if err != nil {
		return nil, err
	}
	s.members = append(s.members, servers, label, count)
	return s, nil
}

func memberName(m accessor.Member) string {
	switch m := m.(type) {
	case *accessor.Field:
		return m.Name
	case *accessor.Property:
		return m.Name
	default:
		return "?"
	}
}

func memberType(m accessor.Member) reflect.Type {
	switch m := m.(type) {
	case *accessor.Field:
		return m.ValueType
	case *accessor.Property:
		return m.ValueType
	default:
		return nil
	}
}

// memberShape describes how a member is stored or dispatched.
func memberShape(m accessor.Member) string {
	switch m := m.(type) {
	case *accessor.Field:
		switch {
		case m.Literal:
			return "const"
		case m.Static:
			return "static field"
		default:
			return "field"
		}
	case *accessor.Property:
		switch {
		case m.Static:
			return "static property"
		case m.Getter != nil && m.Getter.Virtual:
			return "virtual property"
		default:
			return "property"
		}
	default:
		return "?"
	}
}
