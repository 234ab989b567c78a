package verify

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/ajroetker/go-lanes/hwy"
)

// SampleID identifies a sample across images: the owner's fully qualified
// type name (import path and type name) and the method name. Position in
// any listing is irrelevant.
type SampleID struct {
	Owner string `json:"owner" yaml:"owner"`
	Name  string `json:"name" yaml:"name"`
}

func (id SampleID) String() string {
	return id.Owner + "." + id.Name
}

// ParseSampleID splits "path/to/pkg.Type.Method" into owner and name.
func ParseSampleID(s string) (SampleID, error) {
	i := strings.LastIndexByte(s, '.')
	if i <= 0 || i == len(s)-1 {
		return SampleID{}, fmt.Errorf("%w: sample id %q is not <owner>.<name>", ErrBadRequest, s)
	}
	return SampleID{Owner: s[:i], Name: s[i+1:]}, nil
}

func compareIDs(a, b SampleID) int {
	return cmp.Or(cmp.Compare(a.Owner, b.Owner), cmp.Compare(a.Name, b.Name))
}

var resultTypes = map[reflect.Type]bool{
	reflect.TypeFor[hwy.Int4]():  true,
	reflect.TypeFor[hwy.Bool4](): true,
	reflect.TypeFor[int32]():     true,
	reflect.TypeFor[bool]():      true,
}

// Registry resolves sample identifiers to methods on registered owners.
//
// An owner is a zero-size struct value; its samples are the exported
// value-receiver methods with no parameters and exactly one result of type
// hwy.Int4, hwy.Bool4, int32 or bool. Other exported methods resolve to
// ErrNotSample.
type Registry struct {
	mu     sync.RWMutex
	owners map[string]reflect.Value
}

// NewRegistry returns a registry holding owners.
func NewRegistry(owners ...any) (*Registry, error) {
	r := &Registry{owners: make(map[string]reflect.Value)}
	for _, o := range owners {
		if err := r.Register(o); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// OwnerName returns the fully qualified name of owner's type.
func OwnerName(owner any) string {
	t := reflect.TypeOf(owner)
	return t.PkgPath() + "." + t.Name()
}

// Register adds owner. It fails if owner is not a named zero-size struct or
// is already registered.
func (r *Registry) Register(owner any) error {
	t := reflect.TypeOf(owner)
	if t == nil || t.Kind() != reflect.Struct || t.Name() == "" || t.Size() != 0 {
		return fmt.Errorf("verify: owner %T must be a named zero-size struct", owner)
	}
	name := OwnerName(owner)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.owners[name]; dup {
		return fmt.Errorf("verify: owner %s registered twice", name)
	}
	r.owners[name] = reflect.ValueOf(owner)
	return nil
}

func isSample(m reflect.Method) bool {
	// Method types from reflect.Type include the receiver.
	return m.Type.NumIn() == 1 && m.Type.NumOut() == 1 && resultTypes[m.Type.Out(0)]
}

// Owners returns the registered owner names in sorted order.
func (r *Registry) Owners() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.owners))
	for name := range r.owners {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// List returns every sample, sorted by owner and name.
func (r *Registry) List() []SampleID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []SampleID
	for name, v := range r.owners {
		t := v.Type()
		for i := range t.NumMethod() {
			if m := t.Method(i); isSample(m) {
				ids = append(ids, SampleID{Owner: name, Name: m.Name})
			}
		}
	}
	slices.SortFunc(ids, compareIDs)
	return ids
}

// Invoke runs the sample id and returns its result.
func (r *Registry) Invoke(id SampleID) (Value, error) {
	r.mu.RLock()
	owner, ok := r.owners[id.Owner]
	r.mu.RUnlock()
	if !ok {
		return Value{}, fmt.Errorf("%w: %s", ErrUnknownOwner, id.Owner)
	}
	m, ok := owner.Type().MethodByName(id.Name)
	if !ok {
		return Value{}, fmt.Errorf("%w: %s", ErrUnknownSample, id)
	}
	if !isSample(m) {
		return Value{}, fmt.Errorf("%w: %s has type %s", ErrNotSample, id, m.Type)
	}
	out, err := call(m, owner)
	if err != nil {
		return Value{}, fmt.Errorf("%s: %w", id, err)
	}
	v, err := ValueOf(out.Interface())
	if err != nil {
		return Value{}, fmt.Errorf("%s: %w", id, err)
	}
	return v, nil
}

// call runs a sample method. A panic, such as an integer divide by zero,
// becomes an ErrSamplePanicked error.
func call(m reflect.Method, owner reflect.Value) (out reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSamplePanicked, r)
		}
	}()
	return m.Func.Call([]reflect.Value{owner})[0], nil
}
