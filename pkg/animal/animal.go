// Package animal provides animal behaviors that are created by name through a
// strategy.Registry instead of a hard-coded type switch.
package animal

import "github.com/dmitrymomot/dispatchkit/pkg/strategy"

// Registry keys of the built-in animals.
const (
	KeyDog    = "dog"
	KeyCat    = "cat"
	KeyRabbit = "rabbit"
)

// Animal describes itself.
type Animal interface {
	Describe() string
	Sound() string
}

// Dog is registered under KeyDog.
type Dog struct{}

func (Dog) Describe() string { return "I am a Dog." }
func (Dog) Sound() string    { return "Woof" }

// Cat is registered under KeyCat.
type Cat struct{}

func (Cat) Describe() string { return "I am a Cat." }
func (Cat) Sound() string    { return "Meow" }

// Rabbit is registered under KeyRabbit.
type Rabbit struct{}

func (Rabbit) Describe() string { return "I am a Rabbit." }
func (Rabbit) Sound() string    { return "Squeak" }

// RegisterDefaults registers Dog, Cat and Rabbit under their Key constants.
func RegisterDefaults(r *strategy.Registry[Animal]) {
	r.Register(KeyDog, func() Animal { return Dog{} })
	r.Register(KeyCat, func() Animal { return Cat{} })
	r.Register(KeyRabbit, func() Animal { return Rabbit{} })
}
