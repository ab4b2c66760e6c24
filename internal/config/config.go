// Package config holds the literal inputs the driver feeds to each exercise.
// Defaults reproduce the fixed demo run; a YAML file may override any of them.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
)

// TwoSum is the list and target of the pair-sum step.
type TwoSum struct {
	Nums   []int `validate:"min=2"`
	Target int
}

// Rotate is shared by the left and right rotation steps. By may be negative.
type Rotate struct {
	Nums []int `validate:"min=1"`
	By   int
}

// Pair holds the two lists of a two-list step.
type Pair struct {
	A []int
	B []int
}

// Person seeds the immutable-person step.
type Person struct {
	ID   int    `validate:"gte=0"`
	Name string `validate:"required"`
}

// Merge holds the maps joined by the merge step.
type Merge struct {
	A map[string]string
	B map[string]string
}

// Inputs is the complete input set of one driver run.
type Inputs struct {
	TwoSum           TwoSum
	Sentence         string
	Factorial        int `validate:"lte=20"`
	Rotate           Rotate
	Reverse          string
	Common           Pair
	FirstNonRepeated string
	Person           Person
	Leaders          []int
	MostCommon       []int `validate:"min=1"`
	Dedup            []int
	DedupWords       string
	ReverseAlphabets string
	SecondLargest    []int
	CountChars       string
	Palindrome       string
	Max              []int  `validate:"min=1"`
	Greeting         string `validate:"required"`
	Concat           Pair
	Merge            Merge
}

// Defaults returns the inputs of the stock demo run.
func Defaults() Inputs {
	return Inputs{
		TwoSum:           TwoSum{Nums: []int{2, 7, 11, 15}, Target: 9},
		Sentence:         "hello world hello",
		Factorial:        5,
		Rotate:           Rotate{Nums: []int{1, 2, 3, 4, 5}, By: 2},
		Reverse:          "hello",
		Common:           Pair{A: []int{1, 2, 3}, B: []int{3, 4, 5}},
		FirstNonRepeated: "swiss",
		Person:           Person{ID: 1, Name: "Zeeshan"},
		Leaders:          []int{16, 17, 4, 3, 5, 2},
		MostCommon:       []int{1, 2, 3, 2, 4, 2, 5},
		Dedup:            []int{1, 2, 3, 3, 4, 5, 5},
		DedupWords:       "hello world hello universe",
		ReverseAlphabets: "abcdef",
		SecondLargest:    []int{10, 20, 30, 40, 50},
		CountChars:       "hello world",
		Palindrome:       "radar",
		Max:              []int{10, 20, 30, 40, 50},
		Greeting:         "Zeeshan",
		Concat:           Pair{A: []int{1, 2, 3}, B: []int{4, 5, 6}},
		Merge: Merge{
			A: map[string]string{"A": "Apple", "B": "Banana"},
			B: map[string]string{"B": "Blueberry", "C": "Cherry"},
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks in against its struct tags. Failures wrap ErrInvalidConfig
// and name every offending field.
func (in Inputs) Validate() error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (param=%q)", fe.Namespace(), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
