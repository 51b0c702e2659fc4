package validation_test

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/validation/pkg/validation"
)

func checkNotEmpty(name string) validation.Validation[validation.Unit] {
	if name == "" {
		return validation.Fail[validation.Unit]("name must not be empty")
	}
	return validation.Valid()
}

func checkLowercase(name string) validation.Validation[validation.Unit] {
	if name != strings.ToLower(name) {
		return validation.Fail[validation.Unit](validation.Problemf("name %q must be lowercase", name))
	}
	return validation.Valid()
}

func ExampleSequence() {
	name := "My-Package"

	result := validation.Sequence(
		checkNotEmpty(name),
		checkLowercase(name),
		validation.Fail[validation.Unit]("name must not contain dashes"),
	)

	for _, problem := range result.Problems() {
		fmt.Println(problem)
	}
	// Output:
	// name "My-Package" must be lowercase
	// name must not contain dashes
}

func ExampleAnd() {
	major := validation.Success(1)
	minor := validation.Success(2)

	combined := validation.And(major, minor, func(a, b int) string {
		return fmt.Sprintf("v%d.%d", a, b)
	})

	version, ok := combined.Value()
	fmt.Println(ok, version)
	// Output: true v1.2
}

func ExampleResultMap() {
	parsed := validation.Success("1024")

	outcome, err := validation.ResultMap(parsed, func(raw string) (validation.Validation[int], error) {
		var size int
		if _, convErr := fmt.Sscanf(raw, "%d", &size); convErr != nil {
			return validation.Fail[int]("size is not a number"), nil
		}
		return validation.Success(size), nil
	})
	if err != nil {
		fmt.Println("fatal:", err)
		return
	}

	size, _ := outcome.Value()
	fmt.Println(size)
	// Output: 1024
}
