// example_test.go - testable usage examples.
// SPDX-License-Identifier: GPL-3.0-or-later

package cfgarg_test

import (
	"fmt"

	"github.com/relay-tools/cfgarg"
)

func Example() {
	p := cfgarg.NewParser()
	if err := p.AddOption("output", 'o'); err != nil {
		panic(err)
	}
	if err := p.AddFlag("verbose", 'v'); err != nil {
		panic(err)
	}

	tokens, err := cfgarg.SplitCommandLine(`-v --output=report.txt extra`)
	if err != nil {
		panic(err)
	}

	if err := p.Parse(tokens, 0, len(tokens)); err != nil {
		panic(err)
	}

	fmt.Println("verbose:", p.FlagCount("verbose"))
	fmt.Println("output:", p.OptionValues("output"))
	value, _ := p.FreeValueInstanceValue(0)
	fmt.Println("free value:", value)

	// Output:
	// verbose: 1
	// output: [report.txt]
	// free value: extra
}

func Example_bundledShortFlags() {
	p := cfgarg.NewParser()
	for _, name := range []string{"a", "b", "c"} {
		if err := p.AddFlag(name, name[0]); err != nil {
			panic(err)
		}
	}

	if err := p.Parse([]string{"-abc"}, 0, 1); err != nil {
		panic(err)
	}

	for _, name := range []string{"a", "b", "c"} {
		fmt.Printf("%s: %d\n", name, p.FlagCount(name))
	}

	// Output:
	// a: 1
	// b: 1
	// c: 1
}

func Example_endOfOptions() {
	p := cfgarg.NewParser()
	if err := p.AddFlag("debug", 'd'); err != nil {
		panic(err)
	}

	tokens := []string{"--", "-d"}
	if err := p.Parse(tokens, 0, len(tokens)); err != nil {
		panic(err)
	}

	fmt.Println("debug count:", p.FlagCount("debug"))
	value, _ := p.FreeValueInstanceValue(0)
	fmt.Println("free value:", value)

	// Output:
	// debug count: 0
	// free value: -d
}

func Example_optionRequiresValue() {
	p := cfgarg.NewParser()
	if err := p.AddOption("output", 'o'); err != nil {
		panic(err)
	}

	err := p.Parse([]string{"-o"}, 0, 1)
	fmt.Println(err)

	// Output:
	// cfgarg: OptionRequiresValue
}
