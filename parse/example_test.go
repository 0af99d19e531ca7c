package parse_test

import (
	"fmt"

	"github.com/katalvlaran/valveflow/parse"
)

func ExampleString() {
	g, err := parse.String(`Valve AA has flow rate=0; tunnels lead to valves BB, CC
Valve BB has flow rate=13; tunnel leads to valve AA
Valve CC has flow rate=2; tunnel leads to valve AA`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Vertices(), g.RatedVertices(), g.TotalRate())

	_, err = parse.String("Valve AA has no flow")
	fmt.Println(err)

	// Output:
	// [AA BB CC] [BB CC] 15
	// parse: line 1: does not match valve grammar ("Valve AA has no flow")
}
