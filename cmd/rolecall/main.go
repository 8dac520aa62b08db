// rolecall — reusable role templates for AI assistants.
// Stores named system instructions, renders them with host variables,
// and recovers which role produced a previously sent instruction.
package main

import "github.com/ppiankov/rolecall/internal/cli"

func main() {
	cli.Execute()
}
