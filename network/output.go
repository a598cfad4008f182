package network

import "github.com/drake/rune/output"

// OutputKind identifies the type of network output.
type OutputKind int

const (
	OutputLine       OutputKind = iota // Complete line from server
	OutputPrompt                       // Partial line/prompt (GA/EOR terminated or unterminated)
	OutputDisconnect                   // Connection closed
	// OutputFragments carries a batch of structured fragments from a
	// connection fed through a FragmentSource instead of the
	// line-oriented OutputBuffer path.
	OutputFragments
)

// Output represents data emitted by the network layer.
type Output struct {
	Kind      OutputKind
	Payload   string             // Line content (empty for Disconnect/Fragments)
	Fragments []output.Fragment // meaningful for OutputFragments
}
