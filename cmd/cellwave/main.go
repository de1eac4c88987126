// cellwave - 8-bit cell codec CLI
//
// Usage:
//
//	cellwave encode [text]                 Encode text as cell glyphs
//	cellwave decode [glyphs]               Decode cell glyphs back to text
//	cellwave compress -k N [text]          PCA-compress and report the trade-off
//	cellwave stats [text]                  Describe the byte distribution
//	cellwave basis label <dots>            Print a basis machine label
//	cellwave basis parse <label>           Parse a machine label
//	cellwave basis enum <dots>             Enumerate a sub-space
//	cellwave synth -o out.wav [text]       Render text to audio
//	cellwave analyze in.wav                Recover text from audio
//	cellwave roundtrip [text]              Synthesize, analyze, compare
//	cellwave play [text]                   Render and play through the speakers
//	cellwave pack -o out.cw1 [text...]     Store sequences in a CW1 container
//	cellwave unpack in.cw1                 List sequences from a container
//	cellwave version                       Print version info
//
// If no text is given, commands read from stdin.
package main

func main() {
	Execute()
}
