package richtext

import "fmt"

func seqKeys() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("k%d", n)
	}
}

func newTestState() *State {
	return New(Options{NewKey: seqKeys()})
}

func blockTexts(s *State) []string {
	out := make([]string, 0, s.BlockCount())
	for _, b := range s.Blocks() {
		out = append(out, b.Text())
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
